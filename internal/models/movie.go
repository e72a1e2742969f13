package models

// Movie is one movie of the collection. CategoryID is the legacy
// single-category column; the current many-to-many shape goes through
// MovieCategoryMapping.
type Movie struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	LocationID  uint      `gorm:"column:location_id;not null;index" json:"location_id"`
	Location    *Location `gorm:"foreignKey:LocationID;constraint:OnDelete:CASCADE" json:"location,omitempty"`
	Title       string    `gorm:"not null;index" json:"title"`
	FrenchTitle string    `gorm:"column:french_title;not null;default:''" json:"french_title"`
	Remarks     string    `gorm:"not null;default:''" json:"remarks"`
	Actors      string    `gorm:"not null;default:''" json:"actors"`
	Director    string    `gorm:"not null;default:''" json:"director"`
	Year        int       `gorm:"not null;default:-1" json:"year"`
	Duration    int       `gorm:"not null;default:0" json:"duration"`
	IsDVD       bool      `gorm:"column:is_dvd;not null;default:false" json:"is_dvd"`
	IsBluray    bool      `gorm:"column:is_bluray;not null;default:false" json:"is_bluray"`
	IsDigital   bool      `gorm:"column:is_digital;not null;default:false" json:"is_digital"`
	CategoryID  *uint     `gorm:"column:category_id;index" json:"category_id,omitempty"`
}

func (Movie) TableName() string {
	return "movies"
}
