package models

// Serie is one TV series of the collection.
type Serie struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	LocationID uint      `gorm:"column:location_id;not null;index" json:"location_id"`
	Location   *Location `gorm:"foreignKey:LocationID;constraint:OnDelete:CASCADE" json:"location,omitempty"`
	Title      string    `gorm:"not null;index" json:"title"`
	Season     int       `gorm:"not null;default:0" json:"season"`
	Episodes   int       `gorm:"not null;default:0" json:"episodes"`
	Year       int       `gorm:"not null;default:-1" json:"year"`
	Remarks    string    `gorm:"not null;default:''" json:"remarks"`
	IsDVD      bool      `gorm:"column:is_dvd;not null;default:false" json:"is_dvd"`
	IsBluray   bool      `gorm:"column:is_bluray;not null;default:false" json:"is_bluray"`
	IsDigital  bool      `gorm:"column:is_digital;not null;default:false" json:"is_digital"`
	CategoryID *uint     `gorm:"column:category_id;index" json:"category_id,omitempty"`
}

func (Serie) TableName() string {
	return "series"
}
