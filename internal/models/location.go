package models

// Location is a physical or digital place where media is stored.
type Location struct {
	ID         uint   `gorm:"primaryKey" json:"id"`
	Location   string `gorm:"not null;index" json:"location"`
	IsPhysical bool   `gorm:"column:is_physical;not null;default:false" json:"is_physical"`
}

func (Location) TableName() string {
	return "locations"
}

// LocationElementCount holds the number of movies and series stored in one
// location.
type LocationElementCount struct {
	Movies int64 `json:"movies"`
	Series int64 `json:"series"`
}

// LocationCount is one row of the grouped per-location count listing. Zero
// counts are included, not omitted.
type LocationCount struct {
	ID         uint   `json:"id"`
	Location   string `json:"location"`
	MovieCount int64  `json:"movie_count"`
	SerieCount int64  `json:"serie_count"`
}
