package models

// Category is a genre-like label attached to movies and series.
type Category struct {
	ID          uint   `gorm:"primaryKey" json:"id"`
	Label       string `gorm:"not null;size:32;index" json:"label"`
	Description string `gorm:"type:text" json:"description"`
}

func (Category) TableName() string {
	return "categories"
}

// MovieCategoryMapping is a pure association row between a movie and a
// category. Rows are created and deleted as a batch whenever the movie's
// category set changes; they have no independent lifecycle.
type MovieCategoryMapping struct {
	ID         uint `gorm:"primaryKey" json:"id"`
	MovieID    uint `gorm:"column:movie_id;not null;index" json:"movie_id"`
	CategoryID uint `gorm:"column:category_id;not null;index" json:"category_id"`
}

func (MovieCategoryMapping) TableName() string {
	return "movie_category_mappings"
}

// SerieCategoryMapping is the serie counterpart of MovieCategoryMapping.
type SerieCategoryMapping struct {
	ID         uint `gorm:"primaryKey" json:"id"`
	SerieID    uint `gorm:"column:serie_id;not null;index" json:"serie_id"`
	CategoryID uint `gorm:"column:category_id;not null;index" json:"category_id"`
}

func (SerieCategoryMapping) TableName() string {
	return "serie_category_mappings"
}
