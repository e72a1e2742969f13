package models

// YearMovieCount is one row of the movies-per-year aggregate.
type YearMovieCount struct {
	Year       int   `json:"year"`
	MovieCount int64 `gorm:"column:movie_count" json:"movie_count"`
}

// YearSerieCount is one row of the series-per-year aggregate.
type YearSerieCount struct {
	Year       int   `json:"year"`
	SerieCount int64 `gorm:"column:serie_count" json:"serie_count"`
}

// FullStats aggregates the size of the whole collection.
type FullStats struct {
	MovieCount    int64 `json:"movie_count"`
	SerieCount    int64 `json:"serie_count"`
	LocationCount int64 `json:"location_count"`
	CategoryCount int64 `json:"category_count"`
}
