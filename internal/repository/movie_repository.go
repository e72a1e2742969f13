package repository

import (
	"context"
	"strings"
	"time"

	"catalog-backend/internal/database"
	"catalog-backend/internal/models"
	"catalog-backend/internal/query"
	"catalog-backend/internal/utils"

	"gorm.io/gorm"
)

// MovieQuery describes the queryable surface of the movies listing: its
// projectable columns, searchable columns with their matching mode, and the
// deterministic tie-break appended to every sort.
var MovieQuery = query.Config{
	Columns: []query.Column{
		{Name: "id", Expr: "movies.id"},
		{Name: "location_id", Expr: "movies.location_id"},
		{Name: "title", Expr: "movies.title"},
		{Name: "french_title", Expr: "movies.french_title"},
		{Name: "remarks", Expr: "movies.remarks"},
		{Name: "actors", Expr: "movies.actors"},
		{Name: "director", Expr: "movies.director"},
		{Name: "year", Expr: "movies.year"},
		{Name: "duration", Expr: "movies.duration"},
		{Name: "is_dvd", Expr: "movies.is_dvd"},
		{Name: "is_bluray", Expr: "movies.is_bluray"},
		{Name: "is_digital", Expr: "movies.is_digital"},
		{Name: "category_id", Expr: "movies.category_id"},
	},
	DefaultSort: "title",
	Search: []query.SearchColumn{
		{Param: "title", Column: "movies.title"},
		{Param: "location", Column: "movies.location_id", Exact: true, Numeric: true},
		{Param: "director", Column: "movies.director"},
		{Param: "actors", Column: "movies.actors", Exact: true},
		{Param: "year", Column: "movies.year", Numeric: true},
	},
	TieBreaks: []query.OrderColumn{{Expr: "movies.title"}},
}

type MovieRepository interface {
	FindAll(ctx context.Context, plan *query.Plan) ([]Record, error)
	FindByID(ctx context.Context, id uint) (Record, error)
	Create(ctx context.Context, fields map[string]interface{}, categoryIDs []uint) (uint, error)
	Update(ctx context.Context, id uint, fields map[string]interface{}, categoryIDs []uint, replaceCategories bool) (bool, error)
	Delete(ctx context.Context, id uint) error
	Count(ctx context.Context, title string) (int64, error)
}

type movieRepository struct {
	db      *database.Database
	timeout time.Duration
}

func NewMovieRepository(db *database.Database) MovieRepository {
	return &movieRepository{
		db:      db,
		timeout: db.GetQueryTimeout(),
	}
}

func (r *movieRepository) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if _, ok := ctx.Deadline(); ok {
		return ctx, func() {}
	}
	return context.WithTimeout(ctx, r.timeout)
}

func (r *movieRepository) joined(ctx context.Context, cols []query.Column) *gorm.DB {
	return r.db.WithContext(ctx).Table("movies").
		Select(selectClause(cols, joinScaffolding)).
		Joins("JOIN locations ON locations.id = movies.location_id").
		Joins("LEFT JOIN movie_category_mappings ON movie_category_mappings.movie_id = movies.id").
		Joins("LEFT JOIN categories ON categories.id = movie_category_mappings.category_id")
}

func (r *movieRepository) FindAll(ctx context.Context, plan *query.Plan) ([]Record, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	// Offset and limit address movies, not joined rows: a movie with N
	// categories arrives as N rows, so the page is resolved on the parent
	// table first and the category join runs against that page only.
	page := r.db.WithContext(ctx).Table("movies").
		Select("movies.id").
		Joins("JOIN locations ON locations.id = movies.location_id")
	for _, p := range plan.Predicates {
		page = page.Where(p.Clause, p.Value)
	}
	page = page.Order(plan.OrderClause()).
		Offset(plan.Offset).
		Limit(plan.Limit)

	var rows []map[string]interface{}
	err := r.joined(ctx, plan.Select).
		Where("movies.id IN (?)", page).
		Order(plan.OrderClause() + ", movie_category_mappings.id").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}

	return collapse(rows), nil
}

func (r *movieRepository) FindByID(ctx context.Context, id uint) (Record, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	var rows []map[string]interface{}
	err := r.joined(ctx, MovieQuery.Columns).
		Where("movies.id = ?", id).
		Order("movie_category_mappings.id").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}

	records := collapse(rows)
	if len(records) == 0 {
		return nil, utils.NewNotFound("Movie", id)
	}
	return records[0], nil
}

func (r *movieRepository) Create(ctx context.Context, fields map[string]interface{}, categoryIDs []uint) (uint, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	var id uint
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		newID, err := insertReturningID(tx, "movies", fields)
		if err != nil {
			return err
		}
		id = newID

		ids := uniqueIDs(categoryIDs)
		if len(ids) == 0 {
			return nil
		}
		mappings := make([]models.MovieCategoryMapping, 0, len(ids))
		for _, categoryID := range ids {
			mappings = append(mappings, models.MovieCategoryMapping{MovieID: newID, CategoryID: categoryID})
		}
		return tx.Create(&mappings).Error
	})
	return id, err
}

// Update applies the partial field map and, when replaceCategories is set,
// replaces the whole mapping set for this movie. Both run in one
// transaction. The modified flag reflects the parent row update only, like
// an update on a missing id which reports "not modified" rather than
// erroring.
func (r *movieRepository) Update(ctx context.Context, id uint, fields map[string]interface{}, categoryIDs []uint, replaceCategories bool) (bool, error) {
	if len(fields) == 0 && !replaceCategories {
		return false, nil
	}

	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	modified := false
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if len(fields) > 0 {
			res := tx.Table("movies").Where("id = ?", id).Updates(fields)
			if res.Error != nil {
				return res.Error
			}
			modified = res.RowsAffected > 0
		}

		if !replaceCategories {
			return nil
		}
		if err := tx.Where("movie_id = ?", id).Delete(&models.MovieCategoryMapping{}).Error; err != nil {
			return err
		}
		ids := uniqueIDs(categoryIDs)
		if len(ids) == 0 {
			return nil
		}
		mappings := make([]models.MovieCategoryMapping, 0, len(ids))
		for _, categoryID := range ids {
			mappings = append(mappings, models.MovieCategoryMapping{MovieID: id, CategoryID: categoryID})
		}
		return tx.Create(&mappings).Error
	})
	return modified, err
}

func (r *movieRepository) Delete(ctx context.Context, id uint) error {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Delete(&models.Movie{}, id).Error; err != nil {
			return err
		}
		return tx.Where("movie_id = ?", id).Delete(&models.MovieCategoryMapping{}).Error
	})
}

func (r *movieRepository) Count(ctx context.Context, title string) (int64, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	pattern := "%"
	if title != "" {
		pattern = "%" + strings.ToLower(title) + "%"
	}

	var count int64
	err := r.db.WithContext(ctx).Model(&models.Movie{}).
		Where("LOWER(title) LIKE ?", pattern).
		Count(&count).Error
	return count, err
}
