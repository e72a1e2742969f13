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

// SerieQuery mirrors MovieQuery for the series listing. Series sort by
// title, then title again, then the joined location name, then season, so
// rows with equal titles still come back in a reproducible order.
var SerieQuery = query.Config{
	Columns: []query.Column{
		{Name: "id", Expr: "series.id"},
		{Name: "location_id", Expr: "series.location_id"},
		{Name: "title", Expr: "series.title"},
		{Name: "season", Expr: "series.season"},
		{Name: "episodes", Expr: "series.episodes"},
		{Name: "year", Expr: "series.year"},
		{Name: "remarks", Expr: "series.remarks"},
		{Name: "is_dvd", Expr: "series.is_dvd"},
		{Name: "is_bluray", Expr: "series.is_bluray"},
		{Name: "is_digital", Expr: "series.is_digital"},
		{Name: "category_id", Expr: "series.category_id"},
	},
	DefaultSort: "title",
	Search: []query.SearchColumn{
		{Param: "title", Column: "series.title"},
		{Param: "location", Column: "series.location_id", Exact: true, Numeric: true},
		{Param: "season", Column: "series.season", Exact: true, Numeric: true},
	},
	TieBreaks: []query.OrderColumn{
		{Expr: "series.title"},
		{Expr: "locations.location"},
		{Expr: "series.season"},
	},
}

type SerieRepository interface {
	FindAll(ctx context.Context, plan *query.Plan) ([]Record, error)
	FindByID(ctx context.Context, id uint) (Record, error)
	Create(ctx context.Context, fields map[string]interface{}, categoryIDs []uint) (uint, error)
	Update(ctx context.Context, id uint, fields map[string]interface{}, categoryIDs []uint, replaceCategories bool) (bool, error)
	Delete(ctx context.Context, id uint) error
	Count(ctx context.Context, title string) (int64, error)
}

type serieRepository struct {
	db      *database.Database
	timeout time.Duration
}

func NewSerieRepository(db *database.Database) SerieRepository {
	return &serieRepository{
		db:      db,
		timeout: db.GetQueryTimeout(),
	}
}

func (r *serieRepository) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if _, ok := ctx.Deadline(); ok {
		return ctx, func() {}
	}
	return context.WithTimeout(ctx, r.timeout)
}

func (r *serieRepository) joined(ctx context.Context, cols []query.Column) *gorm.DB {
	return r.db.WithContext(ctx).Table("series").
		Select(selectClause(cols, joinScaffolding)).
		Joins("JOIN locations ON locations.id = series.location_id").
		Joins("LEFT JOIN serie_category_mappings ON serie_category_mappings.serie_id = series.id").
		Joins("LEFT JOIN categories ON categories.id = serie_category_mappings.category_id")
}

func (r *serieRepository) FindAll(ctx context.Context, plan *query.Plan) ([]Record, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	// Offset and limit address series, not joined rows. The locations join
	// is part of the page subquery because the tie-break sorts on it.
	page := r.db.WithContext(ctx).Table("series").
		Select("series.id").
		Joins("JOIN locations ON locations.id = series.location_id")
	for _, p := range plan.Predicates {
		page = page.Where(p.Clause, p.Value)
	}
	page = page.Order(plan.OrderClause()).
		Offset(plan.Offset).
		Limit(plan.Limit)

	var rows []map[string]interface{}
	err := r.joined(ctx, plan.Select).
		Where("series.id IN (?)", page).
		Order(plan.OrderClause() + ", serie_category_mappings.id").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}

	return collapse(rows), nil
}

func (r *serieRepository) FindByID(ctx context.Context, id uint) (Record, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	var rows []map[string]interface{}
	err := r.joined(ctx, SerieQuery.Columns).
		Where("series.id = ?", id).
		Order("serie_category_mappings.id").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}

	records := collapse(rows)
	if len(records) == 0 {
		return nil, utils.NewNotFound("Serie", id)
	}
	return records[0], nil
}

func (r *serieRepository) Create(ctx context.Context, fields map[string]interface{}, categoryIDs []uint) (uint, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	var id uint
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		newID, err := insertReturningID(tx, "series", fields)
		if err != nil {
			return err
		}
		id = newID

		ids := uniqueIDs(categoryIDs)
		if len(ids) == 0 {
			return nil
		}
		mappings := make([]models.SerieCategoryMapping, 0, len(ids))
		for _, categoryID := range ids {
			mappings = append(mappings, models.SerieCategoryMapping{SerieID: newID, CategoryID: categoryID})
		}
		return tx.Create(&mappings).Error
	})
	return id, err
}

func (r *serieRepository) Update(ctx context.Context, id uint, fields map[string]interface{}, categoryIDs []uint, replaceCategories bool) (bool, error) {
	if len(fields) == 0 && !replaceCategories {
		return false, nil
	}

	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	modified := false
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if len(fields) > 0 {
			res := tx.Table("series").Where("id = ?", id).Updates(fields)
			if res.Error != nil {
				return res.Error
			}
			modified = res.RowsAffected > 0
		}

		if !replaceCategories {
			return nil
		}
		if err := tx.Where("serie_id = ?", id).Delete(&models.SerieCategoryMapping{}).Error; err != nil {
			return err
		}
		ids := uniqueIDs(categoryIDs)
		if len(ids) == 0 {
			return nil
		}
		mappings := make([]models.SerieCategoryMapping, 0, len(ids))
		for _, categoryID := range ids {
			mappings = append(mappings, models.SerieCategoryMapping{SerieID: id, CategoryID: categoryID})
		}
		return tx.Create(&mappings).Error
	})
	return modified, err
}

func (r *serieRepository) Delete(ctx context.Context, id uint) error {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Delete(&models.Serie{}, id).Error; err != nil {
			return err
		}
		return tx.Where("serie_id = ?", id).Delete(&models.SerieCategoryMapping{}).Error
	})
}

func (r *serieRepository) Count(ctx context.Context, title string) (int64, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	pattern := "%"
	if title != "" {
		pattern = "%" + strings.ToLower(title) + "%"
	}

	var count int64
	err := r.db.WithContext(ctx).Model(&models.Serie{}).
		Where("LOWER(title) LIKE ?", pattern).
		Count(&count).Error
	return count, err
}
