package repository

import (
	"context"
	"errors"
	"time"

	"catalog-backend/internal/database"
	"catalog-backend/internal/models"
	"catalog-backend/internal/query"
	"catalog-backend/internal/utils"

	"gorm.io/gorm"
)

// CategoryQuery describes the categories listing. The search key is named
// "category" and matches the label column as a substring.
var CategoryQuery = query.Config{
	Columns: []query.Column{
		{Name: "id", Expr: "categories.id"},
		{Name: "label", Expr: "categories.label"},
		{Name: "description", Expr: "categories.description"},
	},
	DefaultSort: "label",
	Search: []query.SearchColumn{
		{Param: "category", Column: "categories.label"},
	},
}

type CategoryRepository interface {
	FindAll(ctx context.Context, plan *query.Plan) ([]Record, error)
	FindByID(ctx context.Context, id uint) (*models.Category, error)
	Create(ctx context.Context, fields map[string]interface{}) (uint, error)
	Update(ctx context.Context, id uint, fields map[string]interface{}) (bool, error)
	Delete(ctx context.Context, id uint) error
}

type categoryRepository struct {
	db      *database.Database
	timeout time.Duration
}

func NewCategoryRepository(db *database.Database) CategoryRepository {
	return &categoryRepository{
		db:      db,
		timeout: db.GetQueryTimeout(),
	}
}

func (r *categoryRepository) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if _, ok := ctx.Deadline(); ok {
		return ctx, func() {}
	}
	return context.WithTimeout(ctx, r.timeout)
}

func (r *categoryRepository) FindAll(ctx context.Context, plan *query.Plan) ([]Record, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	q := r.db.WithContext(ctx).Table("categories").
		Select(selectClause(plan.Select, nil))
	for _, p := range plan.Predicates {
		q = q.Where(p.Clause, p.Value)
	}

	var rows []map[string]interface{}
	err := q.Order(plan.OrderClause()).
		Offset(plan.Offset).
		Limit(plan.Limit).
		Find(&rows).Error
	if err != nil {
		return nil, err
	}

	out := make([]Record, 0, len(rows))
	for _, row := range rows {
		out = append(out, Record(row))
	}
	return out, nil
}

func (r *categoryRepository) FindByID(ctx context.Context, id uint) (*models.Category, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	var category models.Category
	err := r.db.WithContext(ctx).First(&category, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, utils.NewNotFound("Category", id)
		}
		return nil, err
	}
	return &category, nil
}

func (r *categoryRepository) Create(ctx context.Context, fields map[string]interface{}) (uint, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	return insertReturningID(r.db.WithContext(ctx), "categories", fields)
}

func (r *categoryRepository) Update(ctx context.Context, id uint, fields map[string]interface{}) (bool, error) {
	if len(fields) == 0 {
		return false, nil
	}

	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	res := r.db.WithContext(ctx).Table("categories").Where("id = ?", id).Updates(fields)
	return res.RowsAffected > 0, res.Error
}

func (r *categoryRepository) Delete(ctx context.Context, id uint) error {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	return r.db.WithContext(ctx).Delete(&models.Category{}, id).Error
}
