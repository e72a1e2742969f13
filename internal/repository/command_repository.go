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

// CommandQuery describes the commands listing: sortable, no search keys.
var CommandQuery = query.Config{
	Columns: []query.Column{
		{Name: "id", Expr: "commands.id"},
		{Name: "title", Expr: "commands.title"},
		{Name: "remarks", Expr: "commands.remarks"},
	},
	DefaultSort: "id",
}

type CommandRepository interface {
	FindAll(ctx context.Context, plan *query.Plan) ([]models.Command, error)
	FindByID(ctx context.Context, id uint) (*models.Command, error)
	Create(ctx context.Context, fields map[string]interface{}) (uint, error)
	Update(ctx context.Context, id uint, fields map[string]interface{}) (bool, error)
	Delete(ctx context.Context, id uint) error
}

type commandRepository struct {
	db      *database.Database
	timeout time.Duration
}

func NewCommandRepository(db *database.Database) CommandRepository {
	return &commandRepository{
		db:      db,
		timeout: db.GetQueryTimeout(),
	}
}

func (r *commandRepository) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if _, ok := ctx.Deadline(); ok {
		return ctx, func() {}
	}
	return context.WithTimeout(ctx, r.timeout)
}

func (r *commandRepository) FindAll(ctx context.Context, plan *query.Plan) ([]models.Command, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	var commands []models.Command
	err := r.db.WithContext(ctx).
		Order(plan.OrderClause()).
		Offset(plan.Offset).
		Limit(plan.Limit).
		Find(&commands).Error
	return commands, err
}

func (r *commandRepository) FindByID(ctx context.Context, id uint) (*models.Command, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	var command models.Command
	err := r.db.WithContext(ctx).First(&command, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, utils.NewNotFound("Command", id)
		}
		return nil, err
	}
	return &command, nil
}

func (r *commandRepository) Create(ctx context.Context, fields map[string]interface{}) (uint, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	return insertReturningID(r.db.WithContext(ctx), "commands", fields)
}

func (r *commandRepository) Update(ctx context.Context, id uint, fields map[string]interface{}) (bool, error) {
	if len(fields) == 0 {
		return false, nil
	}

	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	res := r.db.WithContext(ctx).Table("commands").Where("id = ?", id).Updates(fields)
	return res.RowsAffected > 0, res.Error
}

func (r *commandRepository) Delete(ctx context.Context, id uint) error {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	return r.db.WithContext(ctx).Delete(&models.Command{}, id).Error
}
