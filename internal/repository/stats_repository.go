package repository

import (
	"context"
	"time"

	"catalog-backend/internal/database"
	"catalog-backend/internal/models"

	"golang.org/x/sync/errgroup"
)

type StatsRepository interface {
	CountMoviesByYear(ctx context.Context) ([]models.YearMovieCount, error)
	CountSeriesByYear(ctx context.Context) ([]models.YearSerieCount, error)
	FullStats(ctx context.Context) (*models.FullStats, error)
}

type statsRepository struct {
	db      *database.Database
	timeout time.Duration
}

func NewStatsRepository(db *database.Database) StatsRepository {
	return &statsRepository{
		db:      db,
		timeout: db.GetQueryTimeout(),
	}
}

func (r *statsRepository) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if _, ok := ctx.Deadline(); ok {
		return ctx, func() {}
	}
	return context.WithTimeout(ctx, r.timeout)
}

func (r *statsRepository) CountMoviesByYear(ctx context.Context) ([]models.YearMovieCount, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	var rows []models.YearMovieCount
	err := r.db.WithContext(ctx).Model(&models.Movie{}).
		Select("year, COUNT(*) AS movie_count").
		Group("year").
		Order("year").
		Find(&rows).Error
	return rows, err
}

func (r *statsRepository) CountSeriesByYear(ctx context.Context) ([]models.YearSerieCount, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	var rows []models.YearSerieCount
	err := r.db.WithContext(ctx).Model(&models.Serie{}).
		Select("year, COUNT(*) AS serie_count").
		Group("year").
		Order("year").
		Find(&rows).Error
	return rows, err
}

// FullStats counts the four catalog tables concurrently and fails as a
// whole if any count fails.
func (r *statsRepository) FullStats(ctx context.Context) (*models.FullStats, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	g, gctx := errgroup.WithContext(ctx)
	var stats models.FullStats

	g.Go(func() error {
		return r.db.WithContext(gctx).Model(&models.Movie{}).Count(&stats.MovieCount).Error
	})
	g.Go(func() error {
		return r.db.WithContext(gctx).Model(&models.Serie{}).Count(&stats.SerieCount).Error
	})
	g.Go(func() error {
		return r.db.WithContext(gctx).Model(&models.Location{}).Count(&stats.LocationCount).Error
	})
	g.Go(func() error {
		return r.db.WithContext(gctx).Model(&models.Category{}).Count(&stats.CategoryCount).Error
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return &stats, nil
}
