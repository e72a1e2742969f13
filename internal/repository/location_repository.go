package repository

import (
	"context"
	"errors"
	"time"

	"catalog-backend/internal/database"
	"catalog-backend/internal/models"
	"catalog-backend/internal/utils"

	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"
)

type LocationRepository interface {
	FindAll(ctx context.Context) ([]models.Location, error)
	FindByID(ctx context.Context, id uint) (*models.Location, error)
	Create(ctx context.Context, fields map[string]interface{}) (uint, error)
	Update(ctx context.Context, id uint, fields map[string]interface{}) (bool, error)
	Delete(ctx context.Context, id uint) error
	CountForLocation(ctx context.Context, id uint) (*models.LocationElementCount, error)
	CountForLocations(ctx context.Context) ([]models.LocationCount, error)
}

type locationRepository struct {
	db      *database.Database
	timeout time.Duration
}

func NewLocationRepository(db *database.Database) LocationRepository {
	return &locationRepository{
		db:      db,
		timeout: db.GetQueryTimeout(),
	}
}

func (r *locationRepository) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if _, ok := ctx.Deadline(); ok {
		return ctx, func() {}
	}
	return context.WithTimeout(ctx, r.timeout)
}

func (r *locationRepository) FindAll(ctx context.Context) ([]models.Location, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	var locations []models.Location
	err := r.db.WithContext(ctx).Order("id").Find(&locations).Error
	return locations, err
}

func (r *locationRepository) FindByID(ctx context.Context, id uint) (*models.Location, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	var location models.Location
	err := r.db.WithContext(ctx).First(&location, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, utils.NewNotFound("Location", id)
		}
		return nil, err
	}
	return &location, nil
}

func (r *locationRepository) Create(ctx context.Context, fields map[string]interface{}) (uint, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	return insertReturningID(r.db.WithContext(ctx), "locations", fields)
}

func (r *locationRepository) Update(ctx context.Context, id uint, fields map[string]interface{}) (bool, error) {
	if len(fields) == 0 {
		return false, nil
	}

	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	res := r.db.WithContext(ctx).Table("locations").Where("id = ?", id).Updates(fields)
	return res.RowsAffected > 0, res.Error
}

// Delete removes the location; the datastore cascades the delete to every
// movie and serie stored there.
func (r *locationRepository) Delete(ctx context.Context, id uint) error {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	return r.db.WithContext(ctx).Delete(&models.Location{}, id).Error
}

// CountForLocation counts the movies and series of one location. The two
// reads run concurrently; the first error cancels the other and fails the
// whole operation.
func (r *locationRepository) CountForLocation(ctx context.Context, id uint) (*models.LocationElementCount, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	g, gctx := errgroup.WithContext(ctx)
	var count models.LocationElementCount

	g.Go(func() error {
		return r.db.WithContext(gctx).Model(&models.Movie{}).
			Where("location_id = ?", id).
			Count(&count.Movies).Error
	})
	g.Go(func() error {
		return r.db.WithContext(gctx).Model(&models.Serie{}).
			Where("location_id = ?", id).
			Count(&count.Series).Error
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return &count, nil
}

type groupCount struct {
	LocationID uint  `gorm:"column:location_id"`
	Total      int64 `gorm:"column:total"`
}

// CountForLocations returns the movie and serie counts of every location,
// left-merged with the full location list so zero-count locations appear
// with explicit zeroes.
func (r *locationRepository) CountForLocations(ctx context.Context) ([]models.LocationCount, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	g, gctx := errgroup.WithContext(ctx)
	var locations []models.Location
	movieCounts := make(map[uint]int64)
	serieCounts := make(map[uint]int64)

	g.Go(func() error {
		return r.db.WithContext(gctx).Order("id").Find(&locations).Error
	})
	g.Go(func() error {
		var rows []groupCount
		err := r.db.WithContext(gctx).Model(&models.Movie{}).
			Select("location_id, COUNT(*) AS total").
			Group("location_id").
			Find(&rows).Error
		if err != nil {
			return err
		}
		for _, row := range rows {
			movieCounts[row.LocationID] = row.Total
		}
		return nil
	})
	g.Go(func() error {
		var rows []groupCount
		err := r.db.WithContext(gctx).Model(&models.Serie{}).
			Select("location_id, COUNT(*) AS total").
			Group("location_id").
			Find(&rows).Error
		if err != nil {
			return err
		}
		for _, row := range rows {
			serieCounts[row.LocationID] = row.Total
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}

	out := make([]models.LocationCount, 0, len(locations))
	for _, loc := range locations {
		out = append(out, models.LocationCount{
			ID:         loc.ID,
			Location:   loc.Location,
			MovieCount: movieCounts[loc.ID],
			SerieCount: serieCounts[loc.ID],
		})
	}
	return out, nil
}
