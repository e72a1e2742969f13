package repository

import (
	"context"
	"testing"

	"catalog-backend/internal/models"
	"catalog-backend/internal/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocationCRUD(t *testing.T) {
	db := newTestDB(t)
	repo := NewLocationRepository(db)
	ctx := context.Background()

	id, err := repo.Create(ctx, map[string]interface{}{
		"location":    "Attic",
		"is_physical": true,
	})
	require.NoError(t, err)
	require.NotZero(t, id)

	loc, err := repo.FindByID(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, "Attic", loc.Location)
	assert.True(t, loc.IsPhysical)

	modified, err := repo.Update(ctx, id, map[string]interface{}{"location": "Basement"})
	require.NoError(t, err)
	assert.True(t, modified)

	modified, err = repo.Update(ctx, 9999, map[string]interface{}{"location": "Nowhere"})
	require.NoError(t, err)
	assert.False(t, modified)

	all, err := repo.FindAll(ctx)
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.Equal(t, "Basement", all[0].Location)

	require.NoError(t, repo.Delete(ctx, id))

	_, err = repo.FindByID(ctx, id)
	var notFound *utils.NotFoundError
	assert.ErrorAs(t, err, &notFound)
}

func TestLocationDeleteCascades(t *testing.T) {
	db := newTestDB(t)
	repo := NewLocationRepository(db)
	ctx := context.Background()

	locID := seedLocation(t, db, "Attic", true)
	keptID := seedLocation(t, db, "Shelf", true)

	require.NoError(t, db.Create(&models.Movie{LocationID: locID, Title: "Heat"}).Error)
	require.NoError(t, db.Create(&models.Serie{LocationID: locID, Title: "Dark"}).Error)
	require.NoError(t, db.Create(&models.Movie{LocationID: keptID, Title: "Alien"}).Error)

	require.NoError(t, repo.Delete(ctx, locID))

	var movieCount, serieCount int64
	require.NoError(t, db.Model(&models.Movie{}).Count(&movieCount).Error)
	require.NoError(t, db.Model(&models.Serie{}).Count(&serieCount).Error)
	assert.EqualValues(t, 1, movieCount)
	assert.EqualValues(t, 0, serieCount)
}

func TestCountForLocation(t *testing.T) {
	db := newTestDB(t)
	repo := NewLocationRepository(db)
	ctx := context.Background()

	locID := seedLocation(t, db, "Attic", true)
	require.NoError(t, db.Create(&models.Movie{LocationID: locID, Title: "Heat"}).Error)
	require.NoError(t, db.Create(&models.Movie{LocationID: locID, Title: "Alien"}).Error)
	require.NoError(t, db.Create(&models.Serie{LocationID: locID, Title: "Dark"}).Error)

	count, err := repo.CountForLocation(ctx, locID)
	require.NoError(t, err)
	assert.EqualValues(t, 2, count.Movies)
	assert.EqualValues(t, 1, count.Series)
}

func TestCountForLocations(t *testing.T) {
	db := newTestDB(t)
	repo := NewLocationRepository(db)
	ctx := context.Background()

	attic := seedLocation(t, db, "Attic", true)
	empty := seedLocation(t, db, "Basement", true)
	require.NoError(t, db.Create(&models.Movie{LocationID: attic, Title: "Heat"}).Error)
	require.NoError(t, db.Create(&models.Serie{LocationID: attic, Title: "Dark"}).Error)

	counts, err := repo.CountForLocations(ctx)
	require.NoError(t, err)
	require.Len(t, counts, 2)

	assert.Equal(t, attic, counts[0].ID)
	assert.EqualValues(t, 1, counts[0].MovieCount)
	assert.EqualValues(t, 1, counts[0].SerieCount)

	// The empty location is listed with explicit zeroes.
	assert.Equal(t, empty, counts[1].ID)
	assert.EqualValues(t, 0, counts[1].MovieCount)
	assert.EqualValues(t, 0, counts[1].SerieCount)
}
