package repository

import (
	"context"
	"testing"

	"catalog-backend/internal/models"
	"catalog-backend/internal/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSerieCreateAndFindByID(t *testing.T) {
	db := newTestDB(t)
	repo := NewSerieRepository(db)
	ctx := context.Background()

	locID := seedLocation(t, db, "NAS", false)
	scifi := seedCategory(t, db, "Sci-Fi")

	id, err := repo.Create(ctx, map[string]interface{}{
		"location_id": locID,
		"title":       "The Expanse",
		"season":      2,
		"episodes":    13,
	}, []uint{scifi})
	require.NoError(t, err)

	rec, err := repo.FindByID(ctx, id)
	require.NoError(t, err)

	assert.Equal(t, "The Expanse", rec["title"])
	assert.EqualValues(t, 2, rec["season"])
	assert.Equal(t, []int64{int64(scifi)}, categoryIDs(t, rec))

	location, ok := rec["location"].(Record)
	require.True(t, ok)
	assert.Equal(t, "NAS", location["location"])
}

func TestSerieFindAllSeasonSearch(t *testing.T) {
	db := newTestDB(t)
	repo := NewSerieRepository(db)
	ctx := context.Background()

	locID := seedLocation(t, db, "NAS", false)
	for _, s := range []map[string]interface{}{
		{"location_id": locID, "title": "The Expanse", "season": 1},
		{"location_id": locID, "title": "The Expanse", "season": 2},
		{"location_id": locID, "title": "Fargo", "season": 1},
	} {
		_, err := repo.Create(ctx, s, nil)
		require.NoError(t, err)
	}

	// Season matches exactly, not as a substring.
	records, err := repo.FindAll(ctx, buildPlan(t, SerieQuery, map[string]string{"season": "2"}))
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "The Expanse", records[0]["title"])
	assert.EqualValues(t, 2, records[0]["season"])
}

func TestSerieFindAllOrdering(t *testing.T) {
	db := newTestDB(t)
	repo := NewSerieRepository(db)
	ctx := context.Background()

	locID := seedLocation(t, db, "NAS", false)
	for _, s := range []map[string]interface{}{
		{"location_id": locID, "title": "Fargo", "season": 3},
		{"location_id": locID, "title": "Fargo", "season": 1},
		{"location_id": locID, "title": "Dark", "season": 1},
	} {
		_, err := repo.Create(ctx, s, nil)
		require.NoError(t, err)
	}

	records, err := repo.FindAll(ctx, buildPlan(t, SerieQuery, nil))
	require.NoError(t, err)
	require.Len(t, records, 3)

	// Title ascending, then season ascending for equal titles.
	assert.Equal(t, "Dark", records[0]["title"])
	assert.EqualValues(t, 1, records[1]["season"])
	assert.EqualValues(t, 3, records[2]["season"])
}

func TestSerieFindAllPagination(t *testing.T) {
	db := newTestDB(t)
	repo := NewSerieRepository(db)
	ctx := context.Background()

	locID := seedLocation(t, db, "NAS", false)
	scifi := seedCategory(t, db, "Sci-Fi")
	drama := seedCategory(t, db, "Drama")

	for _, s := range []struct {
		title string
		cats  []uint
	}{
		{"Dark", []uint{scifi, drama}},
		{"Fargo", []uint{drama}},
		{"Severance", nil},
	} {
		_, err := repo.Create(ctx, map[string]interface{}{
			"location_id": locID, "title": s.title,
		}, s.cats)
		require.NoError(t, err)
	}

	// Two series per page even though the first one joins to two categories.
	records, err := repo.FindAll(ctx, buildPlan(t, SerieQuery, map[string]string{"limit": "2"}))
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, "Dark", records[0]["title"])
	assert.Equal(t, "Fargo", records[1]["title"])
	assert.Len(t, categoryIDs(t, records[0]), 2)
}

func TestSerieUpdateAndDelete(t *testing.T) {
	db := newTestDB(t)
	repo := NewSerieRepository(db)
	ctx := context.Background()

	locID := seedLocation(t, db, "NAS", false)
	scifi := seedCategory(t, db, "Sci-Fi")
	drama := seedCategory(t, db, "Drama")

	id, err := repo.Create(ctx, map[string]interface{}{
		"location_id": locID, "title": "Dark",
	}, []uint{scifi, drama})
	require.NoError(t, err)

	modified, err := repo.Update(ctx, id, map[string]interface{}{"episodes": 10}, []uint{drama}, true)
	require.NoError(t, err)
	assert.True(t, modified)

	var mappings []models.SerieCategoryMapping
	require.NoError(t, db.Where("serie_id = ?", id).Find(&mappings).Error)
	require.Len(t, mappings, 1)
	assert.Equal(t, drama, mappings[0].CategoryID)

	require.NoError(t, repo.Delete(ctx, id))

	_, err = repo.FindByID(ctx, id)
	var notFound *utils.NotFoundError
	require.ErrorAs(t, err, &notFound)
	assert.Equal(t, "Serie", notFound.Entity)

	var count int64
	require.NoError(t, db.Model(&models.SerieCategoryMapping{}).
		Where("serie_id = ?", id).Count(&count).Error)
	assert.Zero(t, count)
}
