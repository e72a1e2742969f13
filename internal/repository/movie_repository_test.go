package repository

import (
	"context"
	"testing"

	"catalog-backend/internal/models"
	"catalog-backend/internal/query"
	"catalog-backend/internal/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func buildPlan(t *testing.T, cfg query.Config, params map[string]string) *query.Plan {
	t.Helper()
	plan, err := query.Build(cfg, params)
	require.NoError(t, err)
	return plan
}

func TestMovieCreateAndFindByID(t *testing.T) {
	db := newTestDB(t)
	repo := NewMovieRepository(db)
	ctx := context.Background()

	locID := seedLocation(t, db, "Attic", true)
	action := seedCategory(t, db, "Action")
	drama := seedCategory(t, db, "Drama")

	id, err := repo.Create(ctx, map[string]interface{}{
		"location_id": locID,
		"title":       "Heat",
		"director":    "Michael Mann",
		"year":        1995,
	}, []uint{drama, action})
	require.NoError(t, err)
	require.NotZero(t, id)

	rec, err := repo.FindByID(ctx, id)
	require.NoError(t, err)

	assert.EqualValues(t, id, recordID(t, rec))
	assert.Equal(t, "Heat", rec["title"])

	location, ok := rec["location"].(Record)
	require.True(t, ok)
	assert.Equal(t, "Attic", location["location"])

	// Categories come back in mapping insertion order, not sorted by id.
	assert.Equal(t, []int64{int64(drama), int64(action)}, categoryIDs(t, rec))
}

func TestMovieFindByIDNotFound(t *testing.T) {
	db := newTestDB(t)
	repo := NewMovieRepository(db)

	_, err := repo.FindByID(context.Background(), 42)

	var notFound *utils.NotFoundError
	require.ErrorAs(t, err, &notFound)
	assert.Equal(t, "Movie with id 42 not found.", notFound.Error())
}

func TestMovieFindAllCollapse(t *testing.T) {
	db := newTestDB(t)
	repo := NewMovieRepository(db)
	ctx := context.Background()

	locID := seedLocation(t, db, "Shelf", true)
	action := seedCategory(t, db, "Action")
	drama := seedCategory(t, db, "Drama")

	withCats, err := repo.Create(ctx, map[string]interface{}{
		"location_id": locID,
		"title":       "Alien",
	}, []uint{action, drama})
	require.NoError(t, err)

	withoutCats, err := repo.Create(ctx, map[string]interface{}{
		"location_id": locID,
		"title":       "Brazil",
	}, nil)
	require.NoError(t, err)

	records, err := repo.FindAll(ctx, buildPlan(t, MovieQuery, nil))
	require.NoError(t, err)
	require.Len(t, records, 2)

	// Two mapping rows collapsed into one record with two categories.
	assert.EqualValues(t, withCats, recordID(t, records[0]))
	assert.Len(t, categoryIDs(t, records[0]), 2)

	// No mapping rows collapses to an empty list, never null.
	assert.EqualValues(t, withoutCats, recordID(t, records[1]))
	assert.Empty(t, categoryIDs(t, records[1]))
}

func TestMovieFindAllProjection(t *testing.T) {
	db := newTestDB(t)
	repo := NewMovieRepository(db)
	ctx := context.Background()

	locID := seedLocation(t, db, "Shelf", true)
	_, err := repo.Create(ctx, map[string]interface{}{
		"location_id": locID,
		"title":       "Alien",
		"year":        1979,
	}, nil)
	require.NoError(t, err)

	records, err := repo.FindAll(ctx, buildPlan(t, MovieQuery, map[string]string{"attributes": "title"}))
	require.NoError(t, err)
	require.Len(t, records, 1)

	// The record holds the requested column, the forced id, and the two
	// nested join objects. Nothing else.
	rec := records[0]
	assert.Len(t, rec, 4)
	assert.Contains(t, rec, "id")
	assert.Contains(t, rec, "title")
	assert.Contains(t, rec, "location")
	assert.Contains(t, rec, "categories")
	assert.NotContains(t, rec, "year")
}

func TestMovieFindAllOrdering(t *testing.T) {
	db := newTestDB(t)
	repo := NewMovieRepository(db)
	ctx := context.Background()

	locID := seedLocation(t, db, "Shelf", true)
	for _, m := range []map[string]interface{}{
		{"location_id": locID, "title": "Zodiac", "year": 2007},
		{"location_id": locID, "title": "Juno", "year": 2007},
		{"location_id": locID, "title": "Heat", "year": 1995},
	} {
		_, err := repo.Create(ctx, m, nil)
		require.NoError(t, err)
	}

	records, err := repo.FindAll(ctx, buildPlan(t, MovieQuery, map[string]string{"sort": "-year"}))
	require.NoError(t, err)
	require.Len(t, records, 3)

	// Year descending, title ascending between equal years.
	assert.Equal(t, "Juno", records[0]["title"])
	assert.Equal(t, "Zodiac", records[1]["title"])
	assert.Equal(t, "Heat", records[2]["title"])
}

func TestMovieFindAllPagination(t *testing.T) {
	db := newTestDB(t)
	repo := NewMovieRepository(db)
	ctx := context.Background()

	locID := seedLocation(t, db, "Shelf", true)
	action := seedCategory(t, db, "Action")
	drama := seedCategory(t, db, "Drama")

	// The first two movies by title carry several categories each, so the
	// joined result holds more rows than movies.
	for _, m := range []struct {
		title string
		cats  []uint
	}{
		{"Alien", []uint{action, drama}},
		{"Brazil", []uint{drama, action}},
		{"Casino", nil},
	} {
		_, err := repo.Create(ctx, map[string]interface{}{
			"location_id": locID, "title": m.title,
		}, m.cats)
		require.NoError(t, err)
	}

	t.Run("limit counts movies, not joined rows", func(t *testing.T) {
		records, err := repo.FindAll(ctx, buildPlan(t, MovieQuery, map[string]string{"limit": "2"}))
		require.NoError(t, err)
		require.Len(t, records, 2)
		assert.Equal(t, "Alien", records[0]["title"])
		assert.Equal(t, "Brazil", records[1]["title"])

		// The last movie on the page keeps its full category list.
		assert.Len(t, categoryIDs(t, records[0]), 2)
		assert.Len(t, categoryIDs(t, records[1]), 2)
	})

	t.Run("offset skips movies, not joined rows", func(t *testing.T) {
		records, err := repo.FindAll(ctx, buildPlan(t, MovieQuery, map[string]string{"offset": "2", "limit": "2"}))
		require.NoError(t, err)
		require.Len(t, records, 1)
		assert.Equal(t, "Casino", records[0]["title"])
	})
}

func TestMovieFindAllSearch(t *testing.T) {
	db := newTestDB(t)
	repo := NewMovieRepository(db)
	ctx := context.Background()

	shelf := seedLocation(t, db, "Shelf", true)
	attic := seedLocation(t, db, "Attic", true)

	_, err := repo.Create(ctx, map[string]interface{}{
		"location_id": shelf, "title": "The Insider", "actors": "Al Pacino",
	}, nil)
	require.NoError(t, err)
	_, err = repo.Create(ctx, map[string]interface{}{
		"location_id": attic, "title": "Heat", "actors": "Al Pacino, Robert De Niro",
	}, nil)
	require.NoError(t, err)

	t.Run("title substring is case-insensitive", func(t *testing.T) {
		records, err := repo.FindAll(ctx, buildPlan(t, MovieQuery, map[string]string{"title": "insid"}))
		require.NoError(t, err)
		require.Len(t, records, 1)
		assert.Equal(t, "The Insider", records[0]["title"])
	})

	t.Run("location matches the id exactly", func(t *testing.T) {
		records, err := repo.FindAll(ctx, buildPlan(t, MovieQuery, map[string]string{"location": "2"}))
		require.NoError(t, err)
		require.Len(t, records, 1)
		assert.Equal(t, "Heat", records[0]["title"])
	})

	t.Run("actors matches the whole value only", func(t *testing.T) {
		records, err := repo.FindAll(ctx, buildPlan(t, MovieQuery, map[string]string{"actors": "al pacino"}))
		require.NoError(t, err)
		require.Len(t, records, 1)
		assert.Equal(t, "The Insider", records[0]["title"])
	})
}

func TestMovieUpdate(t *testing.T) {
	db := newTestDB(t)
	repo := NewMovieRepository(db)
	ctx := context.Background()

	locID := seedLocation(t, db, "Shelf", true)
	action := seedCategory(t, db, "Action")
	drama := seedCategory(t, db, "Drama")

	id, err := repo.Create(ctx, map[string]interface{}{
		"location_id": locID, "title": "Alien",
	}, []uint{action, drama})
	require.NoError(t, err)

	t.Run("field update reports modified", func(t *testing.T) {
		modified, err := repo.Update(ctx, id, map[string]interface{}{"year": 1979}, nil, false)
		require.NoError(t, err)
		assert.True(t, modified)
	})

	t.Run("missing id reports not modified", func(t *testing.T) {
		modified, err := repo.Update(ctx, 9999, map[string]interface{}{"year": 1980}, nil, false)
		require.NoError(t, err)
		assert.False(t, modified)
	})

	t.Run("empty update is a no-op", func(t *testing.T) {
		modified, err := repo.Update(ctx, id, nil, nil, false)
		require.NoError(t, err)
		assert.False(t, modified)
	})

	t.Run("category replacement rewrites the mapping set", func(t *testing.T) {
		_, err := repo.Update(ctx, id, nil, []uint{drama}, true)
		require.NoError(t, err)

		var mappings []models.MovieCategoryMapping
		require.NoError(t, db.Where("movie_id = ?", id).Find(&mappings).Error)
		require.Len(t, mappings, 1)
		assert.Equal(t, drama, mappings[0].CategoryID)
	})

	t.Run("duplicate ids collapse to one mapping", func(t *testing.T) {
		_, err := repo.Update(ctx, id, nil, []uint{action, action}, true)
		require.NoError(t, err)

		var count int64
		require.NoError(t, db.Model(&models.MovieCategoryMapping{}).
			Where("movie_id = ?", id).Count(&count).Error)
		assert.EqualValues(t, 1, count)
	})
}

func TestMovieDelete(t *testing.T) {
	db := newTestDB(t)
	repo := NewMovieRepository(db)
	ctx := context.Background()

	locID := seedLocation(t, db, "Shelf", true)
	action := seedCategory(t, db, "Action")

	id, err := repo.Create(ctx, map[string]interface{}{
		"location_id": locID, "title": "Alien",
	}, []uint{action})
	require.NoError(t, err)

	require.NoError(t, repo.Delete(ctx, id))

	_, err = repo.FindByID(ctx, id)
	var notFound *utils.NotFoundError
	assert.ErrorAs(t, err, &notFound)

	var count int64
	require.NoError(t, db.Model(&models.MovieCategoryMapping{}).
		Where("movie_id = ?", id).Count(&count).Error)
	assert.Zero(t, count)
}

func TestMovieCount(t *testing.T) {
	db := newTestDB(t)
	repo := NewMovieRepository(db)
	ctx := context.Background()

	locID := seedLocation(t, db, "Shelf", true)
	for _, title := range []string{"Heat", "Heathers", "Alien"} {
		_, err := repo.Create(ctx, map[string]interface{}{
			"location_id": locID, "title": title,
		}, nil)
		require.NoError(t, err)
	}

	total, err := repo.Count(ctx, "")
	require.NoError(t, err)
	assert.EqualValues(t, 3, total)

	matching, err := repo.Count(ctx, "HEAT")
	require.NoError(t, err)
	assert.EqualValues(t, 2, matching)
}
