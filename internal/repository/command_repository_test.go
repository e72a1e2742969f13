package repository

import (
	"context"
	"testing"

	"catalog-backend/internal/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCommandCRUD(t *testing.T) {
	db := newTestDB(t)
	repo := NewCommandRepository(db)
	ctx := context.Background()

	id, err := repo.Create(ctx, map[string]interface{}{
		"title":   "Blade Runner 4K",
		"remarks": "Waiting for a price drop",
	})
	require.NoError(t, err)

	command, err := repo.FindByID(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, "Blade Runner 4K", command.Title)

	modified, err := repo.Update(ctx, id, map[string]interface{}{"remarks": "Ordered"})
	require.NoError(t, err)
	assert.True(t, modified)

	modified, err = repo.Update(ctx, id, nil)
	require.NoError(t, err)
	assert.False(t, modified)

	require.NoError(t, repo.Delete(ctx, id))

	_, err = repo.FindByID(ctx, id)
	var notFound *utils.NotFoundError
	require.ErrorAs(t, err, &notFound)
	assert.Equal(t, "Command", notFound.Entity)
}

func TestCommandFindAll(t *testing.T) {
	db := newTestDB(t)
	repo := NewCommandRepository(db)
	ctx := context.Background()

	for _, title := range []string{"Second", "First", "Third"} {
		_, err := repo.Create(ctx, map[string]interface{}{"title": title})
		require.NoError(t, err)
	}

	t.Run("default order is insertion order", func(t *testing.T) {
		commands, err := repo.FindAll(ctx, buildPlan(t, CommandQuery, nil))
		require.NoError(t, err)
		require.Len(t, commands, 3)
		assert.Equal(t, "Second", commands[0].Title)
		assert.Equal(t, "Third", commands[2].Title)
	})

	t.Run("sort by title descending", func(t *testing.T) {
		commands, err := repo.FindAll(ctx, buildPlan(t, CommandQuery, map[string]string{"sort": "-title"}))
		require.NoError(t, err)
		require.Len(t, commands, 3)
		assert.Equal(t, "Third", commands[0].Title)
		assert.Equal(t, "First", commands[2].Title)
	})

	t.Run("pagination", func(t *testing.T) {
		commands, err := repo.FindAll(ctx, buildPlan(t, CommandQuery, map[string]string{"offset": "1", "limit": "1"}))
		require.NoError(t, err)
		require.Len(t, commands, 1)
		assert.Equal(t, "First", commands[0].Title)
	})
}
