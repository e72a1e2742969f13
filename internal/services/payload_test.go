package services

import (
	"testing"

	"catalog-backend/internal/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractCategoryIDs(t *testing.T) {
	t.Run("absent key leaves mappings untouched", func(t *testing.T) {
		ids, present, err := extractCategoryIDs(map[string]interface{}{"title": "Heat"})
		require.NoError(t, err)
		assert.False(t, present)
		assert.Nil(t, ids)
	})

	t.Run("null value counts as absent", func(t *testing.T) {
		payload := map[string]interface{}{"categories": nil}
		_, present, err := extractCategoryIDs(payload)
		require.NoError(t, err)
		assert.False(t, present)
		assert.NotContains(t, payload, "categories")
	})

	t.Run("json numbers decode to uints", func(t *testing.T) {
		payload := map[string]interface{}{
			"categories": []interface{}{float64(2), float64(1)},
			"title":      "Heat",
		}
		ids, present, err := extractCategoryIDs(payload)
		require.NoError(t, err)
		assert.True(t, present)
		assert.Equal(t, []uint{2, 1}, ids)
		// The key is consumed so it never hits the field whitelist.
		assert.NotContains(t, payload, "categories")
	})

	t.Run("empty list means remove all", func(t *testing.T) {
		ids, present, err := extractCategoryIDs(map[string]interface{}{"categories": []interface{}{}})
		require.NoError(t, err)
		assert.True(t, present)
		assert.Empty(t, ids)
	})

	t.Run("duplicates dropped keeping order", func(t *testing.T) {
		ids, _, err := extractCategoryIDs(map[string]interface{}{
			"categories": []interface{}{float64(3), float64(1), float64(3)},
		})
		require.NoError(t, err)
		assert.Equal(t, []uint{3, 1}, ids)
	})

	badPayloads := []interface{}{
		"not-a-list",
		[]interface{}{"two"},
		[]interface{}{float64(-1)},
		[]interface{}{float64(1.5)},
	}
	for _, bad := range badPayloads {
		_, _, err := extractCategoryIDs(map[string]interface{}{"categories": bad})
		var validation *utils.ValidationError
		require.ErrorAs(t, err, &validation)
		assert.Equal(t, "Invalid format for data", validation.Message)
	}
}

func TestPrepareFields(t *testing.T) {
	authorized := []string{"title", "year"}
	rules := map[string]string{"year": "gte=1900,lte=2100"}

	t.Run("strips nulls then validates", func(t *testing.T) {
		flds, err := prepareFields(authorized, rules, map[string]interface{}{
			"title": "Heat",
			"year":  nil,
		})
		require.NoError(t, err)
		assert.NotContains(t, flds, "year")
	})

	t.Run("unauthorized field", func(t *testing.T) {
		_, err := prepareFields(authorized, rules, map[string]interface{}{"rating": 5})
		var validation *utils.ValidationError
		require.ErrorAs(t, err, &validation)
		assert.Equal(t, "Unauthorized field 'rating' in query", validation.Message)
	})

	t.Run("range violation", func(t *testing.T) {
		_, err := prepareFields(authorized, rules, map[string]interface{}{"year": float64(1850)})
		assert.Error(t, err)
	})
}

func TestRequireFields(t *testing.T) {
	err := requireFields(map[string]interface{}{"title": "Heat"}, "location_id", "title")
	var validation *utils.ValidationError
	require.ErrorAs(t, err, &validation)
	assert.Equal(t, "Missing required field 'location_id'", validation.Message)

	assert.NoError(t, requireFields(map[string]interface{}{"title": "Heat", "location_id": 1}, "location_id", "title"))
}
