package repository

import (
	"fmt"
	"testing"
	"time"

	"catalog-backend/internal/database"
	"catalog-backend/internal/models"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	gormsqlite "gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
	_ "modernc.org/sqlite"
)

// newTestDB opens a private in-memory datastore with the full schema
// migrated. Foreign keys are switched on so cascade deletes behave like the
// production database.
func newTestDB(t *testing.T) *database.Database {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared&_pragma=foreign_keys(1)", uuid.NewString())
	db, err := gorm.Open(gormsqlite.Dialector{DriverName: "sqlite", DSN: dsn}, &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, database.AutoMigrate(db))

	return database.New(db, 5*time.Second)
}

func seedLocation(t *testing.T, db *database.Database, name string, physical bool) uint {
	t.Helper()
	loc := models.Location{Location: name, IsPhysical: physical}
	require.NoError(t, db.Create(&loc).Error)
	return loc.ID
}

func seedCategory(t *testing.T, db *database.Database, label string) uint {
	t.Helper()
	cat := models.Category{Label: label}
	require.NoError(t, db.Create(&cat).Error)
	return cat.ID
}

// recordID reads the collapsed record's id regardless of the integer width
// the datastore driver picked.
func recordID(t *testing.T, rec Record) int64 {
	t.Helper()
	id, ok := asInt64(rec["id"])
	require.True(t, ok, "record has no numeric id: %v", rec["id"])
	return id
}

func categoryIDs(t *testing.T, rec Record) []int64 {
	t.Helper()
	cats, ok := rec["categories"].([]Record)
	require.True(t, ok, "record has no categories list: %v", rec["categories"])
	out := make([]int64, 0, len(cats))
	for _, cat := range cats {
		id, ok := asInt64(cat["id"])
		require.True(t, ok)
		out = append(out, id)
	}
	return out
}
