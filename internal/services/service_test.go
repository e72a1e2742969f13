package services

import (
	"fmt"
	"io"
	"testing"
	"time"

	"catalog-backend/internal/database"
	"catalog-backend/internal/models"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"
	gormsqlite "gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
	_ "modernc.org/sqlite"
)

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

func newTestLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

func seedLocation(t *testing.T, db *database.Database, name string) uint {
	t.Helper()
	loc := models.Location{Location: name, IsPhysical: true}
	require.NoError(t, db.Create(&loc).Error)
	return loc.ID
}

func seedCategory(t *testing.T, db *database.Database, label string) uint {
	t.Helper()
	cat := models.Category{Label: label}
	require.NoError(t, db.Create(&cat).Error)
	return cat.ID
}
