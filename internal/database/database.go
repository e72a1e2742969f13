package database

import (
	"context"
	"fmt"
	"time"

	"catalog-backend/internal/config"
	"catalog-backend/internal/models"

	"github.com/sirupsen/logrus"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

type Database struct {
	*gorm.DB
	queryTimeout time.Duration
}

// New wraps an already opened gorm connection. Used by tests to run the
// repositories against an in-memory datastore.
func New(db *gorm.DB, queryTimeout time.Duration) *Database {
	return &Database{DB: db, queryTimeout: queryTimeout}
}

func Connect(cfg config.DatabaseConfig, log *logrus.Logger) (*Database, error) {
	dsn := fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=%s TimeZone=UTC connect_timeout=10",
		cfg.Host, cfg.User, cfg.Password, cfg.DBName, cfg.Port, cfg.SSLMode)

	gormConfig := &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
		NowFunc: func() time.Time {
			return time.Now().UTC()
		},
		PrepareStmt: true,
	}

	db, err := gorm.Open(postgres.Open(dsn), gormConfig)
	if err != nil {
		log.WithError(err).Error("Failed to connect to database")
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		log.WithError(err).Error("Failed to get underlying sql.DB")
		return nil, fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := sqlDB.PingContext(ctx); err != nil {
		log.WithError(err).Error("Failed to ping database")
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	sqlDB.SetMaxOpenConns(cfg.MaxOpenConns)
	sqlDB.SetMaxIdleConns(cfg.MaxIdleConns)
	sqlDB.SetConnMaxLifetime(cfg.ConnMaxLifetime)
	sqlDB.SetConnMaxIdleTime(2 * time.Minute)

	log.Info("Database connection established successfully")

	database := &Database{
		DB:           db,
		queryTimeout: cfg.QueryTimeout,
	}

	if err := AutoMigrate(db); err != nil {
		log.WithError(err).Error("Failed to run auto migration")
		return nil, fmt.Errorf("failed to run auto migration: %w", err)
	}

	return database, nil
}

// AutoMigrate creates or updates the schema for every model. Foreign key
// constraints are created too: deleting a location must cascade to its
// movies and series.
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.Location{},
		&models.Category{},
		&models.Movie{},
		&models.Serie{},
		&models.Command{},
		&models.User{},
		&models.MovieCategoryMapping{},
		&models.SerieCategoryMapping{},
	)
}

func (d *Database) WithContext(ctx context.Context) *gorm.DB {
	return d.DB.WithContext(ctx)
}

func (d *Database) GetQueryTimeout() time.Duration {
	return d.queryTimeout
}

func (d *Database) HealthCheck() error {
	sqlDB, err := d.DB.DB()
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	return sqlDB.PingContext(ctx)
}

func (d *Database) Close() error {
	sqlDB, err := d.DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
