// Package postgres opens the PostgreSQL backend through GORM (pgx driver).
package postgres

import (
	"fmt"
	"log/slog"

	gormpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/aanand-mishra/academic-api/internal/config"
	"github.com/aanand-mishra/academic-api/internal/storage/orm"
)

// New connects with cfg.Storage.DSN and migrates the entity tables.
func New(cfg *config.Config, log *slog.Logger) (*gorm.DB, error) {
	dialector := gormpostgres.New(gormpostgres.Config{DSN: cfg.Storage.DSN})

	db, err := orm.Open(dialector, orm.Options{
		Logger:          log,
		LogQueries:      cfg.Storage.LogQueries,
		ConnMaxIdleTime: cfg.Storage.ConnMaxIdleTime,
		ConnMaxLifetime: cfg.Storage.ConnMaxLifetime,
	})
	if err != nil {
		return nil, fmt.Errorf("postgres.New: %w", err)
	}

	return db, nil
}
