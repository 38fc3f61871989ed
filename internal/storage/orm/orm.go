// Package orm opens GORM connections and provides the generic GORM-backed
// repository used for every entity kind.
package orm

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/aanand-mishra/academic-api/internal/entity"
)

// Options tunes the connection pool and the query logger.
type Options struct {
	Logger          *slog.Logger
	LogQueries      bool
	ConnMaxIdleTime time.Duration
	ConnMaxLifetime time.Duration
}

// Open connects through dialector, applies the pool settings and migrates
// the entity tables. AutoMigrate only creates what is missing; it never
// drops columns.
func Open(dialector gorm.Dialector, opts Options) (*gorm.DB, error) {
	db, err := gorm.Open(dialector, &gorm.Config{
		Logger:      newLogger(opts),
		QueryFields: true,
	})
	if err != nil {
		return nil, fmt.Errorf("orm.Open: connect: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("orm.Open: pool: %w", err)
	}
	if opts.ConnMaxIdleTime > 0 {
		sqlDB.SetConnMaxIdleTime(opts.ConnMaxIdleTime)
	}
	if opts.ConnMaxLifetime > 0 {
		sqlDB.SetConnMaxLifetime(opts.ConnMaxLifetime)
	}

	if err := db.AutoMigrate(entity.All()...); err != nil {
		return nil, fmt.Errorf("orm.Open: migrate: %w", err)
	}

	return db, nil
}

// Ping checks that the database answers within ctx.
func Ping(ctx context.Context, db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}

// Close releases the underlying connection pool.
func Close(db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

// newLogger routes GORM's output through slog so query logs share the
// application's format.
func newLogger(opts Options) logger.Interface {
	l := opts.Logger
	if l == nil {
		l = slog.Default()
	}

	level := logger.Warn
	if opts.LogQueries {
		level = logger.Info
	}

	return logger.New(slog.NewLogLogger(l.Handler(), slog.LevelInfo), logger.Config{
		SlowThreshold:             200 * time.Millisecond,
		LogLevel:                  level,
		IgnoreRecordNotFoundError: true,
		Colorful:                  false,
	})
}
