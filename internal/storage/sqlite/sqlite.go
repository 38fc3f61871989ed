// Package sqlite opens the SQLite backend through GORM.
//
// SQLite stores everything in a single file on disk. There is no network,
// no separate server process, and no installation beyond the cgo driver.
package sqlite

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	gormsqlite "gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/aanand-mishra/academic-api/internal/config"
	"github.com/aanand-mishra/academic-api/internal/storage/orm"

	// Registers the "sqlite3" database/sql driver used by the dialector.
	_ "github.com/mattn/go-sqlite3"
)

const driverName = "sqlite3"

// New opens (creating if needed) the database file at cfg.Storage.Path
// and migrates the entity tables.
func New(cfg *config.Config, log *slog.Logger) (*gorm.DB, error) {
	path := cfg.Storage.Path

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("sqlite.New: create dir: %w", err)
		}
	}

	db, err := orm.Open(&gormsqlite.Dialector{DriverName: driverName, DSN: path}, orm.Options{
		Logger:          log,
		LogQueries:      cfg.Storage.LogQueries,
		ConnMaxIdleTime: cfg.Storage.ConnMaxIdleTime,
		ConnMaxLifetime: cfg.Storage.ConnMaxLifetime,
	})
	if err != nil {
		return nil, fmt.Errorf("sqlite.New: %w", err)
	}

	return db, nil
}
