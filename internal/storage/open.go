package storage

import (
	"fmt"
	"log/slog"

	"gorm.io/gorm"

	"github.com/aanand-mishra/academic-api/internal/config"
	"github.com/aanand-mishra/academic-api/internal/storage/postgres"
	"github.com/aanand-mishra/academic-api/internal/storage/sqlite"
)

// Open connects to the backend named by cfg.Storage.Driver.
func Open(cfg *config.Config, log *slog.Logger) (*gorm.DB, error) {
	switch cfg.Storage.Driver {
	case config.DriverSQLite:
		return sqlite.New(cfg, log)
	case config.DriverPostgres:
		return postgres.New(cfg, log)
	default:
		return nil, fmt.Errorf("storage.Open: unknown driver %q", cfg.Storage.Driver)
	}
}
