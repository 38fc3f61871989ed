package storage

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aanand-mishra/academic-api/internal/config"
	"github.com/aanand-mishra/academic-api/internal/storage/orm"
)

func TestOpenSQLiteCreatesTables(t *testing.T) {
	cfg := &config.Config{Storage: config.Storage{
		Driver: config.DriverSQLite,
		Path:   filepath.Join(t.TempDir(), "nested", "storage.db"),
	}}

	db, err := Open(cfg, nil)
	require.NoError(t, err)
	t.Cleanup(func() { _ = orm.Close(db) })

	for _, table := range []string{"students", "subjects", "class_groups"} {
		assert.True(t, db.Migrator().HasTable(table), table)
		assert.True(t, db.Migrator().HasColumn(table, "nome"), table)
	}
}

func TestOpenUnknownDriver(t *testing.T) {
	_, err := Open(&config.Config{Storage: config.Storage{Driver: "oracle"}}, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "oracle")
}
