package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestLoadSQLiteDefaults(t *testing.T) {
	path := writeConfig(t, `
env: dev
storage:
  driver: sqlite
  path: storage/storage.db
http_server:
  address: localhost:8082
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "dev", cfg.Env)
	assert.Equal(t, DriverSQLite, cfg.Storage.Driver)
	assert.Equal(t, "storage/storage.db", cfg.Storage.Path)
	assert.Equal(t, "localhost:8082", cfg.HTTPServer.Addr)
	assert.Equal(t, 10*time.Second, cfg.HTTPServer.ReadTimeout)
	assert.Equal(t, 5*time.Second, cfg.HTTPServer.ShutdownTimeout)
	assert.Equal(t, 30*time.Minute, cfg.Storage.ConnMaxLifetime)
}

func TestLoadEnvOverride(t *testing.T) {
	path := writeConfig(t, `
env: dev
storage:
  path: storage/storage.db
http_server:
  address: localhost:8082
`)
	t.Setenv("HTTP_SERVER_ADDR", "0.0.0.0:9000")

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "0.0.0.0:9000", cfg.HTTPServer.Addr)
}

func TestLoadPostgresRequiresDSN(t *testing.T) {
	path := writeConfig(t, `
env: prod
storage:
  driver: postgres
http_server:
  address: localhost:8082
`)

	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "DSN")
}

func TestLoadRejectsUnknownEnv(t *testing.T) {
	path := writeConfig(t, `
env: qa
storage:
  path: storage/storage.db
http_server:
  address: localhost:8082
`)

	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Env")
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "does not exist")
}
