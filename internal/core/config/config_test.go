package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_FileAndDefaults(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
app:
  admin:
    port: 9090
store:
  driver: gorm
db:
  driver: sqlite
  dsn: "file::memory:"
inventory:
  simulateLatency: true
`), 0o600))

	c := Load(path)
	assert.Equal(t, 9090, c.App.Admin.Port)
	assert.Equal(t, "0.0.0.0", c.App.Admin.Host)
	assert.Equal(t, "gorm", c.Store.Driver)
	assert.True(t, c.Store.Seed)
	assert.Equal(t, "sqlite", c.DB.Driver)
	assert.True(t, c.Inventory.SimulateLatency)
	assert.Equal(t, "memory", c.Session.Driver)
	assert.Equal(t, 480, c.Session.TTLMin)
	assert.Equal(t, "password", c.Auth.MockPassword)
}

func TestLoad_EnvOverride(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("session:\n  driver: memory\n"), 0o600))
	t.Setenv("APP_SESSION_DRIVER", "redis")

	c := Load(path)
	assert.Equal(t, "redis", c.Session.Driver)
}
