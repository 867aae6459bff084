package database

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGorm_Sqlite(t *testing.T) {
	var buf bytes.Buffer
	db, err := NewGorm(Opts{
		Driver:       "sqlite",
		DSN:          "file::memory:",
		MaxOpenConns: 10,
		MaxIdleConns: 1,
		LogLevel:     "silent",
		LogWriter:    &buf,
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	assert.Equal(t, 1, sqlDB.Stats().MaxOpenConnections)
	require.NoError(t, sqlDB.Ping())
}

func TestNewGorm_UnsupportedDriver(t *testing.T) {
	_, err := NewGorm(Opts{Driver: "oracle"})
	assert.ErrorIs(t, err, ErrUnsupportedDriver)
}

func TestMySQLConfig_URLForm(t *testing.T) {
	cfg, err := mysqlConfig(
		"jdbc:mysql://db.local:3306/inventory?useSSL=false&serverTimezone=UTC&characterEncoding=utf8",
		"app", "secret",
	)
	require.NoError(t, err)
	assert.Equal(t, "app", cfg.User)
	assert.Equal(t, "secret", cfg.Passwd)
	assert.Equal(t, "db.local:3306", cfg.Addr)
	assert.Equal(t, "inventory", cfg.DBName)
	assert.Equal(t, "false", cfg.TLSConfig)
	assert.Equal(t, "utf8", cfg.Params["charset"])
	assert.True(t, cfg.ParseTime)

	dsn := cfg.FormatDSN()
	assert.Contains(t, dsn, "app:secret@tcp(db.local:3306)/inventory?")
	assert.Contains(t, dsn, "parseTime=true")
	assert.NotContains(t, dsn, "useSSL")
}

func TestMySQLConfig_NativeForm(t *testing.T) {
	cfg, err := mysqlConfig("root:pw@tcp(127.0.0.1:3306)/inventory", "", "")
	require.NoError(t, err)
	assert.Equal(t, "root", cfg.User)
	assert.Equal(t, "pw", cfg.Passwd)
	assert.Equal(t, "utf8mb4", cfg.Params["charset"])

	_, err = mysqlConfig("not a dsn", "", "")
	assert.Error(t, err)
}
