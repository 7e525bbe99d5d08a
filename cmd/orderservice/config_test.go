package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_SQLiteDefault(t *testing.T) {
	dataDir := t.TempDir()
	t.Setenv("SERVICE_PORT_HTTP", "8082")
	t.Setenv("ISCS_ADDR", "127.0.0.1:8081")
	t.Setenv("LEDGER_BACKEND", "")
	t.Setenv("DATA_DIR", dataDir)
	t.Setenv("REDIS_ADDR", "")

	cfg, err := LoadConfig()
	require.NoError(t, err)
	require.NotNil(t, cfg)
	assert.Equal(t, 8082, cfg.HTTPPort)
	assert.Equal(t, "127.0.0.1:8081", cfg.ISCSAddr)
	assert.Equal(t, LedgerSQLite, cfg.LedgerBackend)
	assert.Equal(t, dataDir, cfg.DataDir)
	assert.Empty(t, cfg.RedisAddr)
}

func TestLoadConfig_RelativeDataDirMadeAbsolute(t *testing.T) {
	dir := t.TempDir()
	chdir(t, dir)
	t.Setenv("SERVICE_PORT_HTTP", "8082")
	t.Setenv("ISCS_ADDR", "127.0.0.1:8081")
	t.Setenv("LEDGER_BACKEND", "sqlite")
	t.Setenv("DATA_DIR", "data")

	cfg, err := LoadConfig()
	require.NoError(t, err)
	require.NotNil(t, cfg)
	assert.True(t, filepath.IsAbs(cfg.DataDir))
}

func TestLoadConfig_RedisBackend(t *testing.T) {
	t.Setenv("SERVICE_PORT_HTTP", "8082")
	t.Setenv("ISCS_ADDR", "127.0.0.1:8081")
	t.Setenv("LEDGER_BACKEND", "redis")
	t.Setenv("REDIS_ADDR", "localhost:6379")
	t.Setenv("DATA_DIR", "")

	cfg, err := LoadConfig()
	require.NoError(t, err)
	require.NotNil(t, cfg)
	assert.Equal(t, LedgerRedis, cfg.LedgerBackend)
	assert.Equal(t, "localhost:6379", cfg.RedisAddr)
	assert.Empty(t, cfg.DataDir)
}

func TestLoadConfig_ServicePortRequired(t *testing.T) {
	t.Setenv("SERVICE_PORT_HTTP", "")
	t.Setenv("ISCS_ADDR", "127.0.0.1:8081")
	t.Setenv("DATA_DIR", t.TempDir())

	cfg, err := LoadConfig()
	require.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "SERVICE_PORT_HTTP")
}

func TestLoadConfig_ISCSAddrRequired(t *testing.T) {
	t.Setenv("SERVICE_PORT_HTTP", "8082")
	t.Setenv("ISCS_ADDR", "")
	t.Setenv("DATA_DIR", t.TempDir())

	cfg, err := LoadConfig()
	require.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "ISCS_ADDR is required")
}

func TestLoadConfig_DataDirRequiredForSQLite(t *testing.T) {
	t.Setenv("SERVICE_PORT_HTTP", "8082")
	t.Setenv("ISCS_ADDR", "127.0.0.1:8081")
	t.Setenv("LEDGER_BACKEND", "sqlite")
	t.Setenv("DATA_DIR", "")

	cfg, err := LoadConfig()
	require.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "DATA_DIR is required")
}

func TestLoadConfig_RedisAddrRequiredForRedis(t *testing.T) {
	t.Setenv("SERVICE_PORT_HTTP", "8082")
	t.Setenv("ISCS_ADDR", "127.0.0.1:8081")
	t.Setenv("LEDGER_BACKEND", "redis")
	t.Setenv("REDIS_ADDR", "")

	cfg, err := LoadConfig()
	require.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "REDIS_ADDR is required")
}

func TestLoadConfig_UnknownLedgerBackend(t *testing.T) {
	t.Setenv("SERVICE_PORT_HTTP", "8082")
	t.Setenv("ISCS_ADDR", "127.0.0.1:8081")
	t.Setenv("LEDGER_BACKEND", "postgres")

	cfg, err := LoadConfig()
	require.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), `LEDGER_BACKEND must be sqlite|redis, got "postgres"`)
}

// chdir changes the working directory for the test, restoring it on cleanup.
// Equivalent to t.Chdir, which requires Go 1.24+.
func chdir(t *testing.T, dir string) {
	t.Helper()
	wd, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { _ = os.Chdir(wd) })
}
