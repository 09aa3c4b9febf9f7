package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "localhost", cfg.Database.Host)
	assert.Equal(t, 5432, cfg.Database.Port)
	assert.Equal(t, "postgres", cfg.Database.User)
	assert.Equal(t, "wallet_ledger", cfg.Database.DBName)
	assert.Equal(t, "disable", cfg.Database.SSLMode)
	assert.Equal(t, int32(20), cfg.Database.MaxConns)
	assert.Equal(t, int32(5), cfg.Database.MinConns)
	assert.Equal(t, "./migrations", cfg.Database.MigrationsPath)

	assert.Equal(t, "localhost", cfg.Redis.Host)
	assert.Equal(t, 6379, cfg.Redis.Port)
	assert.Equal(t, 0, cfg.Redis.DB)

	assert.Equal(t, 5*time.Second, cfg.Ledger.LockWaitTimeout)
	assert.Equal(t, "USD", cfg.Ledger.DefaultCurrency)
	assert.Equal(t, 24*time.Hour, cfg.Ledger.ReferenceCacheTTL)

	assert.Equal(t, "info", cfg.Log.Level)
	assert.False(t, cfg.Log.Pretty)
}

func TestLoad_FromYAMLFile(t *testing.T) {
	content := []byte(`
database:
  host: "db.example.com"
  port: 5433
  user: "appuser"
  password: "secret123"
  dbname: "ledgerdb"
  sslmode: "require"
redis:
  host: "redis.example.com"
  port: 6380
  password: "redispwd"
  db: 2
ledger:
  lock_wait_timeout: "2s"
  default_currency: "EUR"
  reference_cache_ttl: "1h"
log:
  level: "debug"
  pretty: true
`)
	tmpDir := t.TempDir()
	cfgPath := filepath.Join(tmpDir, "config.yaml")
	require.NoError(t, os.WriteFile(cfgPath, content, 0644))

	cfg, err := Load(cfgPath)
	require.NoError(t, err)

	assert.Equal(t, "db.example.com", cfg.Database.Host)
	assert.Equal(t, 5433, cfg.Database.Port)
	assert.Equal(t, "appuser", cfg.Database.User)
	assert.Equal(t, "secret123", cfg.Database.Password)
	assert.Equal(t, "ledgerdb", cfg.Database.DBName)
	assert.Equal(t, "require", cfg.Database.SSLMode)

	assert.Equal(t, "redis.example.com", cfg.Redis.Host)
	assert.Equal(t, 6380, cfg.Redis.Port)
	assert.Equal(t, "redispwd", cfg.Redis.Password)
	assert.Equal(t, 2, cfg.Redis.DB)

	assert.Equal(t, 2*time.Second, cfg.Ledger.LockWaitTimeout)
	assert.Equal(t, "EUR", cfg.Ledger.DefaultCurrency)
	assert.Equal(t, time.Hour, cfg.Ledger.ReferenceCacheTTL)

	assert.Equal(t, "debug", cfg.Log.Level)
	assert.True(t, cfg.Log.Pretty)
}

func TestLoad_EnvOverride(t *testing.T) {
	t.Setenv("WLS_DATABASE_HOST", "env-db-host")
	t.Setenv("WLS_LEDGER_DEFAULT_CURRENCY", "GBP")
	t.Setenv("WLS_LOG_LEVEL", "warn")

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "env-db-host", cfg.Database.Host)
	assert.Equal(t, "GBP", cfg.Ledger.DefaultCurrency)
	assert.Equal(t, "warn", cfg.Log.Level)
}

func TestDatabaseConfig_DSN(t *testing.T) {
	d := DatabaseConfig{
		Host:     "localhost",
		Port:     5432,
		User:     "u",
		Password: "p",
		DBName:   "wallets",
		SSLMode:  "disable",
	}
	assert.Equal(t, "postgres://u:p@localhost:5432/wallets?sslmode=disable", d.DSN())
}

func TestRedisConfig_Addr(t *testing.T) {
	r := RedisConfig{Host: "127.0.0.1", Port: 6379}
	assert.Equal(t, "127.0.0.1:6379", r.Addr())
}
