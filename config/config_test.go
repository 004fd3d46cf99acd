package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testConfigYAML = `
log:
  level: debug
storage:
  backend: redis
redis:
  endpoint: localhost:6380
telegram:
  allowed_telegram_ids: [1, 2]
  is_not_public: true
session:
  idle_timeout: 5m
`

func TestLoadConfigFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(testConfigYAML), 0o600))
	t.Setenv("REDIS_ENDPOINT", "redis:6379")

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, StorageBackendRedis, cfg.Storage.Backend)
	assert.Equal(t, "chatbots", cfg.Storage.CollectionKey)
	assert.Equal(t, "redis:6379", cfg.Redis.Endpoint)
	assert.Equal(t, []int64{1, 2}, cfg.Telegram.AllowedTelegramIDs)
	assert.True(t, cfg.Telegram.IsNotPublic)
	assert.Equal(t, 4, cfg.Telegram.Workers)
	assert.Equal(t, 5*time.Minute, cfg.Session.IdleTimeout)
	assert.Equal(t, time.Minute, cfg.Session.SweepInterval)
}

func TestLoadConfigFromEnv(t *testing.T) {
	t.Setenv("STORAGE_BACKEND", StorageBackendMemory)
	t.Setenv("ALLOWED_TELEGRAM_ID", "10,20")

	cfg, err := LoadConfig("")
	require.NoError(t, err)

	assert.Equal(t, StorageBackendMemory, cfg.Storage.Backend)
	assert.Equal(t, []int64{10, 20}, cfg.Telegram.AllowedTelegramIDs)
	assert.Equal(t, 30*time.Minute, cfg.Session.IdleTimeout)
	assert.Equal(t, "bot-designer.db", cfg.Storage.SQLitePath)
}

func TestLoadConfigMissingFile(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}
