package config_test

import (
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KirkDiggler/rpg-charsheet/internal/config"
	"github.com/KirkDiggler/rpg-charsheet/internal/errors"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, 50051, cfg.Port)
	assert.Equal(t, config.StorageMemory, cfg.Storage)
	assert.Equal(t, "localhost:6379", cfg.RedisAddr)
	assert.Equal(t, 10*time.Second, cfg.RemoteTimeout)
	assert.Equal(t, 30*time.Second, cfg.ShutdownTimeout)
	assert.NoError(t, cfg.Validate())
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("RPG_CHARSHEET_PORT", "6000")
	t.Setenv("RPG_CHARSHEET_STORAGE", "remote")
	t.Setenv("RPG_CHARSHEET_REMOTE_URL", "https://example.com/api/{player_id}/character")
	t.Setenv("RPG_CHARSHEET_REMOTE_TIMEOUT", "3s")
	t.Setenv("RPG_CHARSHEET_LOG_LEVEL", "debug")

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, 6000, cfg.Port)
	assert.Equal(t, config.StorageRemote, cfg.Storage)
	assert.Equal(t, 3*time.Second, cfg.RemoteTimeout)
	assert.Equal(t, slog.LevelDebug, cfg.SlogLevel())
	assert.NoError(t, cfg.Validate())
}

func TestLoadRejectsMalformedValues(t *testing.T) {
	t.Setenv("RPG_CHARSHEET_PORT", "not-a-port")

	_, err := config.Load()
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	valid := func() *config.Config {
		return &config.Config{
			Port:          50051,
			Storage:       config.StorageMemory,
			LogLevel:      "info",
			RedisAddr:     "localhost:6379",
			RemoteTimeout: time.Second,
		}
	}

	testCases := []struct {
		name   string
		mutate func(*config.Config)
		field  string
	}{
		{"port out of range", func(c *config.Config) { c.Port = 70000 }, "port"},
		{"unknown storage", func(c *config.Config) { c.Storage = "postgres" }, "storage"},
		{"unknown log level", func(c *config.Config) { c.LogLevel = "loud" }, "log_level"},
		{"redis without address", func(c *config.Config) {
			c.Storage = config.StorageRedis
			c.RedisAddr = ""
		}, "redis_addr"},
		{"remote without url", func(c *config.Config) { c.Storage = config.StorageRemote }, "remote_url"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := valid()
			tc.mutate(cfg)

			err := cfg.Validate()
			require.Error(t, err)
			assert.True(t, errors.IsInvalidArgument(err))
			assert.Contains(t, err.Error(), tc.field)
		})
	}

	assert.NoError(t, valid().Validate())
}
