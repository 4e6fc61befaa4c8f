// Package config loads server configuration from RPG_CHARSHEET_* environment
// variables. Command-line flags override what is loaded here.
package config

import (
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"

	"github.com/KirkDiggler/rpg-charsheet/internal/errors"
)

// Storage backends for rosters
const (
	StorageMemory = "memory"
	StorageRedis  = "redis"
	StorageRemote = "remote"
)

// Storages lists the accepted storage backends
var Storages = []string{StorageMemory, StorageRedis, StorageRemote}

// Config holds server configuration
type Config struct {
	Port            int           `env:"RPG_CHARSHEET_PORT"             envDefault:"50051"`
	Storage         string        `env:"RPG_CHARSHEET_STORAGE"          envDefault:"memory"`
	LogLevel        string        `env:"RPG_CHARSHEET_LOG_LEVEL"        envDefault:"info"`
	ShutdownTimeout time.Duration `env:"RPG_CHARSHEET_SHUTDOWN_TIMEOUT" envDefault:"30s"`

	RedisAddr     string `env:"RPG_CHARSHEET_REDIS_ADDR"     envDefault:"localhost:6379"`
	RedisPassword string `env:"RPG_CHARSHEET_REDIS_PASSWORD"`
	RedisDB       int    `env:"RPG_CHARSHEET_REDIS_DB"       envDefault:"0"`
	RedisTLS      bool   `env:"RPG_CHARSHEET_REDIS_TLS"`

	// RemoteURL may contain {player_id}
	RemoteURL     string        `env:"RPG_CHARSHEET_REMOTE_URL"`
	RemoteTimeout time.Duration `env:"RPG_CHARSHEET_REMOTE_TIMEOUT" envDefault:"10s"`
}

// Load parses the environment into a Config. The result is not validated;
// call Validate after applying flag overrides.
func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}

// Validate checks the settings needed by the selected storage backend
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.Port <= 0 || c.Port > 65535 {
		vb.Fieldf("port", "must be between 1 and 65535, got %d", c.Port)
	}
	errors.ValidateEnum("storage", c.Storage, Storages, vb)
	if _, err := parseLevel(c.LogLevel); err != nil {
		vb.Field("log_level", err.Error())
	}

	switch c.Storage {
	case StorageRedis:
		errors.ValidateRequired("redis_addr", c.RedisAddr, vb)
	case StorageRemote:
		errors.ValidateRequired("remote_url", c.RemoteURL, vb)
		if c.RemoteTimeout <= 0 {
			vb.Field("remote_timeout", "must be positive")
		}
	}

	return vb.Build()
}

// SlogLevel returns the configured log level, defaulting to info
func (c *Config) SlogLevel() slog.Level {
	level, err := parseLevel(c.LogLevel)
	if err != nil {
		return slog.LevelInfo
	}
	return level
}

func parseLevel(s string) (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(strings.TrimSpace(s))); err != nil {
		return slog.LevelInfo, fmt.Errorf("unknown level %q", s)
	}
	return level, nil
}
