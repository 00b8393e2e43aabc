package config

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/caarlos0/env/v11"
)

// Config is the process configuration read from the environment
type Config struct {
	// StorageType selects the backend: memory, redis, sqlite or host
	StorageType string `env:"STORAGE_TYPE" envDefault:"memory"`
	RedisURL    string `env:"REDIS_URL"`
	SQLitePath  string `env:"SQLITE_PATH" envDefault:"timestamper.db"`

	Objective string `env:"TIMESTAMPER_OBJECTIVE" envDefault:"js.dates"`
	Codec     string `env:"TIMESTAMPER_CODEC" envDefault:"legacy"`

	LogLevel string `env:"LOG_LEVEL" envDefault:"info"`

	Host string `env:"HOST"`
	Port int    `env:"PORT" envDefault:"8080"`
}

// Load parses Config from environment variables
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}

// SlogLevel converts LogLevel to a slog level, defaulting to info
func (c Config) SlogLevel() slog.Level {
	switch strings.ToLower(c.LogLevel) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
