package factory

import (
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/mcoot/timestamper/internal/codec"
	"github.com/mcoot/timestamper/internal/config"
	"github.com/mcoot/timestamper/internal/dependencies/clock"
	"github.com/mcoot/timestamper/internal/host"
	"github.com/mcoot/timestamper/internal/script"
	"github.com/mcoot/timestamper/internal/services/timestamp"
	"github.com/mcoot/timestamper/internal/storage"
	"github.com/mcoot/timestamper/internal/storage/memory"
	redisstorage "github.com/mcoot/timestamper/internal/storage/redis"
	"github.com/mcoot/timestamper/internal/storage/scoreboard"
	"github.com/mcoot/timestamper/internal/storage/sqlite"
)

// Storage type constants
const (
	StorageTypeMemory = "memory"
	StorageTypeRedis  = "redis"
	StorageTypeSQLite = "sqlite"
	StorageTypeHost   = "host"
)

// App contains all wired application components
type App struct {
	// Storage
	Storage storage.Storage
	Codec   codec.Codec

	// External dependencies
	Clock clock.Clock

	// Services
	TimeService   *timestamp.Service
	ScriptRuntime *script.Runtime

	closers []io.Closer
}

// Config holds configuration for the application factory
type Config struct {
	// Logger is the application logger (optional)
	// If nil, a no-op logger is used
	Logger *slog.Logger
	// StorageType selects the storage backend
	// If empty, defaults to "memory"
	StorageType string
	// RedisConfig holds Redis connection settings (required if StorageType is "redis")
	RedisConfig *redisstorage.Config
	// SQLitePath is the database file (required if StorageType is "sqlite")
	SQLitePath string
	// Codec names the entry codec; empty selects the legacy codec
	Codec string
	// TimeConfig configures the timestamp service
	TimeConfig timestamp.Config
}

// ConfigFromEnv maps process configuration onto a factory Config
func ConfigFromEnv(env config.Config, logger *slog.Logger) Config {
	cfg := Config{
		Logger:      logger,
		StorageType: env.StorageType,
		SQLitePath:  env.SQLitePath,
		Codec:       env.Codec,
		TimeConfig:  timestamp.Config{Objective: env.Objective},
	}
	if env.StorageType == StorageTypeRedis {
		redisCfg := redisstorage.DefaultConfig()
		redisCfg.URL = env.RedisURL
		cfg.RedisConfig = &redisCfg
	}
	return cfg
}

// New creates a new application with all dependencies wired
func New(cfg Config) (*App, error) {
	// Use no-op logger if not provided
	logger := cfg.Logger
	if logger == nil {
		logger = slog.New(slog.NewJSONHandler(io.Discard, nil))
	}

	entryCodec, err := codec.ByName(cfg.Codec)
	if err != nil {
		return nil, err
	}

	// Create storage based on type
	var (
		store   storage.Storage
		closers []io.Closer
	)
	storageType := cfg.StorageType
	if storageType == "" {
		storageType = StorageTypeMemory
	}

	switch storageType {
	case StorageTypeMemory:
		store = memory.New()
	case StorageTypeHost:
		store = scoreboard.New(host.NewWorld())
	case StorageTypeRedis:
		if cfg.RedisConfig == nil || cfg.RedisConfig.URL == "" {
			return nil, errors.New("RedisConfig required when StorageType is redis")
		}
		redisStore, err := redisstorage.New(*cfg.RedisConfig)
		if err != nil {
			return nil, err
		}
		store = redisStore
		closers = append(closers, redisStore)
	case StorageTypeSQLite:
		sqliteStore, err := sqlite.Open(cfg.SQLitePath)
		if err != nil {
			return nil, err
		}
		store = sqliteStore
		closers = append(closers, sqliteStore)
	default:
		return nil, fmt.Errorf("invalid StorageType %q: must be 'memory', 'host', 'redis' or 'sqlite'", storageType)
	}

	app := newWithDependencies(store, entryCodec, clock.New(), cfg.TimeConfig, logger)
	app.closers = closers
	return app, nil
}

// newWithDependencies creates an App with the given dependencies (useful for testing)
func newWithDependencies(store storage.Storage, entryCodec codec.Codec, clk clock.Clock, timeCfg timestamp.Config, logger *slog.Logger) *App {
	timeService := timestamp.New(store, entryCodec, clk, timeCfg, logger)
	runtime := script.New(timeService, logger)

	return &App{
		Storage:       store,
		Codec:         entryCodec,
		Clock:         clk,
		TimeService:   timeService,
		ScriptRuntime: runtime,
	}
}

// Close releases storage connections
func (a *App) Close() error {
	var errs []error
	for _, c := range a.closers {
		errs = append(errs, c.Close())
	}
	return errors.Join(errs...)
}
