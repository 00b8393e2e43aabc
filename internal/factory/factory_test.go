package factory

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mcoot/timestamper/internal/codec"
	"github.com/mcoot/timestamper/internal/config"
	"github.com/mcoot/timestamper/internal/model"
	redisstorage "github.com/mcoot/timestamper/internal/storage/redis"
)

func saveAndLoad(t *testing.T, app *App) {
	t.Helper()
	ctx := context.Background()

	require.NoError(t, app.TimeService.SaveTime(ctx, "daily", model.Player("Steve")))
	_, ok := app.TimeService.LoadTime(ctx, "daily", model.Player("Steve"))
	assert.True(t, ok)
}

func TestNewDefaultsToMemory(t *testing.T) {
	app, err := New(Config{})
	require.NoError(t, err)
	defer app.Close()

	assert.IsType(t, codec.Legacy{}, app.Codec)
	saveAndLoad(t, app)
}

func TestNewEveryBackend(t *testing.T) {
	mini := miniredis.RunT(t)
	redisCfg := redisstorage.DefaultConfig()
	redisCfg.URL = "redis://" + mini.Addr()

	configs := map[string]Config{
		StorageTypeHost:   {StorageType: StorageTypeHost},
		StorageTypeRedis:  {StorageType: StorageTypeRedis, RedisConfig: &redisCfg},
		StorageTypeSQLite: {StorageType: StorageTypeSQLite, SQLitePath: filepath.Join(t.TempDir(), "t.db"), Codec: codec.NameStructured},
	}

	for name, cfg := range configs {
		t.Run(name, func(t *testing.T) {
			app, err := New(cfg)
			require.NoError(t, err)
			defer app.Close()
			saveAndLoad(t, app)
		})
	}
}

func TestNewRejectsBadConfig(t *testing.T) {
	_, err := New(Config{StorageType: "mongo"})
	assert.Error(t, err)

	_, err = New(Config{StorageType: StorageTypeRedis})
	assert.Error(t, err)

	_, err = New(Config{Codec: "xml"})
	assert.Error(t, err)
}

func TestConfigFromEnv(t *testing.T) {
	cfg := ConfigFromEnv(config.Config{
		StorageType: StorageTypeRedis,
		RedisURL:    "redis://cache:6379",
		Objective:   "timers",
		Codec:       codec.NameStructured,
	}, nil)

	require.NotNil(t, cfg.RedisConfig)
	assert.Equal(t, "redis://cache:6379", cfg.RedisConfig.URL)
	assert.Equal(t, "timers", cfg.TimeConfig.Objective)
	assert.Equal(t, codec.NameStructured, cfg.Codec)
}

func TestTestAppUsesMockClock(t *testing.T) {
	app := NewTestApp()
	ctx := context.Background()

	require.NoError(t, app.TimeService.SaveTime(ctx, "daily", nil))
	app.MockClock.Advance(3 * time.Hour)

	hours, ok, err := app.TimeService.Elapsed(ctx, "daily", nil, model.UnitHours)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, 3.0, hours)

	entries, err := app.Memory.ListEntries(ctx, "js.dates")
	require.NoError(t, err)
	assert.Len(t, entries, 1)
}
