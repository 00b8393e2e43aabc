package cli

import (
	"errors"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/mcoot/timestamper/internal/factory"
)

var (
	cfg *Config
	app *factory.App
)

// NewRootCmd creates the root command
func NewRootCmd() *cobra.Command {
	var cfgErr error
	cfg, cfgErr = DefaultConfig()
	if cfgErr != nil {
		cfg = &Config{Output: "text"}
	}

	rootCmd := &cobra.Command{
		Use:   "timestamper",
		Short: "Save and compare named points in time",
		Long: `timestamper records named timestamps, optionally scoped to a player,
and compares them in any unit from milliseconds to years.

Times are kept in the configured storage backend (memory, host, redis or
sqlite). Lua scripts can call saveTime, getTime, loadTime and compareTimes.`,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return cfgErr
		},
		SilenceUsage: true,
	}

	// Global flags
	rootCmd.PersistentFlags().StringVar(&cfg.StorageType, "storage", cfg.StorageType, "Storage backend: memory, host, redis, sqlite (env: STORAGE_TYPE)")
	rootCmd.PersistentFlags().StringVar(&cfg.RedisURL, "redis-url", cfg.RedisURL, "Redis URL (env: REDIS_URL)")
	rootCmd.PersistentFlags().StringVar(&cfg.SQLitePath, "sqlite-path", cfg.SQLitePath, "SQLite database file (env: SQLITE_PATH)")
	rootCmd.PersistentFlags().StringVar(&cfg.Objective, "objective", cfg.Objective, "Objective holding the times (env: TIMESTAMPER_OBJECTIVE)")
	rootCmd.PersistentFlags().StringVar(&cfg.Codec, "codec", cfg.Codec, "Entry codec: legacy, structured (env: TIMESTAMPER_CODEC)")
	rootCmd.PersistentFlags().StringVarP(&cfg.Output, "output", "o", cfg.Output, "Output format: text, json")
	rootCmd.PersistentFlags().BoolVarP(&cfg.Verbose, "verbose", "v", cfg.Verbose, "Verbose output")

	// Add subcommands
	rootCmd.AddCommand(newSaveCmd())
	rootCmd.AddCommand(newLoadCmd())
	rootCmd.AddCommand(newNowCmd())
	rootCmd.AddCommand(newListCmd())
	rootCmd.AddCommand(newCompareCmd())
	rootCmd.AddCommand(newRunCmd())

	return rootCmd
}

// withApp opens the configured application for the duration of fn
func withApp(fn func(cmd *cobra.Command, args []string) error) func(cmd *cobra.Command, args []string) error {
	return func(cmd *cobra.Command, args []string) (err error) {
		logger := slog.New(slog.NewTextHandler(io.Discard, nil))
		if cfg.Verbose {
			logger = slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: slog.LevelDebug}))
		}

		app, err = factory.New(factory.ConfigFromEnv(cfg.env(), logger))
		if err != nil {
			return err
		}
		defer func() {
			err = errors.Join(err, app.Close())
			app = nil
		}()

		return fn(cmd, args)
	}
}

// Execute runs the root command
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
