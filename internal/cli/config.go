package cli

import (
	"github.com/mcoot/timestamper/internal/config"
)

// Config holds CLI configuration. Storage settings default to the
// environment and can be overridden by flags.
type Config struct {
	StorageType string
	RedisURL    string
	SQLitePath  string
	Objective   string
	Codec       string
	Output      string
	Verbose     bool
}

// DefaultConfig returns a Config seeded from the environment
func DefaultConfig() (*Config, error) {
	env, err := config.Load()
	if err != nil {
		return nil, err
	}

	return &Config{
		StorageType: env.StorageType,
		RedisURL:    env.RedisURL,
		SQLitePath:  env.SQLitePath,
		Objective:   env.Objective,
		Codec:       env.Codec,
		Output:      "text",
		Verbose:     false,
	}, nil
}

// env converts the CLI configuration back into process configuration
func (c *Config) env() config.Config {
	return config.Config{
		StorageType: c.StorageType,
		RedisURL:    c.RedisURL,
		SQLitePath:  c.SQLitePath,
		Objective:   c.Objective,
		Codec:       c.Codec,
	}
}
