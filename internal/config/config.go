package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

// Config holds the server's environment-driven settings.
type Config struct {
	Addr          string        `env:"MANHUNT_ADDR" envDefault:":8080"`
	DBPath        string        `env:"MANHUNT_DB_PATH" envDefault:"manhunt.db"`
	TurnTimeout   time.Duration `env:"MANHUNT_TURN_TIMEOUT" envDefault:"60s"`
	CommitRetries int           `env:"MANHUNT_COMMIT_RETRIES" envDefault:"8"`
	CleanupMaxAge time.Duration `env:"MANHUNT_CLEANUP_MAX_AGE" envDefault:"24h"`
	CleanupEvery  time.Duration `env:"MANHUNT_CLEANUP_INTERVAL" envDefault:"10m"`
	LogLevel      string        `env:"MANHUNT_LOG_LEVEL" envDefault:"info"`
	LogPretty     bool          `env:"MANHUNT_LOG_PRETTY" envDefault:"false"`
}

// Load parses configuration from environment variables.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}
