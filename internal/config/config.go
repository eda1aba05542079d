package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

// Config holds runtime configuration for the server and CLI.
type Config struct {
	Port         string        `env:"PORT" envDefault:"4000"`
	PollInterval time.Duration `env:"POLL_INTERVAL" envDefault:"5m"`
	Provider     string        `env:"PROVIDER" envDefault:"fixture"`
	RosterFile   string        `env:"ROSTER_FILE" envDefault:"data/roster.yaml"`
	SeasonFile   string        `env:"SEASON_FILE"`
	Log          LogConfig
	NRL          NRLConfig
	Metrics      MetricsConfig
	Snapshots    SnapshotSyncConfig
	Advice       AdviceConfig
}

// LogConfig controls the slog handler.
type LogConfig struct {
	Level  string `env:"LOG_LEVEL" envDefault:"info"`
	Format string `env:"LOG_FORMAT" envDefault:"text"`
}

// Load reads configuration from environment variables with defaults.
func Load() (Config, error) {
	return parse(env.Options{})
}

// LoadFrom reads configuration from the given variables instead of the process environment.
func LoadFrom(vars map[string]string) (Config, error) {
	return parse(env.Options{Environment: vars})
}

func parse(opts env.Options) (Config, error) {
	var cfg Config
	if err := env.ParseWithOptions(&cfg, opts); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}
	cfg.normalize()
	return cfg, nil
}

func (c *Config) normalize() {
	if c.PollInterval <= 0 {
		c.PollInterval = defaultPollInterval
	}
	c.NRL.normalize()
	c.Snapshots.normalize()
	c.Advice.normalize()
}
