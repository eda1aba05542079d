package config

import "time"

// NRLConfig controls how the fantasy feed is reached.
type NRLConfig struct {
	BaseURL      string        `env:"NRL_BASE_URL" envDefault:"https://fantasy.nrl.com/data/nrl"`
	Timeout      time.Duration `env:"NRL_TIMEOUT" envDefault:"30s"`
	UserAgent    string        `env:"NRL_USER_AGENT"`
	RateInterval time.Duration `env:"NRL_RATE_INTERVAL" envDefault:"2s"`
}

func (c *NRLConfig) normalize() {
	if c.BaseURL == "" {
		c.BaseURL = defaultNRLBaseURL
	}
	if c.Timeout <= 0 {
		c.Timeout = defaultNRLTimeout
	}
	if c.RateInterval <= 0 {
		c.RateInterval = defaultRateInterval
	}
}
