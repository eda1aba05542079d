package config

import "time"

// AdviceConfig controls the lineup advice proxy.
type AdviceConfig struct {
	APIKey      string        `env:"OPENAI_API_KEY"`
	BaseURL     string        `env:"OPENAI_BASE_URL" envDefault:"https://api.openai.com/v1"`
	Model       string        `env:"OPENAI_MODEL" envDefault:"gpt-4"`
	Temperature float64       `env:"OPENAI_TEMPERATURE" envDefault:"0.7"`
	Timeout     time.Duration `env:"OPENAI_TIMEOUT" envDefault:"60s"`
}

// Enabled reports whether an API key is configured.
func (c AdviceConfig) Enabled() bool {
	return c.APIKey != ""
}

func (c *AdviceConfig) normalize() {
	if c.BaseURL == "" {
		c.BaseURL = defaultAdviceBaseURL
	}
	if c.Model == "" {
		c.Model = defaultAdviceModel
	}
	if c.Temperature < 0 || c.Temperature > 2 {
		c.Temperature = defaultAdviceTemperature
	}
	if c.Timeout <= 0 {
		c.Timeout = defaultAdviceTimeout
	}
}
