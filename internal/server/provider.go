package server

import (
	"log/slog"
	"strings"

	"github.com/Bazz30/NRL/internal/config"
	"github.com/Bazz30/NRL/internal/providers"
	"github.com/Bazz30/NRL/internal/providers/fixture"
	"github.com/Bazz30/NRL/internal/providers/nrlfantasy"
)

const (
	providerFixture    = "fixture"
	providerNRLFantasy = "nrlfantasy"
)

func selectProvider(cfg config.Config, logger *slog.Logger) providers.DataProvider {
	switch strings.ToLower(strings.TrimSpace(cfg.Provider)) {
	case "", providerFixture:
		return fixture.New()
	case providerNRLFantasy:
		return nrlfantasy.NewClient(nrlfantasy.Config{
			BaseURL:   cfg.NRL.BaseURL,
			UserAgent: cfg.NRL.UserAgent,
			Timeout:   cfg.NRL.Timeout,
		})
	default:
		if logger != nil {
			logger.Warn("unknown provider, falling back to fixture", slog.String("provider", cfg.Provider))
		}
		return fixture.New()
	}
}
