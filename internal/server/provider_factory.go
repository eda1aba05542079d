package server

import (
	"log/slog"

	"github.com/Bazz30/NRL/internal/config"
	"github.com/Bazz30/NRL/internal/metrics"
	"github.com/Bazz30/NRL/internal/providers"
	"github.com/Bazz30/NRL/internal/providers/fixture"
)

// providerFactory assembles the provider with shared wrappers (rate limit + retry).
type providerFactory struct {
	logger  *slog.Logger
	metrics *metrics.Recorder
}

func newProviderFactory(logger *slog.Logger, metrics *metrics.Recorder) providerFactory {
	return providerFactory{logger: logger, metrics: metrics}
}

func (f providerFactory) build(cfg config.Config) providers.DataProvider {
	return f.wrap(cfg, selectProvider(cfg, f.logger))
}

// wrap spaces upstream calls by NRL_RATE_INTERVAL and retries transient failures.
// The poller and snapshot syncer share the result, so they share one rate limit.
// Fixture data is local and skips the limiter.
func (f providerFactory) wrap(cfg config.Config, base providers.DataProvider) providers.DataProvider {
	name := normalizeProviderName(cfg.Provider, base)
	next := base
	if _, local := base.(*fixture.Provider); !local {
		next = providers.NewRateLimitedProvider(base, cfg.NRL.RateInterval, f.logger)
	}
	return providers.NewRetryingProvider(next, f.logger, f.metrics, name, 0, 0)
}

// NewProvider builds the configured provider with the server's rate limit and retry wrappers.
func NewProvider(cfg config.Config, logger *slog.Logger, recorder *metrics.Recorder) providers.DataProvider {
	return newProviderFactory(logger, recorder).build(cfg)
}
