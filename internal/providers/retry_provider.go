package providers

import (
	"context"
	"log/slog"
	"time"

	"github.com/cenkalti/backoff/v4"

	"github.com/Bazz30/NRL/internal/domain/ladder"
	"github.com/Bazz30/NRL/internal/domain/players"
	"github.com/Bazz30/NRL/internal/domain/rounds"
	"github.com/Bazz30/NRL/internal/domain/stats"
	"github.com/Bazz30/NRL/internal/logging"
	"github.com/Bazz30/NRL/internal/metrics"
)

const (
	defaultRetryAttempts = 3
	defaultBackoff       = 500 * time.Millisecond
	maxBackoff           = 10 * time.Second
)

// retryingProvider wraps a DataProvider with exponential backoff and per-attempt metrics.
type retryingProvider struct {
	inner       DataProvider
	logger      *slog.Logger
	metrics     *metrics.Recorder
	name        string
	maxAttempts int
	newBackOff  func() backoff.BackOff
}

// NewRetryingProvider wraps inner with retries. Non-positive maxAttempts/initialBackoff use defaults.
func NewRetryingProvider(inner DataProvider, logger *slog.Logger, recorder *metrics.Recorder, name string, maxAttempts int, initialBackoff time.Duration) DataProvider {
	if maxAttempts <= 0 {
		maxAttempts = defaultRetryAttempts
	}
	if initialBackoff <= 0 {
		initialBackoff = defaultBackoff
	}
	if name == "" {
		name = "unknown"
	}
	return &retryingProvider{
		inner:       inner,
		logger:      logger,
		metrics:     recorder,
		name:        name,
		maxAttempts: maxAttempts,
		newBackOff: func() backoff.BackOff {
			exp := backoff.NewExponentialBackOff()
			exp.InitialInterval = initialBackoff
			exp.MaxInterval = maxBackoff
			exp.MaxElapsedTime = 0
			return exp
		},
	}
}

func (r *retryingProvider) FetchPlayers(ctx context.Context) ([]players.LeaguePlayer, error) {
	return withRetry(ctx, r, "players", func(ctx context.Context) ([]players.LeaguePlayer, error) {
		return r.inner.FetchPlayers(ctx)
	})
}

func (r *retryingProvider) FetchRounds(ctx context.Context) ([]rounds.Round, error) {
	return withRetry(ctx, r, "rounds", func(ctx context.Context) ([]rounds.Round, error) {
		return r.inner.FetchRounds(ctx)
	})
}

func (r *retryingProvider) FetchLadder(ctx context.Context) ([]ladder.Entry, error) {
	return withRetry(ctx, r, "ladder", func(ctx context.Context) ([]ladder.Entry, error) {
		return r.inner.FetchLadder(ctx)
	})
}

func (r *retryingProvider) FetchRoundStats(ctx context.Context, round int) (stats.RoundStats, error) {
	return withRetry(ctx, r, "stats", func(ctx context.Context) (stats.RoundStats, error) {
		return r.inner.FetchRoundStats(ctx, round)
	})
}

// Unwrap exposes the wrapped provider.
func (r *retryingProvider) Unwrap() DataProvider {
	return r.inner
}

func withRetry[T any](ctx context.Context, r *retryingProvider, kind string, fn func(context.Context) (T, error)) (T, error) {
	var zero T
	if r == nil || r.inner == nil {
		return zero, ErrProviderUnavailable
	}

	attempt := 0
	op := func() (T, error) {
		attempt++
		start := time.Now()
		out, err := fn(ctx)
		r.metrics.RecordProviderAttempt(r.name, time.Since(start), err)
		if err == nil {
			return out, nil
		}
		if rl, ok := AsRateLimitError(err); ok {
			r.metrics.RecordRateLimit(r.name, rl.RetryAfter)
		}
		if !IsRetryable(err) {
			return zero, backoff.Permanent(err)
		}
		return zero, err
	}

	policy := backoff.WithContext(
		backoff.WithMaxRetries(r.newBackOff(), uint64(r.maxAttempts-1)),
		ctx,
	)
	notify := func(err error, delay time.Duration) {
		logFetch(ctx, logging.FromContext(ctx, r.logger), slog.LevelWarn, r.name, kind, "provider fetch retry",
			slog.Int("attempt", attempt),
			slog.Int("max_attempts", r.maxAttempts),
			slog.Int64("delay_ms", delay.Milliseconds()),
			slog.Any("error", err),
		)
	}

	out, err := backoff.RetryNotifyWithData(op, policy, notify)
	if err != nil {
		logFetch(ctx, logging.FromContext(ctx, r.logger), slog.LevelWarn, r.name, kind, "provider fetch failed",
			slog.Int("attempts", attempt),
			slog.Any("error", err),
		)
		return zero, err
	}
	return out, nil
}
