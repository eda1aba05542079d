package providers

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/Bazz30/NRL/internal/domain/ladder"
	"github.com/Bazz30/NRL/internal/domain/players"
	"github.com/Bazz30/NRL/internal/domain/rounds"
	"github.com/Bazz30/NRL/internal/domain/stats"
	"github.com/Bazz30/NRL/internal/logging"
)

// rateLimitedProvider spaces upstream calls at least interval apart.
type rateLimitedProvider struct {
	next     DataProvider
	interval time.Duration
	logger   *slog.Logger
	now      func() time.Time

	mu   sync.Mutex
	last time.Time
}

// NewRateLimitedProvider returns a DataProvider that blocks until interval has elapsed since the previous call.
func NewRateLimitedProvider(next DataProvider, interval time.Duration, logger *slog.Logger) DataProvider {
	if interval <= 0 {
		interval = time.Second
	}
	return &rateLimitedProvider{
		next:     next,
		interval: interval,
		logger:   logger,
		now:      time.Now,
	}
}

func (p *rateLimitedProvider) FetchPlayers(ctx context.Context) ([]players.LeaguePlayer, error) {
	if err := p.wait(ctx, "players"); err != nil {
		return nil, err
	}
	return p.next.FetchPlayers(ctx)
}

func (p *rateLimitedProvider) FetchRounds(ctx context.Context) ([]rounds.Round, error) {
	if err := p.wait(ctx, "rounds"); err != nil {
		return nil, err
	}
	return p.next.FetchRounds(ctx)
}

func (p *rateLimitedProvider) FetchLadder(ctx context.Context) ([]ladder.Entry, error) {
	if err := p.wait(ctx, "ladder"); err != nil {
		return nil, err
	}
	return p.next.FetchLadder(ctx)
}

func (p *rateLimitedProvider) FetchRoundStats(ctx context.Context, round int) (stats.RoundStats, error) {
	if err := p.wait(ctx, "stats"); err != nil {
		return stats.RoundStats{}, err
	}
	return p.next.FetchRoundStats(ctx, round)
}

// Unwrap exposes the wrapped provider.
func (p *rateLimitedProvider) Unwrap() DataProvider {
	return p.next
}

// wait holds the lock while sleeping so concurrent callers queue in order.
func (p *rateLimitedProvider) wait(ctx context.Context, kind string) error {
	if p == nil || p.next == nil {
		return ErrProviderUnavailable
	}
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.last.IsZero() {
		delay := p.interval - p.now().Sub(p.last)
		if delay > 0 {
			timer := time.NewTimer(delay)
			defer timer.Stop()
			select {
			case <-ctx.Done():
				logFetch(ctx, logging.FromContext(ctx, p.logger), slog.LevelWarn, rateLimiterName, kind, "rate-limited fetch canceled")
				return ctx.Err()
			case <-timer.C:
			}
		}
	}
	p.last = p.now()
	logFetch(ctx, logging.FromContext(ctx, p.logger), slog.LevelDebug, rateLimiterName, kind, "rate-limited provider fetch")
	return nil
}
