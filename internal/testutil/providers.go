package testutil

import (
	"context"
	"sync/atomic"

	"github.com/Bazz30/NRL/internal/domain/ladder"
	"github.com/Bazz30/NRL/internal/domain/players"
	"github.com/Bazz30/NRL/internal/domain/rounds"
	"github.com/Bazz30/NRL/internal/domain/stats"
	"github.com/Bazz30/NRL/internal/providers"
)

// FailingProvider fails every fetch with Err and counts calls per feed.
type FailingProvider struct {
	Err        error
	PlayerHits atomic.Int32
	RoundHits  atomic.Int32
	LadderHits atomic.Int32
	StatsHits  atomic.Int32
}

func (p *FailingProvider) FetchPlayers(context.Context) ([]players.LeaguePlayer, error) {
	p.PlayerHits.Add(1)
	return nil, p.Err
}

func (p *FailingProvider) FetchRounds(context.Context) ([]rounds.Round, error) {
	p.RoundHits.Add(1)
	return nil, p.Err
}

func (p *FailingProvider) FetchLadder(context.Context) ([]ladder.Entry, error) {
	p.LadderHits.Add(1)
	return nil, p.Err
}

func (p *FailingProvider) FetchRoundStats(context.Context, int) (stats.RoundStats, error) {
	p.StatsHits.Add(1)
	return stats.RoundStats{}, p.Err
}

// UnavailableProvider fails with ErrProviderUnavailable, as a feed that cannot be reached does.
func UnavailableProvider() *FailingProvider {
	return &FailingProvider{Err: providers.ErrProviderUnavailable}
}
