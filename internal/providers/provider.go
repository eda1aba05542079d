package providers

import (
	"context"

	"github.com/Bazz30/NRL/internal/domain/ladder"
	"github.com/Bazz30/NRL/internal/domain/players"
	"github.com/Bazz30/NRL/internal/domain/rounds"
	"github.com/Bazz30/NRL/internal/domain/stats"
)

// PlayerProvider fetches the league player pool.
type PlayerProvider interface {
	FetchPlayers(ctx context.Context) ([]players.LeaguePlayer, error)
}

// RoundProvider fetches the season's rounds and fixtures.
type RoundProvider interface {
	FetchRounds(ctx context.Context) ([]rounds.Round, error)
}

// LadderProvider fetches the competition ladder.
type LadderProvider interface {
	FetchLadder(ctx context.Context) ([]ladder.Entry, error)
}

// StatsProvider fetches every player's stat record for one round.
type StatsProvider interface {
	FetchRoundStats(ctx context.Context, round int) (stats.RoundStats, error)
}

// DataProvider combines all provider capabilities.
type DataProvider interface {
	PlayerProvider
	RoundProvider
	LadderProvider
	StatsProvider
}
