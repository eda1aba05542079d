package stats

import (
	"errors"
	"fmt"

	domainstats "github.com/Bazz30/NRL/internal/domain/stats"
	"github.com/Bazz30/NRL/internal/scoring"
)

// ErrNoStats is returned when no stats exist for a round.
var ErrNoStats = errors.New("no stats for round")

// Store defines the contract for holding round stats in memory.
type Store interface {
	RoundStats(round int) (domainstats.RoundStats, bool)
	SetRoundStats(domainstats.RoundStats)
	StatsRounds() []int
}

// Loader reads round stats from a slower backing source (snapshot files).
type Loader interface {
	LoadStats(round int) (domainstats.RoundStats, error)
}

// Service coordinates round stats lookups, falling back to the loader and caching hits.
type Service struct {
	store  Store
	loader Loader
	engine *scoring.Engine
}

// NewService constructs a Service. loader may be nil; engine defaults to the standard table.
func NewService(store Store, loader Loader, engine *scoring.Engine) *Service {
	if engine == nil {
		engine = scoring.Default()
	}
	return &Service{store: store, loader: loader, engine: engine}
}

// ForRound returns the stats for round.
func (s *Service) ForRound(round int) (domainstats.RoundStats, error) {
	if rs, ok := s.store.RoundStats(round); ok {
		return rs, nil
	}
	if s.loader == nil {
		return domainstats.RoundStats{}, fmt.Errorf("%w %d", ErrNoStats, round)
	}
	rs, err := s.loader.LoadStats(round)
	if err != nil {
		return domainstats.RoundStats{}, fmt.Errorf("%w %d: %w", ErrNoStats, round, err)
	}
	if rs.Round == 0 {
		rs.Round = round
	}
	s.store.SetRoundStats(rs)
	return rs, nil
}

// ReplaceRound swaps the in-memory stats for a round.
func (s *Service) ReplaceRound(rs domainstats.RoundStats) {
	s.store.SetRoundStats(rs)
}

// Rounds lists rounds currently held in memory.
func (s *Service) Rounds() []int {
	return s.store.StatsRounds()
}

// Points scores every player for round, highest first.
func (s *Service) Points(round int) ([]scoring.PlayerPoints, error) {
	rs, err := s.ForRound(round)
	if err != nil {
		return nil, err
	}
	return s.engine.RoundPoints(rs), nil
}

// Engine exposes the scoring engine used by the service.
func (s *Service) Engine() *scoring.Engine {
	return s.engine
}
