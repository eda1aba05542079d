// Package roster serves derived views of the user's roster: statuses,
// position fulfilment, summaries and round points.
package roster

import (
	"github.com/Bazz30/NRL/internal/domain/players"
	"github.com/Bazz30/NRL/internal/domain/stats"
	"github.com/Bazz30/NRL/internal/roster"
	"github.com/Bazz30/NRL/internal/scoring"
	"github.com/Bazz30/NRL/internal/season"
)

// Store holds the roster.
type Store interface {
	Roster() []players.Player
	SetRoster([]players.Player)
}

// StatsSource provides stats for a round.
type StatsSource interface {
	ForRound(round int) (stats.RoundStats, error)
}

// CurrentRounder resolves the round in play.
type CurrentRounder interface {
	CurrentID(fallback int) int
}

// Service derives roster views. Nothing derived is stored; every call recomputes.
type Service struct {
	store  Store
	season season.Season
	stats  StatsSource
	rounds CurrentRounder
	engine *scoring.Engine
}

// NewService wires the roster service. stats and rounds may be nil.
func NewService(store Store, s season.Season, statsSrc StatsSource, rounds CurrentRounder, engine *scoring.Engine) *Service {
	if engine == nil {
		engine = scoring.Default()
	}
	return &Service{store: store, season: s, stats: statsSrc, rounds: rounds, engine: engine}
}

// Season returns the injected season tables.
func (s *Service) Season() season.Season {
	return s.season
}

// Players returns the roster as loaded.
func (s *Service) Players() []players.Player {
	return s.store.Roster()
}

// Replace validates and stores a new roster.
func (s *Service) Replace(items []players.Player) error {
	if err := roster.Validate(items); err != nil {
		return err
	}
	s.store.SetRoster(items)
	return nil
}

// ResolveRound maps a requested round to a concrete one. Non-positive values mean the current round.
func (s *Service) ResolveRound(round int) int {
	if round > 0 {
		return round
	}
	if s.rounds != nil {
		return s.rounds.CurrentID(s.season.FirstRound)
	}
	return s.season.FirstRound
}

// Entries resolves every roster player's status for round, optionally filtered by team.
func (s *Service) Entries(round int, team string) []roster.Entry {
	round = s.ResolveRound(round)
	entries := roster.ResolveRoster(s.store.Roster(), round, s.season.Byes)
	return roster.FilterByTeam(entries, team)
}

// Positions reports position fulfilment for round.
func (s *Service) Positions(round int) []roster.PositionCount {
	round = s.ResolveRound(round)
	return roster.ComputePositionCounts(s.store.Roster(), s.season.Requirements, round, s.season.Byes)
}

// Summary aggregates the roster for round.
func (s *Service) Summary(round int) roster.Summary {
	round = s.ResolveRound(round)
	all := s.store.Roster()
	entries := roster.ResolveRoster(all, round, s.season.Byes)
	counts := roster.ComputePositionCounts(all, s.season.Requirements, round, s.season.Byes)
	sum := roster.Summarize(entries, counts)
	sum.Round = round
	return sum
}

// PlayerPoints is a roster player's fantasy points computed from round stats.
type PlayerPoints struct {
	ID       string         `json:"id"`
	Name     string         `json:"name"`
	Team     string         `json:"team"`
	Status   players.Status `json:"status"`
	HasStats bool           `json:"hasStats"`
	Points   float64        `json:"points"`
}

// Points scores each roster player from the round's stat records.
// Players missing from the round's stats score 0 with HasStats false.
func (s *Service) Points(round int) ([]PlayerPoints, error) {
	round = s.ResolveRound(round)
	var rs stats.RoundStats
	if s.stats != nil {
		var err error
		rs, err = s.stats.ForRound(round)
		if err != nil {
			return nil, err
		}
	}
	entries := roster.ResolveRoster(s.store.Roster(), round, s.season.Byes)
	out := make([]PlayerPoints, 0, len(entries))
	for _, e := range entries {
		rec := rs.For(e.ID)
		out = append(out, PlayerPoints{
			ID:       e.ID,
			Name:     e.Name,
			Team:     e.Team,
			Status:   e.Status,
			HasStats: rec != nil,
			Points:   s.engine.Points(rec),
		})
	}
	return out, nil
}
