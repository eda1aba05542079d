package players

import (
	"strconv"
	"strings"

	"github.com/Bazz30/NRL/internal/domain/players"
	"github.com/Bazz30/NRL/internal/domain/stats"
	"github.com/Bazz30/NRL/internal/scoring"
)

// Store defines the contract for persisting and retrieving the player pool.
type Store interface {
	ListPlayers() []players.LeaguePlayer
	GetPlayer(id int) (players.LeaguePlayer, bool)
	SetPlayers([]players.LeaguePlayer)
}

// Service coordinates player pool operations using a Store.
type Service struct {
	store Store
}

// NewService constructs a Service with the provided Store.
func NewService(store Store) *Service {
	return &Service{store: store}
}

// Players returns the current player pool.
func (s *Service) Players() []players.LeaguePlayer {
	return s.store.ListPlayers()
}

// PlayerByID returns a single player if present.
func (s *Service) PlayerByID(id int) (players.LeaguePlayer, bool) {
	return s.store.GetPlayer(id)
}

// Search returns players whose names contain query. An empty query returns nothing.
func (s *Service) Search(query string) []players.LeaguePlayer {
	var out []players.LeaguePlayer
	for _, p := range s.store.ListPlayers() {
		if p.MatchesName(query) {
			out = append(out, p)
		}
	}
	return out
}

// ByTeam returns the players of one team, matched case-insensitively.
func (s *Service) ByTeam(team string) []players.LeaguePlayer {
	team = strings.TrimSpace(team)
	var out []players.LeaguePlayer
	for _, p := range s.store.ListPlayers() {
		if strings.EqualFold(p.Team, team) {
			out = append(out, p)
		}
	}
	return out
}

// WithStats joins the pool with one round's stats and scores each player.
// Players without a record that round get empty stats and zero points.
func (s *Service) WithStats(rs stats.RoundStats, engine *scoring.Engine) []players.WithRoundStats {
	if engine == nil {
		engine = scoring.Default()
	}
	pool := s.store.ListPlayers()
	out := make([]players.WithRoundStats, 0, len(pool))
	for _, p := range pool {
		rec := rs.For(strconv.Itoa(p.ID))
		out = append(out, players.WithRoundStats{
			LeaguePlayer:      p,
			Round:             rs.Round,
			CurrentRoundStats: rec,
			FantasyPoints:     engine.Points(rec),
		})
	}
	return out
}

// ReplacePlayers swaps the in-memory pool with a new snapshot.
func (s *Service) ReplacePlayers(items []players.LeaguePlayer) {
	s.store.SetPlayers(items)
}
