package store

import (
	"sort"
	"sync"

	"github.com/Bazz30/NRL/internal/domain/ladder"
	"github.com/Bazz30/NRL/internal/domain/players"
	"github.com/Bazz30/NRL/internal/domain/rounds"
	"github.com/Bazz30/NRL/internal/domain/stats"
)

// MemoryStore keeps a thread-safe copy of league data and the user's roster in memory.
type MemoryStore struct {
	mu      sync.RWMutex
	players map[int]players.LeaguePlayer
	rounds  []rounds.Round
	ladder  []ladder.Entry
	stats   map[int]stats.RoundStats
	roster  []players.Player
}

// NewMemoryStore constructs an empty MemoryStore.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		players: make(map[int]players.LeaguePlayer),
		stats:   make(map[int]stats.RoundStats),
	}
}

// ListPlayers returns the player pool ordered by ID.
func (s *MemoryStore) ListPlayers() []players.LeaguePlayer {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]players.LeaguePlayer, 0, len(s.players))
	for _, p := range s.players {
		result = append(result, p)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].ID < result[j].ID })
	return result
}

// GetPlayer retrieves a pool player by ID.
func (s *MemoryStore) GetPlayer(id int) (players.LeaguePlayer, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	p, ok := s.players[id]
	return p, ok
}

// SetPlayers replaces the player pool.
func (s *MemoryStore) SetPlayers(items []players.LeaguePlayer) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.players = make(map[int]players.LeaguePlayer, len(items))
	for _, p := range items {
		s.players[p.ID] = p
	}
}

// ListRounds returns a copy of the rounds ordered by ID.
func (s *MemoryStore) ListRounds() []rounds.Round {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]rounds.Round, len(s.rounds))
	copy(result, s.rounds)
	return result
}

// SetRounds replaces the rounds.
func (s *MemoryStore) SetRounds(items []rounds.Round) {
	sorted := make([]rounds.Round, len(items))
	copy(sorted, items)
	sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].ID < sorted[j].ID })

	s.mu.Lock()
	defer s.mu.Unlock()
	s.rounds = sorted
}

// Ladder returns a copy of the ladder.
func (s *MemoryStore) Ladder() []ladder.Entry {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]ladder.Entry, len(s.ladder))
	copy(result, s.ladder)
	return result
}

// SetLadder replaces the ladder.
func (s *MemoryStore) SetLadder(items []ladder.Entry) {
	sorted := make([]ladder.Entry, len(items))
	copy(sorted, items)
	ladder.Sort(sorted)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.ladder = sorted
}

// RoundStats returns the stats held for round.
func (s *MemoryStore) RoundStats(round int) (stats.RoundStats, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rs, ok := s.stats[round]
	if !ok {
		return stats.RoundStats{}, false
	}
	return cloneRoundStats(rs), true
}

// SetRoundStats stores stats for rs.Round, replacing any previous copy.
func (s *MemoryStore) SetRoundStats(rs stats.RoundStats) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.stats[rs.Round] = cloneRoundStats(rs)
}

// StatsRounds lists rounds with stats held in memory.
func (s *MemoryStore) StatsRounds() []int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]int, 0, len(s.stats))
	for r := range s.stats {
		out = append(out, r)
	}
	sort.Ints(out)
	return out
}

// Roster returns a copy of the user's roster.
func (s *MemoryStore) Roster() []players.Player {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]players.Player, len(s.roster))
	copy(result, s.roster)
	return result
}

// SetRoster replaces the user's roster.
func (s *MemoryStore) SetRoster(items []players.Player) {
	cp := make([]players.Player, len(items))
	copy(cp, items)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.roster = cp
}

func cloneRoundStats(rs stats.RoundStats) stats.RoundStats {
	out := stats.RoundStats{Round: rs.Round, Players: make(map[string]stats.Record, len(rs.Players))}
	for id, rec := range rs.Players {
		out.Players[id] = rec.Clone()
	}
	return out
}
