package store

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Bazz30/NRL/internal/domain/ladder"
	"github.com/Bazz30/NRL/internal/domain/players"
	"github.com/Bazz30/NRL/internal/domain/rounds"
	"github.com/Bazz30/NRL/internal/domain/stats"
)

func TestMemoryStorePlayers(t *testing.T) {
	s := NewMemoryStore()
	s.SetPlayers([]players.LeaguePlayer{{ID: 2, Name: "B"}, {ID: 1, Name: "A"}})

	list := s.ListPlayers()
	require.Len(t, list, 2)
	assert.Equal(t, 1, list[0].ID)

	p, ok := s.GetPlayer(2)
	require.True(t, ok)
	assert.Equal(t, "B", p.Name)

	s.SetPlayers([]players.LeaguePlayer{{ID: 3}})
	_, ok = s.GetPlayer(2)
	assert.False(t, ok, "set replaces the snapshot")
}

func TestMemoryStoreRoundsSorted(t *testing.T) {
	s := NewMemoryStore()
	s.SetRounds([]rounds.Round{{ID: 3}, {ID: 1}, {ID: 2}})

	got := s.ListRounds()
	assert.Equal(t, []int{1, 2, 3}, []int{got[0].ID, got[1].ID, got[2].ID})

	got[0].Name = "mutated"
	assert.Empty(t, s.ListRounds()[0].Name)
}

func TestMemoryStoreLadderSorted(t *testing.T) {
	s := NewMemoryStore()
	s.SetLadder([]ladder.Entry{{TeamName: "Storm", Position: 2}, {TeamName: "Raiders", Position: 1}})
	assert.Equal(t, "Raiders", s.Ladder()[0].TeamName)
}

func TestMemoryStoreStatsAreCopied(t *testing.T) {
	s := NewMemoryStore()
	rs := stats.RoundStats{Round: 17, Players: map[string]stats.Record{"1": {stats.Try: 1}}}
	s.SetRoundStats(rs)
	rs.Players["1"][stats.Try] = 5

	got, ok := s.RoundStats(17)
	require.True(t, ok)
	assert.Equal(t, 1.0, got.Players["1"][stats.Try])

	got.Players["1"][stats.Try] = 9
	again, _ := s.RoundStats(17)
	assert.Equal(t, 1.0, again.Players["1"][stats.Try])

	_, ok = s.RoundStats(3)
	assert.False(t, ok)
	assert.Equal(t, []int{17}, s.StatsRounds())
}

func TestMemoryStoreRoster(t *testing.T) {
	s := NewMemoryStore()
	s.SetRoster([]players.Player{{ID: "1", Name: "E.Clark"}})

	got := s.Roster()
	got[0].Name = "mutated"
	assert.Equal(t, "E.Clark", s.Roster()[0].Name)
}

func TestMemoryStoreConcurrentAccess(t *testing.T) {
	s := NewMemoryStore()
	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(2)
		go func(i int) {
			defer wg.Done()
			s.SetRoundStats(stats.RoundStats{Round: i % 3, Players: map[string]stats.Record{"x": {stats.Tackle: float64(i)}}})
		}(i)
		go func() {
			defer wg.Done()
			_ = s.StatsRounds()
			_, _ = s.RoundStats(1)
		}()
	}
	wg.Wait()
	assert.Len(t, s.StatsRounds(), 3)
}
