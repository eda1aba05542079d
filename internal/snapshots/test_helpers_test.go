package snapshots

import (
	"testing"
	"time"

	"github.com/Bazz30/NRL/internal/domain/ladder"
	"github.com/Bazz30/NRL/internal/domain/players"
	"github.com/Bazz30/NRL/internal/domain/rounds"
	"github.com/Bazz30/NRL/internal/domain/stats"
)

var fixedNow = time.Date(2025, 7, 1, 10, 0, 0, 0, time.UTC)

func newTestWriter(t *testing.T) *Writer {
	t.Helper()
	w := NewWriter(t.TempDir(), nil)
	w.now = func() time.Time { return fixedNow }
	return w
}

func samplePlayers() []players.LeaguePlayer {
	return []players.LeaguePlayer{
		{ID: 2, Name: "Payne Haas", Team: "Broncos"},
		{ID: 1, Name: "Nathan Cleary", Team: "Panthers"},
	}
}

func sampleRounds() []rounds.Round {
	return []rounds.Round{
		{ID: 2, Status: rounds.StatusActive},
		{ID: 1, Status: rounds.StatusComplete},
	}
}

func sampleLadder() []ladder.Entry {
	return []ladder.Entry{
		{TeamName: "Broncos", Position: 2},
		{TeamName: "Panthers", Position: 1},
	}
}

func sampleStats(round int) stats.RoundStats {
	return stats.RoundStats{Round: round, Players: map[string]stats.Record{
		"1": {stats.Try: 1, stats.Tackle: 10},
	}}
}
