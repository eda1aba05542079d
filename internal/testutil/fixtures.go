package testutil

import (
	"time"

	"github.com/Bazz30/NRL/internal/domain/ladder"
	"github.com/Bazz30/NRL/internal/domain/players"
	"github.com/Bazz30/NRL/internal/domain/rounds"
	"github.com/Bazz30/NRL/internal/domain/stats"
)

// SampleRoster returns a four-player roster. In round 17 Roosters have the bye
// and Cleary is on Origin duty.
func SampleRoster() []players.Player {
	return []players.Player{
		{ID: "1", Name: "E.Clark", Team: "Warriors", Positions: []players.Position{players.Hooker}, SecondaryPositions: []players.Position{players.Middle}, Price: 787000, SelectedRound: 17, Scores: map[int]float64{16: 58, 17: 57}},
		{ID: "5", Name: "T.May", Team: "Tigers", Positions: []players.Position{players.Middle}, Price: 981000, Captain: true, Scores: map[int]float64{17: 152}},
		{ID: "9", Name: "N.Whyte", Team: "Roosters", Positions: []players.Position{players.Middle}, Price: 582000, ViceCaptain: true, Scores: map[int]float64{16: 44}},
		{ID: "12", Name: "N.Cleary", Team: "Panthers", Positions: []players.Position{players.Halfback}, Price: 820000, SelectedForOrigin: true, Scores: map[int]float64{16: 79}},
	}
}

// SampleLeaguePlayers returns a small player pool.
func SampleLeaguePlayers() []players.LeaguePlayer {
	return []players.LeaguePlayer{
		{ID: 1, Name: "Erin Clark", FirstName: "Erin", LastName: "Clark", Team: "Warriors", Cost: 787000, Positions: []players.Position{players.Hooker}},
		{ID: 5, Name: "Terrell May", FirstName: "Terrell", LastName: "May", Team: "Tigers", Cost: 981000, Positions: []players.Position{players.Middle}},
		{ID: 12, Name: "Nathan Cleary", FirstName: "Nathan", LastName: "Cleary", Team: "Panthers", Cost: 820000, Positions: []players.Position{players.Halfback}},
	}
}

// SampleRounds returns rounds 16 to 18, with 17 running at now.
func SampleRounds(now time.Time) []rounds.Round {
	week := 7 * 24 * time.Hour
	start := now.Add(-24 * time.Hour)
	return []rounds.Round{
		{ID: 16, Name: "Round 16", StartDate: start.Add(-week), EndDate: start.Add(-time.Second), Status: rounds.StatusComplete},
		{ID: 17, Name: "Round 17", StartDate: start, EndDate: start.Add(week - time.Second), Status: rounds.StatusActive},
		{ID: 18, Name: "Round 18", StartDate: start.Add(week), EndDate: start.Add(2*week - time.Second), Status: rounds.StatusScheduled},
	}
}

// SampleLadder returns a two-team ladder.
func SampleLadder() []ladder.Entry {
	return []ladder.Entry{
		{TeamID: 500011, TeamName: "Panthers", Position: 1, Points: 20, Wins: 10},
		{TeamID: 500023, TeamName: "Tigers", Position: 2, Points: 16, Wins: 8},
	}
}

// SampleRoundStats returns stats for round keyed by the ids shared by SampleRoster and SampleLeaguePlayers.
// Clark scores 2*4 + 40*1 = 48; May scores 4 + 30 + 2*2 = 38.
func SampleRoundStats(round int) stats.RoundStats {
	return stats.RoundStats{Round: round, Players: map[string]stats.Record{
		"1": {stats.TryAssist: 2, stats.Tackle: 40},
		"5": {stats.Try: 1, stats.Tackle: 30, stats.TackleBreak: 2},
	}}
}
