package fixture

import (
	"context"
	"strconv"
	"time"

	"github.com/Bazz30/NRL/internal/domain/ladder"
	"github.com/Bazz30/NRL/internal/domain/players"
	"github.com/Bazz30/NRL/internal/domain/rounds"
	"github.com/Bazz30/NRL/internal/domain/stats"
)

const fixtureRounds = 4

// Provider returns a static league useful for local testing and bootstrapping.
type Provider struct {
	now func() time.Time
}

// New creates a fixture provider with a time source.
func New() *Provider {
	return &Provider{
		now: time.Now,
	}
}

// FetchPlayers returns a small deterministic player pool.
func (p *Provider) FetchPlayers(ctx context.Context) ([]players.LeaguePlayer, error) {
	_ = ctx
	return []players.LeaguePlayer{
		{ID: 1001, Name: "Nathan Cleary", FirstName: "Nathan", LastName: "Cleary", SquadID: 500011, Team: "Panthers", Cost: 820000, Status: "playing", Positions: []players.Position{players.Halfback}, Scores: map[int]float64{1: 84, 2: 61}, Average: 72.5, Total: 145, Games: 2},
		{ID: 1002, Name: "Erin Clark", FirstName: "Erin", LastName: "Clark", SquadID: 500032, Team: "Warriors", Cost: 787000, Status: "playing", Positions: []players.Position{players.Hooker, players.Middle}, Scores: map[int]float64{1: 57, 2: 59}, Average: 58, Total: 116, Games: 2},
		{ID: 1003, Name: "Terrell May", FirstName: "Terrell", LastName: "May", SquadID: 500023, Team: "Tigers", Cost: 981000, Status: "playing", Positions: []players.Position{players.Middle}, Scores: map[int]float64{1: 152, 2: 88}, Average: 120, Total: 240, Games: 2},
		{ID: 1004, Name: "Payne Haas", FirstName: "Payne", LastName: "Haas", SquadID: 500004, Team: "Broncos", Cost: 890000, Status: "playing", Positions: []players.Position{players.Middle}, Scores: map[int]float64{1: 49, 2: 71}, Average: 60, Total: 120, Games: 2},
		{ID: 1005, Name: "Connor Tracey", FirstName: "Connor", LastName: "Tracey", SquadID: 500010, Team: "Bulldogs", Cost: 507000, Status: "playing", Positions: []players.Position{players.WingFullback}, Scores: map[int]float64{1: 68, 2: 40}, Average: 54, Total: 108, Games: 2},
	}, nil
}

// FetchRounds returns fixtureRounds one-week rounds, with round 2 active relative to now.
func (p *Provider) FetchRounds(ctx context.Context) ([]rounds.Round, error) {
	_ = ctx
	week := 7 * 24 * time.Hour
	start := p.now().UTC().Truncate(24 * time.Hour).Add(-week)

	out := make([]rounds.Round, 0, fixtureRounds)
	for i := 1; i <= fixtureRounds; i++ {
		roundStart := start.Add(time.Duration(i-1) * week)
		status := rounds.StatusScheduled
		switch {
		case i == 1:
			status = rounds.StatusComplete
		case i == 2:
			status = rounds.StatusActive
		}
		out = append(out, rounds.Round{
			ID:        i,
			Name:      "Round " + strconv.Itoa(i),
			StartDate: roundStart,
			EndDate:   roundStart.Add(week - time.Second),
			Status:    status,
			Matches: []rounds.Match{
				{ID: i*100 + 1, HomeTeam: "Panthers", AwayTeam: "Warriors", StartsAt: roundStart.Add(20 * time.Hour), Status: status, Venue: "BlueBet Stadium"},
				{ID: i*100 + 2, HomeTeam: "Tigers", AwayTeam: "Broncos", StartsAt: roundStart.Add(44 * time.Hour), Status: status, Venue: "Leichhardt Oval"},
			},
		})
	}
	return out, nil
}

// FetchLadder returns a fixed ladder.
func (p *Provider) FetchLadder(ctx context.Context) ([]ladder.Entry, error) {
	_ = ctx
	return []ladder.Entry{
		{TeamID: 500011, TeamName: "Panthers", Position: 1, Points: 4, Wins: 2, PointsFor: 48, PointsAgainst: 22},
		{TeamID: 500004, TeamName: "Broncos", Position: 2, Points: 2, Wins: 1, Losses: 1, PointsFor: 40, PointsAgainst: 38},
		{TeamID: 500032, TeamName: "Warriors", Position: 3, Points: 2, Wins: 1, Losses: 1, PointsFor: 30, PointsAgainst: 36},
		{TeamID: 500023, TeamName: "Tigers", Position: 4, Points: 0, Losses: 2, PointsFor: 20, PointsAgainst: 42},
	}, nil
}

// FetchRoundStats returns deterministic records that vary by round.
func (p *Provider) FetchRoundStats(ctx context.Context, round int) (stats.RoundStats, error) {
	_ = ctx
	out := stats.RoundStats{Round: round, Players: map[string]stats.Record{}}
	if round < 1 || round > fixtureRounds {
		return out, nil
	}
	r := float64(round)
	out.Players["1001"] = stats.Record{stats.Try: 1, stats.Goal: 3 + r, stats.TryAssist: 1, stats.Tackle: 12, stats.KickMetres: 400, stats.TimeOnGround: 80}
	out.Players["1002"] = stats.Record{stats.Tackle: 40 + r, stats.MissedTackle: 2, stats.MetresGained: 60, stats.TimeOnGround: 80}
	out.Players["1003"] = stats.Record{stats.Tackle: 35, stats.TackleBreak: r, stats.Offload: 2, stats.MetresGained: 180, stats.Error: 1, stats.TimeOnGround: 70}
	out.Players["1004"] = stats.Record{stats.Tackle: 30, stats.MetresGained: 200 + 10*r, stats.PenaltyConceded: 1, stats.TimeOnGround: 60}
	out.Players["1005"] = stats.Record{stats.Try: r - 1, stats.LineBreak: 1, stats.TrySave: 1, stats.MetresGained: 150, stats.TimeOnGround: 80}
	return out, nil
}
