package nrlfantasy

import (
	"strconv"
	"strings"
	"time"

	"github.com/Bazz30/NRL/internal/domain/ladder"
	"github.com/Bazz30/NRL/internal/domain/players"
	"github.com/Bazz30/NRL/internal/domain/rounds"
	"github.com/Bazz30/NRL/internal/domain/stats"
	"github.com/Bazz30/NRL/internal/timeutil"
)

func mapPlayer(p playerResponse, squads map[int]squadResponse) players.LeaguePlayer {
	positions := make([]players.Position, 0, len(p.Positions))
	for _, id := range p.Positions {
		if pos, ok := players.PositionFromID(id); ok {
			positions = append(positions, pos)
		}
	}
	return players.LeaguePlayer{
		ID:        p.ID,
		Name:      strings.TrimSpace(p.FirstName + " " + p.LastName),
		FirstName: p.FirstName,
		LastName:  p.LastName,
		SquadID:   p.SquadID,
		Team:      squadName(squads, p.SquadID),
		Cost:      p.Cost,
		Status:    p.Status,
		Positions: positions,
		Prices:    intKeys(p.Stats.Prices),
		Scores:    intKeys(p.Stats.Scores),
		Average:   p.Stats.AvgPoints,
		Total:     p.Stats.TotalPoints,
		Games:     p.Stats.GamesPlayed,
	}
}

func mapRound(r roundResponse, squads map[int]squadResponse) rounds.Round {
	out := rounds.Round{
		ID:        r.ID,
		Name:      "Round " + strconv.Itoa(r.ID),
		StartDate: parseTime(r.Start),
		EndDate:   parseTime(r.End),
		Status:    mapStatus(r.Status),
	}
	for _, g := range r.Games {
		out.Matches = append(out.Matches, rounds.Match{
			ID:        g.ID,
			HomeTeam:  squadName(squads, g.HomeSquadID),
			AwayTeam:  squadName(squads, g.AwaySquadID),
			StartsAt:  parseTime(g.Date),
			Status:    mapStatus(g.Status),
			HomeScore: g.HomeScore,
			AwayScore: g.AwayScore,
			Venue:     g.VenueName,
		})
	}
	return out
}

func mapLadderEntry(e ladderResponse, squads map[int]squadResponse) ladder.Entry {
	return ladder.Entry{
		TeamID:        e.SquadID,
		TeamName:      squadName(squads, e.SquadID),
		Position:      e.Position,
		Points:        e.Points,
		Wins:          e.Wins,
		Losses:        e.Losses,
		Draws:         e.Draws,
		PointsFor:     e.PointsFor,
		PointsAgainst: e.PointsAgainst,
	}
}

func mapRoundStats(raw []playerResponse, round int) stats.RoundStats {
	key := strconv.Itoa(round)
	out := stats.RoundStats{Round: round, Players: make(map[string]stats.Record)}
	for _, p := range raw {
		codes, ok := p.Stats.RoundStats[key]
		if !ok || len(codes) == 0 {
			continue
		}
		rec := make(stats.Record, len(codes))
		for code, count := range codes {
			rec[stats.Code(strings.ToUpper(strings.TrimSpace(code)))] = count
		}
		out.Players[strconv.Itoa(p.ID)] = rec
	}
	return out
}

func mapStatus(status string) string {
	switch strings.ToLower(strings.TrimSpace(status)) {
	case "complete", "completed", "final", "post":
		return rounds.StatusComplete
	case "active", "playing", "live":
		return rounds.StatusActive
	case "current":
		return rounds.StatusCurrent
	default:
		return rounds.StatusScheduled
	}
}

func squadName(squads map[int]squadResponse, id int) string {
	if s, ok := squads[id]; ok && s.Name != "" {
		return s.Name
	}
	return "Unknown"
}

// parseTime interprets zone-less feed timestamps as Sydney local time.
func parseTime(value string) time.Time {
	if strings.TrimSpace(value) == "" {
		return time.Time{}
	}
	t, err := timeutil.ParseTimestamp(value)
	if err != nil {
		return time.Time{}
	}
	return t
}

func intKeys[V int | float64](in map[string]V) map[int]V {
	if len(in) == 0 {
		return nil
	}
	out := make(map[int]V, len(in))
	for k, v := range in {
		if n, err := strconv.Atoi(k); err == nil {
			out[n] = v
		}
	}
	return out
}
