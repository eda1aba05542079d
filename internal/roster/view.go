package roster

import (
	"strings"

	"github.com/Bazz30/NRL/internal/domain/players"
	"github.com/Bazz30/NRL/internal/season"
)

// Entry pairs a roster player with their derived status for one round.
type Entry struct {
	players.Player
	Round  int            `json:"round"`
	Status players.Status `json:"status"`
}

// ResolveRoster builds a fresh view of the roster for round. Inputs are not modified.
func ResolveRoster(roster []players.Player, round int, byes season.ByeSchedule) []Entry {
	out := make([]Entry, len(roster))
	for i, p := range roster {
		out[i] = Entry{Player: p, Round: round, Status: StatusOf(p, round, byes)}
	}
	return out
}

// FilterByTeam keeps entries whose team matches, case-insensitively. An empty team keeps everything.
func FilterByTeam(entries []Entry, team string) []Entry {
	team = strings.TrimSpace(team)
	if team == "" {
		return entries
	}
	out := make([]Entry, 0, len(entries))
	for _, e := range entries {
		if strings.EqualFold(e.Team, team) {
			out = append(out, e)
		}
	}
	return out
}

// FilterByStatus keeps entries with the given status.
func FilterByStatus(entries []Entry, status players.Status) []Entry {
	out := make([]Entry, 0, len(entries))
	for _, e := range entries {
		if e.Status == status {
			out = append(out, e)
		}
	}
	return out
}

// Summary aggregates a roster view for one round.
type Summary struct {
	Round       int     `json:"round"`
	Players     int     `json:"players"`
	TotalValue  int     `json:"totalValue"`
	Playing     int     `json:"playing"`
	Bye         int     `json:"bye"`
	Origin      int     `json:"origin"`
	Captain     string  `json:"captain,omitempty"`
	ViceCaptain string  `json:"viceCaptain,omitempty"`
	RoundScore  float64 `json:"roundScore"`
	TotalPoints float64 `json:"totalPoints"`
	Complete    bool    `json:"complete"`
}

// Summarize totals a roster view. roundScore sums recorded scores for the round with the
// captain's score doubled; the vice-captain is doubled instead when the captain is not Playing.
func Summarize(entries []Entry, counts []PositionCount) Summary {
	s := Summary{Players: len(entries), Complete: AllFulfilled(counts)}
	var captain, vice *Entry
	for i := range entries {
		e := &entries[i]
		s.Round = e.Round
		s.TotalValue += e.Price
		switch e.Status {
		case players.StatusPlaying:
			s.Playing++
		case players.StatusBye:
			s.Bye++
		case players.StatusOrigin:
			s.Origin++
		}
		if e.Captain {
			captain = e
			s.Captain = e.Name
		}
		if e.ViceCaptain {
			vice = e
			s.ViceCaptain = e.Name
		}
		for _, r := range e.ScoredRounds() {
			s.TotalPoints += e.Scores[r]
		}
		if score, ok := e.ScoreFor(e.Round); ok {
			s.RoundScore += score
		}
	}

	doubled := captain
	if doubled == nil || doubled.Status != players.StatusPlaying {
		if vice != nil && vice.Status == players.StatusPlaying {
			doubled = vice
		}
	}
	if doubled != nil {
		if score, ok := doubled.ScoreFor(doubled.Round); ok {
			s.RoundScore += score
		}
	}
	return s
}
