package roster

import (
	"github.com/Bazz30/NRL/internal/domain/players"
	"github.com/Bazz30/NRL/internal/season"
)

// PositionCount reports fulfilment of one position for a round.
type PositionCount struct {
	Position         players.Position `json:"position"`
	PlayingPrimary   int              `json:"playingPrimary"`
	PlayingSecondary int              `json:"playingSecondary"`
	TotalPrimary     int              `json:"totalPrimary"`
	TotalSecondary   int              `json:"totalSecondary"`
	Required         int              `json:"required"`
	Fulfilled        bool             `json:"fulfilled"`
}

// ComputePositionCounts returns one row per position in vocabulary order.
// Only Playing players count toward the playing columns and fulfilment.
func ComputePositionCounts(roster []players.Player, reqs season.Requirements, round int, byes season.ByeSchedule) []PositionCount {
	positions := players.Positions()
	rows := make([]PositionCount, len(positions))
	index := make(map[players.Position]int, len(positions))
	for i, pos := range positions {
		rows[i] = PositionCount{Position: pos, Required: reqs.Required(pos)}
		index[pos] = i
	}

	for _, p := range roster {
		playing := StatusOf(p, round, byes) == players.StatusPlaying
		for _, pos := range uniquePositions(p.Positions) {
			i, ok := index[pos]
			if !ok {
				continue
			}
			rows[i].TotalPrimary++
			if playing {
				rows[i].PlayingPrimary++
			}
		}
		for _, pos := range uniquePositions(p.SecondaryPositions) {
			i, ok := index[pos]
			if !ok {
				continue
			}
			rows[i].TotalSecondary++
			if playing {
				rows[i].PlayingSecondary++
			}
		}
	}

	for i := range rows {
		rows[i].Fulfilled = rows[i].PlayingPrimary >= rows[i].Required
	}
	return rows
}

// AllFulfilled reports whether every row is fulfilled.
func AllFulfilled(rows []PositionCount) bool {
	for _, r := range rows {
		if !r.Fulfilled {
			return false
		}
	}
	return true
}

func uniquePositions(in []players.Position) []players.Position {
	if len(in) < 2 {
		return in
	}
	out := make([]players.Position, 0, len(in))
	seen := make(map[players.Position]struct{}, len(in))
	for _, p := range in {
		if _, ok := seen[p]; ok {
			continue
		}
		seen[p] = struct{}{}
		out = append(out, p)
	}
	return out
}
