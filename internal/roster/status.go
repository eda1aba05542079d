// Package roster derives per-round views of a fantasy roster: each player's
// participation status and the position fulfilment of the lineup.
package roster

import (
	"github.com/Bazz30/NRL/internal/domain/players"
	"github.com/Bazz30/NRL/internal/season"
)

// ResolveStatus returns a player's status for round.
// Origin selection always wins; otherwise a listed bye; otherwise Playing.
func ResolveStatus(team string, selectedForOrigin bool, round int, byes season.ByeSchedule) players.Status {
	if selectedForOrigin {
		return players.StatusOrigin
	}
	if byes.OnBye(team, round) {
		return players.StatusBye
	}
	return players.StatusPlaying
}

// StatusOf resolves p's status for round.
func StatusOf(p players.Player, round int, byes season.ByeSchedule) players.Status {
	return ResolveStatus(p.Team, p.SelectedForOrigin, round, byes)
}
