package ladder

import "sort"

// Entry is one team's row on the competition ladder.
type Entry struct {
	TeamID        int    `json:"team_id"`
	TeamName      string `json:"team_name"`
	Position      int    `json:"position"`
	Points        int    `json:"points"`
	Wins          int    `json:"wins"`
	Losses        int    `json:"losses"`
	Draws         int    `json:"draws"`
	PointsFor     int    `json:"points_for"`
	PointsAgainst int    `json:"points_against"`
}

// PointsDifference is points for minus points against.
func (e Entry) PointsDifference() int {
	return e.PointsFor - e.PointsAgainst
}

// Played is the number of completed matches.
func (e Entry) Played() int {
	return e.Wins + e.Losses + e.Draws
}

// Sort orders entries by ladder position, falling back to competition points then
// points difference when positions are missing.
func Sort(entries []Entry) {
	sort.SliceStable(entries, func(i, j int) bool {
		a, b := entries[i], entries[j]
		if a.Position > 0 && b.Position > 0 && a.Position != b.Position {
			return a.Position < b.Position
		}
		if a.Points != b.Points {
			return a.Points > b.Points
		}
		return a.PointsDifference() > b.PointsDifference()
	})
}
