package rounds

import (
	"sort"
	"strings"
	"time"
)

// Round statuses published by the fantasy feed.
const (
	StatusScheduled = "scheduled"
	StatusActive    = "active"
	StatusCurrent   = "current"
	StatusComplete  = "complete"
)

// Match is a single fixture within a round.
type Match struct {
	ID        int       `json:"id"`
	HomeTeam  string    `json:"home_team"`
	AwayTeam  string    `json:"away_team"`
	StartsAt  time.Time `json:"starts_at"`
	Status    string    `json:"status"`
	HomeScore int       `json:"home_score"`
	AwayScore int       `json:"away_score"`
	Venue     string    `json:"venue,omitempty"`
}

// Round is one round of the season.
type Round struct {
	ID        int       `json:"id"`
	Name      string    `json:"name"`
	StartDate time.Time `json:"start_date"`
	EndDate   time.Time `json:"end_date"`
	Status    string    `json:"status"`
	Matches   []Match   `json:"matches,omitempty"`
}

// Contains reports whether t falls within the round's start and end, inclusive.
func (r Round) Contains(t time.Time) bool {
	if r.StartDate.IsZero() || r.EndDate.IsZero() {
		return false
	}
	return !t.Before(r.StartDate) && !t.After(r.EndDate)
}

// Completed reports whether the round is finished as of now.
func (r Round) Completed(now time.Time) bool {
	if strings.EqualFold(r.Status, StatusComplete) {
		return true
	}
	return !r.EndDate.IsZero() && now.After(r.EndDate)
}

// Teams lists every team with a fixture in the round.
func (r Round) Teams() []string {
	seen := make(map[string]struct{}, len(r.Matches)*2)
	var out []string
	for _, m := range r.Matches {
		for _, team := range []string{m.HomeTeam, m.AwayTeam} {
			if team == "" {
				continue
			}
			if _, ok := seen[team]; ok {
				continue
			}
			seen[team] = struct{}{}
			out = append(out, team)
		}
	}
	sort.Strings(out)
	return out
}

// Current picks the round in play at now.
// A round flagged active/current by the feed wins; otherwise the round whose
// dates contain now; otherwise the next upcoming round; otherwise the last round.
func Current(all []Round, now time.Time) (Round, bool) {
	if len(all) == 0 {
		return Round{}, false
	}
	sorted := make([]Round, len(all))
	copy(sorted, all)
	sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].ID < sorted[j].ID })

	for _, r := range sorted {
		if strings.EqualFold(r.Status, StatusActive) || strings.EqualFold(r.Status, StatusCurrent) {
			return r, true
		}
	}
	for _, r := range sorted {
		if r.Contains(now) {
			return r, true
		}
	}
	for _, r := range sorted {
		if !r.StartDate.IsZero() && r.StartDate.After(now) {
			return r, true
		}
	}
	return sorted[len(sorted)-1], true
}

// Find returns the round with the given ID.
func Find(all []Round, id int) (Round, bool) {
	for _, r := range all {
		if r.ID == id {
			return r, true
		}
	}
	return Round{}, false
}
