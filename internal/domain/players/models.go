package players

import (
	"sort"
	"strings"

	"github.com/Bazz30/NRL/internal/domain/stats"
)

// Position is a roster slot category.
type Position string

const (
	Hooker        Position = "HOK"
	Middle        Position = "MID"
	Edge          Position = "EDG"
	Halfback      Position = "HLF"
	Centre        Position = "CTR"
	WingFullback  Position = "WFB"
	positionCount          = 6
)

var positionOrder = [positionCount]Position{Hooker, Middle, Edge, Halfback, Centre, WingFullback}

// Positions returns the position vocabulary in display order.
func Positions() []Position {
	out := make([]Position, positionCount)
	copy(out, positionOrder[:])
	return out
}

// ParsePosition normalizes a position code.
func ParsePosition(raw string) (Position, bool) {
	code := Position(strings.ToUpper(strings.TrimSpace(raw)))
	for _, p := range positionOrder {
		if p == code {
			return p, true
		}
	}
	return "", false
}

// PositionFromID maps the numeric position IDs used by the fantasy feed (1..6).
func PositionFromID(id int) (Position, bool) {
	if id < 1 || id > positionCount {
		return "", false
	}
	return positionOrder[id-1], true
}

// Status is a player's participation for a round. It is always derived, never stored.
type Status string

const (
	StatusPlaying Status = "Playing"
	StatusBye     Status = "Bye"
	StatusOrigin  Status = "Origin"
)

// Player is an entry in the user's roster. ID is the NRL Fantasy feed player ID;
// round stats are keyed by it.
type Player struct {
	ID                 string          `json:"id" yaml:"id"`
	Name               string          `json:"name" yaml:"name"`
	Team               string          `json:"team" yaml:"team"`
	Positions          []Position      `json:"positions" yaml:"positions"`
	SecondaryPositions []Position      `json:"secondaryPositions,omitempty" yaml:"secondary_positions"`
	Price              int             `json:"price" yaml:"price"`
	Captain            bool            `json:"captain" yaml:"captain"`
	ViceCaptain        bool            `json:"viceCaptain" yaml:"vice_captain"`
	Emergency          bool            `json:"emergency" yaml:"emergency"`
	SelectedForOrigin  bool            `json:"selectedForOrigin" yaml:"selected_for_origin"`
	SelectedRound      int             `json:"selectedRound,omitempty" yaml:"selected_round"`
	Scores             map[int]float64 `json:"scores,omitempty" yaml:"scores"`
}

// HasPosition reports whether pos is one of the player's primary positions.
func (p Player) HasPosition(pos Position) bool {
	return containsPosition(p.Positions, pos)
}

// HasSecondaryPosition reports whether pos is one of the player's secondary positions.
func (p Player) HasSecondaryPosition(pos Position) bool {
	return containsPosition(p.SecondaryPositions, pos)
}

// ScoreFor returns the recorded score for round.
func (p Player) ScoreFor(round int) (float64, bool) {
	score, ok := p.Scores[round]
	return score, ok
}

// LastScore returns the score from the latest round with a recorded score.
func (p Player) LastScore() (int, float64, bool) {
	rounds := p.ScoredRounds()
	if len(rounds) == 0 {
		return 0, 0, false
	}
	last := rounds[len(rounds)-1]
	return last, p.Scores[last], true
}

// AverageScore is the mean over recorded rounds, 0 when none.
func (p Player) AverageScore() float64 {
	if len(p.Scores) == 0 {
		return 0
	}
	var total float64
	for _, r := range p.ScoredRounds() {
		total += p.Scores[r]
	}
	return total / float64(len(p.Scores))
}

// ScoredRounds lists rounds with a recorded score in ascending order.
func (p Player) ScoredRounds() []int {
	rounds := make([]int, 0, len(p.Scores))
	for r := range p.Scores {
		rounds = append(rounds, r)
	}
	sort.Ints(rounds)
	return rounds
}

func containsPosition(list []Position, pos Position) bool {
	for _, p := range list {
		if p == pos {
			return true
		}
	}
	return false
}

// LeaguePlayer is an entry in the league-wide player pool.
type LeaguePlayer struct {
	ID        int             `json:"id"`
	Name      string          `json:"name"`
	FirstName string          `json:"firstName"`
	LastName  string          `json:"lastName"`
	SquadID   int             `json:"squadId"`
	Team      string          `json:"team"`
	Cost      int             `json:"cost"`
	Status    string          `json:"status"`
	Positions []Position      `json:"positions"`
	Prices    map[int]int     `json:"prices,omitempty"`
	Scores    map[int]float64 `json:"scores,omitempty"`
	Average   float64         `json:"averagePoints"`
	Total     float64         `json:"totalPoints"`
	Games     int             `json:"gamesPlayed"`
}

// MatchesName reports whether query is a case-insensitive substring of any of the player's names.
func (p LeaguePlayer) MatchesName(query string) bool {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return false
	}
	for _, name := range []string{p.Name, p.FirstName, p.LastName} {
		if strings.Contains(strings.ToLower(name), q) {
			return true
		}
	}
	return false
}

// WithRoundStats is a pool player enriched with one round's stats and fantasy points.
type WithRoundStats struct {
	LeaguePlayer
	Round             int          `json:"round"`
	CurrentRoundStats stats.Record `json:"currentRoundStats,omitempty"`
	FantasyPoints     float64      `json:"fantasyPoints"`
}
