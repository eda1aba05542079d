// Package season holds the per-season lookup tables: the bye schedule and the
// position requirements. Tables are plain values passed to the resolver so
// alternate seasons can be substituted without global state.
package season

import (
	_ "embed"
	"errors"
	"fmt"
	"os"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/Bazz30/NRL/internal/domain/players"
)

//go:embed default.yaml
var defaultSeason []byte

// ErrInvalidSeason is returned when a season file fails validation.
var ErrInvalidSeason = errors.New("invalid season")

const (
	defaultFirstRound = 1
	defaultLastRound  = 27
)

// ByeSchedule maps a round number to the teams resting that round.
type ByeSchedule map[int][]string

// TeamsOnBye returns a copy of the teams on bye for round. Unknown rounds have no byes.
func (b ByeSchedule) TeamsOnBye(round int) []string {
	teams := b[round]
	out := make([]string, len(teams))
	copy(out, teams)
	return out
}

// OnBye reports whether team rests in round.
func (b ByeSchedule) OnBye(team string, round int) bool {
	for _, t := range b[round] {
		if t == team {
			return true
		}
	}
	return false
}

// Rounds lists rounds with at least one bye, ascending.
func (b ByeSchedule) Rounds() []int {
	out := make([]int, 0, len(b))
	for r, teams := range b {
		if len(teams) > 0 {
			out = append(out, r)
		}
	}
	sort.Ints(out)
	return out
}

// ByesFor lists the rounds in which team has a bye, ascending.
func (b ByeSchedule) ByesFor(team string) []int {
	var out []int
	for _, r := range b.Rounds() {
		if b.OnBye(team, r) {
			out = append(out, r)
		}
	}
	return out
}

// Requirements maps a position to the number of players needed to field it.
type Requirements map[players.Position]int

// Required returns the count for pos, 0 when the table omits it.
func (r Requirements) Required(pos players.Position) int {
	return r[pos]
}

// DefaultRequirements returns the standard lineup shape.
func DefaultRequirements() Requirements {
	return Requirements{
		players.Hooker:       1,
		players.Middle:       3,
		players.Edge:         2,
		players.Halfback:     2,
		players.Centre:       2,
		players.WingFullback: 3,
	}
}

// Season bundles the tables for one competition year.
type Season struct {
	Year         int          `yaml:"year"`
	FirstRound   int          `yaml:"first_round"`
	LastRound    int          `yaml:"last_round"`
	Requirements Requirements `yaml:"requirements"`
	Byes         ByeSchedule  `yaml:"byes"`
}

// Default returns the embedded season.
func Default() Season {
	s, err := Parse(defaultSeason)
	if err != nil {
		panic(fmt.Sprintf("embedded season invalid: %v", err))
	}
	return s
}

// Load reads a season file from path. An empty path yields the embedded default.
func Load(path string) (Season, error) {
	if strings.TrimSpace(path) == "" {
		return Default(), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return Season{}, fmt.Errorf("read season %s: %w", path, err)
	}
	s, err := Parse(data)
	if err != nil {
		return Season{}, fmt.Errorf("season %s: %w", path, err)
	}
	return s, nil
}

// Parse decodes and validates YAML season data.
func Parse(data []byte) (Season, error) {
	var s Season
	if err := yaml.Unmarshal(data, &s); err != nil {
		return Season{}, fmt.Errorf("%w: %v", ErrInvalidSeason, err)
	}
	if s.FirstRound == 0 {
		s.FirstRound = defaultFirstRound
	}
	if s.LastRound == 0 {
		s.LastRound = defaultLastRound
	}
	if len(s.Requirements) == 0 {
		s.Requirements = DefaultRequirements()
	}
	if s.Byes == nil {
		s.Byes = ByeSchedule{}
	}
	if err := s.Validate(); err != nil {
		return Season{}, err
	}
	return s, nil
}

// Validate checks round ranges, position codes and duplicate bye entries.
func (s Season) Validate() error {
	var errs []error
	if s.FirstRound < 1 || s.LastRound < s.FirstRound {
		errs = append(errs, fmt.Errorf("round range %d..%d", s.FirstRound, s.LastRound))
	}
	for pos, count := range s.Requirements {
		if _, ok := players.ParsePosition(string(pos)); !ok {
			errs = append(errs, fmt.Errorf("unknown position %q", pos))
		}
		if count < 0 {
			errs = append(errs, fmt.Errorf("negative requirement for %s", pos))
		}
	}
	for _, round := range sortedRounds(s.Byes) {
		if round < s.FirstRound || round > s.LastRound {
			errs = append(errs, fmt.Errorf("bye round %d outside %d..%d", round, s.FirstRound, s.LastRound))
		}
		seen := make(map[string]struct{})
		for _, team := range s.Byes[round] {
			if strings.TrimSpace(team) == "" {
				errs = append(errs, fmt.Errorf("round %d: blank team name", round))
				continue
			}
			if _, dup := seen[team]; dup {
				errs = append(errs, fmt.Errorf("round %d: %s listed twice", round, team))
			}
			seen[team] = struct{}{}
		}
	}
	if len(errs) == 0 {
		return nil
	}
	return fmt.Errorf("%w: %w", ErrInvalidSeason, errors.Join(errs...))
}

// Rounds lists every round number in the season.
func (s Season) Rounds() []int {
	out := make([]int, 0, s.LastRound-s.FirstRound+1)
	for r := s.FirstRound; r <= s.LastRound; r++ {
		out = append(out, r)
	}
	return out
}

// InRange reports whether round belongs to the season.
func (s Season) InRange(round int) bool {
	return round >= s.FirstRound && round <= s.LastRound
}

func sortedRounds(b ByeSchedule) []int {
	out := make([]int, 0, len(b))
	for r := range b {
		out = append(out, r)
	}
	sort.Ints(out)
	return out
}
