package roster

import (
	"errors"
	"fmt"
	"strings"

	"github.com/Bazz30/NRL/internal/domain/players"
)

// ErrInvalidPlayer marks a roster entry that breaks the data model.
var ErrInvalidPlayer = errors.New("invalid player")

// ValidatePlayer checks identity, positions and price.
func ValidatePlayer(p players.Player) error {
	var problems []string
	if strings.TrimSpace(p.ID) == "" {
		problems = append(problems, "missing id")
	}
	if strings.TrimSpace(p.Name) == "" {
		problems = append(problems, "missing name")
	}
	if strings.TrimSpace(p.Team) == "" {
		problems = append(problems, "missing team")
	}
	if len(p.Positions) == 0 {
		problems = append(problems, "no primary position")
	}
	for _, pos := range p.Positions {
		if _, ok := players.ParsePosition(string(pos)); !ok {
			problems = append(problems, fmt.Sprintf("unknown position %q", pos))
		}
	}
	for _, pos := range p.SecondaryPositions {
		if _, ok := players.ParsePosition(string(pos)); !ok {
			problems = append(problems, fmt.Sprintf("unknown secondary position %q", pos))
		}
		if p.HasPosition(pos) {
			problems = append(problems, fmt.Sprintf("secondary position %s duplicates primary", pos))
		}
	}
	if p.Price <= 0 {
		problems = append(problems, "price must be positive")
	}
	if len(problems) == 0 {
		return nil
	}
	label := p.ID
	if label == "" {
		label = p.Name
	}
	return fmt.Errorf("%w %s: %s", ErrInvalidPlayer, label, strings.Join(problems, "; "))
}

// Validate checks every player plus roster-wide rules: unique IDs and at most one
// captain and vice-captain.
func Validate(roster []players.Player) error {
	var errs []error
	seen := make(map[string]struct{}, len(roster))
	captains, vices := 0, 0
	for _, p := range roster {
		if err := ValidatePlayer(p); err != nil {
			errs = append(errs, err)
		}
		if p.ID != "" {
			if _, dup := seen[p.ID]; dup {
				errs = append(errs, fmt.Errorf("%w %s: duplicate id", ErrInvalidPlayer, p.ID))
			}
			seen[p.ID] = struct{}{}
		}
		if p.Captain {
			captains++
		}
		if p.ViceCaptain {
			vices++
		}
	}
	if captains > 1 {
		errs = append(errs, fmt.Errorf("%w: %d captains", ErrInvalidPlayer, captains))
	}
	if vices > 1 {
		errs = append(errs, fmt.Errorf("%w: %d vice-captains", ErrInvalidPlayer, vices))
	}
	return errors.Join(errs...)
}
