package ladder

import (
	"strings"

	"github.com/Bazz30/NRL/internal/domain/ladder"
)

// Store defines the contract for persisting and retrieving the ladder.
type Store interface {
	Ladder() []ladder.Entry
	SetLadder([]ladder.Entry)
}

// Service coordinates ladder operations using a Store.
type Service struct {
	store Store
}

// NewService constructs a Service with the provided Store.
func NewService(store Store) *Service {
	return &Service{store: store}
}

// Ladder returns the current ladder in position order.
func (s *Service) Ladder() []ladder.Entry {
	return s.store.Ladder()
}

// Team returns a team's ladder row by name, case-insensitively.
func (s *Service) Team(name string) (ladder.Entry, bool) {
	for _, e := range s.store.Ladder() {
		if strings.EqualFold(e.TeamName, strings.TrimSpace(name)) {
			return e, true
		}
	}
	return ladder.Entry{}, false
}

// ReplaceLadder swaps the in-memory ladder with a new snapshot.
func (s *Service) ReplaceLadder(items []ladder.Entry) {
	s.store.SetLadder(items)
}
