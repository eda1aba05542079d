package rounds

import (
	"time"

	"github.com/Bazz30/NRL/internal/domain/rounds"
)

// Store defines the contract for persisting and retrieving rounds.
type Store interface {
	ListRounds() []rounds.Round
	SetRounds([]rounds.Round)
}

// Service coordinates round lookups using a Store.
type Service struct {
	store Store
	now   func() time.Time
}

// NewService constructs a Service with the provided Store.
func NewService(store Store) *Service {
	return &Service{store: store, now: time.Now}
}

// SetClock overrides the time source used to pick the current round.
func (s *Service) SetClock(now func() time.Time) {
	if now != nil {
		s.now = now
	}
}

// Rounds returns every known round ordered by ID.
func (s *Service) Rounds() []rounds.Round {
	return s.store.ListRounds()
}

// Round returns one round by ID.
func (s *Service) Round(id int) (rounds.Round, bool) {
	return rounds.Find(s.store.ListRounds(), id)
}

// Current returns the round in play now.
func (s *Service) Current() (rounds.Round, bool) {
	return rounds.Current(s.store.ListRounds(), s.now())
}

// CurrentID returns the current round number, or fallback when no rounds are loaded.
func (s *Service) CurrentID(fallback int) int {
	if r, ok := s.Current(); ok {
		return r.ID
	}
	return fallback
}

// Completed lists rounds finished as of now.
func (s *Service) Completed() []rounds.Round {
	now := s.now()
	var out []rounds.Round
	for _, r := range s.store.ListRounds() {
		if r.Completed(now) {
			out = append(out, r)
		}
	}
	return out
}

// ReplaceRounds swaps the in-memory rounds with a new snapshot.
func (s *Service) ReplaceRounds(items []rounds.Round) {
	s.store.SetRounds(items)
}
