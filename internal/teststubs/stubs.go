package teststubs

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"

	"github.com/Bazz30/NRL/internal/domain/ladder"
	"github.com/Bazz30/NRL/internal/domain/players"
	"github.com/Bazz30/NRL/internal/domain/rounds"
	"github.com/Bazz30/NRL/internal/domain/stats"
)

// ErrStubNotFound is returned by stubs when nothing is configured for a key.
var ErrStubNotFound = errors.New("stub: not found")

// StubProvider is a test double for providers.DataProvider.
type StubProvider struct {
	Players []players.LeaguePlayer
	Rounds  []rounds.Round
	Ladder  []ladder.Entry
	Stats   map[int]stats.RoundStats
	Err     error
	Calls   atomic.Int32
	// Notify is closed on the first call.
	Notify chan struct{}

	notifyOnce sync.Once
}

func (s *StubProvider) touch() {
	if s.Notify != nil {
		s.notifyOnce.Do(func() { close(s.Notify) })
	}
	s.Calls.Add(1)
}

// FetchPlayers returns configured players and error while tracking calls.
func (s *StubProvider) FetchPlayers(ctx context.Context) ([]players.LeaguePlayer, error) {
	_ = ctx
	s.touch()
	return s.Players, s.Err
}

// FetchRounds returns configured rounds and error while tracking calls.
func (s *StubProvider) FetchRounds(ctx context.Context) ([]rounds.Round, error) {
	_ = ctx
	s.touch()
	return s.Rounds, s.Err
}

// FetchLadder returns configured ladder entries and error while tracking calls.
func (s *StubProvider) FetchLadder(ctx context.Context) ([]ladder.Entry, error) {
	_ = ctx
	s.touch()
	return s.Ladder, s.Err
}

// FetchRoundStats returns stats for round, or an empty RoundStats when none are configured.
func (s *StubProvider) FetchRoundStats(ctx context.Context, round int) (stats.RoundStats, error) {
	_ = ctx
	s.touch()
	if s.Err != nil {
		return stats.RoundStats{}, s.Err
	}
	if rs, ok := s.Stats[round]; ok {
		return rs, nil
	}
	return stats.RoundStats{Round: round, Players: map[string]stats.Record{}}, nil
}

// StubSnapshotStore is a test double for snapshots.Store.
type StubSnapshotStore struct {
	Players []players.LeaguePlayer
	Rounds  []rounds.Round
	Ladder  []ladder.Entry
	Stats   map[int]stats.RoundStats
	LoadErr error
}

// LoadPlayers returns the configured players.
func (s *StubSnapshotStore) LoadPlayers() ([]players.LeaguePlayer, error) {
	if s.LoadErr != nil {
		return nil, s.LoadErr
	}
	return s.Players, nil
}

// LoadRounds returns the configured rounds.
func (s *StubSnapshotStore) LoadRounds() ([]rounds.Round, error) {
	if s.LoadErr != nil {
		return nil, s.LoadErr
	}
	return s.Rounds, nil
}

// LoadLadder returns the configured ladder.
func (s *StubSnapshotStore) LoadLadder() ([]ladder.Entry, error) {
	if s.LoadErr != nil {
		return nil, s.LoadErr
	}
	return s.Ladder, nil
}

// LoadStats returns stats for round, or ErrStubNotFound.
func (s *StubSnapshotStore) LoadStats(round int) (stats.RoundStats, error) {
	if s.LoadErr != nil {
		return stats.RoundStats{}, s.LoadErr
	}
	rs, ok := s.Stats[round]
	if !ok {
		return stats.RoundStats{}, ErrStubNotFound
	}
	return rs, nil
}

// StubSnapshotWriter is a test double for poller.SnapshotWriter.
type StubSnapshotWriter struct {
	mu      sync.Mutex
	Written map[int]stats.RoundStats
	Err     error
}

// WriteStats records the snapshot for verification in tests.
func (w *StubSnapshotWriter) WriteStats(rs stats.RoundStats) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.Err != nil {
		return w.Err
	}
	if w.Written == nil {
		w.Written = make(map[int]stats.RoundStats)
	}
	w.Written[rs.Round] = rs
	return nil
}

// Round returns the snapshot written for round.
func (w *StubSnapshotWriter) Round(round int) (stats.RoundStats, bool) {
	w.mu.Lock()
	defer w.mu.Unlock()
	rs, ok := w.Written[round]
	return rs, ok
}

// StubRounds is a fixed current-round source.
type StubRounds struct {
	Current int
}

// CurrentID returns Current, or fallback when Current is unset.
func (s StubRounds) CurrentID(fallback int) int {
	if s.Current > 0 {
		return s.Current
	}
	return fallback
}
