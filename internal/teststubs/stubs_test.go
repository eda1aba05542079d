package teststubs

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Bazz30/NRL/internal/domain/players"
	"github.com/Bazz30/NRL/internal/domain/stats"
)

func TestStubProviderTracksCalls(t *testing.T) {
	boom := errors.New("boom")
	p := &StubProvider{Players: []players.LeaguePlayer{{ID: 1}}, Err: boom, Notify: make(chan struct{})}

	_, err := p.FetchPlayers(context.Background())
	assert.ErrorIs(t, err, boom)
	_, err = p.FetchRoundStats(context.Background(), 2)
	assert.ErrorIs(t, err, boom)
	assert.EqualValues(t, 2, p.Calls.Load())

	select {
	case <-p.Notify:
	default:
		t.Fatal("expected notify channel closed")
	}
}

func TestStubProviderDefaultsEmptyStats(t *testing.T) {
	p := &StubProvider{}
	rs, err := p.FetchRoundStats(context.Background(), 4)
	require.NoError(t, err)
	assert.Equal(t, 4, rs.Round)
	assert.Empty(t, rs.Players)
}

func TestStubSnapshotStore(t *testing.T) {
	s := &StubSnapshotStore{Stats: map[int]stats.RoundStats{3: {Round: 3}}}
	rs, err := s.LoadStats(3)
	require.NoError(t, err)
	assert.Equal(t, 3, rs.Round)

	_, err = s.LoadStats(4)
	assert.ErrorIs(t, err, ErrStubNotFound)

	s.LoadErr = errors.New("disk")
	_, err = s.LoadPlayers()
	assert.Error(t, err)
}

func TestStubSnapshotWriter(t *testing.T) {
	w := &StubSnapshotWriter{}
	require.NoError(t, w.WriteStats(stats.RoundStats{Round: 5}))
	_, ok := w.Round(5)
	assert.True(t, ok)

	w.Err = errors.New("write error")
	assert.Error(t, w.WriteStats(stats.RoundStats{Round: 6}))
	_, ok = w.Round(6)
	assert.False(t, ok)
}

func TestStubRounds(t *testing.T) {
	assert.Equal(t, 7, StubRounds{Current: 7}.CurrentID(1))
	assert.Equal(t, 1, StubRounds{}.CurrentID(1))
}
