package stats

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domainstats "github.com/Bazz30/NRL/internal/domain/stats"
	"github.com/Bazz30/NRL/internal/store"
)

type stubLoader struct {
	calls int
	rs    domainstats.RoundStats
	err   error
}

func (l *stubLoader) LoadStats(round int) (domainstats.RoundStats, error) {
	l.calls++
	_ = round
	return l.rs, l.err
}

func TestForRoundPrefersMemory(t *testing.T) {
	mem := store.NewMemoryStore()
	mem.SetRoundStats(domainstats.RoundStats{Round: 5, Players: map[string]domainstats.Record{"1": {domainstats.Try: 1}}})
	loader := &stubLoader{}
	svc := NewService(mem, loader, nil)

	rs, err := svc.ForRound(5)
	require.NoError(t, err)
	assert.Equal(t, 1.0, rs.For("1").Get(domainstats.Try))
	assert.Zero(t, loader.calls)
}

func TestForRoundLoadsAndCaches(t *testing.T) {
	mem := store.NewMemoryStore()
	loader := &stubLoader{rs: domainstats.RoundStats{Players: map[string]domainstats.Record{"7": {domainstats.Goal: 3}}}}
	svc := NewService(mem, loader, nil)

	rs, err := svc.ForRound(9)
	require.NoError(t, err)
	assert.Equal(t, 9, rs.Round)

	_, err = svc.ForRound(9)
	require.NoError(t, err)
	assert.Equal(t, 1, loader.calls)
	assert.Equal(t, []int{9}, svc.Rounds())
}

func TestForRoundMissing(t *testing.T) {
	svc := NewService(store.NewMemoryStore(), nil, nil)
	_, err := svc.ForRound(3)
	assert.True(t, errors.Is(err, ErrNoStats))

	svc = NewService(store.NewMemoryStore(), &stubLoader{err: errors.New("no file")}, nil)
	_, err = svc.ForRound(3)
	assert.True(t, errors.Is(err, ErrNoStats))
	assert.Contains(t, err.Error(), "no file")
}

func TestPoints(t *testing.T) {
	mem := store.NewMemoryStore()
	svc := NewService(mem, nil, nil)
	svc.ReplaceRound(domainstats.RoundStats{Round: 1, Players: map[string]domainstats.Record{
		"a": {domainstats.Tackle: 10},
		"b": {domainstats.Try: 3},
	}})

	got, err := svc.Points(1)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "b", got[0].PlayerID)
	assert.Equal(t, 12.0, got[0].Points)
	assert.NotNil(t, svc.Engine())

	_, err = svc.Points(2)
	assert.Error(t, err)
}
