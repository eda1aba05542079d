package snapshots

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadManifestDefaultsWhenMissingOrCorrupt(t *testing.T) {
	dir := t.TempDir()
	m, err := readManifest(ManifestPath(dir))
	assert.Error(t, err)
	assert.Equal(t, manifestVersion, m.Version)
	assert.NotNil(t, m.Stats.Rounds)

	require.NoError(t, os.WriteFile(ManifestPath(dir), []byte("nope"), 0o644))
	m, err = readManifest(ManifestPath(dir))
	assert.Error(t, err)
	assert.Empty(t, m.Stats.Rounds)
}

func TestManifestRoundTripSortsRounds(t *testing.T) {
	dir := t.TempDir()
	now := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)
	m := defaultManifest()
	m.Stats.Rounds = []int{9, 1, 4}
	require.NoError(t, writeManifest(dir, m, now))

	got, err := readManifest(ManifestPath(dir))
	require.NoError(t, err)
	assert.Equal(t, []int{1, 4, 9}, got.Stats.Rounds)
	assert.Equal(t, now, got.GeneratedAt)
}

func TestManifestLastRefreshedByKind(t *testing.T) {
	at := time.Date(2025, 4, 2, 8, 0, 0, 0, time.UTC)
	m := defaultManifest()
	m.touch(KindLadder, 17, at)
	m.addStatsRound(3, at)

	assert.Equal(t, at, m.LastRefreshed(KindLadder))
	assert.Equal(t, 17, m.Ladder.Count)
	assert.Equal(t, at, m.LastRefreshed(KindStats))
	assert.True(t, m.LastRefreshed(KindPlayers).IsZero())
	assert.True(t, m.LastRefreshed(Kind("bogus")).IsZero())
}

func TestParseKind(t *testing.T) {
	k, err := ParseKind(" Ladder ")
	require.NoError(t, err)
	assert.Equal(t, KindLadder, k)

	_, err = ParseKind("games")
	assert.Error(t, err)
}
