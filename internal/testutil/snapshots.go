package testutil

import (
	"testing"

	"github.com/Bazz30/NRL/internal/snapshots"
)

// NewTempWriter returns a snapshot writer rooted in a temp dir.
func NewTempWriter(t *testing.T) *snapshots.Writer {
	t.Helper()
	return snapshots.NewWriter(t.TempDir(), nil)
}

// WriteStatsSnapshot writes SampleRoundStats for round.
func WriteStatsSnapshot(t *testing.T, w *snapshots.Writer, round int) {
	t.Helper()
	if err := w.WriteStats(SampleRoundStats(round)); err != nil {
		t.Fatalf("failed to write stats snapshot %d: %v", round, err)
	}
}
