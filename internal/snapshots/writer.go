package snapshots

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"sync"
	"time"

	"github.com/Bazz30/NRL/internal/domain/ladder"
	"github.com/Bazz30/NRL/internal/domain/players"
	"github.com/Bazz30/NRL/internal/domain/rounds"
	"github.com/Bazz30/NRL/internal/domain/stats"
	"github.com/Bazz30/NRL/internal/metrics"
)

var errWriterNotConfigured = errors.New("snapshot writer not configured")

// Writer persists snapshots and keeps manifest.json current.
type Writer struct {
	basePath string
	recorder *metrics.Recorder
	now      func() time.Time

	mu sync.Mutex
}

// NewWriter constructs a writer rooted at basePath. recorder may be nil.
func NewWriter(basePath string, recorder *metrics.Recorder) *Writer {
	return &Writer{
		basePath: basePath,
		recorder: recorder,
		now:      time.Now,
	}
}

// BasePath exposes the writer root path.
func (w *Writer) BasePath() string {
	if w == nil {
		return ""
	}
	return w.basePath
}

// Manifest reads the current manifest, returning an empty one when absent.
func (w *Writer) Manifest() Manifest {
	if w == nil {
		return defaultManifest()
	}
	m, _ := readManifest(ManifestPath(w.basePath))
	return m
}

// WritePlayers writes players.json sorted by player ID.
func (w *Writer) WritePlayers(items []players.LeaguePlayer) error {
	sorted := append([]players.LeaguePlayer(nil), items...)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].ID < sorted[j].ID })
	return w.writeStatic(KindPlayers, sorted, len(sorted))
}

// WriteRounds writes rounds.json sorted by round ID.
func (w *Writer) WriteRounds(items []rounds.Round) error {
	sorted := append([]rounds.Round(nil), items...)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].ID < sorted[j].ID })
	return w.writeStatic(KindRounds, sorted, len(sorted))
}

// WriteLadder writes ladder.json in ladder order.
func (w *Writer) WriteLadder(items []ladder.Entry) error {
	sorted := append([]ladder.Entry(nil), items...)
	ladder.Sort(sorted)
	return w.writeStatic(KindLadder, sorted, len(sorted))
}

// WriteStats writes stats/{round}.json.
func (w *Writer) WriteStats(rs stats.RoundStats) error {
	if w == nil {
		return errWriterNotConfigured
	}
	if rs.Round <= 0 {
		return fmt.Errorf("stats snapshot: invalid round %d", rs.Round)
	}
	if rs.Players == nil {
		rs.Players = map[string]stats.Record{}
	}

	w.mu.Lock()
	defer w.mu.Unlock()
	err := w.writeFile(StatsPath(w.basePath, rs.Round), rs, func(m *Manifest, at time.Time) {
		m.addStatsRound(rs.Round, at)
	})
	w.recorder.RecordSnapshotWrite(string(KindStats), err)
	return err
}

func (w *Writer) writeStatic(kind Kind, payload any, count int) error {
	if w == nil {
		return errWriterNotConfigured
	}
	w.mu.Lock()
	defer w.mu.Unlock()
	err := w.writeFile(KindPath(w.basePath, kind), payload, func(m *Manifest, at time.Time) {
		m.touch(kind, count, at)
	})
	w.recorder.RecordSnapshotWrite(string(kind), err)
	return err
}

// writeFile skips the rename when the bytes on disk already match but still
// refreshes the manifest so refresh cadence is honored.
func (w *Writer) writeFile(target string, payload any, update func(*Manifest, time.Time)) error {
	if w.basePath == "" {
		return errWriterNotConfigured
	}
	if err := os.MkdirAll(filepath.Dir(target), 0o755); err != nil {
		return err
	}
	data, err := json.MarshalIndent(payload, "", "  ")
	if err != nil {
		return err
	}

	existing, readErr := os.ReadFile(target)
	if readErr != nil || !bytes.Equal(existing, data) {
		if err := writeAtomic(target, data); err != nil {
			return err
		}
	}

	now := w.now().UTC()
	m, _ := readManifest(ManifestPath(w.basePath))
	update(&m, now)
	return writeManifest(w.basePath, m, now)
}
