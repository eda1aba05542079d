package snapshots

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"github.com/Bazz30/NRL/internal/domain/ladder"
	"github.com/Bazz30/NRL/internal/domain/players"
	"github.com/Bazz30/NRL/internal/domain/rounds"
	"github.com/Bazz30/NRL/internal/domain/stats"
)

// ErrSnapshotNotFound is returned when the requested snapshot file does not exist.
var ErrSnapshotNotFound = errors.New("snapshot not found")

// Store defines how snapshots are loaded.
type Store interface {
	LoadPlayers() ([]players.LeaguePlayer, error)
	LoadRounds() ([]rounds.Round, error)
	LoadLadder() ([]ladder.Entry, error)
	LoadStats(round int) (stats.RoundStats, error)
}

// FSStore loads snapshots from the filesystem.
type FSStore struct {
	basePath string
}

// NewFSStore constructs an FS-backed snapshot store rooted at basePath.
func NewFSStore(basePath string) *FSStore {
	return &FSStore{basePath: basePath}
}

// LoadPlayers reads players.json.
func (s *FSStore) LoadPlayers() ([]players.LeaguePlayer, error) {
	var out []players.LeaguePlayer
	if err := s.decode(KindPath(s.root(), KindPlayers), &out); err != nil {
		return nil, err
	}
	return out, nil
}

// LoadRounds reads rounds.json.
func (s *FSStore) LoadRounds() ([]rounds.Round, error) {
	var out []rounds.Round
	if err := s.decode(KindPath(s.root(), KindRounds), &out); err != nil {
		return nil, err
	}
	return out, nil
}

// LoadLadder reads ladder.json.
func (s *FSStore) LoadLadder() ([]ladder.Entry, error) {
	var out []ladder.Entry
	if err := s.decode(KindPath(s.root(), KindLadder), &out); err != nil {
		return nil, err
	}
	return out, nil
}

// LoadStats reads stats/{round}.json.
func (s *FSStore) LoadStats(round int) (stats.RoundStats, error) {
	if round <= 0 {
		return stats.RoundStats{}, fmt.Errorf("stats snapshot: invalid round %d", round)
	}
	var out stats.RoundStats
	if err := s.decode(StatsPath(s.root(), round), &out); err != nil {
		return stats.RoundStats{}, err
	}
	if out.Round == 0 {
		out.Round = round
	}
	return out, nil
}

// StatsRounds lists rounds that have a stats file on disk, ascending.
func (s *FSStore) StatsRounds() ([]int, error) {
	entries, err := os.ReadDir(filepath.Join(s.root(), string(KindStats)))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return []int{}, nil
		}
		return nil, err
	}
	out := make([]int, 0, len(entries))
	for _, e := range entries {
		name := e.Name()
		if e.IsDir() || filepath.Ext(name) != ".json" {
			continue
		}
		if n, err := strconv.Atoi(strings.TrimSuffix(name, ".json")); err == nil && n > 0 {
			out = append(out, n)
		}
	}
	sort.Ints(out)
	return out, nil
}

// HasStats reports whether a stats snapshot exists for round.
func (s *FSStore) HasStats(round int) bool {
	if s == nil || s.basePath == "" || round <= 0 {
		return false
	}
	_, err := os.Stat(StatsPath(s.basePath, round))
	return err == nil
}

func (s *FSStore) root() string {
	if s == nil {
		return ""
	}
	return s.basePath
}

func (s *FSStore) decode(path string, payload any) error {
	if s == nil || s.basePath == "" {
		return errors.New("snapshot store not configured")
	}
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("%w: %s", ErrSnapshotNotFound, filepath.Base(path))
		}
		return err
	}
	defer f.Close()
	if err := json.NewDecoder(f).Decode(payload); err != nil {
		return fmt.Errorf("decode %s: %w", filepath.Base(path), err)
	}
	return nil
}
