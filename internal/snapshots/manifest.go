package snapshots

import (
	"encoding/json"
	"os"
	"sort"
	"time"
)

const manifestVersion = 1

// Manifest tracks snapshot metadata.
type Manifest struct {
	Version     int       `json:"version"`
	GeneratedAt time.Time `json:"generatedAt"`
	Players     KindMeta  `json:"players"`
	Rounds      KindMeta  `json:"rounds"`
	Ladder      KindMeta  `json:"ladder"`
	Stats       StatsMeta `json:"stats"`
}

// KindMeta records when a static snapshot was last written and how many items it held.
type KindMeta struct {
	Count         int       `json:"count"`
	LastRefreshed time.Time `json:"lastRefreshed"`
}

// StatsMeta lists the rounds with a stats snapshot on disk.
type StatsMeta struct {
	Rounds        []int     `json:"rounds"`
	LastRefreshed time.Time `json:"lastRefreshed"`
}

// HasRound reports whether round is listed.
func (s StatsMeta) HasRound(round int) bool {
	i := sort.SearchInts(s.Rounds, round)
	return i < len(s.Rounds) && s.Rounds[i] == round
}

// LastRefreshed returns the refresh time recorded for kind.
func (m Manifest) LastRefreshed(kind Kind) time.Time {
	switch kind {
	case KindPlayers:
		return m.Players.LastRefreshed
	case KindRounds:
		return m.Rounds.LastRefreshed
	case KindLadder:
		return m.Ladder.LastRefreshed
	case KindStats:
		return m.Stats.LastRefreshed
	default:
		return time.Time{}
	}
}

func (m *Manifest) touch(kind Kind, count int, at time.Time) {
	meta := KindMeta{Count: count, LastRefreshed: at}
	switch kind {
	case KindPlayers:
		m.Players = meta
	case KindRounds:
		m.Rounds = meta
	case KindLadder:
		m.Ladder = meta
	}
}

func (m *Manifest) addStatsRound(round int, at time.Time) {
	if !m.Stats.HasRound(round) {
		m.Stats.Rounds = append(m.Stats.Rounds, round)
		sort.Ints(m.Stats.Rounds)
	}
	m.Stats.LastRefreshed = at
}

func defaultManifest() Manifest {
	return Manifest{
		Version: manifestVersion,
		Stats:   StatsMeta{Rounds: []int{}},
	}
}

func readManifest(path string) (Manifest, error) {
	f, err := os.Open(path)
	if err != nil {
		return defaultManifest(), err
	}
	defer f.Close()
	var m Manifest
	if err := json.NewDecoder(f).Decode(&m); err != nil {
		return defaultManifest(), err
	}
	if m.Stats.Rounds == nil {
		m.Stats.Rounds = []int{}
	}
	sort.Ints(m.Stats.Rounds)
	return m, nil
}

func writeManifest(basePath string, m Manifest, now time.Time) error {
	m.Version = manifestVersion
	m.GeneratedAt = now.UTC()
	data, err := json.MarshalIndent(m, "", "  ")
	if err != nil {
		return err
	}
	return writeAtomic(ManifestPath(basePath), data)
}

func writeAtomic(path string, data []byte) error {
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return err
	}
	return os.Rename(tmp, path)
}
