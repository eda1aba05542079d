package snapshots

import (
	"fmt"
	"path/filepath"
	"strconv"
	"strings"
)

// Kind names a snapshot family.
type Kind string

const (
	KindPlayers Kind = "players"
	KindRounds  Kind = "rounds"
	KindLadder  Kind = "ladder"
	KindStats   Kind = "stats"
)

const manifestFile = "manifest.json"

// Kinds lists every snapshot kind in refresh order.
func Kinds() []Kind {
	return []Kind{KindPlayers, KindRounds, KindLadder, KindStats}
}

// ParseKind normalizes a kind name. "all" and "" are not kinds; callers handle them.
func ParseKind(raw string) (Kind, error) {
	k := Kind(strings.ToLower(strings.TrimSpace(raw)))
	for _, known := range Kinds() {
		if k == known {
			return k, nil
		}
	}
	return "", fmt.Errorf("unknown snapshot kind %q", raw)
}

// KindPath is the file for a static kind: {base}/{kind}.json.
func KindPath(basePath string, kind Kind) string {
	return filepath.Join(basePath, string(kind)+".json")
}

// StatsPath is the per-round stats file: {base}/stats/{round}.json.
func StatsPath(basePath string, round int) string {
	return filepath.Join(basePath, string(KindStats), strconv.Itoa(round)+".json")
}

// ManifestPath is the manifest file under basePath.
func ManifestPath(basePath string) string {
	return filepath.Join(basePath, manifestFile)
}
