package roster

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/Bazz30/NRL/internal/domain/players"
)

// File is the on-disk roster shape.
type File struct {
	Players []players.Player `yaml:"players" json:"players"`
}

// Load reads a roster from a YAML or JSON file and validates it.
func Load(path string) ([]players.Player, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read roster %s: %w", path, err)
	}
	return Parse(data, filepath.Ext(path))
}

// Parse decodes roster data. ext selects JSON for ".json"; anything else is YAML.
func Parse(data []byte, ext string) ([]players.Player, error) {
	var f File
	var err error
	if strings.EqualFold(ext, ".json") {
		err = json.Unmarshal(data, &f)
	} else {
		err = yaml.Unmarshal(data, &f)
	}
	if err != nil {
		return nil, fmt.Errorf("decode roster: %w", err)
	}
	for i := range f.Players {
		f.Players[i].Positions = normalizePositions(f.Players[i].Positions)
		f.Players[i].SecondaryPositions = normalizePositions(f.Players[i].SecondaryPositions)
	}
	if err := Validate(f.Players); err != nil {
		return nil, err
	}
	return f.Players, nil
}

func normalizePositions(in []players.Position) []players.Position {
	for i, p := range in {
		if parsed, ok := players.ParsePosition(string(p)); ok {
			in[i] = parsed
		}
	}
	return in
}
