package season

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Bazz30/NRL/internal/domain/players"
)

func TestDefaultSeason(t *testing.T) {
	s := Default()

	assert.Equal(t, 1, s.FirstRound)
	assert.Equal(t, 27, s.LastRound)
	assert.Equal(t, DefaultRequirements(), s.Requirements)
	assert.Equal(t, []string{"Roosters"}, s.Byes.TeamsOnBye(17))
	assert.Len(t, s.Byes.TeamsOnBye(12), 7)
	assert.Empty(t, s.Byes.TeamsOnBye(1))
	assert.Equal(t, []int{10, 14, 17}, s.Byes.ByesFor("Roosters"))
}

func TestByeScheduleUnknownRound(t *testing.T) {
	b := ByeSchedule{17: {"Roosters"}}
	assert.False(t, b.OnBye("Roosters", 99))
	assert.False(t, b.OnBye("Roosters", -1))
	assert.True(t, b.OnBye("Roosters", 17))
	assert.Empty(t, b.TeamsOnBye(99))
}

func TestTeamsOnByeReturnsCopy(t *testing.T) {
	b := ByeSchedule{17: {"Roosters"}}
	got := b.TeamsOnBye(17)
	got[0] = "Storm"
	assert.Equal(t, "Roosters", b[17][0])
}

func TestRoundsSkipsEmpty(t *testing.T) {
	b := ByeSchedule{3: {}, 2: {"Eels"}, 1: {"Storm"}}
	assert.Equal(t, []int{1, 2}, b.Rounds())
}

func TestRequirementsMissingIsZero(t *testing.T) {
	r := Requirements{players.Hooker: 1}
	assert.Equal(t, 1, r.Required(players.Hooker))
	assert.Zero(t, r.Required(players.Middle))
}

func TestParseFillsDefaults(t *testing.T) {
	s, err := Parse([]byte("year: 2026\nbyes:\n  4: [Storm]\n"))
	require.NoError(t, err)
	assert.Equal(t, 2026, s.Year)
	assert.Equal(t, DefaultRequirements(), s.Requirements)
	assert.True(t, s.Byes.OnBye("Storm", 4))
	assert.Len(t, s.Rounds(), 27)
	assert.True(t, s.InRange(27))
	assert.False(t, s.InRange(28))
}

func TestParseRejectsInvalid(t *testing.T) {
	tests := []struct {
		name string
		yaml string
	}{
		{"bad yaml", "byes: ["},
		{"unknown position", "requirements:\n  FRF: 2\n"},
		{"negative requirement", "requirements:\n  HOK: -1\n"},
		{"round out of range", "byes:\n  40: [Storm]\n"},
		{"duplicate team", "byes:\n  4: [Storm, Storm]\n"},
		{"blank team", "byes:\n  4: ['']\n"},
		{"inverted range", "first_round: 10\nlast_round: 2\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.yaml))
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrInvalidSeason))
		})
	}
}

func TestLoad(t *testing.T) {
	s, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, 27, s.LastRound)

	path := filepath.Join(t.TempDir(), "season.yaml")
	require.NoError(t, os.WriteFile(path, []byte("byes:\n  17: [Storm]\n"), 0o644))
	s, err = Load(path)
	require.NoError(t, err)
	assert.True(t, s.Byes.OnBye("Storm", 17))
	assert.False(t, s.Byes.OnBye("Roosters", 17))

	_, err = Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}
