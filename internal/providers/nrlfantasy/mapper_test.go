package nrlfantasy

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Bazz30/NRL/internal/domain/rounds"
)

func TestMapStatus(t *testing.T) {
	cases := map[string]string{
		"complete":  rounds.StatusComplete,
		"Completed": rounds.StatusComplete,
		"playing":   rounds.StatusActive,
		"current":   rounds.StatusCurrent,
		"scheduled": rounds.StatusScheduled,
		"":          rounds.StatusScheduled,
	}
	for in, want := range cases {
		assert.Equal(t, want, mapStatus(in), in)
	}
}

func TestSquadNameFallsBackToUnknown(t *testing.T) {
	squads := map[int]squadResponse{1: {ID: 1, Name: "Storm"}, 2: {ID: 2}}
	assert.Equal(t, "Storm", squadName(squads, 1))
	assert.Equal(t, "Unknown", squadName(squads, 2))
	assert.Equal(t, "Unknown", squadName(squads, 3))
}

func TestParseTimeIgnoresGarbage(t *testing.T) {
	assert.True(t, parseTime("").IsZero())
	assert.True(t, parseTime("next tuesday").IsZero())
	assert.Equal(t, 2025, parseTime("2025-05-02").Year())
}

func TestIntKeysSkipsNonNumericKeys(t *testing.T) {
	got := intKeys(map[string]float64{"1": 10, "x": 3, "12": 40})
	assert.Equal(t, map[int]float64{1: 10, 12: 40}, got)
	assert.Nil(t, intKeys(map[string]int{}))
}
