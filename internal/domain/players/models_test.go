package players

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPositionsOrder(t *testing.T) {
	assert.Equal(t, []Position{Hooker, Middle, Edge, Halfback, Centre, WingFullback}, Positions())

	got := Positions()
	got[0] = "XXX"
	assert.Equal(t, Hooker, Positions()[0], "callers must not mutate the vocabulary")
}

func TestParsePosition(t *testing.T) {
	p, ok := ParsePosition(" hok ")
	assert.True(t, ok)
	assert.Equal(t, Hooker, p)

	_, ok = ParsePosition("FRF")
	assert.False(t, ok)
}

func TestPositionFromID(t *testing.T) {
	p, ok := PositionFromID(6)
	assert.True(t, ok)
	assert.Equal(t, WingFullback, p)

	_, ok = PositionFromID(0)
	assert.False(t, ok)
	_, ok = PositionFromID(7)
	assert.False(t, ok)
}

func TestPlayerScores(t *testing.T) {
	p := Player{Scores: map[int]float64{3: 40, 1: 60, 2: 50}}

	round, score, ok := p.LastScore()
	assert.True(t, ok)
	assert.Equal(t, 3, round)
	assert.Equal(t, 40.0, score)
	assert.Equal(t, 50.0, p.AverageScore())
	assert.Equal(t, []int{1, 2, 3}, p.ScoredRounds())

	_, ok = p.ScoreFor(4)
	assert.False(t, ok)

	_, _, ok = Player{}.LastScore()
	assert.False(t, ok)
	assert.Zero(t, Player{}.AverageScore())
}

func TestPlayerHasPosition(t *testing.T) {
	p := Player{Positions: []Position{Centre}, SecondaryPositions: []Position{WingFullback}}
	assert.True(t, p.HasPosition(Centre))
	assert.False(t, p.HasPosition(WingFullback))
	assert.True(t, p.HasSecondaryPosition(WingFullback))
}

func TestLeaguePlayerMatchesName(t *testing.T) {
	p := LeaguePlayer{Name: "N.Cleary", FirstName: "Nathan", LastName: "Cleary"}
	assert.True(t, p.MatchesName("cleary"))
	assert.True(t, p.MatchesName("NATH"))
	assert.False(t, p.MatchesName("hynes"))
	assert.False(t, p.MatchesName("  "))
}
