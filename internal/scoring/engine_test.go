package scoring

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Bazz30/NRL/internal/domain/stats"
)

func TestComputeFantasyPoints(t *testing.T) {
	tests := []struct {
		name string
		rec  stats.Record
		want float64
	}{
		{"nil record", nil, 0},
		{"all zero", stats.Record{stats.Try: 0, stats.Tackle: 0, stats.MetresGained: 0}, 0},
		{"single try", stats.Record{stats.Try: 1}, 4},
		{"missed tackle", stats.Record{stats.MissedTackle: 1}, -2},
		{"metres gained", stats.Record{stats.MetresGained: 10}, 1.0},
		{"kick metres", stats.Record{stats.KickMetres: 300}, 15},
		{"send off", stats.Record{stats.SendOff: 1}, -8},
		{"unweighted codes ignored", stats.Record{stats.Turnover: 3, stats.ForcedTouchFind: 2, stats.SetAttackInvolvement: 9, stats.EffectiveFirstGoal: 1}, 0},
		{"negative counts pass through", stats.Record{stats.Tackle: -3}, -3},
		{
			name: "middle forward game",
			rec: stats.Record{
				stats.Tackle:       38,
				stats.MissedTackle: 2,
				stats.MetresGained: 142,
				stats.Offload:      2,
				stats.TackleBreak:  3,
				stats.Error:        1,
				stats.TimeOnGround: 62,
			},
			// 38 - 4 + 14.2 + 2 + 6 - 2 + 6.2
			want: 60.4,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ComputeFantasyPoints(tt.rec))
		})
	}
}

func TestComputeFantasyPointsIsDeterministic(t *testing.T) {
	rec := stats.Record{
		stats.MetresGained: 123.7,
		stats.KickMetres:   411.3,
		stats.TimeOnGround: 80,
		stats.Goal:         5,
	}
	first := ComputeFantasyPoints(rec)
	for i := 0; i < 50; i++ {
		got := ComputeFantasyPoints(rec)
		require.Equal(t, math.Float64bits(first), math.Float64bits(got))
	}
}

func TestEngineUsesInjectedWeights(t *testing.T) {
	custom := Weights{w(stats.Try, "5"), w(stats.Tackle, "0.5")}
	e := New(custom)

	assert.Equal(t, 6.0, e.Points(stats.Record{stats.Try: 1, stats.Tackle: 2, stats.Goal: 4}))

	custom[0] = w(stats.Try, "100")
	assert.Equal(t, 5.0, e.Points(stats.Record{stats.Try: 1}), "engine must not see later edits to the table")
}

func TestDefaultWeightsOrder(t *testing.T) {
	codes := DefaultWeights().Codes()
	require.Len(t, codes, 21)
	assert.Equal(t, stats.Try, codes[0])
	assert.Equal(t, stats.TimeOnGround, codes[len(codes)-1])

	v, ok := DefaultWeights().Lookup(stats.KickMetres)
	require.True(t, ok)
	assert.Equal(t, "0.05", v.String())
	_, ok = DefaultWeights().Lookup(stats.Turnover)
	assert.False(t, ok)
}

func TestBreakdown(t *testing.T) {
	got := Default().Breakdown(stats.Record{stats.MetresGained: 50, stats.Try: 1, stats.Turnover: 2})
	assert.Equal(t, []Contribution{
		{Code: stats.Try, Count: 1, Points: 4},
		{Code: stats.MetresGained, Count: 50, Points: 5},
	}, got)
}

func TestNonFiniteCountsScoreNothing(t *testing.T) {
	rec := stats.Record{stats.MetresGained: math.Inf(1), stats.Tackle: math.NaN(), stats.Try: 1}
	require.NotPanics(t, func() {
		assert.Equal(t, 4.0, ComputeFantasyPoints(rec))
	})
	assert.Equal(t, []Contribution{{Code: stats.Try, Count: 1, Points: 4}}, Default().Breakdown(rec))
}

func TestRoundPointsRanksDescending(t *testing.T) {
	round := stats.RoundStats{Round: 17, Players: map[string]stats.Record{
		"a": {stats.Try: 1},
		"b": {stats.Try: 2},
		"c": {stats.Tackle: 4},
	}}
	got := Default().RoundPoints(round)
	assert.Equal(t, []PlayerPoints{
		{PlayerID: "b", Points: 8},
		{PlayerID: "a", Points: 4},
		{PlayerID: "c", Points: 4},
	}, got)
}
