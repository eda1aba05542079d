// Package scoring converts round stat records into fantasy points.
package scoring

import (
	"math"
	"sort"

	"github.com/shopspring/decimal"

	"github.com/Bazz30/NRL/internal/domain/stats"
)

// Engine scores stat records against an immutable weight table.
// It holds no mutable state and is safe for concurrent use.
type Engine struct {
	weights Weights
}

// New builds an engine over a copy of weights.
func New(weights Weights) *Engine {
	cp := make(Weights, len(weights))
	copy(cp, weights)
	return &Engine{weights: cp}
}

var defaultEngine = New(DefaultWeights())

// Default returns the engine for the standard scoring table.
func Default() *Engine {
	return defaultEngine
}

// ComputeFantasyPoints scores rec with the standard table.
func ComputeFantasyPoints(rec stats.Record) float64 {
	return defaultEngine.Points(rec)
}

// Points scores rec. Codes outside the table are ignored and counts are used unclamped.
// NaN and infinite counts score nothing.
func (e *Engine) Points(rec stats.Record) float64 {
	f, _ := e.PointsDecimal(rec).Float64()
	return f
}

// PointsDecimal is Points without the final float conversion.
func (e *Engine) PointsDecimal(rec stats.Record) decimal.Decimal {
	total := decimal.Zero
	for _, wt := range e.weights {
		count, ok := rec[wt.Code]
		if !ok || !scorable(count) {
			continue
		}
		total = total.Add(decimal.NewFromFloat(count).Mul(wt.Value))
	}
	return total
}

// Breakdown returns each scored code's contribution, in table order, skipping zero rows.
func (e *Engine) Breakdown(rec stats.Record) []Contribution {
	var out []Contribution
	for _, wt := range e.weights {
		count := rec.Get(wt.Code)
		if !scorable(count) {
			continue
		}
		pts, _ := decimal.NewFromFloat(count).Mul(wt.Value).Float64()
		out = append(out, Contribution{Code: wt.Code, Count: count, Points: pts})
	}
	return out
}

func scorable(count float64) bool {
	return count != 0 && !math.IsNaN(count) && !math.IsInf(count, 0)
}

// Contribution is one line of a points breakdown.
type Contribution struct {
	Code   stats.Code `json:"code"`
	Count  float64    `json:"count"`
	Points float64    `json:"points"`
}

// PlayerPoints is a player's score for one round.
type PlayerPoints struct {
	PlayerID string  `json:"playerId"`
	Points   float64 `json:"points"`
}

// RoundPoints scores every record in a round and ranks players by points descending,
// breaking ties by player ID.
func (e *Engine) RoundPoints(round stats.RoundStats) []PlayerPoints {
	out := make([]PlayerPoints, 0, len(round.Players))
	for id, rec := range round.Players {
		out = append(out, PlayerPoints{PlayerID: id, Points: e.Points(rec)})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Points != out[j].Points {
			return out[i].Points > out[j].Points
		}
		return out[i].PlayerID < out[j].PlayerID
	})
	return out
}
