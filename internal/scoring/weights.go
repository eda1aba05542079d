package scoring

import (
	"github.com/shopspring/decimal"

	"github.com/Bazz30/NRL/internal/domain/stats"
)

// Weight is the point value of one unit of a stat code.
type Weight struct {
	Code  stats.Code
	Value decimal.Decimal
}

// Weights is an ordered weight table. Order fixes the summation sequence.
type Weights []Weight

func w(code stats.Code, value string) Weight {
	return Weight{Code: code, Value: decimal.RequireFromString(value)}
}

// DefaultWeights returns the standard fantasy scoring table.
func DefaultWeights() Weights {
	return Weights{
		w(stats.Try, "4"),
		w(stats.TrySave, "4"),
		w(stats.Goal, "2"),
		w(stats.FieldGoal, "1"),
		w(stats.TryAssist, "4"),
		w(stats.LineBreak, "4"),
		w(stats.LineBreakAssist, "2"),
		w(stats.Tackle, "1"),
		w(stats.TackleBreak, "2"),
		w(stats.MissedTackle, "-2"),
		w(stats.Offload, "1"),
		w(stats.OffloadForced, "1"),
		w(stats.Error, "-2"),
		w(stats.PenaltyConceded, "-2"),
		w(stats.SinBin, "-4"),
		w(stats.SendOff, "-8"),
		w(stats.MetresGained, "0.1"),
		w(stats.KickMetres, "0.05"),
		w(stats.KickDropOut, "1"),
		w(stats.ForcedDropOut, "1"),
		w(stats.TimeOnGround, "0.1"),
	}
}

// Lookup returns the weight for code.
func (ws Weights) Lookup(code stats.Code) (decimal.Decimal, bool) {
	for _, wt := range ws {
		if wt.Code == code {
			return wt.Value, true
		}
	}
	return decimal.Zero, false
}

// Codes lists the scored codes in table order.
func (ws Weights) Codes() []stats.Code {
	out := make([]stats.Code, len(ws))
	for i, wt := range ws {
		out[i] = wt.Code
	}
	return out
}
