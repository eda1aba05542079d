package stats

// Code is a per-match statistical event code as published by the NRL Fantasy feed.
type Code string

const (
	Try                  Code = "T"
	TrySave              Code = "TS"
	Goal                 Code = "G"
	FieldGoal            Code = "FG"
	TryAssist            Code = "TA"
	LineBreak            Code = "LB"
	LineBreakAssist      Code = "LBA"
	Tackle               Code = "TCK"
	TackleBreak          Code = "TB"
	MissedTackle         Code = "MT"
	Offload              Code = "OFH"
	OffloadForced        Code = "OFG"
	Error                Code = "ER"
	PenaltyConceded      Code = "PC"
	SinBin               Code = "SB"
	SendOff              Code = "SO"
	MetresGained         Code = "MG"
	KickMetres           Code = "KM"
	KickDropOut          Code = "KD"
	ForcedDropOut        Code = "FDO"
	TimeOnGround         Code = "TOG"
	ForcedTouchFind      Code = "FTF"
	Turnover             Code = "TO"
	SetAttackInvolvement Code = "SAI"
	EffectiveFirstGoal   Code = "EFIG"
)

// Record maps stat codes to counts for one player in one round. Missing codes are zero.
type Record map[Code]float64

// Get returns the count for code, or 0 when absent.
func (r Record) Get(code Code) float64 {
	if r == nil {
		return 0
	}
	return r[code]
}

// Clone returns an independent copy of the record.
func (r Record) Clone() Record {
	if r == nil {
		return nil
	}
	out := make(Record, len(r))
	for k, v := range r {
		out[k] = v
	}
	return out
}

// RoundStats holds every player's record for a single round, keyed by player ID.
type RoundStats struct {
	Round   int               `json:"round"`
	Players map[string]Record `json:"players"`
}

// For returns the record for a player, or nil when the player has no stats that round.
func (rs RoundStats) For(playerID string) Record {
	if rs.Players == nil {
		return nil
	}
	return rs.Players[playerID]
}
