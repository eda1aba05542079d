package config

import "time"

const (
	// Live stats change slowly outside match windows; five minutes keeps the feed load light.
	defaultPollInterval = 5 * time.Minute

	defaultNRLBaseURL   = "https://fantasy.nrl.com/data/nrl"
	defaultNRLTimeout   = 30 * time.Second
	defaultRateInterval = 2 * time.Second

	defaultSnapshotInterval    = 3 * time.Second
	defaultPlayersRefreshHours = 6
	defaultRoundsRefreshHours  = 24
	defaultLadderRefreshHours  = 12
	defaultAdviceTimeout       = 60 * time.Second
	defaultAdviceTemperature   = 0.7
	defaultAdviceModel         = "gpt-4"
	defaultAdviceBaseURL       = "https://api.openai.com/v1"
	defaultSnapshotFolder      = "data/snapshots"
)
