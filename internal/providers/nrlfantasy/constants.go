package nrlfantasy

import "time"

const (
	defaultBaseURL     = "https://fantasy.nrl.com/data/nrl"
	defaultHTTPTimeout = 30 * time.Second
	defaultUserAgent   = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/124.0 Safari/537.36"
	maxErrorBody       = 512

	playersPath = "/players.json"
	roundsPath  = "/rounds.json"
	ladderPath  = "/ladder.json"
	squadsPath  = "/squads.json"
)
