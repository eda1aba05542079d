package testutil

import (
	"time"

	appladder "github.com/Bazz30/NRL/internal/app/ladder"
	appplayers "github.com/Bazz30/NRL/internal/app/players"
	approster "github.com/Bazz30/NRL/internal/app/roster"
	approunds "github.com/Bazz30/NRL/internal/app/rounds"
	appstats "github.com/Bazz30/NRL/internal/app/stats"
	"github.com/Bazz30/NRL/internal/scoring"
	"github.com/Bazz30/NRL/internal/season"
	"github.com/Bazz30/NRL/internal/store"
)

// League bundles the app services over one in-memory store.
type League struct {
	Store   *store.MemoryStore
	Players *appplayers.Service
	Rounds  *approunds.Service
	Ladder  *appladder.Service
	Stats   *appstats.Service
	Roster  *approster.Service
}

// NewLeague builds services preloaded with the sample fixtures, with round 17 current at now.
// loader may be nil.
func NewLeague(now time.Time, loader appstats.Loader) League {
	ms := store.NewMemoryStore()
	ms.SetPlayers(SampleLeaguePlayers())
	ms.SetRounds(SampleRounds(now))
	ms.SetLadder(SampleLadder())
	ms.SetRoster(SampleRoster())

	engine := scoring.Default()
	roundsSvc := approunds.NewService(ms)
	roundsSvc.SetClock(NowAt(now))
	statsSvc := appstats.NewService(ms, loader, engine)

	return League{
		Store:   ms,
		Players: appplayers.NewService(ms),
		Rounds:  roundsSvc,
		Ladder:  appladder.NewService(ms),
		Stats:   statsSvc,
		Roster:  approster.NewService(ms, season.Default(), statsSvc, roundsSvc, engine),
	}
}
