package main

import (
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"os"
	"strings"
	"time"

	approster "github.com/Bazz30/NRL/internal/app/roster"
	approunds "github.com/Bazz30/NRL/internal/app/rounds"
	appstats "github.com/Bazz30/NRL/internal/app/stats"
	"github.com/Bazz30/NRL/internal/domain/players"
	"github.com/Bazz30/NRL/internal/logging"
	"github.com/Bazz30/NRL/internal/roster"
	"github.com/Bazz30/NRL/internal/scoring"
	"github.com/Bazz30/NRL/internal/season"
	"github.com/Bazz30/NRL/internal/snapshots"
	"github.com/Bazz30/NRL/internal/store"
)

// errOut receives logs so table and JSON output stay clean on stdout.
var errOut io.Writer = os.Stderr

func (c *cli) logger() *slog.Logger {
	return logging.NewLogger(logging.Config{
		Level:   c.v.GetString("log-level"),
		Format:  c.cfg.Log.Format,
		Service: "nrl-cli",
		Output:  errOut,
	})
}

// loadRounds fills a memory store from the rounds snapshot, if one exists.
func (c *cli) loadRounds(now time.Time) (*approunds.Service, error) {
	return c.roundsFor(store.NewMemoryStore(), now)
}

func (c *cli) roundsFor(ms *store.MemoryStore, now time.Time) (*approunds.Service, error) {
	files := snapshots.NewFSStore(c.v.GetString("snapshots"))
	rs, err := files.LoadRounds()
	switch {
	case err == nil:
		ms.SetRounds(rs)
	case !errors.Is(err, snapshots.ErrSnapshotNotFound):
		return nil, err
	}
	svc := approunds.NewService(ms)
	svc.SetClock(func() time.Time { return now })
	return svc, nil
}

// loadRoster wires the roster service over the roster file, season tables and snapshot stats.
func (c *cli) loadRoster(now time.Time) (*approster.Service, error) {
	tables, err := season.Load(c.v.GetString("season"))
	if err != nil {
		return nil, err
	}
	items, err := roster.Load(c.v.GetString("roster"))
	if err != nil {
		return nil, err
	}

	ms := store.NewMemoryStore()
	ms.SetRoster(items)
	roundsSvc, err := c.roundsFor(ms, now)
	if err != nil {
		return nil, err
	}
	engine := scoring.Default()
	files := snapshots.NewFSStore(c.v.GetString("snapshots"))
	statsSvc := appstats.NewService(ms, files, engine)
	return approster.NewService(ms, tables, statsSvc, roundsSvc, engine), nil
}

func (c *cli) printJSON(v any) error {
	enc := json.NewEncoder(c.out)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func positionList(ps []players.Position) string {
	out := make([]string, len(ps))
	for i, p := range ps {
		out[i] = string(p)
	}
	return strings.Join(out, "/")
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}

func roleOf(p players.Player) string {
	switch {
	case p.Captain:
		return "C"
	case p.ViceCaptain:
		return "VC"
	case p.Emergency:
		return "E"
	}
	return ""
}
