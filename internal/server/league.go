package server

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"

	appladder "github.com/Bazz30/NRL/internal/app/ladder"
	appplayers "github.com/Bazz30/NRL/internal/app/players"
	approster "github.com/Bazz30/NRL/internal/app/roster"
	approunds "github.com/Bazz30/NRL/internal/app/rounds"
	appstats "github.com/Bazz30/NRL/internal/app/stats"
	"github.com/Bazz30/NRL/internal/http/handlers"
	"github.com/Bazz30/NRL/internal/roster"
	"github.com/Bazz30/NRL/internal/scoring"
	"github.com/Bazz30/NRL/internal/season"
	"github.com/Bazz30/NRL/internal/store"
)

func buildServices(memoryStore *store.MemoryStore, loader appstats.Loader, tables season.Season) handlers.Services {
	engine := scoring.Default()
	roundsSvc := approunds.NewService(memoryStore)
	statsSvc := appstats.NewService(memoryStore, loader, engine)
	return handlers.Services{
		Players: appplayers.NewService(memoryStore),
		Rounds:  roundsSvc,
		Ladder:  appladder.NewService(memoryStore),
		Stats:   statsSvc,
		Roster:  approster.NewService(memoryStore, tables, statsSvc, roundsSvc, engine),
	}
}

// loadRoster reads the roster file into the store. A missing file leaves the roster empty;
// an invalid one is an error.
func loadRoster(path string, memoryStore *store.MemoryStore, logger *slog.Logger) error {
	if path == "" {
		return nil
	}
	items, err := roster.Load(path)
	if errors.Is(err, fs.ErrNotExist) {
		if logger != nil {
			logger.Warn("roster file not found, starting with an empty roster", slog.String("path", path))
		}
		return nil
	}
	if err != nil {
		return fmt.Errorf("load roster: %w", err)
	}
	memoryStore.SetRoster(items)
	if logger != nil {
		logger.Info("roster loaded", slog.String("path", path), slog.Int("count", len(items)))
	}
	return nil
}
