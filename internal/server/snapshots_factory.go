package server

import (
	"log/slog"

	"github.com/Bazz30/NRL/internal/config"
	"github.com/Bazz30/NRL/internal/metrics"
	"github.com/Bazz30/NRL/internal/providers"
	"github.com/Bazz30/NRL/internal/snapshots"
	"github.com/Bazz30/NRL/internal/store"
)

type snapshotComponents struct {
	files  *snapshots.FSStore
	writer *snapshots.Writer
	syncer *snapshots.Syncer
}

func buildSnapshots(cfg config.Config, provider providers.DataProvider, memoryStore *store.MemoryStore, recorder *metrics.Recorder, logger *slog.Logger) snapshotComponents {
	basePath := cfg.Snapshots.SnapshotFolder
	writer := snapshots.NewWriter(basePath, recorder)
	syncer := snapshots.NewSyncer(provider, writer, snapshots.SyncConfig{
		Enabled:             cfg.Snapshots.Enabled,
		Interval:            cfg.Snapshots.Interval,
		PlayersRefreshHours: cfg.Snapshots.PlayersRefreshHours,
		RoundsRefreshHours:  cfg.Snapshots.RoundsRefreshHours,
		LadderRefreshHours:  cfg.Snapshots.LadderRefreshHours,
	}, logger, memoryStore)

	return snapshotComponents{
		files:  snapshots.NewFSStore(basePath),
		writer: writer,
		syncer: syncer,
	}
}

// warmStore loads whatever static snapshots exist so the API can serve before the first sync.
// Stats are loaded lazily per round through the stats service.
func warmStore(files *snapshots.FSStore, memoryStore *store.MemoryStore, logger *slog.Logger) {
	if p, err := files.LoadPlayers(); err == nil {
		memoryStore.SetPlayers(p)
	} else {
		logMissingSnapshot(logger, snapshots.KindPlayers, err)
	}
	if r, err := files.LoadRounds(); err == nil {
		memoryStore.SetRounds(r)
	} else {
		logMissingSnapshot(logger, snapshots.KindRounds, err)
	}
	if l, err := files.LoadLadder(); err == nil {
		memoryStore.SetLadder(l)
	} else {
		logMissingSnapshot(logger, snapshots.KindLadder, err)
	}
}

func logMissingSnapshot(logger *slog.Logger, kind snapshots.Kind, err error) {
	if logger == nil {
		return
	}
	logger.Debug("snapshot not loaded", slog.String("kind", string(kind)), slog.Any("err", err))
}
