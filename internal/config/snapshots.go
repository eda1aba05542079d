package config

import "time"

// SnapshotSyncConfig controls automatic snapshot refresh and backfill.
type SnapshotSyncConfig struct {
	Enabled             bool          `env:"SNAPSHOT_SYNC_ENABLED" envDefault:"true"`
	Interval            time.Duration `env:"SNAPSHOT_SYNC_INTERVAL" envDefault:"3s"` // delay between backfill fetches
	PlayersRefreshHours int           `env:"SNAPSHOT_PLAYERS_REFRESH_HOURS" envDefault:"6"`
	RoundsRefreshHours  int           `env:"SNAPSHOT_ROUNDS_REFRESH_HOURS" envDefault:"24"`
	LadderRefreshHours  int           `env:"SNAPSHOT_LADDER_REFRESH_HOURS" envDefault:"12"`
	AdminToken          string        `env:"ADMIN_TOKEN"`
	SnapshotFolder      string        `env:"SNAPSHOT_DIR" envDefault:"data/snapshots"`
}

func (c *SnapshotSyncConfig) normalize() {
	if c.Interval <= 0 {
		c.Interval = defaultSnapshotInterval
	}
	if c.PlayersRefreshHours <= 0 {
		c.PlayersRefreshHours = defaultPlayersRefreshHours
	}
	if c.RoundsRefreshHours <= 0 {
		c.RoundsRefreshHours = defaultRoundsRefreshHours
	}
	if c.LadderRefreshHours <= 0 {
		c.LadderRefreshHours = defaultLadderRefreshHours
	}
	if c.SnapshotFolder == "" {
		c.SnapshotFolder = defaultSnapshotFolder
	}
}
