package snapshots

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/Bazz30/NRL/internal/domain/ladder"
	"github.com/Bazz30/NRL/internal/domain/players"
	"github.com/Bazz30/NRL/internal/domain/rounds"
	"github.com/Bazz30/NRL/internal/domain/stats"
	"github.com/Bazz30/NRL/internal/logging"
	"github.com/Bazz30/NRL/internal/providers"
)

// LeagueStore receives fresh data whenever a snapshot is written.
type LeagueStore interface {
	SetPlayers([]players.LeaguePlayer)
	SetRounds([]rounds.Round)
	SetLadder([]ladder.Entry)
	SetRoundStats(stats.RoundStats)
}

// SyncConfig controls snapshot sync behavior.
type SyncConfig struct {
	Enabled             bool
	Interval            time.Duration
	PlayersRefreshHours int
	RoundsRefreshHours  int
	LadderRefreshHours  int
}

// Syncer keeps the static snapshots fresh and backfills stats for completed rounds.
type Syncer struct {
	provider  providers.DataProvider
	writer    *Writer
	files     *FSStore
	cfg       SyncConfig
	logger    *slog.Logger
	store     LeagueStore
	now       func() time.Time
	newTicker func(time.Duration) *time.Ticker
}

// NewSyncer constructs a snapshot syncer. store may be nil.
func NewSyncer(provider providers.DataProvider, writer *Writer, cfg SyncConfig, logger *slog.Logger, store LeagueStore) *Syncer {
	if cfg.Interval <= 0 {
		cfg.Interval = 3 * time.Second
	}
	if cfg.PlayersRefreshHours <= 0 {
		cfg.PlayersRefreshHours = 6
	}
	if cfg.RoundsRefreshHours <= 0 {
		cfg.RoundsRefreshHours = 24
	}
	if cfg.LadderRefreshHours <= 0 {
		cfg.LadderRefreshHours = 12
	}
	return &Syncer{
		provider:  provider,
		writer:    writer,
		files:     NewFSStore(writer.BasePath()),
		cfg:       cfg,
		logger:    logger,
		store:     store,
		now:       time.Now,
		newTicker: time.NewTicker,
	}
}

// Run syncs stale static snapshots, backfills missing stats, then checks hourly.
// Callers should run this in a goroutine.
func (s *Syncer) Run(ctx context.Context) {
	if s == nil || !s.cfg.Enabled || s.writer == nil || s.provider == nil {
		return
	}
	s.logInfo("snapshot sync starting",
		"interval", s.cfg.Interval.String(),
		"players_refresh_hours", s.cfg.PlayersRefreshHours,
		"rounds_refresh_hours", s.cfg.RoundsRefreshHours,
		"ladder_refresh_hours", s.cfg.LadderRefreshHours,
	)
	s.cycle(ctx)

	ticker := s.newTicker(time.Hour)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.cycle(ctx)
		}
	}
}

func (s *Syncer) cycle(ctx context.Context) {
	now := s.now().UTC()
	for _, kind := range []Kind{KindPlayers, KindRounds, KindLadder} {
		if ctx.Err() != nil {
			return
		}
		if !s.shouldRefresh(kind, now) {
			continue
		}
		if err := s.refreshStatic(ctx, kind); err != nil {
			s.logWarn("snapshot refresh failed", logging.FieldKind, string(kind), "err", err)
		}
	}
	s.backfill(ctx, now)
}

// Refresh forces a fetch and write of the given static kinds, or all of them when none are named.
// KindStats is rejected; use RefreshStats.
func (s *Syncer) Refresh(ctx context.Context, kinds ...Kind) error {
	if s == nil || s.writer == nil || s.provider == nil {
		return providers.ErrProviderUnavailable
	}
	if len(kinds) == 0 {
		kinds = []Kind{KindPlayers, KindRounds, KindLadder}
	}
	var errs []error
	for _, kind := range kinds {
		if err := s.refreshStatic(ctx, kind); err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", kind, err))
		}
	}
	return errors.Join(errs...)
}

// RefreshStats fetches and writes one round's stats.
func (s *Syncer) RefreshStats(ctx context.Context, round int) error {
	if s == nil || s.writer == nil || s.provider == nil {
		return providers.ErrProviderUnavailable
	}
	start := time.Now()
	rs, err := s.provider.FetchRoundStats(ctx, round)
	if err != nil {
		return err
	}
	if rs.Round == 0 {
		rs.Round = round
	}
	if err := s.writer.WriteStats(rs); err != nil {
		return err
	}
	if s.store != nil {
		s.store.SetRoundStats(rs)
	}
	s.logInfo("stats snapshot written",
		logging.FieldRound, round,
		logging.FieldCount, len(rs.Players),
		logging.FieldDurationMS, time.Since(start).Milliseconds(),
	)
	return nil
}

func (s *Syncer) refreshStatic(ctx context.Context, kind Kind) error {
	start := time.Now()
	var (
		count int
		err   error
	)
	switch kind {
	case KindPlayers:
		var items []players.LeaguePlayer
		if items, err = s.provider.FetchPlayers(ctx); err == nil {
			if err = s.writer.WritePlayers(items); err == nil && s.store != nil {
				s.store.SetPlayers(items)
			}
			count = len(items)
		}
	case KindRounds:
		var items []rounds.Round
		if items, err = s.provider.FetchRounds(ctx); err == nil {
			if err = s.writer.WriteRounds(items); err == nil && s.store != nil {
				s.store.SetRounds(items)
			}
			count = len(items)
		}
	case KindLadder:
		var items []ladder.Entry
		if items, err = s.provider.FetchLadder(ctx); err == nil {
			if err = s.writer.WriteLadder(items); err == nil && s.store != nil {
				s.store.SetLadder(items)
			}
			count = len(items)
		}
	default:
		return fmt.Errorf("unsupported snapshot kind %q", kind)
	}
	if err != nil {
		return err
	}
	s.logInfo("snapshot written",
		logging.FieldKind, string(kind),
		logging.FieldCount, count,
		logging.FieldDurationMS, time.Since(start).Milliseconds(),
	)
	return nil
}

// backfill fetches stats for completed rounds that have no snapshot yet, spaced by Interval.
func (s *Syncer) backfill(ctx context.Context, now time.Time) {
	missing := s.missingStatsRounds(now)
	for i, round := range missing {
		if ctx.Err() != nil {
			return
		}
		if err := s.RefreshStats(ctx, round); err != nil {
			s.logWarn("stats backfill failed", logging.FieldRound, round, "err", err)
		}
		if i < len(missing)-1 {
			s.sleep(ctx, s.cfg.Interval)
		}
	}
}

func (s *Syncer) missingStatsRounds(now time.Time) []int {
	all, err := s.files.LoadRounds()
	if err != nil {
		return nil
	}
	var out []int
	for _, r := range all {
		if r.Completed(now) && !s.files.HasStats(r.ID) {
			out = append(out, r.ID)
		}
	}
	return out
}

func (s *Syncer) shouldRefresh(kind Kind, now time.Time) bool {
	if s == nil || s.writer == nil {
		return true
	}
	last := s.writer.Manifest().LastRefreshed(kind)
	if last.IsZero() {
		return true
	}
	var hours int
	switch kind {
	case KindPlayers:
		hours = s.cfg.PlayersRefreshHours
	case KindRounds:
		hours = s.cfg.RoundsRefreshHours
	case KindLadder:
		hours = s.cfg.LadderRefreshHours
	default:
		return true
	}
	return !now.Before(last.Add(time.Duration(hours) * time.Hour))
}

func (s *Syncer) sleep(ctx context.Context, d time.Duration) {
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
	case <-timer.C:
	}
}

func (s *Syncer) logInfo(msg string, args ...any) {
	if s.logger != nil {
		s.logger.Info(msg, args...)
	}
}

func (s *Syncer) logWarn(msg string, args ...any) {
	if s.logger != nil {
		s.logger.Warn(msg, args...)
	}
}
