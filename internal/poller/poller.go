package poller

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"

	domainstats "github.com/Bazz30/NRL/internal/domain/stats"
	"github.com/Bazz30/NRL/internal/logging"
	"github.com/Bazz30/NRL/internal/metrics"
	"github.com/Bazz30/NRL/internal/providers"
)

const (
	defaultInterval = 5 * time.Minute
	readyFailures   = 3
)

var errNoCurrentRound = errors.New("no current round")

// SnapshotWriter persists round stats snapshots to disk.
type SnapshotWriter interface {
	WriteStats(rs domainstats.RoundStats) error
}

// StatsSink receives each freshly fetched round.
type StatsSink interface {
	ReplaceRound(rs domainstats.RoundStats)
}

// RoundSource resolves the round being played now.
type RoundSource interface {
	CurrentID(fallback int) int
}

// Poller fetches the current round's stats on an interval.
type Poller struct {
	provider providers.StatsProvider
	rounds   RoundSource
	writer   SnapshotWriter
	sink     StatsSink
	logger   *slog.Logger
	metrics  *metrics.Recorder
	interval time.Duration

	ticker   *time.Ticker
	done     chan struct{}
	stopOnce sync.Once
	startMu  sync.Mutex
	started  bool

	statusMu sync.RWMutex
	status   Status
}

// Status describes the recent health of the poller loop.
type Status struct {
	ConsecutiveFailures int
	LastError           string
	LastRound           int
	LastAttempt         time.Time
	LastSuccess         time.Time
}

// IsReady reports whether the poller has had a recent success and is not failing repeatedly.
func (s Status) IsReady() bool {
	if s.LastSuccess.IsZero() {
		return false
	}
	return s.ConsecutiveFailures < readyFailures
}

// New constructs a Poller. writer and sink may be nil.
func New(provider providers.StatsProvider, rounds RoundSource, writer SnapshotWriter, sink StatsSink, logger *slog.Logger, recorder *metrics.Recorder, interval time.Duration) *Poller {
	if interval <= 0 {
		interval = defaultInterval
	}
	return &Poller{
		provider: provider,
		rounds:   rounds,
		writer:   writer,
		sink:     sink,
		logger:   logger,
		metrics:  recorder,
		interval: interval,
		done:     make(chan struct{}),
	}
}

// Start begins polling until the context is cancelled or Stop is called.
func (p *Poller) Start(ctx context.Context) {
	p.startMu.Lock()
	if p.started {
		p.startMu.Unlock()
		return
	}
	p.started = true
	p.startMu.Unlock()

	p.ticker = time.NewTicker(p.interval)

	go func() {
		p.logInfo("poller started", slog.Int64(logging.FieldDurationMS, p.interval.Milliseconds()))
		// Warm the current round on boot.
		p.fetchOnce(ctx)

		for {
			select {
			case <-ctx.Done():
				p.stopTicker()
				p.logInfo("poller stopped")
				return
			case <-p.done:
				p.stopTicker()
				p.logInfo("poller stopped")
				return
			case <-p.ticker.C:
				p.fetchOnce(ctx)
			}
		}
	}()
}

// Stop halts the polling loop.
func (p *Poller) Stop(ctx context.Context) error {
	_ = ctx
	p.stopOnce.Do(func() {
		close(p.done)
		p.stopTicker()
	})
	return nil
}

func (p *Poller) fetchOnce(ctx context.Context) {
	start := time.Now()
	p.recordAttempt(start)

	round := 0
	if p.rounds != nil {
		round = p.rounds.CurrentID(0)
	}
	if round <= 0 {
		p.metrics.RecordPollerCycle(time.Since(start), errNoCurrentRound)
		p.logWarn("poller skipped cycle", "error", errNoCurrentRound)
		p.recordFailure(errNoCurrentRound, start, 0)
		return
	}

	rs, err := p.provider.FetchRoundStats(ctx, round)
	p.metrics.RecordPollerCycle(time.Since(start), err)
	if err != nil {
		p.logError("poller fetch failed", err,
			logging.FieldRound, round,
			logging.FieldDurationMS, time.Since(start).Milliseconds(),
		)
		p.recordFailure(err, start, round)
		return
	}
	if rs.Round == 0 {
		rs.Round = round
	}

	if p.writer != nil {
		if writeErr := p.writer.WriteStats(rs); writeErr != nil {
			p.logError("poller snapshot write failed", writeErr, logging.FieldRound, round)
		}
	}
	if p.sink != nil {
		p.sink.ReplaceRound(rs)
	}
	p.recordSuccess(start, round)
	p.logInfo("poller refreshed round stats",
		logging.FieldRound, round,
		logging.FieldCount, len(rs.Players),
		logging.FieldDurationMS, time.Since(start).Milliseconds(),
	)
}

func (p *Poller) stopTicker() {
	if p.ticker != nil {
		p.ticker.Stop()
	}
}

func (p *Poller) logInfo(msg string, args ...any) {
	if p.logger != nil {
		p.logger.Info(msg, args...)
	}
}

func (p *Poller) logWarn(msg string, args ...any) {
	if p.logger != nil {
		p.logger.Warn(msg, args...)
	}
}

func (p *Poller) logError(msg string, err error, attrs ...any) {
	if p.logger != nil {
		p.logger.Error(msg, append(attrs, "error", err)...)
	}
}

func (p *Poller) recordAttempt(at time.Time) {
	p.statusMu.Lock()
	defer p.statusMu.Unlock()
	p.status.LastAttempt = at
}

func (p *Poller) recordSuccess(at time.Time, round int) {
	p.statusMu.Lock()
	defer p.statusMu.Unlock()
	p.status.ConsecutiveFailures = 0
	p.status.LastError = ""
	p.status.LastSuccess = at
	p.status.LastRound = round
}

func (p *Poller) recordFailure(err error, at time.Time, round int) {
	p.statusMu.Lock()
	defer p.statusMu.Unlock()
	p.status.ConsecutiveFailures++
	if err != nil {
		p.status.LastError = err.Error()
	}
	p.status.LastAttempt = at
	if round > 0 {
		p.status.LastRound = round
	}
}

// Status returns a snapshot of the poller's recent health.
func (p *Poller) Status() Status {
	p.statusMu.RLock()
	defer p.statusMu.RUnlock()
	return p.status
}
