package server

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/Bazz30/NRL/internal/advice"
	"github.com/Bazz30/NRL/internal/config"
	httpserver "github.com/Bazz30/NRL/internal/http"
	"github.com/Bazz30/NRL/internal/http/handlers"
	"github.com/Bazz30/NRL/internal/logging"
	"github.com/Bazz30/NRL/internal/mcptools"
	"github.com/Bazz30/NRL/internal/metrics"
	"github.com/Bazz30/NRL/internal/poller"
	"github.com/Bazz30/NRL/internal/providers"
	"github.com/Bazz30/NRL/internal/season"
	"github.com/Bazz30/NRL/internal/snapshots"
	"github.com/Bazz30/NRL/internal/store"
)

// Version is reported by the MCP endpoint.
var Version = "dev"

var metricsSetup = metrics.Setup

type Server struct {
	cfg           config.Config
	logger        *slog.Logger
	metrics       *metrics.Recorder
	store         *store.MemoryStore
	services      handlers.Services
	httpServer    httpServer
	metricsServer httpServer
	poller        Poller
	syncer        backgroundSyncer
	metricsStop   func(context.Context) error
}

// New constructs a server with default provider, snapshot and poller wiring.
func New(cfg config.Config, logger *slog.Logger) (*Server, error) {
	return newServerWithMetrics(cfg, logger, nil, nil)
}

func newServerWithProvider(cfg config.Config, logger *slog.Logger, provider providers.DataProvider) (*Server, error) {
	return newServerWithMetrics(cfg, logger, provider, nil)
}

func newServerWithMetrics(cfg config.Config, logger *slog.Logger, provider providers.DataProvider, recorder *metrics.Recorder) (*Server, error) {
	tables, err := season.Load(cfg.SeasonFile)
	if err != nil {
		return nil, fmt.Errorf("load season: %w", err)
	}
	memoryStore := store.NewMemoryStore()
	if err := loadRoster(cfg.RosterFile, memoryStore, logger); err != nil {
		return nil, err
	}
	recorder, metricsSrv, metricsShutdown := buildMetrics(cfg, logger, recorder)

	if provider == nil {
		provider = newProviderFactory(logger, recorder).build(cfg)
	} else {
		provider = providers.NewRetryingProvider(provider, logger, recorder, normalizeProviderName(cfg.Provider, provider), 0, 0)
	}

	snaps := buildSnapshots(cfg, provider, memoryStore, recorder, logger)
	warmStore(snaps.files, memoryStore, logger)
	svc := buildServices(memoryStore, snaps.files, tables)

	plr := poller.New(provider, svc.Rounds, snaps.writer, svc.Stats, logger, recorder, cfg.PollInterval)
	httpSrv := buildHTTPServer(cfg, svc, snaps.syncer, logger, recorder, plr)

	return &Server{
		cfg:           cfg,
		logger:        logger,
		metrics:       recorder,
		store:         memoryStore,
		services:      svc,
		httpServer:    httpSrv,
		metricsServer: metricsSrv,
		poller:        plr,
		syncer:        snaps.syncer,
		metricsStop:   metricsShutdown,
	}, nil
}

// newServerWithDeps is used for testing to inject custom components.
func newServerWithDeps(cfg config.Config, logger *slog.Logger, httpSrv httpServer, plr Poller, syncer backgroundSyncer) *Server {
	return &Server{
		cfg:        cfg,
		logger:     logger,
		httpServer: httpSrv,
		poller:     plr,
		syncer:     syncer,
	}
}

func buildHTTPServer(cfg config.Config, svc handlers.Services, refresher handlers.Refresher, logger *slog.Logger, recorder *metrics.Recorder, plr Poller) httpServer {
	if logger == nil {
		logger = logging.NewLogger(logging.Config{})
	}
	var statusFn func() poller.Status
	if plr != nil {
		statusFn = plr.Status
	}

	routes := httpserver.Routes{
		Handler: handlers.NewHandler(svc, logger, statusFn),
		Advice:  handlers.NewAdviceHandler(buildAdvisor(cfg, recorder), logger),
		MCP:     mcptools.New(svc.Stats.Engine(), svc.Roster, logger).Handler(Version),
		Logger:  logger,
		Metrics: recorder,
	}
	// The admin refresh endpoint is only mounted when a token is configured.
	if cfg.Snapshots.AdminToken != "" {
		routes.Admin = handlers.NewAdminHandler(refresher, cfg.Snapshots.AdminToken, logger)
	}

	var upstream time.Duration
	if cfg.Advice.Enabled() {
		upstream = cfg.Advice.Timeout
	}
	return newNetHTTPServer(":"+cfg.Port, httpserver.NewRouter(routes), upstream)
}

// buildAdvisor returns nil when no API key is configured so the endpoint answers 503.
func buildAdvisor(cfg config.Config, recorder *metrics.Recorder) handlers.Advisor {
	if !cfg.Advice.Enabled() {
		return nil
	}
	return advice.NewClient(advice.Config{
		APIKey:      cfg.Advice.APIKey,
		BaseURL:     cfg.Advice.BaseURL,
		Model:       cfg.Advice.Model,
		Temperature: cfg.Advice.Temperature,
		Timeout:     cfg.Advice.Timeout,
	}, recorder)
}

// Run starts the syncer, poller and HTTP server, then waits for context cancellation to shut down gracefully.
func (s *Server) Run(ctx context.Context, stop context.CancelFunc) {
	s.startMetrics()
	s.startServer(stop)
	if s.syncer != nil {
		go s.syncer.Run(ctx)
	}
	s.poller.Start(ctx)

	<-ctx.Done()
	if s.logger != nil {
		s.logger.Info("shutdown signal received")
	}

	s.gracefulShutdown()
}

func (s *Server) startServer(stop context.CancelFunc) {
	if s.logger != nil {
		s.logger.Info("http server starting", slog.String("addr", s.httpServer.Addr()))
	}
	launchServer("http", s.httpServer, s.logger, func(err error) {
		if stop != nil {
			stop()
		}
	})
}

func (s *Server) startMetrics() {
	if s.metricsServer == nil {
		return
	}
	if s.logger != nil {
		s.logger.Info("metrics server starting", slog.String("addr", s.metricsServer.Addr()))
	}
	launchServer("metrics", s.metricsServer, s.logger, nil)
}

func (s *Server) gracefulShutdown() {
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if s.metricsStop != nil {
		if err := s.metricsStop(shutdownCtx); err != nil && s.logger != nil {
			s.logger.Warn("metrics shutdown failed", "error", err)
		}
	}

	if s.metricsServer != nil {
		if err := s.metricsServer.Shutdown(shutdownCtx); err != nil && s.logger != nil {
			s.logger.Warn("metrics server shutdown failed", "error", err)
		}
	}

	if err := s.poller.Stop(shutdownCtx); err != nil && s.logger != nil {
		s.logger.Error("failed to stop poller", "error", err)
	}

	if err := s.httpServer.Shutdown(shutdownCtx); err != nil && s.logger != nil {
		s.logger.Error("graceful shutdown failed", "error", err)
	}

	if s.logger != nil {
		s.logger.Info("shutdown complete")
	}
}

func buildMetrics(cfg config.Config, logger *slog.Logger, recorder *metrics.Recorder) (*metrics.Recorder, httpServer, func(context.Context) error) {
	if recorder != nil {
		return recorder, nil, nil
	}

	recCfg := metrics.TelemetryConfig{
		Enabled:      cfg.Metrics.Enabled,
		Port:         cfg.Metrics.Port,
		ServiceName:  cfg.Metrics.ServiceName,
		OtlpEndpoint: cfg.Metrics.OtlpEndpoint,
		OtlpInsecure: cfg.Metrics.OtlpInsecure,
	}

	rec, handler, shutdown, err := metricsSetup(context.Background(), recCfg)
	if err != nil {
		if logger != nil {
			logger.Warn("metrics setup failed, continuing without telemetry", "err", err)
		}
		return metrics.NewRecorder(), nil, nil
	}

	var metricsSrv httpServer
	if handler != nil && recCfg.Enabled {
		mux := http.NewServeMux()
		mux.Handle("/metrics", handler)
		metricsSrv = newNetHTTPServer(":"+recCfg.Port, mux, 0)
	}

	return rec, metricsSrv, shutdown
}

func launchServer(name string, srv httpServer, logger *slog.Logger, onError func(error)) {
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			if logger != nil {
				logger.Warn(name+" server failed", "error", err)
			}
			if onError != nil {
				onError(err)
			}
		}
	}()
}

// Handler exposes the HTTP handler (useful for tests).
func (s *Server) Handler() http.Handler {
	return s.httpServer.Handler()
}

// Store exposes the in-memory store (useful for tests).
func (s *Server) Store() *store.MemoryStore {
	return s.store
}

var _ handlers.Refresher = (*snapshots.Syncer)(nil)
