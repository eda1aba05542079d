package handlers

import (
	"log/slog"
	"net/http"

	appladder "github.com/Bazz30/NRL/internal/app/ladder"
	appplayers "github.com/Bazz30/NRL/internal/app/players"
	approster "github.com/Bazz30/NRL/internal/app/roster"
	approunds "github.com/Bazz30/NRL/internal/app/rounds"
	appstats "github.com/Bazz30/NRL/internal/app/stats"
	"github.com/Bazz30/NRL/internal/poller"
)

// Services groups the app services the HTTP layer reads from.
type Services struct {
	Players *appplayers.Service
	Rounds  *approunds.Service
	Ladder  *appladder.Service
	Stats   *appstats.Service
	Roster  *approster.Service
}

// Handler wires HTTP routes to the app services.
type Handler struct {
	svc      Services
	logger   *slog.Logger
	statusFn func() poller.Status
}

// NewHandler constructs a Handler. statusFn may be nil, in which case the service is always ready.
func NewHandler(svc Services, logger *slog.Logger, statusFn func() poller.Status) *Handler {
	return &Handler{
		svc:      svc,
		logger:   logger,
		statusFn: statusFn,
	}
}

// Health reports the service health.
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	if !requireMethod(w, r, http.MethodGet, h.logger) {
		return
	}
	if err := r.Context().Err(); err != nil {
		writeError(w, r, http.StatusServiceUnavailable, "shutting down", h.logger)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"}, h.logger)
}

// Ready reports readiness for traffic based on the stats poller.
func (h *Handler) Ready(w http.ResponseWriter, r *http.Request) {
	if !requireMethod(w, r, http.MethodGet, h.logger) {
		return
	}
	if h.statusFn == nil {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ready"}, h.logger)
		return
	}
	status := h.statusFn()
	if status.IsReady() {
		writeJSON(w, http.StatusOK, map[string]any{"status": "ready", "round": status.LastRound}, h.logger)
		return
	}
	msg := status.LastError
	if msg == "" {
		msg = "not ready"
	}
	writeError(w, r, http.StatusServiceUnavailable, msg, h.logger)
}
