package handlers

import (
	"context"
	"crypto/subtle"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/Bazz30/NRL/internal/http/requestutil"
	"github.com/Bazz30/NRL/internal/logging"
	"github.com/Bazz30/NRL/internal/providers"
	"github.com/Bazz30/NRL/internal/snapshots"
)

// Refresher re-fetches upstream data into the snapshot folder.
type Refresher interface {
	Refresh(ctx context.Context, kinds ...snapshots.Kind) error
	RefreshStats(ctx context.Context, round int) error
}

// AdminHandler exposes admin-only endpoints.
type AdminHandler struct {
	refresher Refresher
	token     string
	logger    *slog.Logger
}

// NewAdminHandler constructs an AdminHandler. An empty token rejects every request.
func NewAdminHandler(refresher Refresher, token string, logger *slog.Logger) *AdminHandler {
	return &AdminHandler{
		refresher: refresher,
		token:     token,
		logger:    logger,
	}
}

// RefreshSnapshots refreshes snapshot files on demand.
// ?kind= selects players, rounds, ladder or stats. Empty or "all" refreshes the static kinds.
// kind=stats requires ?round=.
func (h *AdminHandler) RefreshSnapshots(w http.ResponseWriter, r *http.Request) {
	if !requireMethod(w, r, http.MethodPost, h.logger) {
		return
	}
	if !h.authorize(r) {
		logging.Warn(h.logger, "admin unauthorized",
			slog.String(logging.FieldPath, r.URL.Path),
			slog.String(logging.FieldClientIP, requestutil.ClientIP(r)),
		)
		writeError(w, r, http.StatusUnauthorized, "unauthorized", h.logger)
		return
	}
	if h.refresher == nil {
		writeError(w, r, http.StatusServiceUnavailable, "snapshot sync not configured", h.logger)
		return
	}

	logger := loggerFromContext(r, h.logger)
	rawKind := strings.TrimSpace(r.URL.Query().Get("kind"))

	if rawKind == "" || strings.EqualFold(rawKind, "all") {
		kinds := []snapshots.Kind{snapshots.KindPlayers, snapshots.KindRounds, snapshots.KindLadder}
		if err := h.refresher.Refresh(r.Context(), kinds...); err != nil {
			h.refreshFailed(w, r, logger, "all", err)
			return
		}
		h.refreshed(w, logger, "all", 0)
		return
	}

	kind, err := snapshots.ParseKind(rawKind)
	if err != nil {
		logging.Warn(logger, "admin snapshot invalid kind", slog.String(logging.FieldKind, rawKind))
		writeError(w, r, http.StatusBadRequest, err.Error(), logger)
		return
	}

	if kind == snapshots.KindStats {
		round, err := parseRound(r.URL.Query().Get("round"), false)
		if err != nil {
			writeError(w, r, http.StatusBadRequest, "round is required for stats", logger)
			return
		}
		if err := h.refresher.RefreshStats(r.Context(), round); err != nil {
			h.refreshFailed(w, r, logger, string(kind), err)
			return
		}
		h.refreshed(w, logger, string(kind), round)
		return
	}

	if err := h.refresher.Refresh(r.Context(), kind); err != nil {
		h.refreshFailed(w, r, logger, string(kind), err)
		return
	}
	h.refreshed(w, logger, string(kind), 0)
}

func (h *AdminHandler) refreshed(w http.ResponseWriter, logger *slog.Logger, kind string, round int) {
	body := map[string]any{"kind": kind, "status": "ok"}
	if round > 0 {
		body["round"] = round
	}
	writeJSON(w, http.StatusOK, body, logger)
	logging.Info(logger, "admin snapshot refreshed", slog.String(logging.FieldKind, kind), slog.Int(logging.FieldRound, round))
}

func (h *AdminHandler) refreshFailed(w http.ResponseWriter, r *http.Request, logger *slog.Logger, kind string, err error) {
	logging.Warn(logger, "admin snapshot refresh failed", slog.String(logging.FieldKind, kind), slog.Any("err", err))
	if errors.Is(err, providers.ErrProviderUnavailable) {
		writeError(w, r, http.StatusServiceUnavailable, "provider unavailable", logger)
		return
	}
	writeError(w, r, http.StatusBadGateway, "failed to refresh snapshots", logger)
}

func (h *AdminHandler) authorize(r *http.Request) bool {
	if h.token == "" {
		return false
	}
	got := r.Header.Get("Authorization")
	want := "Bearer " + h.token
	return subtle.ConstantTimeCompare([]byte(got), []byte(want)) == 1
}
