package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"

	appstats "github.com/Bazz30/NRL/internal/app/stats"
	"github.com/Bazz30/NRL/internal/domain/players"
	"github.com/Bazz30/NRL/internal/logging"
)

// Players lists the league player pool, filtered by ?team= and ?q= when given.
func (h *Handler) Players(w http.ResponseWriter, r *http.Request) {
	team := strings.TrimSpace(r.URL.Query().Get("team"))
	query := strings.TrimSpace(r.URL.Query().Get("q"))

	items := h.svc.Players.Players()
	if team != "" {
		items = h.svc.Players.ByTeam(team)
	}
	if query != "" {
		filtered := make([]players.LeaguePlayer, 0, len(items))
		for _, p := range items {
			if p.MatchesName(query) {
				filtered = append(filtered, p)
			}
		}
		items = filtered
	}

	logging.Debug(loggerFromContext(r, h.logger), "served players", logging.FieldCount, len(items))
	writeJSON(w, http.StatusOK, nonNil(items), h.logger)
}

// PlayerByID returns one league player.
func (h *Handler) PlayerByID(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil || id <= 0 {
		writeError(w, r, http.StatusBadRequest, "invalid player id", h.logger)
		return
	}
	p, ok := h.svc.Players.PlayerByID(id)
	if !ok {
		writeError(w, r, http.StatusNotFound, "player not found", h.logger)
		return
	}
	writeJSON(w, http.StatusOK, p, h.logger)
}

// Rounds lists the season's rounds.
func (h *Handler) Rounds(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, nonNil(h.svc.Rounds.Rounds()), h.logger)
}

// CurrentRound returns the round in play.
func (h *Handler) CurrentRound(w http.ResponseWriter, r *http.Request) {
	round, ok := h.svc.Rounds.Current()
	if !ok {
		writeError(w, r, http.StatusNotFound, "no current round", h.logger)
		return
	}
	writeJSON(w, http.StatusOK, round, h.logger)
}

// RoundByID returns one round.
func (h *Handler) RoundByID(w http.ResponseWriter, r *http.Request) {
	id, err := roundParam(r)
	if err != nil {
		writeError(w, r, http.StatusBadRequest, err.Error(), h.logger)
		return
	}
	round, ok := h.svc.Rounds.Round(id)
	if !ok {
		writeError(w, r, http.StatusNotFound, "round not found", h.logger)
		return
	}
	writeJSON(w, http.StatusOK, round, h.logger)
}

// Ladder returns the competition ladder.
func (h *Handler) Ladder(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, nonNil(h.svc.Ladder.Ladder()), h.logger)
}

// RoundStats returns the raw stat records for a round.
func (h *Handler) RoundStats(w http.ResponseWriter, r *http.Request) {
	round, err := roundParam(r)
	if err != nil {
		writeError(w, r, http.StatusBadRequest, err.Error(), h.logger)
		return
	}
	rs, err := h.svc.Stats.ForRound(round)
	if err != nil {
		h.statsError(w, r, round, err)
		return
	}
	writeJSON(w, http.StatusOK, rs, h.logger)
}

// PlayersWithStats joins the player pool with a round's stats and fantasy points.
func (h *Handler) PlayersWithStats(w http.ResponseWriter, r *http.Request) {
	round, err := roundParam(r)
	if err != nil {
		writeError(w, r, http.StatusBadRequest, err.Error(), h.logger)
		return
	}
	rs, err := h.svc.Stats.ForRound(round)
	if err != nil {
		h.statsError(w, r, round, err)
		return
	}
	writeJSON(w, http.StatusOK, nonNil(h.svc.Players.WithStats(rs, h.svc.Stats.Engine())), h.logger)
}

func (h *Handler) statsError(w http.ResponseWriter, r *http.Request, round int, err error) {
	logger := loggerFromContext(r, h.logger)
	if errors.Is(err, appstats.ErrNoStats) {
		logging.Debug(logger, "stats not found", slog.Int(logging.FieldRound, round), slog.Any("err", err))
		writeError(w, r, http.StatusNotFound, "no stats for round", logger)
		return
	}
	logging.Error(logger, "stats lookup failed", err, slog.Int(logging.FieldRound, round))
	writeError(w, r, http.StatusInternalServerError, "failed to load stats", logger)
}
