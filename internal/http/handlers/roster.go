package handlers

import (
	"net/http"
	"strings"

	"github.com/Bazz30/NRL/internal/domain/players"
	"github.com/Bazz30/NRL/internal/domain/stats"
	"github.com/Bazz30/NRL/internal/roster"
	"github.com/Bazz30/NRL/internal/scoring"
)

type rosterResponse struct {
	Round   int            `json:"round"`
	Players []roster.Entry `json:"players"`
}

type positionsResponse struct {
	Round     int                    `json:"round"`
	Fulfilled bool                   `json:"fulfilled"`
	Positions []roster.PositionCount `json:"positions"`
}

type pointsResponse struct {
	Points    float64                `json:"points"`
	Breakdown []scoring.Contribution `json:"breakdown"`
}

// Roster returns every roster player with their status for ?round= (default current), filtered by ?team=.
func (h *Handler) Roster(w http.ResponseWriter, r *http.Request) {
	round, ok := h.rosterRound(w, r)
	if !ok {
		return
	}
	team := strings.TrimSpace(r.URL.Query().Get("team"))
	entries := h.svc.Roster.Entries(round, team)
	if status := strings.TrimSpace(r.URL.Query().Get("status")); status != "" {
		entries = roster.FilterByStatus(entries, players.Status(status))
	}
	writeJSON(w, http.StatusOK, rosterResponse{Round: round, Players: nonNil(entries)}, h.logger)
}

// RosterPositions reports position fulfilment for ?round=.
func (h *Handler) RosterPositions(w http.ResponseWriter, r *http.Request) {
	round, ok := h.rosterRound(w, r)
	if !ok {
		return
	}
	counts := h.svc.Roster.Positions(round)
	writeJSON(w, http.StatusOK, positionsResponse{
		Round:     round,
		Fulfilled: roster.AllFulfilled(counts),
		Positions: nonNil(counts),
	}, h.logger)
}

// RosterSummary aggregates the roster for ?round=.
func (h *Handler) RosterSummary(w http.ResponseWriter, r *http.Request) {
	round, ok := h.rosterRound(w, r)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, h.svc.Roster.Summary(round), h.logger)
}

// RosterPoints scores each roster player from the round's stat records.
func (h *Handler) RosterPoints(w http.ResponseWriter, r *http.Request) {
	round, ok := h.rosterRound(w, r)
	if !ok {
		return
	}
	points, err := h.svc.Roster.Points(round)
	if err != nil {
		h.statsError(w, r, round, err)
		return
	}
	writeJSON(w, http.StatusOK, nonNil(points), h.logger)
}

// Points scores a single stat record posted as a JSON object of code to count.
func (h *Handler) Points(w http.ResponseWriter, r *http.Request) {
	var raw map[string]float64
	if err := decodeBody(r, &raw); err != nil {
		writeError(w, r, http.StatusBadRequest, "invalid stat record", h.logger)
		return
	}
	rec := make(stats.Record, len(raw))
	for code, count := range raw {
		rec[stats.Code(strings.ToUpper(strings.TrimSpace(code)))] += count
	}
	engine := h.svc.Stats.Engine()
	writeJSON(w, http.StatusOK, pointsResponse{
		Points:    engine.Points(rec),
		Breakdown: nonNil(engine.Breakdown(rec)),
	}, h.logger)
}

func (h *Handler) rosterRound(w http.ResponseWriter, r *http.Request) (int, bool) {
	round, err := roundQuery(r)
	if err != nil {
		writeError(w, r, http.StatusBadRequest, err.Error(), h.logger)
		return 0, false
	}
	return h.svc.Roster.ResolveRound(round), true
}
