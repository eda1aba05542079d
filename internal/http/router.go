package http

import (
	"log/slog"
	nethttp "net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"github.com/Bazz30/NRL/internal/http/handlers"
	"github.com/Bazz30/NRL/internal/http/middleware"
	"github.com/Bazz30/NRL/internal/metrics"
)

// Routes bundles what the router mounts. Only Handler is required.
type Routes struct {
	Handler *handlers.Handler
	Admin   *handlers.AdminHandler
	Advice  *handlers.AdviceHandler
	MCP     nethttp.Handler
	Logger  *slog.Logger
	Metrics *metrics.Recorder
}

// NewRouter registers HTTP routes on a chi router.
func NewRouter(rt Routes) nethttp.Handler {
	h := rt.Handler
	r := chi.NewRouter()
	r.Use(chimw.Recoverer)
	r.Use(middleware.Use(rt.Logger, rt.Metrics))

	r.NotFound(handlers.NotFound)
	r.MethodNotAllowed(handlers.MethodNotAllowed)

	r.Get("/health", h.Health)
	r.Get("/ready", h.Ready)

	r.Route("/api", func(r chi.Router) {
		r.Get("/players", h.Players)
		r.Get("/players/{id}", h.PlayerByID)
		r.Get("/players-with-stats/{round}", h.PlayersWithStats)
		r.Get("/rounds", h.Rounds)
		r.Get("/rounds/current", h.CurrentRound)
		r.Get("/rounds/{round}", h.RoundByID)
		r.Get("/ladder", h.Ladder)
		r.Get("/stats/{round}", h.RoundStats)

		r.Get("/roster", h.Roster)
		r.Get("/roster/positions", h.RosterPositions)
		r.Get("/roster/summary", h.RosterSummary)
		r.Get("/roster/points", h.RosterPoints)

		r.Post("/points", h.Points)
		if rt.Advice != nil {
			r.Post("/lineup-advice", rt.Advice.LineupAdvice)
		}
	})

	if rt.Admin != nil {
		r.Post("/admin/snapshots/refresh", rt.Admin.RefreshSnapshots)
	}
	if rt.MCP != nil {
		r.Handle("/mcp", rt.MCP)
		r.Handle("/mcp/*", rt.MCP)
	}
	return r
}
