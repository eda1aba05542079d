// Package mcptools exposes roster and scoring lookups as Model Context Protocol tools.
package mcptools

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/Bazz30/NRL/internal/domain/stats"
	"github.com/Bazz30/NRL/internal/logging"
	"github.com/Bazz30/NRL/internal/roster"
	"github.com/Bazz30/NRL/internal/scoring"
)

const serverName = "nrl-fantasy"

// RosterViews is the subset of the roster service the tools read.
type RosterViews interface {
	ResolveRound(round int) int
	Entries(round int, team string) []roster.Entry
	Positions(round int) []roster.PositionCount
}

// FantasyPointsArgs is the input of the fantasy_points tool.
type FantasyPointsArgs struct {
	Stats map[string]float64 `json:"stats" jsonschema:"Counts keyed by stat code such as T, TCK or MG"`
}

// RosterStatusArgs is the input of the roster_status tool.
type RosterStatusArgs struct {
	Round int    `json:"round,omitempty" jsonschema:"Round number (0 = current round)"`
	Team  string `json:"team,omitempty" jsonschema:"Only players from this NRL team"`
}

// PositionCountsArgs is the input of the position_counts tool.
type PositionCountsArgs struct {
	Round int `json:"round,omitempty" jsonschema:"Round number (0 = current round)"`
}

type pointsOutput struct {
	Points    float64                `json:"points"`
	Breakdown []scoring.Contribution `json:"breakdown"`
}

type rosterOutput struct {
	Round   int            `json:"round"`
	Players []roster.Entry `json:"players"`
}

type positionsOutput struct {
	Round     int                    `json:"round"`
	Fulfilled bool                   `json:"fulfilled"`
	Positions []roster.PositionCount `json:"positions"`
}

// Tools holds the dependencies of the tool handlers.
type Tools struct {
	engine *scoring.Engine
	roster RosterViews
	logger *slog.Logger
}

// New constructs Tools. engine defaults to the standard table; roster may be nil,
// in which case the roster tools report an error.
func New(engine *scoring.Engine, views RosterViews, logger *slog.Logger) *Tools {
	if engine == nil {
		engine = scoring.Default()
	}
	return &Tools{engine: engine, roster: views, logger: logger}
}

// NewServer registers every tool on a fresh MCP server.
func (t *Tools) NewServer(version string) *mcp.Server {
	server := mcp.NewServer(&mcp.Implementation{Name: serverName, Version: version}, nil)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "fantasy_points",
		Description: "Compute NRL Fantasy points for one player's stat record",
	}, t.FantasyPoints)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "roster_status",
		Description: "List roster players with Playing/Bye/Origin status for a round",
	}, t.RosterStatus)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "position_counts",
		Description: "Report how many playing players fill each position against requirements",
	}, t.PositionCounts)

	return server
}

// Handler serves the tools over streamable HTTP.
func (t *Tools) Handler(version string) http.Handler {
	server := t.NewServer(version)
	return mcp.NewStreamableHTTPHandler(func(*http.Request) *mcp.Server {
		return server
	}, &mcp.StreamableHTTPOptions{JSONResponse: true})
}

// FantasyPoints scores a stat record.
func (t *Tools) FantasyPoints(_ context.Context, _ *mcp.CallToolRequest, args FantasyPointsArgs) (*mcp.CallToolResult, any, error) {
	rec := make(stats.Record, len(args.Stats))
	for code, count := range args.Stats {
		rec[stats.Code(strings.ToUpper(strings.TrimSpace(code)))] += count
	}
	out := pointsOutput{Points: t.engine.Points(rec), Breakdown: t.engine.Breakdown(rec)}
	if out.Breakdown == nil {
		out.Breakdown = []scoring.Contribution{}
	}
	return t.toolJSON("fantasy_points", out)
}

// RosterStatus lists roster statuses for a round.
func (t *Tools) RosterStatus(_ context.Context, _ *mcp.CallToolRequest, args RosterStatusArgs) (*mcp.CallToolResult, any, error) {
	if t.roster == nil {
		return toolError(errNoRoster), nil, nil
	}
	if args.Round < 0 {
		return toolError(fmt.Errorf("invalid round %d", args.Round)), nil, nil
	}
	round := t.roster.ResolveRound(args.Round)
	entries := t.roster.Entries(round, args.Team)
	if entries == nil {
		entries = []roster.Entry{}
	}
	return t.toolJSON("roster_status", rosterOutput{Round: round, Players: entries})
}

// PositionCounts reports position fulfilment for a round.
func (t *Tools) PositionCounts(_ context.Context, _ *mcp.CallToolRequest, args PositionCountsArgs) (*mcp.CallToolResult, any, error) {
	if t.roster == nil {
		return toolError(errNoRoster), nil, nil
	}
	if args.Round < 0 {
		return toolError(fmt.Errorf("invalid round %d", args.Round)), nil, nil
	}
	round := t.roster.ResolveRound(args.Round)
	counts := t.roster.Positions(round)
	return t.toolJSON("position_counts", positionsOutput{
		Round:     round,
		Fulfilled: roster.AllFulfilled(counts),
		Positions: counts,
	})
}

var errNoRoster = errors.New("roster not loaded")

func (t *Tools) toolJSON(name string, v any) (*mcp.CallToolResult, any, error) {
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		logging.Error(t.logger, "mcp tool encode failed", err, slog.String(logging.FieldTool, name))
		return toolError(err), nil, nil
	}
	logging.Debug(t.logger, "mcp tool served", slog.String(logging.FieldTool, name))
	return &mcp.CallToolResult{
		Content: []mcp.Content{&mcp.TextContent{Text: string(b)}},
	}, nil, nil
}

func toolError(err error) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		IsError: true,
		Content: []mcp.Content{&mcp.TextContent{Text: fmt.Sprintf("error: %v", err)}},
	}
}
