package nrlfantasy

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/Bazz30/NRL/internal/domain/ladder"
	"github.com/Bazz30/NRL/internal/domain/players"
	"github.com/Bazz30/NRL/internal/domain/rounds"
	"github.com/Bazz30/NRL/internal/domain/stats"
	"github.com/Bazz30/NRL/internal/providers"
)

// Config controls how the client reaches the fantasy data host.
type Config struct {
	BaseURL    string
	UserAgent  string
	Timeout    time.Duration
	HTTPClient *http.Client
}

// Client fetches the public NRL Fantasy JSON feed and maps it to domain models.
type Client struct {
	baseURL    string
	userAgent  string
	httpClient httpDoer
	now        func() time.Time

	mu     sync.Mutex
	squads map[int]squadResponse
}

// NewClient constructs a client with the provided configuration.
func NewClient(cfg Config) *Client {
	return &Client{
		baseURL:    normalizeBaseURL(cfg.BaseURL),
		userAgent:  resolveUserAgent(cfg.UserAgent),
		httpClient: resolveHTTPClient(cfg.HTTPClient, cfg.Timeout),
		now:        time.Now,
	}
}

// FetchPlayers retrieves the full player pool.
func (c *Client) FetchPlayers(ctx context.Context) ([]players.LeaguePlayer, error) {
	raw, err := c.fetchPlayers(ctx)
	if err != nil {
		return nil, err
	}
	squads, err := c.loadSquads(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]players.LeaguePlayer, 0, len(raw))
	for _, p := range raw {
		out = append(out, mapPlayer(p, squads))
	}
	return out, nil
}

// FetchRounds retrieves every round of the season with its fixtures.
func (c *Client) FetchRounds(ctx context.Context) ([]rounds.Round, error) {
	var raw []roundResponse
	if err := c.getJSON(ctx, roundsPath, &raw); err != nil {
		return nil, err
	}
	squads, err := c.loadSquads(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]rounds.Round, 0, len(raw))
	for _, r := range raw {
		out = append(out, mapRound(r, squads))
	}
	return out, nil
}

// FetchLadder retrieves the competition ladder.
func (c *Client) FetchLadder(ctx context.Context) ([]ladder.Entry, error) {
	var raw []ladderResponse
	if err := c.getJSON(ctx, ladderPath, &raw); err != nil {
		return nil, err
	}
	squads, err := c.loadSquads(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]ladder.Entry, 0, len(raw))
	for _, e := range raw {
		out = append(out, mapLadderEntry(e, squads))
	}
	ladder.Sort(out)
	return out, nil
}

// FetchRoundStats extracts one round's stat records from the players feed.
// Players without stats for the round are omitted.
func (c *Client) FetchRoundStats(ctx context.Context, round int) (stats.RoundStats, error) {
	if round <= 0 {
		return stats.RoundStats{}, fmt.Errorf("%s: invalid round %d", providerName, round)
	}
	raw, err := c.fetchPlayers(ctx)
	if err != nil {
		return stats.RoundStats{}, err
	}
	return mapRoundStats(raw, round), nil
}

func (c *Client) fetchPlayers(ctx context.Context) ([]playerResponse, error) {
	var raw []playerResponse
	if err := c.getJSON(ctx, playersPath, &raw); err != nil {
		return nil, err
	}
	return raw, nil
}

// loadSquads fetches squads.json once and caches it for the client's lifetime.
func (c *Client) loadSquads(ctx context.Context) (map[int]squadResponse, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.squads != nil {
		return c.squads, nil
	}

	var raw []squadResponse
	if err := c.getJSON(ctx, squadsPath, &raw); err != nil {
		return nil, err
	}
	squads := make(map[int]squadResponse, len(raw))
	for _, s := range raw {
		squads[s.ID] = s
	}
	c.squads = squads
	return squads, nil
}

func (c *Client) getJSON(ctx context.Context, path string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return err
	}
	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusTooManyRequests {
		return &providers.RateLimitError{
			Provider:   providerName,
			StatusCode: resp.StatusCode,
			RetryAfter: parseRetryAfter(resp.Header.Get("Retry-After"), c.now()),
			Remaining:  resp.Header.Get("X-RateLimit-Remaining"),
			Message:    "nrlfantasy rate limited",
		}
	}
	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		return &providers.StatusError{
			Provider:   providerName,
			StatusCode: resp.StatusCode,
			Body:       strings.TrimSpace(string(body)),
		}
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("%s: decode %s: %w", providerName, path, err)
	}
	return nil
}
