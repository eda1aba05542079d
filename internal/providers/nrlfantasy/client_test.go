package nrlfantasy

import (
	"context"
	"io"
	"net/http"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Bazz30/NRL/internal/domain/players"
	"github.com/Bazz30/NRL/internal/domain/rounds"
	"github.com/Bazz30/NRL/internal/domain/stats"
	"github.com/Bazz30/NRL/internal/providers"
)

type roundTripperFunc func(*http.Request) (*http.Response, error)

func (f roundTripperFunc) RoundTrip(req *http.Request) (*http.Response, error) {
	return f(req)
}

const (
	squadsBody = `[
		{"id": 500011, "name": "Panthers", "full_name": "Penrith Panthers", "short_name": "PEN"},
		{"id": 500032, "name": "Warriors", "full_name": "New Zealand Warriors", "short_name": "WAR"}
	]`
	playersBody = `[
		{
			"id": 1001, "first_name": "Nathan", "last_name": "Cleary", "squad_id": 500011,
			"cost": 820000, "status": "playing", "positions": [4],
			"stats": {
				"prices": {"1": 800000, "2": 820000},
				"scores": {"1": 84, "2": 61},
				"round_stats": {"2": {"T": 1, "g": 3, "TCK": 12}},
				"avg_points": 72.5, "total_points": 145, "games_played": 2
			}
		},
		{
			"id": 1002, "first_name": "Erin", "last_name": "Clark", "squad_id": 500032,
			"cost": 787000, "status": "injured", "positions": [1, 2, 9],
			"stats": {"avg_points": 0}
		}
	]`
	roundsBody = `[
		{"id": 1, "status": "complete", "start": "2025-03-01 18:00:00", "end": "2025-03-09 16:00:00",
		 "games": [{"id": 7, "home_squad_id": 500011, "away_squad_id": 500032, "date": "2025-03-01T18:00:00+11:00",
		            "venue_name": "Allegiant Stadium", "status": "complete", "home_score": 24, "away_score": 12}]},
		{"id": 2, "status": "active", "start": "2025-03-13 19:50:00", "end": "2025-03-16 18:00:00", "games": []}
	]`
	ladderBody = `[
		{"squad_id": 500032, "position": 2, "points": 2, "wins": 1, "losses": 1, "points_for": 30, "points_against": 40},
		{"squad_id": 500011, "position": 1, "points": 4, "wins": 2, "points_for": 50, "points_against": 20}
	]`
)

func feedClient(t *testing.T, hits *atomic.Int32) *Client {
	t.Helper()
	rt := roundTripperFunc(func(req *http.Request) (*http.Response, error) {
		if hits != nil {
			hits.Add(1)
		}
		assert.NotEmpty(t, req.Header.Get("User-Agent"))
		var body string
		switch req.URL.Path {
		case "/data/nrl/squads.json":
			body = squadsBody
		case "/data/nrl/players.json":
			body = playersBody
		case "/data/nrl/rounds.json":
			body = roundsBody
		case "/data/nrl/ladder.json":
			body = ladderBody
		default:
			return &http.Response{StatusCode: http.StatusNotFound, Body: io.NopCloser(strings.NewReader("missing")), Header: make(http.Header)}, nil
		}
		return &http.Response{StatusCode: http.StatusOK, Body: io.NopCloser(strings.NewReader(body)), Header: make(http.Header)}, nil
	})
	return NewClient(Config{BaseURL: "https://feed.test/data/nrl/", HTTPClient: &http.Client{Transport: rt}})
}

func TestFetchPlayersMapsFeed(t *testing.T) {
	client := feedClient(t, nil)

	got, err := client.FetchPlayers(context.Background())
	require.NoError(t, err)
	require.Len(t, got, 2)

	cleary := got[0]
	assert.Equal(t, 1001, cleary.ID)
	assert.Equal(t, "Nathan Cleary", cleary.Name)
	assert.Equal(t, "Panthers", cleary.Team)
	assert.Equal(t, []players.Position{players.Halfback}, cleary.Positions)
	assert.Equal(t, 820000, cleary.Prices[2])
	assert.Equal(t, 61.0, cleary.Scores[2])
	assert.Equal(t, 72.5, cleary.Average)
	assert.Equal(t, 2, cleary.Games)

	clark := got[1]
	assert.Equal(t, "Warriors", clark.Team)
	assert.Equal(t, []players.Position{players.Hooker, players.Middle}, clark.Positions, "unknown position ids dropped")
	assert.Nil(t, clark.Scores)
}

func TestFetchRoundsMapsFixtures(t *testing.T) {
	client := feedClient(t, nil)

	got, err := client.FetchRounds(context.Background())
	require.NoError(t, err)
	require.Len(t, got, 2)

	assert.Equal(t, "Round 1", got[0].Name)
	assert.Equal(t, rounds.StatusComplete, got[0].Status)
	assert.Equal(t, 2025, got[0].StartDate.Year())
	require.Len(t, got[0].Matches, 1)
	match := got[0].Matches[0]
	assert.Equal(t, "Panthers", match.HomeTeam)
	assert.Equal(t, "Warriors", match.AwayTeam)
	assert.Equal(t, 24, match.HomeScore)
	assert.Equal(t, "Allegiant Stadium", match.Venue)
	assert.Equal(t, rounds.StatusActive, got[1].Status)
}

func TestFetchLadderSortsAndNamesTeams(t *testing.T) {
	client := feedClient(t, nil)

	got, err := client.FetchLadder(context.Background())
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "Panthers", got[0].TeamName)
	assert.Equal(t, 1, got[0].Position)
	assert.Equal(t, "Warriors", got[1].TeamName)
}

func TestFetchRoundStatsExtractsRecords(t *testing.T) {
	client := feedClient(t, nil)

	rs, err := client.FetchRoundStats(context.Background(), 2)
	require.NoError(t, err)
	assert.Equal(t, 2, rs.Round)
	require.Len(t, rs.Players, 1)
	rec := rs.For("1001")
	assert.Equal(t, 1.0, rec.Get(stats.Try))
	assert.Equal(t, 3.0, rec.Get(stats.Goal), "codes are upper-cased")
	assert.Equal(t, 12.0, rec.Get(stats.Tackle))

	empty, err := client.FetchRoundStats(context.Background(), 9)
	require.NoError(t, err)
	assert.Empty(t, empty.Players)
}

func TestFetchRoundStatsRejectsInvalidRound(t *testing.T) {
	_, err := feedClient(t, nil).FetchRoundStats(context.Background(), 0)
	assert.Error(t, err)
}

func TestSquadsAreCached(t *testing.T) {
	var hits atomic.Int32
	client := feedClient(t, &hits)

	_, err := client.FetchPlayers(context.Background())
	require.NoError(t, err)
	_, err = client.FetchLadder(context.Background())
	require.NoError(t, err)

	// players + squads, then ladder only
	assert.EqualValues(t, 3, hits.Load())
}

func TestNonOKStatusReturnsStatusError(t *testing.T) {
	rt := roundTripperFunc(func(*http.Request) (*http.Response, error) {
		return &http.Response{StatusCode: http.StatusBadGateway, Body: io.NopCloser(strings.NewReader(" upstream down ")), Header: make(http.Header)}, nil
	})
	client := NewClient(Config{HTTPClient: &http.Client{Transport: rt}})

	_, err := client.FetchRounds(context.Background())
	var statusErr *providers.StatusError
	require.ErrorAs(t, err, &statusErr)
	assert.Equal(t, http.StatusBadGateway, statusErr.StatusCode)
	assert.Equal(t, "upstream down", statusErr.Body)
	assert.True(t, providers.IsRetryable(err))
}

func TestRateLimitedResponseReturnsRateLimitError(t *testing.T) {
	rt := roundTripperFunc(func(*http.Request) (*http.Response, error) {
		h := make(http.Header)
		h.Set("Retry-After", "7")
		return &http.Response{StatusCode: http.StatusTooManyRequests, Body: io.NopCloser(strings.NewReader("")), Header: h}, nil
	})
	client := NewClient(Config{HTTPClient: &http.Client{Transport: rt}})

	_, err := client.FetchLadder(context.Background())
	rl, ok := providers.AsRateLimitError(err)
	require.True(t, ok)
	assert.Equal(t, 7*time.Second, rl.RetryAfter)
}

func TestDecodeErrorIsWrapped(t *testing.T) {
	rt := roundTripperFunc(func(*http.Request) (*http.Response, error) {
		return &http.Response{StatusCode: http.StatusOK, Body: io.NopCloser(strings.NewReader("{not json")), Header: make(http.Header)}, nil
	})
	client := NewClient(Config{HTTPClient: &http.Client{Transport: rt}})

	_, err := client.FetchRoundStats(context.Background(), 1)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "decode /players.json")
}
