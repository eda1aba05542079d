package handlers

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Bazz30/NRL/internal/providers"
	"github.com/Bazz30/NRL/internal/snapshots"
	"github.com/Bazz30/NRL/internal/testutil"
)

type stubRefresher struct {
	kinds      []snapshots.Kind
	statsRound int
	err        error
}

func (s *stubRefresher) Refresh(_ context.Context, kinds ...snapshots.Kind) error {
	s.kinds = append(s.kinds, kinds...)
	return s.err
}

func (s *stubRefresher) RefreshStats(_ context.Context, round int) error {
	s.statsRound = round
	return s.err
}

func adminRequest(path, token string) *http.Request {
	req := httptest.NewRequest(http.MethodPost, path, nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	return req
}

func TestAdminRefreshRequiresToken(t *testing.T) {
	logger, buf := testutil.NewBufferLogger()
	h := NewAdminHandler(&stubRefresher{}, "secret", logger)

	rr := testutil.ServeRequest(http.HandlerFunc(h.RefreshSnapshots), adminRequest("/admin/snapshots/refresh", "wrong"))
	testutil.AssertStatus(t, rr, http.StatusUnauthorized)
	assert.Contains(t, buf.String(), "admin unauthorized")

	rr = testutil.ServeRequest(http.HandlerFunc(h.RefreshSnapshots), adminRequest("/admin/snapshots/refresh", ""))
	testutil.AssertStatus(t, rr, http.StatusUnauthorized)
}

func TestAdminRefreshEmptyTokenRejectsAll(t *testing.T) {
	h := NewAdminHandler(&stubRefresher{}, "", nil)
	req := adminRequest("/admin/snapshots/refresh", "")
	req.Header.Set("Authorization", "Bearer ")
	rr := testutil.ServeRequest(http.HandlerFunc(h.RefreshSnapshots), req)
	testutil.AssertStatus(t, rr, http.StatusUnauthorized)
}

func TestAdminRefreshMethodNotAllowed(t *testing.T) {
	h := NewAdminHandler(&stubRefresher{}, "secret", nil)
	rr := testutil.Serve(http.HandlerFunc(h.RefreshSnapshots), http.MethodGet, "/admin/snapshots/refresh", nil)
	testutil.AssertStatus(t, rr, http.StatusMethodNotAllowed)
}

func TestAdminRefreshDefaultsToStaticKinds(t *testing.T) {
	ref := &stubRefresher{}
	h := NewAdminHandler(ref, "secret", nil)

	rr := testutil.ServeRequest(http.HandlerFunc(h.RefreshSnapshots), adminRequest("/admin/snapshots/refresh", "secret"))
	testutil.AssertStatus(t, rr, http.StatusOK)
	assert.Equal(t, []snapshots.Kind{snapshots.KindPlayers, snapshots.KindRounds, snapshots.KindLadder}, ref.kinds)
}

func TestAdminRefreshSingleKind(t *testing.T) {
	ref := &stubRefresher{}
	h := NewAdminHandler(ref, "secret", nil)

	rr := testutil.ServeRequest(http.HandlerFunc(h.RefreshSnapshots), adminRequest("/admin/snapshots/refresh?kind=LADDER", "secret"))
	testutil.AssertStatus(t, rr, http.StatusOK)
	assert.Equal(t, []snapshots.Kind{snapshots.KindLadder}, ref.kinds)

	var body map[string]any
	testutil.DecodeJSON(t, rr, &body)
	assert.Equal(t, "ladder", body["kind"])
}

func TestAdminRefreshStats(t *testing.T) {
	ref := &stubRefresher{}
	h := NewAdminHandler(ref, "secret", nil)

	rr := testutil.ServeRequest(http.HandlerFunc(h.RefreshSnapshots), adminRequest("/admin/snapshots/refresh?kind=stats&round=9", "secret"))
	testutil.AssertStatus(t, rr, http.StatusOK)
	require.Equal(t, 9, ref.statsRound)

	rr = testutil.ServeRequest(http.HandlerFunc(h.RefreshSnapshots), adminRequest("/admin/snapshots/refresh?kind=stats", "secret"))
	testutil.AssertStatus(t, rr, http.StatusBadRequest)
}

func TestAdminRefreshInvalidKind(t *testing.T) {
	h := NewAdminHandler(&stubRefresher{}, "secret", nil)
	rr := testutil.ServeRequest(http.HandlerFunc(h.RefreshSnapshots), adminRequest("/admin/snapshots/refresh?kind=games", "secret"))
	testutil.AssertStatus(t, rr, http.StatusBadRequest)
}

func TestAdminRefreshErrors(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{name: "unavailable", err: providers.ErrProviderUnavailable, want: http.StatusServiceUnavailable},
		{name: "upstream", err: errors.New("boom"), want: http.StatusBadGateway},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := NewAdminHandler(&stubRefresher{err: tt.err}, "secret", nil)
			rr := testutil.ServeRequest(http.HandlerFunc(h.RefreshSnapshots), adminRequest("/admin/snapshots/refresh?kind=players", "secret"))
			testutil.AssertStatus(t, rr, tt.want)
		})
	}
}

func TestAdminRefreshWithoutRefresher(t *testing.T) {
	h := NewAdminHandler(nil, "secret", nil)
	rr := testutil.ServeRequest(http.HandlerFunc(h.RefreshSnapshots), adminRequest("/admin/snapshots/refresh", "secret"))
	testutil.AssertStatus(t, rr, http.StatusServiceUnavailable)
}

func TestAdminRefreshThroughSyncerWithUnreachableFeed(t *testing.T) {
	feed := testutil.UnavailableProvider()
	syncer := snapshots.NewSyncer(feed, testutil.NewTempWriter(t), snapshots.SyncConfig{}, nil, nil)
	h := NewAdminHandler(syncer, "secret", nil)

	rr := testutil.ServeRequest(http.HandlerFunc(h.RefreshSnapshots), adminRequest("/admin/snapshots/refresh?kind=ladder", "secret"))
	testutil.AssertStatus(t, rr, http.StatusServiceUnavailable)
	assert.Equal(t, int32(1), feed.LadderHits.Load())
	assert.Zero(t, feed.PlayerHits.Load())

	rr = testutil.ServeRequest(http.HandlerFunc(h.RefreshSnapshots), adminRequest("/admin/snapshots/refresh?kind=stats&round=17", "secret"))
	testutil.AssertStatus(t, rr, http.StatusServiceUnavailable)
	assert.Equal(t, int32(1), feed.StatsHits.Load())
}
