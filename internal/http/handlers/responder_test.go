package handlers

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Bazz30/NRL/internal/testutil"
)

func TestWriteErrorIncludesRequestID(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	logger, _ := testutil.NewBufferLogger()

	req.Header.Set("X-Request-ID", "abc123")

	rr := testutil.ServeRequest(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeError(w, r, http.StatusTeapot, "boom", logger)
	}), req)

	if rr.Code != http.StatusTeapot {
		t.Fatalf("expected status 418, got %d", rr.Code)
	}
	if got := rr.Header().Get("Content-Type"); got != "application/json" {
		t.Fatalf("expected content type json, got %s", got)
	}
	if !bytes.Contains(rr.Body.Bytes(), []byte("abc123")) {
		t.Fatalf("expected requestId in body, got %s", rr.Body.String())
	}
}

func TestWriteJSONLogsEncodeError(t *testing.T) {
	logger, buf := testutil.NewBufferLogger()
	rr := testutil.Serve(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, make(chan int), logger)
	}), http.MethodGet, "/encode-error", nil)

	if rr.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rr.Code)
	}
	if !strings.Contains(buf.String(), "failed to encode response") {
		t.Fatalf("expected encode failure to be logged, got %s", buf.String())
	}
}

func TestRequireMethodSetsAllow(t *testing.T) {
	rr := testutil.Serve(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requireMethod(w, r, http.MethodPost, nil)
	}), http.MethodGet, "/admin", nil)

	testutil.AssertStatus(t, rr, http.StatusMethodNotAllowed)
	assert.Equal(t, http.MethodPost, rr.Header().Get("Allow"))
}

func TestParseRound(t *testing.T) {
	tests := []struct {
		raw      string
		optional bool
		want     int
		wantErr  bool
	}{
		{raw: "17", want: 17},
		{raw: " 3 ", want: 3},
		{raw: "", optional: true, want: 0},
		{raw: "", wantErr: true},
		{raw: "0", wantErr: true},
		{raw: "-2", optional: true, wantErr: true},
		{raw: "abc", wantErr: true},
	}
	for _, tt := range tests {
		got, err := parseRound(tt.raw, tt.optional)
		if tt.wantErr {
			assert.ErrorIs(t, err, errInvalidRound, "raw %q", tt.raw)
			continue
		}
		require.NoError(t, err, "raw %q", tt.raw)
		assert.Equal(t, tt.want, got)
	}
}

func TestRoundParamReadsChiSegment(t *testing.T) {
	var got int
	r := chi.NewRouter()
	r.Get("/stats/{round}", func(w http.ResponseWriter, req *http.Request) {
		got, _ = roundParam(req)
	})
	testutil.Serve(r, http.MethodGet, "/stats/12", nil)
	assert.Equal(t, 12, got)
}
