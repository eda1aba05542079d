package metrics

import (
	"errors"
	"testing"
	"time"
)

func TestRecorderTracksProviderAttemptsAndErrors(t *testing.T) {
	rec := NewRecorder()
	rec.RecordProviderAttempt("nrlfantasy", 10*time.Millisecond, nil)
	rec.RecordProviderAttempt("nrlfantasy", 15*time.Millisecond, errors.New("boom"))

	if got := rec.ProviderCalls("nrlfantasy"); got != 2 {
		t.Fatalf("expected 2 calls, got %d", got)
	}
	if got := rec.ProviderErrors("nrlfantasy"); got != 1 {
		t.Fatalf("expected 1 error, got %d", got)
	}
	if got := rec.LastCallLatency("nrlfantasy"); got != 15*time.Millisecond {
		t.Fatalf("expected last latency to be 15ms, got %s", got)
	}

	snap := rec.Snapshot("nrlfantasy")
	if snap.Calls != 2 || snap.Errors != 1 {
		t.Fatalf("unexpected snapshot %+v", snap)
	}
}

func TestRecorderTracksRateLimits(t *testing.T) {
	rec := NewRecorder()
	rec.RecordRateLimit("nrlfantasy", 5*time.Second)
	rec.RecordRateLimit("nrlfantasy", 0)

	if got := rec.RateLimitHits("nrlfantasy"); got != 2 {
		t.Fatalf("expected 2 rate limit hits, got %d", got)
	}
	if got := rec.LastRetryAfter("nrlfantasy"); got != 5*time.Second {
		t.Fatalf("expected last retry-after to be 5s, got %s", got)
	}
}

func TestRecorderTracksSnapshotWrites(t *testing.T) {
	rec := NewRecorder()
	rec.RecordSnapshotWrite("players", nil)
	rec.RecordSnapshotWrite("players", nil)
	rec.RecordSnapshotWrite("stats", errors.New("disk full"))

	if got := rec.SnapshotWrites("players"); got != 2 {
		t.Fatalf("expected 2 players writes, got %d", got)
	}
	if got := rec.SnapshotWrites("stats"); got != 0 {
		t.Fatalf("failed writes must not count, got %d", got)
	}
}

func TestRecorderTracksAdviceRequests(t *testing.T) {
	rec := NewRecorder()
	rec.RecordAdviceRequest(time.Second, nil)
	rec.RecordAdviceRequest(time.Second, errors.New("upstream 500"))

	total, failed := rec.AdviceRequests()
	if total != 2 || failed != 1 {
		t.Fatalf("expected 2 total / 1 failed, got %d / %d", total, failed)
	}
}

func TestNilRecorderIsSafe(t *testing.T) {
	var rec *Recorder
	rec.RecordProviderAttempt("x", time.Millisecond, nil)
	rec.RecordRateLimit("x", time.Second)
	rec.RecordHTTPRequest("GET", "/", 200, time.Millisecond)
	rec.RecordPollerCycle(time.Millisecond, nil)
	rec.RecordSnapshotWrite("players", nil)
	rec.RecordAdviceRequest(time.Millisecond, nil)

	if rec.SnapshotWrites("players") != 0 || rec.ProviderCalls("x") != 0 {
		t.Fatalf("expected zero values from nil recorder")
	}
	if total, _ := rec.AdviceRequests(); total != 0 {
		t.Fatalf("expected zero advice requests")
	}
}
