package requestutil

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"
)

func TestSanitizeRequestID(t *testing.T) {
	if got := SanitizeRequestID("valid-123"); got != "valid-123" {
		t.Fatalf("expected pass-through, got %s", got)
	}
	if got := SanitizeRequestID(" round_17 "); got != "round_17" {
		t.Fatalf("expected trimmed id, got %s", got)
	}
	for _, bad := range []string{"", "bad id", strings.Repeat("a", 65)} {
		if got := SanitizeRequestID(bad); got == "" || got == bad {
			t.Fatalf("expected replacement for %q, got %s", bad, got)
		}
	}
}

func TestNewRequestIDIsUUID(t *testing.T) {
	got := NewRequestID()
	if _, err := uuid.Parse(got); err != nil {
		t.Fatalf("expected uuid, got %q: %v", got, err)
	}
	if !requestIDPattern.MatchString(got) {
		t.Fatalf("generated id %q must satisfy the incoming pattern", got)
	}
}

func TestNewRequestIDFallsBackWhenRandomFails(t *testing.T) {
	orig := newUUID
	newUUID = func() (uuid.UUID, error) { return uuid.Nil, errors.New("entropy exhausted") }
	defer func() { newUUID = orig }()

	got := NewRequestID()
	if !strings.HasPrefix(got, "req-") || !requestIDPattern.MatchString(got) {
		t.Fatalf("expected valid fallback id, got %q", got)
	}
}

func TestClientIP(t *testing.T) {
	if got := ClientIP(nil); got != "" {
		t.Fatalf("expected empty for nil request, got %q", got)
	}

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("X-Forwarded-For", "1.2.3.4, 5.6.7.8")
	req.Header.Set("X-Real-IP", "7.7.7.7")
	if got := ClientIP(req); got != "1.2.3.4" {
		t.Fatalf("expected first forwarded address, got %s", got)
	}

	req = httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("X-Real-IP", "7.7.7.7")
	if got := ClientIP(req); got != "7.7.7.7" {
		t.Fatalf("expected real ip header, got %s", got)
	}

	req = httptest.NewRequest(http.MethodGet, "/", nil)
	req.RemoteAddr = "9.9.9.9:1234"
	if got := ClientIP(req); got != "9.9.9.9" {
		t.Fatalf("expected remote host, got %s", got)
	}

	req.RemoteAddr = "unix"
	if got := ClientIP(req); got != "unix" {
		t.Fatalf("expected raw remote addr, got %s", got)
	}
}
