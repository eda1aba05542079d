package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"

	"github.com/Bazz30/NRL/internal/logging"
	"github.com/Bazz30/NRL/internal/metrics"
	"github.com/Bazz30/NRL/internal/testutil"
)

func TestLoggingMiddlewareSetsRequestIDAndStatus(t *testing.T) {
	logger, buf := testutil.NewBufferLogger()
	nextCalled := false

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		nextCalled = true
		if got := RequestIDFromContext(r.Context()); got == "" {
			t.Fatalf("expected request id in context")
		}
		if logging.FromContext(r.Context(), nil) == nil {
			t.Fatalf("expected request logger in context")
		}
		w.WriteHeader(http.StatusTeapot)
	})

	handler := LoggingMiddleware(logger, metrics.NewRecorder(), next)
	rr := testutil.Serve(handler, http.MethodGet, "/api/ladder", nil)

	if !nextCalled {
		t.Fatalf("expected next handler to be called")
	}
	testutil.AssertStatus(t, rr, http.StatusTeapot)
	if rr.Header().Get("X-Request-ID") == "" {
		t.Fatalf("expected X-Request-ID header to be set")
	}
	if !strings.Contains(buf.String(), "status_code=418") {
		t.Fatalf("expected status logged, got %s", buf.String())
	}
}

func TestLoggingMiddlewarePreservesValidIncomingID(t *testing.T) {
	logger, buf := testutil.NewBufferLogger()
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := RequestIDFromContext(r.Context()); got != "abc-123" {
			t.Fatalf("expected incoming id, got %q", got)
		}
	})

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	req.Header.Set("X-Request-ID", "abc-123")
	rr := testutil.ServeRequest(LoggingMiddleware(logger, nil, next), req)

	if rr.Header().Get("X-Request-ID") != "abc-123" {
		t.Fatalf("expected echoed request id")
	}
	if !strings.Contains(buf.String(), "request_id=abc-123") {
		t.Fatalf("expected request id in logs, got %s", buf.String())
	}
}

func TestLoggingMiddlewareReplacesInvalidIncomingID(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {})
	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	req.Header.Set("X-Request-ID", "not valid!")
	rr := testutil.ServeRequest(LoggingMiddleware(nil, nil, next), req)

	if got := rr.Header().Get("X-Request-ID"); got == "" || got == "not valid!" {
		t.Fatalf("expected regenerated id, got %q", got)
	}
}

func TestRoutePatternUsesChiContext(t *testing.T) {
	logger, buf := testutil.NewBufferLogger()
	var pattern string

	r := chi.NewRouter()
	r.Use(func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
			next.ServeHTTP(w, req)
			pattern = routePattern(req)
		})
	})
	r.Use(Use(logger, metrics.NewRecorder()))
	r.Get("/api/stats/{round}", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	rr := testutil.Serve(r, http.MethodGet, "/api/stats/17", nil)
	testutil.AssertStatus(t, rr, http.StatusOK)
	if pattern != "/api/stats/{round}" {
		t.Fatalf("expected route pattern, got %q", pattern)
	}
	if !strings.Contains(buf.String(), "path=/api/stats/17") {
		t.Fatalf("expected raw path in logs, got %s", buf.String())
	}
}

func TestRoutePatternWithoutRouter(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/x", nil)
	if got := routePattern(req); got != unmatchedRoute {
		t.Fatalf("expected %q, got %q", unmatchedRoute, got)
	}
}

func TestRequestIDFromContext(t *testing.T) {
	if RequestIDFromContext(context.Background()) != "" {
		t.Fatalf("expected empty id")
	}
	ctx := withRequestID(context.Background(), "rid")
	if RequestIDFromContext(ctx) != "rid" {
		t.Fatalf("expected stored id")
	}
}

func TestResponseWriterKeepsFirstStatus(t *testing.T) {
	rr := httptest.NewRecorder()
	w := &responseWriter{ResponseWriter: rr, status: http.StatusOK}
	w.WriteHeader(http.StatusCreated)
	w.WriteHeader(http.StatusInternalServerError)
	if w.status != http.StatusCreated {
		t.Fatalf("expected first status kept, got %d", w.status)
	}
	w.Flush()
	if w.Unwrap() != rr {
		t.Fatalf("expected unwrap to return underlying writer")
	}
}
