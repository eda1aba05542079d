package handlers

import (
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/Bazz30/NRL/internal/http/middleware"
	"github.com/Bazz30/NRL/internal/http/requestutil"
	"github.com/Bazz30/NRL/internal/logging"
)

const maxBodyBytes = 1 << 20

var errInvalidRound = errors.New("invalid round")

func writeJSON(w http.ResponseWriter, status int, payload any, logger *slog.Logger) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil && logger != nil {
		logger.Error("failed to encode response", "err", err)
	}
}

func writeError(w http.ResponseWriter, r *http.Request, status int, message string, logger *slog.Logger) {
	reqID := middleware.RequestIDFromContext(r.Context())
	if reqID == "" {
		reqID = r.Header.Get(requestutil.HeaderRequestID)
	}
	body := map[string]string{"error": message}
	if reqID != "" {
		body["requestId"] = reqID
	}
	writeJSON(w, status, body, logger)
}

func loggerFromContext(r *http.Request, fallback *slog.Logger) *slog.Logger {
	if r == nil {
		return fallback
	}
	return logging.FromContext(r.Context(), fallback)
}

// NotFound replies with a JSON 404.
func NotFound(w http.ResponseWriter, r *http.Request) {
	writeError(w, r, http.StatusNotFound, "not found", loggerFromContext(r, nil))
}

// MethodNotAllowed replies with a JSON 405.
func MethodNotAllowed(w http.ResponseWriter, r *http.Request) {
	writeError(w, r, http.StatusMethodNotAllowed, "method not allowed", loggerFromContext(r, nil))
}

func requireMethod(w http.ResponseWriter, r *http.Request, method string, logger *slog.Logger) bool {
	if r.Method == method {
		return true
	}
	w.Header().Set("Allow", method)
	writeError(w, r, http.StatusMethodNotAllowed, "method not allowed", logger)
	return false
}

// roundParam reads a positive round from the {round} path segment.
func roundParam(r *http.Request) (int, error) {
	return parseRound(chi.URLParam(r, "round"), false)
}

// roundQuery reads ?round=. Empty means 0 so services resolve the current round.
func roundQuery(r *http.Request) (int, error) {
	return parseRound(r.URL.Query().Get("round"), true)
}

func parseRound(raw string, optional bool) (int, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" && optional {
		return 0, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n <= 0 {
		return 0, errInvalidRound
	}
	return n, nil
}

func decodeBody(r *http.Request, dest any) error {
	dec := json.NewDecoder(io.LimitReader(r.Body, maxBodyBytes))
	return dec.Decode(dest)
}

// nonNil keeps empty collections encoding as [] rather than null.
func nonNil[T any](items []T) []T {
	if items == nil {
		return []T{}
	}
	return items
}
