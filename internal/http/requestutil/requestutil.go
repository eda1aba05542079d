// Package requestutil holds request-scoped helpers shared by middleware and handlers.
package requestutil

import (
	"net"
	"net/http"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
)

// HeaderRequestID carries the request ID in both directions.
const HeaderRequestID = "X-Request-ID"

var requestIDPattern = regexp.MustCompile(`^[a-zA-Z0-9_-]{1,64}$`)

var newUUID = uuid.NewRandom

// SanitizeRequestID keeps a well-formed incoming ID and otherwise mints a new one.
func SanitizeRequestID(incoming string) string {
	incoming = strings.TrimSpace(incoming)
	if incoming != "" && requestIDPattern.MatchString(incoming) {
		return incoming
	}
	return NewRequestID()
}

// NewRequestID returns a random UUID, or a time-based ID if the random source fails.
func NewRequestID() string {
	if id, err := newUUID(); err == nil {
		return id.String()
	}
	return "req-" + strconv.FormatInt(time.Now().UnixNano(), 36)
}

// ClientIP returns the caller's address: the first X-Forwarded-For hop, then X-Real-IP,
// then the host part of RemoteAddr.
func ClientIP(r *http.Request) string {
	if r == nil {
		return ""
	}
	if forwarded := r.Header.Get("X-Forwarded-For"); forwarded != "" {
		first, _, _ := strings.Cut(forwarded, ",")
		return strings.TrimSpace(first)
	}
	if ip := strings.TrimSpace(r.Header.Get("X-Real-IP")); ip != "" {
		return ip
	}
	if host, _, err := net.SplitHostPort(r.RemoteAddr); err == nil {
		return host
	}
	return r.RemoteAddr
}
