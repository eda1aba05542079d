package server

import "time"

// Listener defaults. buildHTTPServer stretches the write timeout when advice calls are enabled.
const (
	readTimeout  = 10 * time.Second
	writeTimeout = 15 * time.Second
	idleTimeout  = 90 * time.Second
)

// shutdownTimeout bounds graceful shutdown; tests shorten it.
var shutdownTimeout = 15 * time.Second
