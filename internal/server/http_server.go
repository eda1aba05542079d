package server

import (
	"context"
	"net/http"
	"time"
)

// httpServer is the part of *http.Server that Run and shutdown need.
type httpServer interface {
	ListenAndServe() error
	Shutdown(context.Context) error
	Addr() string
	Handler() http.Handler
}

type netHTTPServer struct {
	srv *http.Server
}

// newNetHTTPServer applies the standard timeouts. The write timeout stretches to cover
// upstream calls that block a response, such as lineup advice.
func newNetHTTPServer(addr string, handler http.Handler, upstream time.Duration) netHTTPServer {
	write := writeTimeout
	if upstream+writeTimeout > write {
		write = upstream + writeTimeout
	}
	return netHTTPServer{srv: &http.Server{
		Addr:         addr,
		Handler:      handler,
		ReadTimeout:  readTimeout,
		WriteTimeout: write,
		IdleTimeout:  idleTimeout,
	}}
}

func (s netHTTPServer) ListenAndServe() error              { return s.srv.ListenAndServe() }
func (s netHTTPServer) Shutdown(ctx context.Context) error { return s.srv.Shutdown(ctx) }
func (s netHTTPServer) Addr() string                       { return s.srv.Addr }
func (s netHTTPServer) Handler() http.Handler              { return s.srv.Handler }
