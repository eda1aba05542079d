package testutil

import (
	"context"
	"net/http"
	"sync/atomic"

	"github.com/Bazz30/NRL/internal/poller"
)

// StubPoller records lifecycle calls. Stop returns Err.
type StubPoller struct {
	StartCalls atomic.Int32
	StopCalls  atomic.Int32
	Err        error
	StatusVal  poller.Status
}

func (p *StubPoller) Start(context.Context) {
	p.StartCalls.Add(1)
}

func (p *StubPoller) Stop(context.Context) error {
	p.StopCalls.Add(1)
	return p.Err
}

func (p *StubPoller) Status() poller.Status {
	return p.StatusVal
}

// StubSyncer implements the server's background syncer. Run blocks until ctx is done.
type StubSyncer struct {
	Runs    atomic.Int32
	Started chan struct{}
}

// NewStubSyncer returns a StubSyncer whose Started channel is closed on the first Run.
func NewStubSyncer() *StubSyncer {
	return &StubSyncer{Started: make(chan struct{})}
}

func (s *StubSyncer) Run(ctx context.Context) {
	if s.Runs.Add(1) == 1 && s.Started != nil {
		close(s.Started)
	}
	<-ctx.Done()
}

// FakeHTTPServer stands in for the API and metrics listeners.
// ListenAndServe returns ListenErr at once. When Unblock is set, Shutdown waits for it
// or for ctx before returning ShutdownErr.
type FakeHTTPServer struct {
	AddrVal     string
	HandlerVal  http.Handler
	ListenErr   error
	ShutdownErr error
	Unblock     chan struct{}

	ListenCalls   atomic.Int32
	ShutdownCalls atomic.Int32
}

func (s *FakeHTTPServer) ListenAndServe() error {
	s.ListenCalls.Add(1)
	return s.ListenErr
}

func (s *FakeHTTPServer) Shutdown(ctx context.Context) error {
	s.ShutdownCalls.Add(1)
	if s.Unblock != nil {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-s.Unblock:
		}
	}
	return s.ShutdownErr
}

func (s *FakeHTTPServer) Addr() string {
	if s.AddrVal == "" {
		return ":0"
	}
	return s.AddrVal
}

func (s *FakeHTTPServer) Handler() http.Handler {
	if s.HandlerVal == nil {
		return http.NotFoundHandler()
	}
	return s.HandlerVal
}
