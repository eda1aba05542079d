package server

import (
	"context"

	"github.com/Bazz30/NRL/internal/poller"
)

// Poller defines the minimal poller behavior needed by the server.
type Poller interface {
	Start(ctx context.Context)
	Stop(ctx context.Context) error
	Status() poller.Status
}

// backgroundSyncer runs until its context is cancelled.
type backgroundSyncer interface {
	Run(ctx context.Context)
}
