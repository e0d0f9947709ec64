package server

import "context"

// Server runs the enabled transports of the remote store.
type Server interface {
	// Run serves until ctx is done, then shuts every transport down.
	Run(ctx context.Context) error

	// Shutdown stops every transport. Run calls it on cancellation.
	Shutdown()
}
