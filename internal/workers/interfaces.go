// Package workers runs the client background loops side by side and waits
// for all of them on shutdown.
package workers

import "context"

// Worker is a background loop that blocks until ctx is done.
// [service.ClientSyncJob] satisfies it.
type Worker interface {
	Run(ctx context.Context)
}
