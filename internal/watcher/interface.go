package watcher

import "context"

// Watcher waits for an upload to land completely before it is processed.
type Watcher interface {
	// WaitReady blocks until path exists and has seen no create or write
	// events for the settle period, or ctx ends.
	WaitReady(ctx context.Context, path string) error
}
