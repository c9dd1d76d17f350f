// Package workers provides abstractions for managing and running
// background workers in the application.
// It defines the Worker interface and a Workers aggregate that allows
// running multiple workers in a unified way.
package workers

import "context"

// Worker is the interface that must be implemented by any background worker.
// Run starts the worker and returns; the work itself continues in the
// background until ctx is cancelled.
//
// Example implementation:
//
//	type MyWorker struct{}
//
//	func (w *MyWorker) Run(ctx context.Context) {
//	    go func() { <-ctx.Done() }()
//	}
type Worker interface {
	Run(ctx context.Context)
}

// SessionCleaner removes sessions that are past their expiry.
type SessionCleaner interface {
	Cleanup(ctx context.Context) (int64, error)
}
