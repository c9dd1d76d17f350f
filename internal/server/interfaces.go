package server

import "context"

// Server is the transport lifecycle owned by the app.
type Server interface {
	// Run serves until ctx is done, then shuts down gracefully. It
	// returns early with the error when the listener fails.
	Run(ctx context.Context) error

	// Shutdown stops serving. In-flight requests get the configured
	// shutdown timeout to finish.
	Shutdown()
}
