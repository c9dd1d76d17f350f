package workers

import (
	"context"

	"github.com/MKhiriev/go-case-tracker/internal/config"
	"github.com/MKhiriev/go-case-tracker/internal/logger"
)

type Workers struct {
	workers []Worker
}

// NewWorkers builds the background workers enabled by cfg. A zero interval
// disables the session reaper.
func NewWorkers(sessions SessionCleaner, cfg config.Workers, logger *logger.Logger) *Workers {
	w := &Workers{}
	if sessions != nil && cfg.SessionCleanupInterval > 0 {
		w.workers = append(w.workers, NewSessionReaper(sessions, cfg.SessionCleanupInterval, logger))
	}
	return w
}

func (w *Workers) Run(ctx context.Context) {
	for _, worker := range w.workers {
		worker.Run(ctx)
	}
}
