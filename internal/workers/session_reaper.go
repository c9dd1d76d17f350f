package workers

import (
	"context"
	"time"

	"github.com/MKhiriev/go-case-tracker/internal/logger"
)

// SessionReaper purges expired sessions on a fixed interval.
type SessionReaper struct {
	sessions SessionCleaner
	interval time.Duration
	done     chan struct{}

	logger *logger.Logger
}

func NewSessionReaper(sessions SessionCleaner, interval time.Duration, logger *logger.Logger) *SessionReaper {
	return &SessionReaper{
		sessions: sessions,
		interval: interval,
		done:     make(chan struct{}),
		logger:   logger,
	}
}

// Run starts the reaper loop. Call Run at most once per reaper.
func (r *SessionReaper) Run(ctx context.Context) {
	go r.loop(ctx)
}

// Done is closed once the loop has exited.
func (r *SessionReaper) Done() <-chan struct{} {
	return r.done
}

func (r *SessionReaper) loop(ctx context.Context) {
	defer close(r.done)

	ticker := time.NewTicker(r.interval)
	defer ticker.Stop()

	r.logger.Info().Dur("interval", r.interval).Msg("session reaper started")
	for {
		select {
		case <-ctx.Done():
			r.logger.Info().Msg("session reaper stopped")
			return
		case <-ticker.C:
			r.sweep(ctx)
		}
	}
}

func (r *SessionReaper) sweep(ctx context.Context) {
	removed, err := r.sessions.Cleanup(ctx)
	if err != nil {
		if ctx.Err() == nil {
			r.logger.Err(err).Msg("session cleanup failed")
		}
		return
	}
	if removed > 0 {
		r.logger.Debug().Int64("removed", removed).Msg("expired sessions removed")
	}
}
