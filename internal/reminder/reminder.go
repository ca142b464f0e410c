// Package reminder runs a fixed-interval scheduler that nudges the user to
// log a wellness entry while the dashboard is open.
package reminder

import (
	"context"
	"time"
)

// Scheduler invokes Notify at a fixed interval until its context is
// cancelled. Zero or negative intervals disable it.
type Scheduler struct {
	Interval time.Duration
	Notify   func(now time.Time)
}

func New(interval time.Duration, notify func(now time.Time)) *Scheduler {
	return &Scheduler{Interval: interval, Notify: notify}
}

// Run blocks until ctx is cancelled. The first notification fires one full
// interval after start, never immediately.
func (s *Scheduler) Run(ctx context.Context) {
	if s.Interval <= 0 || s.Notify == nil {
		return
	}

	ticker := time.NewTicker(s.Interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case now := <-ticker.C:
			s.Notify(now)
		}
	}
}
