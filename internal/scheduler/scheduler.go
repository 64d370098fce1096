// Package scheduler wires up the cron job that periodically runs the
// auto-check, and lets the HTTP API start and stop it at runtime.
package scheduler

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"github.com/robfig/cron/v3"
)

var (
	ErrAlreadyRunning = errors.New("scheduler: already running")
	ErrNotRunning     = errors.New("scheduler: not running")
)

// Scheduler wraps robfig/cron around a single job. The API can toggle
// it from concurrent requests, so all state is mutex-guarded.
type Scheduler struct {
	mu      sync.Mutex
	cron    *cron.Cron
	spec    string // cron spec, e.g. "0 */6 * * *"
	run     func(ctx context.Context)
	running bool
}

// New creates a stopped scheduler. run executes on every tick and must
// tolerate a new invocation while a slow previous one is finishing.
func New(spec string, run func(ctx context.Context)) *Scheduler {
	return &Scheduler{spec: spec, run: run}
}

// Start begins periodic execution. The first run happens at the first
// tick, not immediately.
func (s *Scheduler) Start(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.running {
		return ErrAlreadyRunning
	}

	c := cron.New()
	if _, err := c.AddFunc(s.spec, func() { s.run(ctx) }); err != nil {
		return fmt.Errorf("scheduler: bad spec %q: %w", s.spec, err)
	}
	c.Start()

	s.cron = c
	s.running = true
	slog.Info("scheduler started", slog.String("spec", s.spec))
	return nil
}

// Stop halts periodic execution. A check already in flight finishes.
func (s *Scheduler) Stop() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.running {
		return ErrNotRunning
	}

	s.cron.Stop()
	s.cron = nil
	s.running = false
	slog.Info("scheduler stopped")
	return nil
}

// Running reports whether the scheduler is active.
func (s *Scheduler) Running() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.running
}

// Spec returns the cron expression the scheduler fires on.
func (s *Scheduler) Spec() string { return s.spec }
