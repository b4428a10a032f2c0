package engine

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/robfig/cron/v3"
)

const refreshTimeout = 2 * time.Minute

// Scheduler refreshes the catalog on a fixed interval.
type Scheduler struct {
	cron   *cron.Cron
	engine *Engine
	log    *slog.Logger
}

// NewScheduler creates a Scheduler that refreshes the engine's catalog every
// refreshInterval. Scheduled runs read through any catalog cache; only an
// explicit Reload bypasses it.
func NewScheduler(
	eng *Engine,
	refreshInterval time.Duration,
	log *slog.Logger,
) (*Scheduler, error) {
	if refreshInterval <= 0 {
		return nil, fmt.Errorf("refresh interval must be positive (got %s)", refreshInterval)
	}

	c := cron.New(cron.WithChain(cron.SkipIfStillRunning(cron.DiscardLogger)))

	s := &Scheduler{
		cron:   c,
		engine: eng,
		log:    log,
	}

	if _, err := c.AddFunc(
		"@every "+refreshInterval.String(),
		s.runRefresh,
	); err != nil {
		return nil, fmt.Errorf("scheduling catalog refresh: %w", err)
	}

	return s, nil
}

// Start begins running scheduled tasks.
func (s *Scheduler) Start() {
	s.log.Info("scheduler started")
	s.cron.Start()
}

// Stop gracefully stops the scheduler, waiting for running jobs to finish.
func (s *Scheduler) Stop() context.Context {
	s.log.Info("scheduler stopping")
	return s.cron.Stop()
}

// Entries returns the registered cron entries for inspection.
func (s *Scheduler) Entries() []cron.Entry {
	return s.cron.Entries()
}

func (s *Scheduler) runRefresh() {
	ctx, cancel := context.WithTimeout(context.Background(), refreshTimeout)
	defer cancel()

	s.log.Info("scheduled catalog refresh starting")
	if _, err := s.engine.Refresh(ctx); err != nil {
		s.log.Error("scheduled catalog refresh failed", "error", err)
	}
}
