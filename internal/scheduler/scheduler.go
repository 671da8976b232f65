package scheduler

import (
	"context"
	"fmt"

	"github.com/pucktrack/pucktrack/internal/platform/logging"
	"github.com/pucktrack/pucktrack/internal/usecase"
	"github.com/robfig/cron/v3"
)

// FullRefresher runs a complete league refresh. Satisfied by
// usecase.SyncService.
type FullRefresher interface {
	FetchAll(ctx context.Context, season string) (usecase.Outcome, error)
}

// Scheduler runs the full refresh on a cron spec, matching the daily
// off-hours update the tracker is deployed with.
type Scheduler struct {
	sync     FullRefresher
	cronSpec string
	logger   *logging.Logger
	cron     *cron.Cron
}

func New(sync FullRefresher, cronSpec string, logger *logging.Logger) *Scheduler {
	if logger == nil {
		logger = logging.Default()
	}

	return &Scheduler{
		sync:     sync,
		cronSpec: cronSpec,
		logger:   logger,
		cron:     cron.New(),
	}
}

// Start registers the cron entry and runs one refresh immediately so a fresh
// deployment does not wait for the first tick.
func (s *Scheduler) Start(ctx context.Context) error {
	if _, err := s.cron.AddFunc(s.cronSpec, func() {
		s.runUpdate(ctx)
	}); err != nil {
		return fmt.Errorf("schedule update job %q: %w", s.cronSpec, err)
	}

	s.cron.Start()
	s.logger.InfoContext(ctx, "scheduler started", "schedule", s.cronSpec)

	s.logger.InfoContext(ctx, "running initial refresh")
	s.runUpdate(ctx)

	return nil
}

// Stop halts the cron loop and waits for an in-flight run to finish.
func (s *Scheduler) Stop() {
	<-s.cron.Stop().Done()
	s.logger.Info("scheduler stopped")
}

func (s *Scheduler) runUpdate(ctx context.Context) {
	if ctx.Err() != nil {
		return
	}

	outcome, err := s.sync.FetchAll(ctx, "")
	if err != nil {
		s.logger.ErrorContext(ctx, "scheduled refresh failed", "error", err, "summary", outcome.Summary())
		return
	}

	s.logger.InfoContext(ctx, "scheduled refresh finished",
		"status", outcome.Status,
		"records", outcome.Succeeded,
		"failed", outcome.Failed,
		"duration", outcome.Duration.String(),
	)
}
