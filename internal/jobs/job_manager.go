package jobs

import (
	"fmt"
	"log/slog"
	"time"

	"blip/internal/core/application/usecases/queries"
)

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	stalePendingOrdersJob *StalePendingOrdersJob
}

// NewJobManager creates a job manager with all required jobs.
// Takes query handlers as dependencies to wire up the job execution.
func NewJobManager(
	stalePendingHandler queries.CountStalePendingOrdersQueryHandler,
	stalePendingMaxAge time.Duration,
	logger *slog.Logger,
) *JobManager {
	return &JobManager{
		stalePendingOrdersJob: NewStalePendingOrdersJob(stalePendingHandler, stalePendingMaxAge, logger),
	}
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if err := jm.stalePendingOrdersJob.Start(); err != nil {
		return fmt.Errorf("failed to start stale pending orders job: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.stalePendingOrdersJob.Stop()
}
