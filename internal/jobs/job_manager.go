package jobs

import (
	"fmt"
	"log/slog"

	"inatpos/internal/core/application/usecases/commands"
)

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	dashboardResetJob *DashboardResetJob
}

// NewJobManager creates a job manager with all required jobs wired to
// their command handlers.
func NewJobManager(
	resetDashboardHandler commands.ResetDashboardCommandHandler,
	resetSchedule string,
	logger *slog.Logger,
) *JobManager {
	return &JobManager{
		dashboardResetJob: NewDashboardResetJob(resetDashboardHandler, resetSchedule, logger),
	}
}

// StartAll starts all scheduled jobs.
func (jm *JobManager) StartAll() error {
	if err := jm.dashboardResetJob.Start(); err != nil {
		return fmt.Errorf("failed to start dashboard reset job: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.dashboardResetJob.Stop()
}
