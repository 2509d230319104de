// Package jobs provides the scheduled background tasks of the POS,
// built on github.com/robfig/cron/v3 and managed through JobManager.
package jobs

import (
	"context"
	"log/slog"

	"inatpos/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// DashboardResetJob purges completed orders on a schedule, typically
// nightly after close, so each business day starts with a clean dashboard.
type DashboardResetJob struct {
	handler  commands.ResetDashboardCommandHandler
	schedule string
	cron     *cron.Cron
	logger   *slog.Logger
}

// NewDashboardResetJob creates the reset job. The schedule is a standard
// five-field cron expression.
func NewDashboardResetJob(
	handler commands.ResetDashboardCommandHandler,
	schedule string,
	logger *slog.Logger,
) *DashboardResetJob {
	return &DashboardResetJob{
		handler:  handler,
		schedule: schedule,
		cron:     cron.New(),
		logger:   logger.With("component", "dashboard_reset_job"),
	}
}

// Start schedules the reset job.
func (j *DashboardResetJob) Start() error {
	_, err := j.cron.AddFunc(j.schedule, func() {
		ctx := context.Background()

		deleted, err := j.handler.Handle(ctx, commands.NewResetDashboardCommand())
		if err != nil {
			j.logger.ErrorContext(ctx, "Dashboard reset job failed", "error", err)
			return
		}

		j.logger.InfoContext(ctx, "Dashboard reset completed", "deleted_orders", deleted)
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Dashboard reset job started", "schedule", j.schedule)
	return nil
}

// Stop stops the reset job.
func (j *DashboardResetJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Dashboard reset job stopped")
}
