package jobs

import (
	"fmt"
	"log/slog"

	"parcels/internal/core/application/usecases/queries"
)

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	legQueueReportJob *LegQueueReportJob
	logger            *slog.Logger
}

// NewJobManager creates a new job manager. An empty reportSchedule disables
// the leg queue report.
func NewJobManager(
	legQueuesHandler queries.GetLegQueuesQueryHandler,
	reportSchedule string,
	logger *slog.Logger,
) *JobManager {
	jm := &JobManager{logger: logger.With("component", "job_manager")}
	if reportSchedule != "" {
		jm.legQueueReportJob = NewLegQueueReportJob(legQueuesHandler, reportSchedule, logger)
	}
	return jm
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if jm.legQueueReportJob == nil {
		jm.logger.Info("Leg queue report job disabled")
		return nil
	}

	if err := jm.legQueueReportJob.Start(); err != nil {
		return fmt.Errorf("failed to start leg queue report job: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	if jm.legQueueReportJob != nil {
		jm.legQueueReportJob.Stop()
	}
}
