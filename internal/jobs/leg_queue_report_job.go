package jobs

import (
	"context"
	"log/slog"

	"parcels/internal/core/application/usecases/queries"

	"github.com/robfig/cron/v3"
)

// DefaultLegQueueReportSchedule runs the report at the start of every minute.
const DefaultLegQueueReportSchedule = "0 * * * * *"

// LegQueueReportJob periodically logs how many parcels wait for each leg.
type LegQueueReportJob struct {
	handler  queries.GetLegQueuesQueryHandler
	schedule string
	cron     *cron.Cron
	logger   *slog.Logger
}

// NewLegQueueReportJob creates the report job. schedule is a cron spec with a
// leading seconds field.
func NewLegQueueReportJob(
	handler queries.GetLegQueuesQueryHandler,
	schedule string,
	logger *slog.Logger,
) *LegQueueReportJob {
	return &LegQueueReportJob{
		handler:  handler,
		schedule: schedule,
		cron:     cron.New(cron.WithSeconds()),
		logger:   logger.With("component", "leg_queue_report_job"),
	}
}

// Start schedules the report. It fails on an invalid schedule.
func (j *LegQueueReportJob) Start() error {
	_, err := j.cron.AddFunc(j.schedule, func() {
		j.Run(context.Background())
	})
	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Leg queue report job started", "schedule", j.schedule)
	return nil
}

// Run writes one report: a summary line and one line per non-empty queue.
func (j *LegQueueReportJob) Run(ctx context.Context) {
	queues, err := j.handler.Handle(ctx, queries.NewGetLegQueuesQuery())
	if err != nil {
		j.logger.ErrorContext(ctx, "Leg queue report failed", "error", err)
		return
	}

	waiting := 0
	for _, q := range queues {
		waiting += q.Parcels
	}
	j.logger.InfoContext(ctx, "Leg queue report", "legs", len(queues), "parcels", waiting)

	for _, q := range queues {
		j.logger.InfoContext(ctx, "Parcels awaiting leg", "leg_id", q.LegID, "parcels", q.Parcels)
	}
}

// Stop stops the job and waits for a running report to finish.
func (j *LegQueueReportJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.InfoContext(context.Background(), "Leg queue report job stopped")
}
