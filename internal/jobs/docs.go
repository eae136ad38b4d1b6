// Package jobs provides scheduled background tasks for the parcel service.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3.
// Schedules carry a leading seconds field.
//
// # Available Jobs
//
// 1. LegQueueReportJob - logs how many parcels wait for each leg, longest queue first
//
// # Usage
//
//	jobManager := jobs.NewJobManager(legQueuesHandler, "0 * * * * *", logger)
//
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	defer jobManager.StopAll()
//
// An empty schedule disables the report.
package jobs
