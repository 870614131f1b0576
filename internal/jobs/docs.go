// Package jobs provides scheduled background tasks for the order workflow.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle the periodic operations of the restaurant floor.
//
// # Available Jobs
//
// 1. DailySummaryJob - Runs just after midnight to log the previous day's cashbox totals
// 2. QueueAlertJob - Runs every minute to flag orders waiting too long in the kitchen queue
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	// Create job manager with required handlers
//	jobManager := jobs.NewJobManager(dailySummaryHandler, kitchenQueueHandler, logger)
//
//	// Start all jobs
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	// Stop all jobs when shutting down
//	defer jobManager.StopAll()
//
// # Error Handling
//
// - Both jobs log failures and keep their schedule; a failed run never stops the job
// - Failed job starts will stop any already running jobs
package jobs
