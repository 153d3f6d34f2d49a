// Package jobs provides scheduled background tasks for the order service.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle periodic operations required around the order lifecycle.
//
// # Available Jobs
//
// 1. ReservationTimeoutJob - Runs every minute to reject orders that stayed reserved longer than the configured TTL
// 2. LowStockReportJob - Runs hourly to report products at or under the stock threshold
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	// Create job manager with the configured jobs
//	jobManager := jobs.NewJobManager(logger, timeoutJob, lowStockJob)
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
//   - The timeout job skips orders that were finalized concurrently; losing
//     that race is the expected outcome, not a failure
//   - The report job logs query failures and retries on the next tick
//   - Failed job starts stop any already running jobs
package jobs
