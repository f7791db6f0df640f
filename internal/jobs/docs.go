// Package jobs provides scheduled background tasks for the ordering system.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle periodic operations required for the order service.
//
// # Available Jobs
//
// 1. NotificationRetryJob - Runs every minute to re-deliver notifications
// that failed their first dispatch
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	// Create job manager with the notification dispatcher
//	jobManager := jobs.NewJobManager(dispatcher, logger)
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
// The retry job only triggers the dispatcher's sweep; per-notification
// failures and the retry budget are handled by the dispatcher itself.
package jobs
