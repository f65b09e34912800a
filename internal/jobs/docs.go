// Package jobs provides scheduled background tasks for the order service.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3.
// The only job today is StalePendingOrdersJob, a watchdog that runs every
// minute and logs a warning when orders have stayed PENDING longer than the
// configured age. Jobs never touch the order lifecycle itself; terminal
// decisions always come from an authorized API request.
//
// Jobs are managed through JobManager:
//
//	jobManager := jobs.NewJobManager(countStaleHandler, maxAge, logger)
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//	defer jobManager.StopAll()
package jobs
