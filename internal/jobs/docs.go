// Package jobs provides scheduled background tasks for the water
// delivery backend.
//
// Jobs are cron-based, built on github.com/robfig/cron/v3, and are
// managed through JobManager which provides a unified interface:
//
//	jobManager := jobs.NewJobManager(inventoryUoWFactory, logger)
//
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	defer jobManager.StopAll()
//
// # Available Jobs
//
// LowStockJob runs hourly and logs a warning for every inventory item
// whose stock is at or under its minimum threshold. The low-stock
// predicate is computed from the live stock figures at scan time, never
// read from a stored flag.
package jobs
