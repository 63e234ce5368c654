// Package jobs provides scheduled background tasks for the basket splitting service.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3.
//
// # Available Jobs
//
// 1. CatalogRefreshJob - reloads the catalog from its configured source and
// publishes it to the snapshot used by splits
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	// Create job manager with required handlers
//	jobManager := jobs.NewJobManager(reloadCatalogHandler, "0 */5 * * * *", logger)
//
//	// Start all jobs
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	// Stop all jobs when shutting down
//	defer jobManager.StopAll()
//
// # Scheduling
//
// Schedules use the six-field cron syntax with a leading seconds field. An
// empty schedule disables the refresh job; the catalog is then loaded once at
// startup and changed only through the API.
//
// # Error Handling
//
// - A failed refresh is logged and the previous catalog stays in service
// - Unchanged catalogs are not logged
// - An invalid schedule fails StartAll
package jobs
