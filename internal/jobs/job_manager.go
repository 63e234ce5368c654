package jobs

import (
	"fmt"
	"log/slog"

	"basketsplit/internal/core/application/usecases/commands"
)

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	catalogRefreshJob *CatalogRefreshJob
}

// NewJobManager creates a new job manager with all required jobs.
// An empty refreshSchedule disables the catalog refresh job.
func NewJobManager(
	reloadCatalogHandler commands.ReloadCatalogCommandHandler,
	refreshSchedule string,
	logger *slog.Logger,
) *JobManager {
	jm := &JobManager{}
	if refreshSchedule != "" {
		jm.catalogRefreshJob = NewCatalogRefreshJob(reloadCatalogHandler, refreshSchedule, logger)
	}
	return jm
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if jm.catalogRefreshJob != nil {
		if err := jm.catalogRefreshJob.Start(); err != nil {
			return fmt.Errorf("failed to start catalog refresh job: %w", err)
		}
	}

	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	if jm.catalogRefreshJob != nil {
		jm.catalogRefreshJob.Stop()
	}
}
