package jobs

import (
	"context"
	"log/slog"

	"basketsplit/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// CatalogRefreshJob reloads the catalog from its source on a cron schedule.
// A run that is still going when the next one is due makes the next one skip.
type CatalogRefreshJob struct {
	handler  commands.ReloadCatalogCommandHandler
	schedule string
	cron     *cron.Cron
	logger   *slog.Logger
}

// NewCatalogRefreshJob creates a refresh job. schedule is a six-field cron
// expression (seconds first), e.g. "0 */5 * * * *" for every five minutes.
func NewCatalogRefreshJob(
	handler commands.ReloadCatalogCommandHandler,
	schedule string,
	logger *slog.Logger,
) *CatalogRefreshJob {
	return &CatalogRefreshJob{
		handler:  handler,
		schedule: schedule,
		cron: cron.New(
			cron.WithSeconds(),
			cron.WithChain(cron.SkipIfStillRunning(cron.DiscardLogger)),
		),
		logger: logger.With("component", "catalog_refresh_job"),
	}
}

// Start registers the job with its schedule and starts the scheduler.
// Returns the cron parser error for an invalid schedule.
func (j *CatalogRefreshJob) Start() error {
	if _, err := j.cron.AddFunc(j.schedule, func() {
		j.run(context.Background())
	}); err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Catalog refresh job started", "schedule", j.schedule)
	return nil
}

// Stop stops the scheduler and waits for a running reload to finish.
func (j *CatalogRefreshJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.InfoContext(context.Background(), "Catalog refresh job stopped")
}

func (j *CatalogRefreshJob) run(ctx context.Context) {
	result, err := j.handler.Handle(ctx, commands.NewReloadCatalogCommand())
	if err != nil {
		// The previous catalog stays active.
		j.logger.ErrorContext(ctx, "Catalog refresh failed", "error", err)
		return
	}

	if result.Changed {
		j.logger.InfoContext(ctx, "Catalog refreshed",
			"items", result.Items,
			"fingerprint", result.Fingerprint,
		)
	}
}
