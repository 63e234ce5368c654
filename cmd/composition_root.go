package cmd

import (
	"log/slog"

	httpadapter "basketsplit/internal/adapters/in/http"
	"basketsplit/internal/adapters/out/catalogfile"
	"basketsplit/internal/adapters/out/postgres"
	"basketsplit/internal/adapters/out/postgres/catalogrepo"
	"basketsplit/internal/adapters/out/snapshot"
	"basketsplit/internal/core/application/usecases/commands"
	"basketsplit/internal/core/application/usecases/queries"
	"basketsplit/internal/core/ports"
	"basketsplit/internal/jobs"
	"basketsplit/internal/pkg/metrics"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"gorm.io/gorm"
)

type CompositionRoot struct {
	config   Config
	gormDB   *gorm.DB
	logger   *slog.Logger
	registry *prometheus.Registry
	metrics  *metrics.PrometheusCollector
	snapshot *snapshot.CatalogSnapshot
	source   ports.CatalogSource
}

// NewCompositionRoot wires the application. gormDB is nil unless the catalog
// is kept in PostgreSQL.
func NewCompositionRoot(config Config, gormDB *gorm.DB, logger *slog.Logger) CompositionRoot {
	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	var source ports.CatalogSource
	if gormDB != nil {
		source = catalogrepo.NewGormCatalogRepository(gormDB)
	} else {
		source = catalogfile.NewLoader(config.CatalogPath)
	}

	return CompositionRoot{
		config:   config,
		gormDB:   gormDB,
		logger:   logger,
		registry: registry,
		metrics:  metrics.NewPrometheus(registry, config.MetricsNamespace),
		snapshot: snapshot.NewCatalogSnapshot(nil),
		source:   source,
	}
}

func (c *CompositionRoot) CreateImportCatalogCommandHandler() *commands.ImportCatalogCommandHandler {
	if c.gormDB == nil {
		return nil
	}
	uowFactory := postgres.NewGormUnitOfWorkFactory(c.gormDB)
	var f commands.CatalogUoWFactory = FuncCatalogUoWFactory(func() commands.CatalogUoW {
		return uowFactory.Create()
	})
	handler := commands.NewImportCatalogCommandHandler(f, c.snapshot)
	return &handler
}

func (c *CompositionRoot) CreateReloadCatalogCommandHandler() commands.ReloadCatalogCommandHandler {
	return commands.NewReloadCatalogCommandHandler(c.source, c.snapshot, c.metrics)
}

func (c *CompositionRoot) CreateSplitBasketQueryHandler() queries.SplitBasketQueryHandler {
	return queries.NewSplitBasketQueryHandler(c.snapshot, c.metrics)
}

func (c *CompositionRoot) CreateGetCatalogQueryHandler() queries.GetCatalogQueryHandler {
	return queries.NewGetCatalogQueryHandler(c.gormDB, c.snapshot)
}

func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	return jobs.NewJobManager(c.CreateReloadCatalogCommandHandler(), c.config.CatalogRefreshSchedule, c.logger)
}

func (c *CompositionRoot) CreateServer() *httpadapter.Server {
	return httpadapter.NewServer(
		c.CreateImportCatalogCommandHandler(),
		c.CreateReloadCatalogCommandHandler(),
		c.CreateSplitBasketQueryHandler(),
		c.CreateGetCatalogQueryHandler(),
		c.logger,
	)
}

// Registry exposes the Prometheus registry served on /metrics.
func (c *CompositionRoot) Registry() *prometheus.Registry {
	return c.registry
}

type FuncCatalogUoWFactory func() commands.CatalogUoW

func (f FuncCatalogUoWFactory) Create() commands.CatalogUoW {
	return f()
}
