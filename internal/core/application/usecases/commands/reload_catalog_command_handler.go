package commands

import (
	"context"

	"basketsplit/internal/core/ports"
	"basketsplit/internal/pkg/metrics"
)

// ReloadCatalogResult describes the catalog installed by a reload.
type ReloadCatalogResult struct {
	Changed     bool
	Items       int
	Fingerprint uint64
}

// ReloadCatalogCommandHandler loads the catalog from its source and publishes
// it to the snapshot. A failed load keeps the previous catalog in service.
type ReloadCatalogCommandHandler struct {
	source   ports.CatalogSource
	snapshot ports.CatalogSnapshot
	metrics  metrics.SplitMetrics
}

// NewReloadCatalogCommandHandler creates a handler for catalog reloads.
func NewReloadCatalogCommandHandler(
	source ports.CatalogSource,
	snapshot ports.CatalogSnapshot,
	m metrics.SplitMetrics,
) ReloadCatalogCommandHandler {
	return ReloadCatalogCommandHandler{
		source:   source,
		snapshot: snapshot,
		metrics:  m,
	}
}

// Handle loads and installs the catalog.
func (h *ReloadCatalogCommandHandler) Handle(ctx context.Context, cmd ReloadCatalogCommand) (ReloadCatalogResult, error) {
	if err := cmd.Validate(); err != nil {
		return ReloadCatalogResult{}, err
	}

	c, err := h.source.Load(ctx)
	if err == nil {
		err = c.Validate()
	}
	if err != nil {
		h.metrics.RecordCatalogReload(metrics.ReloadFailed)
		return ReloadCatalogResult{}, err
	}

	changed := h.snapshot.Swap(c)
	if changed {
		h.metrics.RecordCatalogReload(metrics.ReloadChanged)
	} else {
		h.metrics.RecordCatalogReload(metrics.ReloadUnchanged)
	}

	return ReloadCatalogResult{
		Changed:     changed,
		Items:       c.Len(),
		Fingerprint: c.Fingerprint(),
	}, nil
}
