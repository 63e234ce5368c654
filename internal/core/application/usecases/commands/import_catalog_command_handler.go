package commands

import (
	"context"

	"basketsplit/internal/core/ports"
)

// ImportCatalogCommandHandler stores a new catalog and makes it the one used
// for splitting once the transaction commits.
type ImportCatalogCommandHandler struct {
	uowFactory CatalogUoWFactory
	snapshot   ports.CatalogSnapshot
}

// NewImportCatalogCommandHandler creates a handler for catalog imports.
func NewImportCatalogCommandHandler(
	uowFactory CatalogUoWFactory,
	snapshot ports.CatalogSnapshot,
) ImportCatalogCommandHandler {
	return ImportCatalogCommandHandler{
		uowFactory: uowFactory,
		snapshot:   snapshot,
	}
}

// Handle replaces the stored catalog within a transaction, then swaps the snapshot.
// The snapshot is left untouched if anything fails.
func (h *ImportCatalogCommandHandler) Handle(ctx context.Context, cmd ImportCatalogCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err := uow.CatalogRepository().Replace(ctx, cmd.Catalog()); err != nil {
		return err
	}

	if err := uow.Commit(ctx); err != nil {
		return err
	}

	h.snapshot.Swap(cmd.Catalog())
	return nil
}
