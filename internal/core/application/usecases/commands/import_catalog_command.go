package commands

import (
	"errors"

	"basketsplit/internal/core/domain/model/catalog"
	"basketsplit/internal/pkg/guard"
)

var ErrImportCatalogCommandIsNotConstructed = errors.New(
	"ImportCatalogCommand must be created via NewImportCatalogCommand constructor",
)

// ImportCatalogCommand replaces the stored catalog with new entries.
//
// Example:
//
//	cmd, err := NewImportCatalogCommand(map[string][]string{
//	    "Milk":  {"Express Collection", "Courier"},
//	    "Bread": {"Pick-up point"},
//	})
//	if err != nil {
//	    return fmt.Errorf("invalid catalog: %w", err)
//	}
//
//	handler := NewImportCatalogCommandHandler(uowFactory, snapshot)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("failed to import catalog: %w", err)
//	}
type ImportCatalogCommand struct {
	catalog *catalog.Catalog

	guard guard.ConstructorGuard
}

// NewImportCatalogCommand validates entries and builds the catalog to import.
func NewImportCatalogCommand(entries map[string][]string) (ImportCatalogCommand, error) {
	c, err := catalog.NewCatalog(entries)
	if err != nil {
		return ImportCatalogCommand{}, err
	}

	return ImportCatalogCommand{
		catalog: c,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrImportCatalogCommandIsNotConstructed if validation fails.
func (c ImportCatalogCommand) Validate() error {
	return c.guard.Validate(ErrImportCatalogCommandIsNotConstructed)
}

// Catalog returns the catalog to store.
func (c ImportCatalogCommand) Catalog() *catalog.Catalog {
	return c.catalog
}
