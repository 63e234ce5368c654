// Package ports defines the contracts between the basket splitting core and its
// infrastructure: where catalogs come from, where they are stored, and how the
// current one is published to request handlers.
package ports

import (
	"context"

	"basketsplit/internal/core/domain/model/catalog"
)

// CatalogRepository defines the persistence contract for the catalog.
// The catalog is stored and replaced as a whole, never entry by entry, so a
// reader never observes a half-imported catalog.
type CatalogRepository interface {
	// Get loads the complete stored catalog. An empty store yields an empty catalog.
	Get(ctx context.Context) (*catalog.Catalog, error)

	// Replace discards every stored entry and stores c instead.
	Replace(ctx context.Context, c *catalog.Catalog) error
}

// CatalogSource loads a catalog from wherever the deployment keeps it
// (a JSON/YAML file, the database). Failures are reported before any basket
// is split against the result.
type CatalogSource interface {
	Load(ctx context.Context) (*catalog.Catalog, error)
}

// CatalogSnapshot publishes the catalog currently used for splitting.
type CatalogSnapshot interface {
	// Current returns the active catalog or an error if none was loaded yet.
	Current() (*catalog.Catalog, error)

	// Swap installs c and reports whether its content differs from the previous one.
	Swap(c *catalog.Catalog) bool
}
