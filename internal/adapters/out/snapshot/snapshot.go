// Package snapshot publishes the catalog that basket splits run against.
//
// Reloads replace the whole catalog atomically; a split that already holds a
// catalog keeps using it until it finishes.
package snapshot

import (
	"errors"
	"sync/atomic"

	"basketsplit/internal/core/domain/model/catalog"
	"basketsplit/internal/core/ports"
)

// ErrCatalogNotLoaded is returned by Current before the first successful Swap.
var ErrCatalogNotLoaded = errors.New("catalog is not loaded yet")

// CatalogSnapshot holds the active catalog. The zero value is empty and ready to use.
type CatalogSnapshot struct {
	current atomic.Pointer[catalog.Catalog]
}

var _ ports.CatalogSnapshot = (*CatalogSnapshot)(nil)

// NewCatalogSnapshot creates a snapshot, optionally seeded with an initial catalog.
func NewCatalogSnapshot(initial *catalog.Catalog) *CatalogSnapshot {
	s := &CatalogSnapshot{}
	if initial != nil {
		s.current.Store(initial)
	}
	return s
}

// Current returns the active catalog.
func (s *CatalogSnapshot) Current() (*catalog.Catalog, error) {
	c := s.current.Load()
	if c == nil {
		return nil, ErrCatalogNotLoaded
	}
	return c, nil
}

// Swap installs c and reports whether its content differs from the catalog it
// replaced. Swapping in an unconstructed catalog is ignored and reports false.
func (s *CatalogSnapshot) Swap(c *catalog.Catalog) bool {
	if c.Validate() != nil {
		return false
	}
	previous := s.current.Swap(c)
	return previous == nil || previous.Fingerprint() != c.Fingerprint()
}
