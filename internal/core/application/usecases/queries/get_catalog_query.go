package queries

import (
	"errors"
	"strings"

	"basketsplit/internal/pkg/errs"
	"basketsplit/internal/pkg/guard"
)

var ErrGetCatalogQueryIsNotConstructed = errors.New(
	"GetCatalogQuery must be created via NewGetCatalogQuery or NewGetCatalogItemQuery constructor",
)

// GetCatalogQuery retrieves catalog entries, either all of them or a single item.
//
// Example:
//
//	query := NewGetCatalogQuery()
//	entries, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to retrieve catalog: %w", err)
//	}
//
//	for _, e := range entries {
//	    fmt.Printf("%s -> %v\n", e.Item, e.Couriers)
//	}
type GetCatalogQuery struct {
	item string

	guard guard.ConstructorGuard
}

// NewGetCatalogQuery creates a query for the whole catalog.
func NewGetCatalogQuery() GetCatalogQuery {
	return GetCatalogQuery{guard: guard.NewConstructorGuard()}
}

// NewGetCatalogItemQuery creates a query for one catalog item.
func NewGetCatalogItemQuery(item string) (GetCatalogQuery, error) {
	if strings.TrimSpace(item) == "" {
		return GetCatalogQuery{}, errs.NewValueIsRequiredError("item")
	}
	return GetCatalogQuery{item: item, guard: guard.NewConstructorGuard()}, nil
}

// Validate ensures the query was created through a constructor.
// Returns ErrGetCatalogQueryIsNotConstructed if validation fails.
func (q GetCatalogQuery) Validate() error {
	return q.guard.Validate(ErrGetCatalogQueryIsNotConstructed)
}

// Item returns the requested item, or "" when the whole catalog is requested.
func (q GetCatalogQuery) Item() string {
	return q.item
}

// CatalogEntryResponse is one item and the couriers able to deliver it.
type CatalogEntryResponse struct {
	Item     string
	Couriers []string
}
