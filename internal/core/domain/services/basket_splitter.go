package services

import (
	"context"

	"basketsplit/internal/core/domain/model/basket"
	"basketsplit/internal/core/domain/model/catalog"
)

// BasketSplitter is a domain service assigning basket items to the fewest
// couriers able to deliver them, then balancing the load greedily so the
// busiest courier carries as much as possible.
//
// Business rules:
//   - The number of couriers used is minimal
//   - Among minimal covers, the one with the largest single-courier load wins
//   - Every basket item occurrence is assigned to exactly one courier
//   - The same basket and catalog always yield the same assignment
//
// The splitter holds no state besides the catalog and is safe for concurrent use.
//
// Example usage:
//
//	splitter, err := services.NewBasketSplitter(cat)
//	if err != nil {
//	    return err
//	}
//	assignment, err := splitter.Split(ctx, b)
//	switch {
//	case errors.Is(err, services.ErrUnknownItem):
//	    // basket references an item missing from the catalog
//	case errors.Is(err, services.ErrNoCoverage):
//	    // some item has no courier
//	}
type BasketSplitter struct {
	catalog *catalog.Catalog
}

// NewBasketSplitter creates a splitter bound to c.
// Returns catalog.ErrCatalogIsNotConstructed for a nil or zero-value catalog.
func NewBasketSplitter(c *catalog.Catalog) (BasketSplitter, error) {
	if err := c.Validate(); err != nil {
		return BasketSplitter{}, err
	}
	return BasketSplitter{catalog: c}, nil
}

// Split computes the courier assignment for b.
//
// Returns:
//   - Assignment: deliveries ordered busiest first; empty for an empty basket
//   - error: *UnknownItemError, *NoCoverageError, a basket validation error,
//     *errs.ValueIsOutOfRangeError above MaxCouriers, or ctx.Err()
func (s BasketSplitter) Split(ctx context.Context, b basket.Basket) (Assignment, error) {
	if err := b.Validate(); err != nil {
		return nil, err
	}
	if err := s.catalog.Validate(); err != nil {
		return nil, err
	}

	if b.IsEmpty() {
		return Assignment{}, nil
	}

	dm, err := BuildDeliveryMap(b.Distinct(), s.catalog)
	if err != nil {
		return nil, err
	}

	cover, err := FindCover(ctx, dm, b, s.catalog)
	if err != nil {
		return nil, err
	}

	return Balance(BuildLocalSplit(cover, b.Items(), s.catalog)), nil
}
