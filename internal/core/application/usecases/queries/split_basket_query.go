// Package queries contains read operations for retrieving system state.
// Implements the Query pattern for read operations in the CQRS architecture.
// Queries return read models tailored to their callers.
package queries

import (
	"errors"

	"basketsplit/internal/core/domain/model/basket"
	"basketsplit/internal/core/domain/model/kernel"
	"basketsplit/internal/pkg/guard"
)

// ErrSplitBasketQueryIsNotConstructed is returned when handling a SplitBasketQuery
// not built by NewSplitBasketQuery.
var ErrSplitBasketQueryIsNotConstructed = errors.New(
	"SplitBasketQuery must be created via NewSplitBasketQuery constructor",
)

// SplitBasketQuery asks how a basket should be divided between couriers.
// Splitting reads the catalog and changes nothing, hence a query.
//
// Example:
//
//	query, err := NewSplitBasketQuery([]string{"Milk", "Bread", "Milk"})
//	if err != nil {
//	    return fmt.Errorf("invalid basket: %w", err)
//	}
//
//	response, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return err
//	}
//	for _, d := range response.Deliveries {
//	    fmt.Printf("%s: %v\n", d.Courier, d.Items)
//	}
type SplitBasketQuery struct {
	basket basket.Basket

	guard guard.ConstructorGuard
}

// NewSplitBasketQuery creates a query for items under a freshly generated basket ID.
func NewSplitBasketQuery(items []string) (SplitBasketQuery, error) {
	b, err := basket.NewBasket(kernel.NewUUID(), items)
	if err != nil {
		return SplitBasketQuery{}, err
	}

	return SplitBasketQuery{
		basket: b,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrSplitBasketQueryIsNotConstructed if validation fails.
func (q SplitBasketQuery) Validate() error {
	return q.guard.Validate(ErrSplitBasketQueryIsNotConstructed)
}

// Basket returns the basket to split.
func (q SplitBasketQuery) Basket() basket.Basket {
	return q.basket
}

// SplitBasketQueryResponse is the courier assignment for one basket.
// Deliveries are ordered busiest courier first and never hold an empty item list.
type SplitBasketQueryResponse struct {
	BasketID   kernel.UUID
	Deliveries []DeliveryResponse
}

// DeliveryResponse lists the items one courier delivers.
type DeliveryResponse struct {
	Courier string
	Items   []string
}
