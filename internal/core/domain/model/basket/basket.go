package basket

import (
	"errors"
	"slices"
	"strings"

	"basketsplit/internal/core/domain/model/kernel"
	"basketsplit/internal/pkg/errs"
	"basketsplit/internal/pkg/guard"
)

// MaxItems bounds the size of a single basket.
const MaxItems = 100

var (
	// ErrBasketIsNotConstructed is returned when using a Basket not built by NewBasket.
	ErrBasketIsNotConstructed = errors.New("Basket must be created via NewBasket constructor")
	// ErrItemNameIsRequired is returned when the basket lists an empty item name.
	ErrItemNameIsRequired = errs.NewValueIsRequiredError("item name")
)

// Basket is an identified, ordered list of item names.
//
// Business rules:
//   - Must have a valid UUID
//   - Item names are non-empty
//   - Holds at most MaxItems items
//   - May be empty; an empty basket splits into an empty assignment
type Basket struct {
	id    kernel.UUID
	items []string
	guard guard.ConstructorGuard
}

// NewBasket validates id and items and returns a Basket that owns a copy of items.
//
// Example:
//
//	b, err := basket.NewBasket(kernel.NewUUID(), []string{"Milk", "Bread", "Milk"})
//	if err != nil {
//	    return err
//	}
func NewBasket(id kernel.UUID, items []string) (Basket, error) {
	b := Basket{guard: guard.NewConstructorGuard()}

	if err := errors.Join(
		b.setID(id),
		b.setItems(items),
	); err != nil {
		return Basket{}, err
	}

	return b, nil
}

// Validate ensures the basket was created through NewBasket.
func (b Basket) Validate() error {
	return b.guard.Validate(ErrBasketIsNotConstructed)
}

// ID returns the basket identifier.
func (b Basket) ID() kernel.UUID {
	return b.id
}

// Items returns a copy of the basket items in their original order.
func (b Basket) Items() []string {
	return slices.Clone(b.items)
}

// Distinct returns the item names without repeats, in first-occurrence order.
func (b Basket) Distinct() []string {
	seen := make(map[string]struct{}, len(b.items))
	out := make([]string, 0, len(b.items))
	for _, item := range b.items {
		if _, ok := seen[item]; ok {
			continue
		}
		seen[item] = struct{}{}
		out = append(out, item)
	}
	return out
}

// Len returns the number of items including duplicates.
func (b Basket) Len() int {
	return len(b.items)
}

// IsEmpty reports whether the basket holds no items.
func (b Basket) IsEmpty() bool {
	return len(b.items) == 0
}

func (b *Basket) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	b.id = id
	return nil
}

func (b *Basket) setItems(items []string) error {
	if len(items) > MaxItems {
		return errs.NewValueIsOutOfRangeError("basket size", len(items), 0, MaxItems)
	}
	for _, item := range items {
		if strings.TrimSpace(item) == "" {
			return ErrItemNameIsRequired
		}
	}
	b.items = slices.Clone(items)
	return nil
}
