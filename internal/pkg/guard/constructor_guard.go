// Package guard provides ConstructorGuard, a marker embedded in value objects,
// commands and queries that must only be created through their constructors.
package guard

import "errors"

// ErrDefaultConstructorGuard is returned by Validate when the guarded object is
// a zero value and the caller supplied no specific error.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard distinguishes constructor-built values from zero values.
//
// Example usage:
//
//	var ErrBasketNotConstructed = errors.New("Basket must be created via NewBasket")
//
//	type Basket struct {
//	    items []string
//	    guard guard.ConstructorGuard
//	}
//
//	func NewBasket(items []string) Basket {
//	    return Basket{items: items, guard: guard.NewConstructorGuard()}
//	}
//
//	func (b Basket) Validate() error {
//	    return b.guard.Validate(ErrBasketNotConstructed)
//	}
type ConstructorGuard struct {
	isConstructed bool
}

// NewConstructorGuard returns a guard marked as constructed.
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{isConstructed: true}
}

// Validate returns nil for a constructed guard. For a zero value it returns
// validationError, or ErrDefaultConstructorGuard when validationError is nil.
func (g ConstructorGuard) Validate(validationError error) error {
	if validationError == nil {
		validationError = ErrDefaultConstructorGuard
	}
	if !g.isConstructed {
		return validationError
	}
	return nil
}
