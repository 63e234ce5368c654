package services

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrUnknownItem classifies UnknownItemError.
	ErrUnknownItem = errors.New("unknown item")
	// ErrNoCoverage classifies NoCoverageError.
	ErrNoCoverage = errors.New("no courier coverage")
)

// UnknownItemError is returned when a basket item has no catalog entry.
type UnknownItemError struct {
	Item string
}

// NewUnknownItemError creates an UnknownItemError for item.
func NewUnknownItemError(item string) *UnknownItemError {
	return &UnknownItemError{Item: item}
}

func (e *UnknownItemError) Error() string {
	return fmt.Sprintf("%s: %q is not in the catalog", ErrUnknownItem, e.Item)
}

func (e *UnknownItemError) Unwrap() error {
	return ErrUnknownItem
}

// NoCoverageError is returned when no set of couriers can deliver the whole
// basket. Items lists the basket items no courier can deliver.
type NoCoverageError struct {
	Items []string
}

// NewNoCoverageError creates a NoCoverageError naming the undeliverable items.
func NewNoCoverageError(items []string) *NoCoverageError {
	return &NoCoverageError{Items: items}
}

func (e *NoCoverageError) Error() string {
	return fmt.Sprintf("%s: no courier delivers %s", ErrNoCoverage, strings.Join(e.Items, ", "))
}

func (e *NoCoverageError) Unwrap() error {
	return ErrNoCoverage
}
