package services

import (
	"basketsplit/internal/core/domain/model/catalog"
)

// DeliveryMap is the catalog inverted and restricted to one basket: for each
// courier, the distinct basket items it can deliver.
//
// Couriers are kept in the order they were first met while scanning the basket
// and each item's catalog list. That order drives cover enumeration and every
// tie-break, which keeps splits reproducible.
type DeliveryMap struct {
	couriers []string
	items    map[string]map[string]struct{}
}

// BuildDeliveryMap inverts c for the given basket items.
// Returns *UnknownItemError for the first item missing from the catalog.
func BuildDeliveryMap(items []string, c *catalog.Catalog) (DeliveryMap, error) {
	dm := DeliveryMap{items: make(map[string]map[string]struct{})}

	for _, item := range items {
		couriers, ok := c.Couriers(item)
		if !ok {
			return DeliveryMap{}, NewUnknownItemError(item)
		}

		for _, courier := range couriers {
			set, seen := dm.items[courier]
			if !seen {
				set = make(map[string]struct{})
				dm.items[courier] = set
				dm.couriers = append(dm.couriers, courier)
			}
			set[item] = struct{}{}
		}
	}

	return dm, nil
}

// Couriers returns the couriers in first-seen order.
func (d DeliveryMap) Couriers() []string {
	out := make([]string, len(d.couriers))
	copy(out, d.couriers)
	return out
}

// CanDeliver reports whether courier can deliver item within this basket.
func (d DeliveryMap) CanDeliver(courier, item string) bool {
	_, ok := d.items[courier][item]
	return ok
}

// Covers reports whether the couriers in subset together deliver every item.
func (d DeliveryMap) Covers(subset, items []string) bool {
	for _, item := range items {
		if !d.coveredBy(subset, item) {
			return false
		}
	}
	return true
}

// Uncovered returns the items, in the given order, that no courier delivers.
func (d DeliveryMap) Uncovered(items []string) []string {
	var out []string
	for _, item := range items {
		if !d.coveredBy(d.couriers, item) {
			out = append(out, item)
		}
	}
	return out
}

func (d DeliveryMap) coveredBy(couriers []string, item string) bool {
	for _, courier := range couriers {
		if d.CanDeliver(courier, item) {
			return true
		}
	}
	return false
}
