package services

import (
	"basketsplit/internal/core/domain/model/catalog"
)

// BuildLocalSplit lists, for each courier of cover in cover order, the basket
// items it can deliver in basket order. Duplicated basket items are listed once
// per occurrence. Couriers of cover that deliver nothing get an empty list.
func BuildLocalSplit(cover, items []string, c *catalog.Catalog) LocalSplit {
	split := make(LocalSplit, len(cover))
	for i, courier := range cover {
		split[i] = Delivery{Courier: courier, Items: []string{}}
	}

	for _, item := range items {
		for i, courier := range cover {
			if c.CanDeliver(item, courier) {
				split[i].Items = append(split[i].Items, item)
			}
		}
	}

	return split
}
