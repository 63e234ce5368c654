// Package services provides the basket splitting domain service.
//
// Splitting runs in stages, each exported so it can be tested on its own:
//   - BuildDeliveryMap: invert the catalog for the basket's items
//   - FindCover: smallest courier set delivering every item
//   - BuildLocalSplit: route items to every courier of the cover able to take them
//   - Balance: greedily make the routing disjoint, busiest courier first
//
// BasketSplitter composes the stages behind a single Split call.
package services
