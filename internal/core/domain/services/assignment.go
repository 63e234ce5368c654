package services

// Delivery is one courier and the basket items routed to it.
type Delivery struct {
	Courier string
	Items   []string
}

// LocalSplit routes every basket item to every courier of a cover able to
// deliver it. An item can therefore appear under several couriers; Balance
// resolves the overlap.
type LocalSplit []Delivery

// MaxLoad returns the length of the longest item list, 0 for an empty split.
func (s LocalSplit) MaxLoad() int {
	maxLoad := 0
	for _, d := range s {
		maxLoad = max(maxLoad, len(d.Items))
	}
	return maxLoad
}

// Assignment is the final split: each basket item occurrence belongs to exactly
// one courier. Deliveries are ordered by the moment Balance committed them, so
// the busiest courier comes first.
type Assignment []Delivery
