package services

import "slices"

// Balance turns an overlapping LocalSplit into a disjoint Assignment.
//
// Each round commits the courier with the longest pending list (the earliest in
// split order on a tie), then strips every committed item from the remaining
// couriers. Rounds stop when no courier is left or every pending list is empty;
// couriers left with nothing to carry are not part of the result.
//
// Example:
//
//	Balance(LocalSplit{
//	    {Courier: "Courier1", Items: []string{"Item1", "Item2", "Item3"}},
//	    {Courier: "Courier2", Items: []string{"Item3", "Item4"}},
//	})
//	// Courier1: Item1 Item2 Item3; Courier2: Item4
func Balance(split LocalSplit) Assignment {
	pending := make(LocalSplit, len(split))
	for i, d := range split {
		pending[i] = Delivery{Courier: d.Courier, Items: slices.Clone(d.Items)}
	}

	result := make(Assignment, 0, len(pending))
	for len(pending) > 0 {
		busiest := 0
		for i := 1; i < len(pending); i++ {
			if len(pending[i].Items) > len(pending[busiest].Items) {
				busiest = i
			}
		}

		chosen := pending[busiest]
		if len(chosen.Items) == 0 {
			break
		}
		pending = slices.Delete(pending, busiest, busiest+1)
		result = append(result, chosen)

		committed := make(map[string]struct{}, len(chosen.Items))
		for _, item := range chosen.Items {
			committed[item] = struct{}{}
		}
		for i := range pending {
			pending[i].Items = slices.DeleteFunc(pending[i].Items, func(item string) bool {
				_, ok := committed[item]
				return ok
			})
		}
	}

	return result
}
