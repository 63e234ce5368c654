package services

import (
	"context"

	"basketsplit/internal/core/domain/model/basket"
	"basketsplit/internal/core/domain/model/catalog"
	"basketsplit/internal/pkg/errs"
)

// MaxCouriers bounds the distinct couriers a single basket may reach. The
// cover search is exponential in that number.
const MaxCouriers = 20

// FindCover returns the smallest set of couriers delivering every item of b.
//
// Candidate sizes are tried from 1 upwards. Within a size, combinations are
// enumerated lexicographically over the DeliveryMap courier order, and among
// covers of that size the one whose local split has the largest single-courier
// load wins; on equal load the first one enumerated is kept. Larger sizes are
// not examined once a size has produced a cover.
//
// An empty basket yields an empty cover. Returns *NoCoverageError when some
// item has no courier at all, *errs.ValueIsOutOfRangeError when the basket
// reaches more than MaxCouriers couriers, and ctx.Err() once ctx is done.
func FindCover(ctx context.Context, dm DeliveryMap, b basket.Basket, c *catalog.Catalog) ([]string, error) {
	distinct := b.Distinct()
	if len(distinct) == 0 {
		return []string{}, nil
	}

	if uncovered := dm.Uncovered(distinct); len(uncovered) > 0 {
		return nil, NewNoCoverageError(uncovered)
	}

	couriers := dm.Couriers()
	if len(couriers) > MaxCouriers {
		return nil, errs.NewValueIsOutOfRangeError("couriers", len(couriers), 1, MaxCouriers)
	}

	items := b.Items()
	for size := 1; size <= len(couriers); size++ {
		var (
			best     []string
			bestLoad int
			err      error
		)

		forEachCombination(len(couriers), size, func(indexes []int) bool {
			if err = ctx.Err(); err != nil {
				return false
			}

			subset := make([]string, len(indexes))
			for i, idx := range indexes {
				subset[i] = couriers[idx]
			}

			if !dm.Covers(subset, distinct) {
				return true
			}

			if load := BuildLocalSplit(subset, items, c).MaxLoad(); best == nil || load > bestLoad {
				best, bestLoad = subset, load
			}
			return true
		})

		if err != nil {
			return nil, err
		}
		if best != nil {
			return best, nil
		}
	}

	// Unreachable: the full courier set covers every item checked above.
	return nil, NewNoCoverageError(distinct)
}

// forEachCombination calls fn with every k-combination of 0..n-1 in
// lexicographic order until fn returns false. fn must not retain indexes.
func forEachCombination(n, k int, fn func(indexes []int) bool) {
	if k <= 0 || k > n {
		return
	}

	indexes := make([]int, k)
	for i := range indexes {
		indexes[i] = i
	}

	for {
		if !fn(indexes) {
			return
		}

		i := k - 1
		for i >= 0 && indexes[i] == n-k+i {
			i--
		}
		if i < 0 {
			return
		}

		indexes[i]++
		for j := i + 1; j < k; j++ {
			indexes[j] = indexes[j-1] + 1
		}
	}
}
