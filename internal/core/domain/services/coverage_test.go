package services_test

import (
	"context"
	"fmt"
	"slices"
	"testing"

	"basketsplit/internal/core/domain/services"
	"basketsplit/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildDeliveryMap(t *testing.T) {
	c := newCatalog(t, map[string][]string{
		"Item1": {"Courier2", "Courier1"},
		"Item2": {"Courier3", "Courier2"},
		"Item3": {"Courier4"},
	})

	t.Run("should keep couriers in first-seen order", func(t *testing.T) {
		dm, err := services.BuildDeliveryMap([]string{"Item2", "Item1"}, c)

		require.NoError(t, err)
		assert.Equal(t, []string{"Courier3", "Courier2", "Courier1"}, dm.Couriers())
	})

	t.Run("should restrict couriers to the basket", func(t *testing.T) {
		dm, err := services.BuildDeliveryMap([]string{"Item1"}, c)

		require.NoError(t, err)
		assert.NotContains(t, dm.Couriers(), "Courier4")
		assert.True(t, dm.CanDeliver("Courier2", "Item1"))
		assert.False(t, dm.CanDeliver("Courier2", "Item2"))
	})

	t.Run("should fail on unknown item", func(t *testing.T) {
		_, err := services.BuildDeliveryMap([]string{"Item1", "Ghost"}, c)

		require.ErrorIs(t, err, services.ErrUnknownItem)
	})

	t.Run("should be empty for empty basket", func(t *testing.T) {
		dm, err := services.BuildDeliveryMap(nil, c)

		require.NoError(t, err)
		assert.Empty(t, dm.Couriers())
	})
}

func TestDeliveryMap_Covers(t *testing.T) {
	c := newCatalog(t, map[string][]string{
		"Item1": {"Courier1"},
		"Item2": {"Courier1"},
		"Item3": {"Courier2"},
		"Item4": {"Courier2"},
	})
	items := []string{"Item1", "Item2", "Item3", "Item4"}
	dm, err := services.BuildDeliveryMap(items, c)
	require.NoError(t, err)

	assert.True(t, dm.Covers([]string{"Courier1", "Courier2"}, items))
	assert.False(t, dm.Covers([]string{"Courier1"}, items))
	assert.False(t, dm.Covers(nil, items))
	assert.True(t, dm.Covers(nil, nil))
}

func TestDeliveryMap_Uncovered(t *testing.T) {
	c := newCatalog(t, map[string][]string{
		"Item1":   {"Courier1"},
		"Orphan1": {},
		"Orphan2": nil,
	})
	items := []string{"Orphan2", "Item1", "Orphan1"}
	dm, err := services.BuildDeliveryMap(items, c)
	require.NoError(t, err)

	assert.Equal(t, []string{"Orphan2", "Orphan1"}, dm.Uncovered(items))
}

// oneCourierPerItem builds n items each delivered by its own courier, so a
// cover needs all n couriers.
func oneCourierPerItem(n int) (map[string][]string, []string) {
	entries := make(map[string][]string, n)
	items := make([]string, n)
	for i := range n {
		items[i] = fmt.Sprintf("Item%d", i)
		entries[items[i]] = []string{fmt.Sprintf("Courier%d", i)}
	}
	return entries, items
}

func TestFindCover(t *testing.T) {
	t.Run("should find the minimal cover", func(t *testing.T) {
		c := newCatalog(t, map[string][]string{
			"Item1": {"Courier1", "Courier2"},
			"Item2": {"Courier2", "Courier3"},
			"Item3": {"Courier1", "Courier3"},
		})
		items := []string{"Item1", "Item2", "Item3"}
		dm, err := services.BuildDeliveryMap(items, c)
		require.NoError(t, err)

		cover, err := services.FindCover(t.Context(), dm, newBasket(t, items...), c)

		require.NoError(t, err)
		assert.Equal(t, []string{"Courier1", "Courier2"}, cover)
	})

	t.Run("should stop at the first size with a cover", func(t *testing.T) {
		// Courier1 alone covers the basket, so pairs are never examined.
		c := newCatalog(t, map[string][]string{
			"Item1": {"Courier1", "Courier2"},
			"Item2": {"Courier1", "Courier2"},
			"Item3": {"Courier1"},
		})
		items := []string{"Item1", "Item2", "Item3"}
		dm, err := services.BuildDeliveryMap(items, c)
		require.NoError(t, err)

		cover, err := services.FindCover(t.Context(), dm, newBasket(t, items...), c)

		require.NoError(t, err)
		assert.Equal(t, []string{"Courier1"}, cover)
	})

	t.Run("should return empty cover for empty basket", func(t *testing.T) {
		c := newCatalog(t, map[string][]string{"Item1": {"Courier1"}})
		dm, err := services.BuildDeliveryMap(nil, c)
		require.NoError(t, err)

		cover, err := services.FindCover(t.Context(), dm, newBasket(t), c)

		require.NoError(t, err)
		assert.Empty(t, cover)
	})

	t.Run("should report every uncovered item", func(t *testing.T) {
		c := newCatalog(t, map[string][]string{
			"Item1":   {"Courier1"},
			"Orphan1": {},
			"Orphan2": {},
		})
		items := []string{"Orphan1", "Item1", "Orphan2", "Orphan1"}
		dm, err := services.BuildDeliveryMap(items, c)
		require.NoError(t, err)

		_, err = services.FindCover(t.Context(), dm, newBasket(t, items...), c)

		var noCoverage *services.NoCoverageError
		require.ErrorAs(t, err, &noCoverage)
		assert.Equal(t, []string{"Orphan1", "Orphan2"}, noCoverage.Items)
		assert.Equal(t, "no courier coverage: no courier delivers Orphan1, Orphan2", err.Error())
	})

	t.Run("should reject a basket reaching too many couriers", func(t *testing.T) {
		entries, items := oneCourierPerItem(services.MaxCouriers + 1)
		c := newCatalog(t, entries)
		dm, err := services.BuildDeliveryMap(items, c)
		require.NoError(t, err)

		_, err = services.FindCover(t.Context(), dm, newBasket(t, items...), c)

		require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
		assert.Contains(t, err.Error(), "couriers")
	})

	t.Run("should accept a basket at the courier limit", func(t *testing.T) {
		entries, items := oneCourierPerItem(services.MaxCouriers)
		c := newCatalog(t, entries)
		dm, err := services.BuildDeliveryMap(items, c)
		require.NoError(t, err)

		cover, err := services.FindCover(t.Context(), dm, newBasket(t, items...), c)

		require.NoError(t, err)
		assert.Len(t, cover, services.MaxCouriers)
	})

	t.Run("should stop when the context is canceled", func(t *testing.T) {
		entries, items := oneCourierPerItem(10)
		c := newCatalog(t, entries)
		dm, err := services.BuildDeliveryMap(items, c)
		require.NoError(t, err)
		ctx, cancel := context.WithCancel(t.Context())
		cancel()

		cover, err := services.FindCover(ctx, dm, newBasket(t, items...), c)

		require.ErrorIs(t, err, context.Canceled)
		assert.Nil(t, cover)
	})

	t.Run("should use every courier when all are needed", func(t *testing.T) {
		c := newCatalog(t, map[string][]string{
			"Item1": {"Courier1"},
			"Item2": {"Courier2"},
			"Item3": {"Courier3"},
		})
		items := []string{"Item1", "Item2", "Item3"}
		dm, err := services.BuildDeliveryMap(items, c)
		require.NoError(t, err)

		cover, err := services.FindCover(t.Context(), dm, newBasket(t, items...), c)

		require.NoError(t, err)
		assert.Equal(t, []string{"Courier1", "Courier2", "Courier3"}, cover)
	})
}

func TestForEachCombination(t *testing.T) {
	collect := func(n, k int) [][]int {
		var out [][]int
		services.ForEachCombination(n, k, func(indexes []int) bool {
			out = append(out, slices.Clone(indexes))
			return true
		})
		return out
	}

	t.Run("pairs of four in lexicographic order", func(t *testing.T) {
		assert.Equal(t, [][]int{
			{0, 1}, {0, 2}, {0, 3}, {1, 2}, {1, 3}, {2, 3},
		}, collect(4, 2))
	})

	t.Run("triples of five", func(t *testing.T) {
		got := collect(5, 3)

		assert.Len(t, got, 10)
		assert.Equal(t, []int{0, 1, 2}, got[0])
		assert.Equal(t, []int{2, 3, 4}, got[9])
	})

	t.Run("full and degenerate sizes", func(t *testing.T) {
		assert.Equal(t, [][]int{{0, 1, 2}}, collect(3, 3))
		assert.Empty(t, collect(3, 0))
		assert.Empty(t, collect(2, 3))
	})

	t.Run("stops when fn returns false", func(t *testing.T) {
		calls := 0
		services.ForEachCombination(5, 2, func([]int) bool {
			calls++
			return calls < 3
		})

		assert.Equal(t, 3, calls)
	})
}
