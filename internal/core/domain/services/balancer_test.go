package services_test

import (
	"testing"

	"basketsplit/internal/core/domain/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildLocalSplit(t *testing.T) {
	c := newCatalog(t, map[string][]string{
		"Item1": {"Courier1", "Courier2"},
		"Item2": {"Courier3"},
		"Item3": {"Courier2"},
		"Item4": {"Courier2", "Courier3"},
		"Item5": {"Courier2"},
	})

	split := services.BuildLocalSplit(
		[]string{"Courier1", "Courier2"},
		[]string{"Item1", "Item2", "Item3", "Item4", "Item5"},
		c,
	)

	assert.Equal(t, services.LocalSplit{
		{Courier: "Courier1", Items: []string{"Item1"}},
		{Courier: "Courier2", Items: []string{"Item1", "Item3", "Item4", "Item5"}},
	}, split)
	assert.Equal(t, 4, split.MaxLoad())
}

func TestLocalSplit_MaxLoad(t *testing.T) {
	testCases := []struct {
		name  string
		split services.LocalSplit
		want  int
	}{
		{
			name: "single largest",
			split: services.LocalSplit{
				{Courier: "Courier1", Items: []string{"Item1", "Item2", "Item3"}},
				{Courier: "Courier2", Items: []string{"Item4", "Item5"}},
				{Courier: "Courier3", Items: []string{"Item6", "Item7", "Item8", "Item9"}},
			},
			want: 4,
		},
		{
			name: "several equal maxima",
			split: services.LocalSplit{
				{Courier: "Courier1", Items: []string{"Item1", "Item2", "Item3"}},
				{Courier: "Courier2", Items: []string{"Item4", "Item5", "Item6"}},
			},
			want: 3,
		},
		{
			name:  "empty",
			split: nil,
			want:  0,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, tc.split.MaxLoad())
		})
	}
}

func TestBalance(t *testing.T) {
	t.Run("should strip committed items from the remaining courier", func(t *testing.T) {
		result := services.Balance(services.LocalSplit{
			{Courier: "Courier1", Items: []string{"Item1", "Item2", "Item3"}},
			{Courier: "Courier2", Items: []string{"Item3", "Item4"}},
		})

		assert.Equal(t, services.Assignment{
			{Courier: "Courier1", Items: []string{"Item1", "Item2", "Item3"}},
			{Courier: "Courier2", Items: []string{"Item4"}},
		}, result)
	})

	t.Run("should commit the busiest courier first regardless of position", func(t *testing.T) {
		result := services.Balance(services.LocalSplit{
			{Courier: "Courier1", Items: []string{"Item1"}},
			{Courier: "Courier2", Items: []string{"Item1", "Item2", "Item3"}},
		})

		assert.Equal(t, services.Assignment{
			{Courier: "Courier2", Items: []string{"Item1", "Item2", "Item3"}},
		}, result)
	})

	t.Run("should break ties by split order", func(t *testing.T) {
		result := services.Balance(services.LocalSplit{
			{Courier: "Courier1", Items: []string{"Item1", "Item2"}},
			{Courier: "Courier2", Items: []string{"Item2", "Item3"}},
		})

		assert.Equal(t, services.Assignment{
			{Courier: "Courier1", Items: []string{"Item1", "Item2"}},
			{Courier: "Courier2", Items: []string{"Item3"}},
		}, result)
	})

	t.Run("should drop couriers left with nothing", func(t *testing.T) {
		result := services.Balance(services.LocalSplit{
			{Courier: "Courier1", Items: []string{"Item1", "Item2"}},
			{Courier: "Courier2", Items: []string{"Item2"}},
			{Courier: "Courier3", Items: []string{}},
		})

		assert.Equal(t, services.Assignment{
			{Courier: "Courier1", Items: []string{"Item1", "Item2"}},
		}, result)
	})

	t.Run("should remove every occurrence of a committed item", func(t *testing.T) {
		result := services.Balance(services.LocalSplit{
			{Courier: "Courier1", Items: []string{"Milk", "Milk", "Eggs"}},
			{Courier: "Courier2", Items: []string{"Milk", "Bread"}},
		})

		assert.Equal(t, services.Assignment{
			{Courier: "Courier1", Items: []string{"Milk", "Milk", "Eggs"}},
			{Courier: "Courier2", Items: []string{"Bread"}},
		}, result)
	})

	t.Run("should not mutate its input", func(t *testing.T) {
		input := services.LocalSplit{
			{Courier: "Courier1", Items: []string{"Item1", "Item2"}},
			{Courier: "Courier2", Items: []string{"Item2", "Item3"}},
		}

		_ = services.Balance(input)

		assert.Equal(t, []string{"Item2", "Item3"}, input[1].Items)
	})

	t.Run("should return empty assignment for empty split", func(t *testing.T) {
		result := services.Balance(nil)

		assert.NotNil(t, result)
		assert.Empty(t, result)
	})

	t.Run("union equals the union of the split", func(t *testing.T) {
		input := services.LocalSplit{
			{Courier: "A", Items: []string{"I1", "I2"}},
			{Courier: "B", Items: []string{"I2", "I3", "I4"}},
			{Courier: "C", Items: []string{"I4", "I5", "I1"}},
		}

		result := services.Balance(input)

		seen := make(map[string]string)
		for _, d := range result {
			for _, item := range d.Items {
				_, dup := seen[item]
				require.False(t, dup, "item %s assigned twice", item)
				seen[item] = d.Courier
			}
		}
		assert.Len(t, seen, 5)
	})
}
