package knapsack

import (
	"context"
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestExhaustiveSolveDegenerateInputs(t *testing.T) {
	t.Parallel()

	menu := testMenu(t, itemSpec{"bread", 16, 1200})

	tests := []struct {
		name     string
		menu     Menu
		capacity float64
	}{
		{name: "EmptyMenu", menu: Menu{}, capacity: 100},
		{name: "NilMenu", menu: nil, capacity: 100},
		{name: "ZeroCapacity", menu: menu, capacity: 0},
		{name: "NegativeCapacity", menu: menu, capacity: -5},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			sel, err := NewExhaustive().Solve(context.Background(), tc.menu, tc.capacity)
			require.NoError(t, err)
			require.Empty(t, sel.Items)
			require.Zero(t, sel.TotalWeight)
			require.Zero(t, sel.TotalCalories)
		})
	}
}

func TestExhaustiveSolveRejectsOversizedMenus(t *testing.T) {
	t.Parallel()

	for _, n := range []int{ExhaustiveSizeBound, ExhaustiveSizeBound + 1} {
		menu := make(Menu, 0, n)
		for i := 0; i < n; i++ {
			menu = append(menu, Item{Description: "filler", Weight: 1, Calories: 1})
		}

		_, err := NewExhaustive().Solve(context.Background(), menu, 10)
		require.ErrorIs(t, err, ErrMenuTooLarge)
	}
}

func TestExhaustiveSolveFindsOptimum(t *testing.T) {
	t.Parallel()

	menu := testMenu(t,
		itemSpec{"apple", 5, 95},
		itemSpec{"bread", 16, 1200},
		itemSpec{"cheese", 8, 900},
		itemSpec{"chocolate", 7, 750},
	)

	// Capacity 24: bread+cheese is 24 oz / 2100 cal, the unique optimum.
	sel, err := NewExhaustive().Solve(context.Background(), menu, 24)
	require.NoError(t, err)
	require.Equal(t, []Item{menu[1], menu[2]}, sel.Items)
	require.InDelta(t, 24, sel.TotalWeight, 1e-9)
	require.InDelta(t, 2100, sel.TotalCalories, 1e-9)
}

func TestExhaustiveSolveMatchesBruteForce(t *testing.T) {
	t.Parallel()

	rng := rand.New(rand.NewSource(42))
	solver := NewExhaustive()

	for trial := 0; trial < 40; trial++ {
		menu := randomMenu(t, rng, 1+rng.Intn(10))
		capacity := rng.Float64() * 30

		sel, err := solver.Solve(context.Background(), menu, capacity)
		require.NoError(t, err)
		require.LessOrEqual(t, sel.TotalWeight, capacity)
		requireSubsequence(t, menu, sel.Items)

		want := bruteForceBestCalories(menu, capacity)
		require.InDelta(t, want, sel.TotalCalories, 1e-9)
	}
}

func TestExhaustiveSolveTiesKeepFirstSubsetFound(t *testing.T) {
	t.Parallel()

	// Both single-item subsets reach 50 calories; only one fits at a time.
	// The subset with the lexicographically smallest bit pattern wins, which
	// is the one containing the first menu item.
	menu := testMenu(t,
		itemSpec{"first", 5, 50},
		itemSpec{"second", 5, 50},
	)

	sel, err := NewExhaustive().Solve(context.Background(), menu, 5)
	require.NoError(t, err)
	require.Equal(t, []Item{menu[0]}, sel.Items)
}

func TestExhaustiveSolveEmptyWhenNoPositiveCalories(t *testing.T) {
	t.Parallel()

	menu := testMenu(t,
		itemSpec{"celery", 1, -5},
		itemSpec{"water", 2, 0},
	)

	sel, err := NewExhaustive().Solve(context.Background(), menu, 10)
	require.NoError(t, err)
	require.Empty(t, sel.Items)
	require.Zero(t, sel.TotalWeight)
	require.Zero(t, sel.TotalCalories)
}

func TestExhaustiveSolveIsDeterministic(t *testing.T) {
	t.Parallel()

	rng := rand.New(rand.NewSource(13))
	menu := randomMenu(t, rng, 10)
	solver := NewExhaustive()

	first, err := solver.Solve(context.Background(), menu, 15)
	require.NoError(t, err)
	second, err := solver.Solve(context.Background(), menu, 15)
	require.NoError(t, err)
	require.Equal(t, first, second)
}

func TestExhaustiveSolveHonoursCancelledContext(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	menu := testMenu(t,
		itemSpec{"apple", 5, 95},
		itemSpec{"bread", 16, 1200},
	)

	_, err := NewExhaustive().Solve(ctx, menu, 20)
	require.ErrorIs(t, err, context.Canceled)
}

func TestExhaustiveSolveDoesNotMutateMenu(t *testing.T) {
	t.Parallel()

	menu := testMenu(t,
		itemSpec{"apple", 5, 95},
		itemSpec{"bread", 16, 1200},
		itemSpec{"cheese", 8, 900},
	)
	original := make(Menu, len(menu))
	copy(original, menu)

	_, err := NewExhaustive().Solve(context.Background(), menu, 12)
	require.NoError(t, err)
	require.Equal(t, original, menu)
}

// bruteForceBestCalories computes the optimal feasible calorie total with a
// recursion independent of the bitmask enumeration under test.
func bruteForceBestCalories(menu Menu, capacity float64) float64 {
	var recurse func(i int, weight, calories float64) float64
	recurse = func(i int, weight, calories float64) float64 {
		if weight > capacity {
			return math.Inf(-1)
		}
		if i == len(menu) {
			return calories
		}
		skip := recurse(i+1, weight, calories)
		take := recurse(i+1, weight+menu[i].Weight, calories+menu[i].Calories)
		return math.Max(skip, take)
	}

	best := recurse(0, 0, 0)
	if best <= 0 {
		return 0
	}
	return best
}

func BenchmarkExhaustiveSolve(b *testing.B) {
	rng := rand.New(rand.NewSource(2))
	menu := make(Menu, 0, 16)
	for i := 0; i < 16; i++ {
		menu = append(menu, Item{
			Description: "item",
			Weight:      0.5 + rng.Float64()*7.5,
			Calories:    10 + rng.Float64()*490,
		})
	}
	solver := NewExhaustive()
	ctx := context.Background()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := solver.Solve(ctx, menu, 40); err != nil {
			b.Fatalf("unexpected error: %v", err)
		}
	}
}
