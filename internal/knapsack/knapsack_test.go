package knapsack

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewItem(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		description string
		weight      float64
		calories    float64
		wantErr     error
	}{
		{name: "Valid", description: "spicy chicken breast", weight: 6.5, calories: 280},
		{name: "NegativeCaloriesPermitted", description: "celery stick", weight: 1.2, calories: -5},
		{name: "ZeroCalories", description: "water", weight: 16, calories: 0},
		{name: "EmptyDescription", description: "", weight: 1, calories: 10, wantErr: ErrInvalidItem},
		{name: "BlankDescription", description: "   ", weight: 1, calories: 10, wantErr: ErrInvalidItem},
		{name: "ZeroWeight", description: "air", weight: 0, calories: 10, wantErr: ErrInvalidItem},
		{name: "NegativeWeight", description: "helium", weight: -3, calories: 10, wantErr: ErrInvalidItem},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			item, err := NewItem(tc.description, tc.weight, tc.calories)
			if tc.wantErr != nil {
				require.ErrorIs(t, err, tc.wantErr)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tc.description, item.Description)
			require.Equal(t, tc.weight, item.Weight)
			require.Equal(t, tc.calories, item.Calories)
		})
	}
}

func TestItemRatio(t *testing.T) {
	t.Parallel()

	item, err := NewItem("trail mix", 4, 600)
	require.NoError(t, err)
	require.InDelta(t, 150, item.Ratio(), 1e-12)
}

func TestMenuTotals(t *testing.T) {
	t.Parallel()

	weight, calories := Menu{}.Totals()
	require.Zero(t, weight)
	require.Zero(t, calories)

	menu := testMenu(t,
		itemSpec{"bread", 16, 1200},
		itemSpec{"cheese", 8, 900},
		itemSpec{"apple", 5, 95},
	)
	weight, calories = menu.Totals()
	require.InDelta(t, 29, weight, 1e-9)
	require.InDelta(t, 2195, calories, 1e-9)
}

type itemSpec struct {
	description string
	weight      float64
	calories    float64
}

func testMenu(t *testing.T, specs ...itemSpec) Menu {
	t.Helper()

	menu := make(Menu, 0, len(specs))
	for _, s := range specs {
		item, err := NewItem(s.description, s.weight, s.calories)
		require.NoError(t, err)
		menu = append(menu, item)
	}
	return menu
}

// randomMenu builds a reproducible menu of n items for cross-checking tests.
func randomMenu(t *testing.T, rng *rand.Rand, n int) Menu {
	t.Helper()

	specs := make([]itemSpec, 0, n)
	for i := 0; i < n; i++ {
		specs = append(specs, itemSpec{
			description: "item-" + string(rune('a'+i)),
			weight:      0.5 + rng.Float64()*7.5,
			calories:    10 + rng.Float64()*490,
		})
	}
	return testMenu(t, specs...)
}

// requireSubsequence asserts that selected is an ordered sub-sequence of
// menu: every selected item matches a distinct menu item, in menu order.
func requireSubsequence(t *testing.T, menu Menu, selected []Item) {
	t.Helper()

	next := 0
	for _, item := range selected {
		found := false
		for ; next < len(menu); next++ {
			if menu[next] == item {
				found = true
				next++
				break
			}
		}
		require.Truef(t, found, "selected item %+v is not in the remaining menu", item)
	}
}
