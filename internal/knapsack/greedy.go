package knapsack

import (
	"context"
	"sort"
)

type greedySolver struct{}

// NewGreedy creates a Solver that ranks items by calorie density and takes
// them in descending order while they fit. The result is always feasible but
// is optimal only for the fractional relaxation of the problem, not for
// discrete 0/1 selection.
func NewGreedy() Solver {
	return &greedySolver{}
}

func (s *greedySolver) Solve(_ context.Context, menu Menu, capacity float64) (Selection, error) {
	if len(menu) == 0 || capacity <= 0 {
		return emptySelection(), nil
	}

	// Rank menu positions by descending ratio. The stable sort keeps menu
	// order for equal ratios, which makes repeated runs reproducible.
	ranking := make([]int, len(menu))
	for i := range ranking {
		ranking[i] = i
	}
	sort.SliceStable(ranking, func(a, b int) bool {
		return menu[ranking[a]].Ratio() > menu[ranking[b]].Ratio()
	})

	// Single pass over the ranking. A rejected item is never revisited, even
	// when a later, lighter item leaves room it would now fit into.
	chosen := make([]bool, len(menu))
	var accumulated float64
	for _, idx := range ranking {
		if accumulated+menu[idx].Weight <= capacity {
			chosen[idx] = true
			accumulated += menu[idx].Weight
		}
	}

	return buildSelection(menu, chosen), nil
}
