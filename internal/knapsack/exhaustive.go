package knapsack

import (
	"context"
	"fmt"
)

// ExhaustiveSizeBound is the first menu size the exhaustive solver rejects.
// Subsets are enumerated with a uint64 counter, so the size must stay
// strictly below the counter's bit width; the bound leaves headroom so
// 1<<n can never wrap.
const ExhaustiveSizeBound = 62

// cancelCheckInterval is how many subsets are evaluated between context
// polls. The enumeration can run for 2^61 iterations at the bound, so the
// loop must stay responsive to cancellation without paying for a poll on
// every subset.
const cancelCheckInterval = 8192

type exhaustiveSolver struct{}

// NewExhaustive creates a Solver that enumerates every subset of the menu
// and returns the feasible one with the most calories. It is exact, takes
// O(2^n * n) time, and refuses menus of ExhaustiveSizeBound items or more;
// callers are expected to pre-filter the menu down to a tractable size.
func NewExhaustive() Solver {
	return &exhaustiveSolver{}
}

func (s *exhaustiveSolver) Solve(ctx context.Context, menu Menu, capacity float64) (Selection, error) {
	n := len(menu)
	if n >= ExhaustiveSizeBound {
		return Selection{}, fmt.Errorf("%w: %d items, bound is %d", ErrMenuTooLarge, n, ExhaustiveSizeBound)
	}
	if n == 0 || capacity <= 0 {
		return emptySelection(), nil
	}

	// Each counter value denotes one subset via its bit pattern: bit j set
	// means item j is included. Strict > keeps the first subset found in
	// ascending counter order when several tie for the maximum, so repeated
	// runs return the identical selection.
	var (
		bestMask     uint64
		bestCalories float64
	)
	subsets := uint64(1) << uint(n)
	for mask := uint64(0); mask < subsets; mask++ {
		if mask%cancelCheckInterval == 0 {
			if err := ctx.Err(); err != nil {
				return Selection{}, fmt.Errorf("exhaustive search aborted: %w", err)
			}
		}

		var weight, calories float64
		for j := 0; j < n; j++ {
			if mask>>uint(j)&1 == 1 {
				weight += menu[j].Weight
				calories += menu[j].Calories
			}
		}
		if weight <= capacity && calories > bestCalories {
			bestMask = mask
			bestCalories = calories
		}
	}

	// bestMask stays zero when no subset beat the empty one, which yields
	// the empty selection.
	chosen := make([]bool, n)
	for j := 0; j < n; j++ {
		chosen[j] = bestMask>>uint(j)&1 == 1
	}
	return buildSelection(menu, chosen), nil
}
