package catalog

import "github.com/avoronkov/maxcalories/internal/knapsack"

// Filter returns a new menu holding the first maxItems items of menu, in
// original order, whose calories lie within [minCalories, maxCalories]
// inclusive. It is the pre-filter run before exhaustive search: it drops
// items irrelevant to the optimization and bounds the input size, since the
// exhaustive solver's cost is exponential in the number of items.
func Filter(menu knapsack.Menu, minCalories, maxCalories float64, maxItems int) knapsack.Menu {
	filtered := knapsack.Menu{}
	if maxItems <= 0 {
		return filtered
	}

	for _, item := range menu {
		if item.Calories < minCalories || item.Calories > maxCalories {
			continue
		}
		filtered = append(filtered, item)
		if len(filtered) == maxItems {
			break
		}
	}
	return filtered
}
