package knapsack

import (
	"context"
	"fmt"
	"strings"
)

// Item is one food item available for selection. Items are immutable value
// types; solvers copy them into selections rather than aliasing the menu.
type Item struct {
	Description string  `json:"description"`
	Weight      float64 `json:"weight"`
	Calories    float64 `json:"calories"`
}

// NewItem validates and constructs an Item. The description must be
// non-empty and the weight strictly positive. Calories are accepted as-is,
// including negative values; excluding those is the loader's or filter's
// policy, not the data model's.
func NewItem(description string, weight, calories float64) (Item, error) {
	if strings.TrimSpace(description) == "" {
		return Item{}, fmt.Errorf("%w: description must not be empty", ErrInvalidItem)
	}
	if weight <= 0 {
		return Item{}, fmt.Errorf("%w: weight must be positive, got %v", ErrInvalidItem, weight)
	}
	return Item{Description: description, Weight: weight, Calories: calories}, nil
}

// Ratio returns the item's calorie density (calories per ounce). The Item
// invariant guarantees a positive weight, so the division is always defined.
func (i Item) Ratio() float64 {
	return i.Calories / i.Weight
}

// Menu is an ordered collection of items. Order carries no correctness
// meaning, but it fixes which answer is returned when several subsets tie:
// greedy ranking ties keep menu order, and the exhaustive search keeps the
// earliest subset in enumeration order.
type Menu []Item

// Totals returns the combined weight and calories of every item on the menu.
func (m Menu) Totals() (weight, calories float64) {
	for _, item := range m {
		weight += item.Weight
		calories += item.Calories
	}
	return weight, calories
}

// Selection is the outcome of a solve: an ordered sub-sequence of the input
// menu together with its aggregate totals. TotalWeight never exceeds the
// capacity the selection was solved for.
type Selection struct {
	Items         []Item  `json:"items"`
	TotalWeight   float64 `json:"totalWeight"`
	TotalCalories float64 `json:"totalCalories"`
}

// Solver describes the behaviour required from a knapsack solver. Solvers
// never mutate the menu and are safe for concurrent use.
type Solver interface {
	Solve(ctx context.Context, menu Menu, capacity float64) (Selection, error)
}

// emptySelection is the result for degenerate inputs: empty menu, zero or
// negative capacity, or no subset with positive calories.
func emptySelection() Selection {
	return Selection{Items: []Item{}}
}

// buildSelection assembles a selection from the chosen flags, preserving the
// items' relative menu order and copying them by value.
func buildSelection(menu Menu, chosen []bool) Selection {
	sel := emptySelection()
	for i, pick := range chosen {
		if !pick {
			continue
		}
		sel.Items = append(sel.Items, menu[i])
		sel.TotalWeight += menu[i].Weight
		sel.TotalCalories += menu[i].Calories
	}
	return sel
}
