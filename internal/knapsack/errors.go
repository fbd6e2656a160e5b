package knapsack

import "errors"

var (
	// ErrInvalidItem is returned when an item has an empty description or a
	// non-positive weight.
	ErrInvalidItem = errors.New("item must have a non-empty description and a positive weight")
	// ErrMenuTooLarge is returned when a menu is too large for the exhaustive
	// solver's subset counter. Callers must pre-filter the menu or fall back
	// to the greedy solver.
	ErrMenuTooLarge = errors.New("menu is too large for exhaustive search")
)
