// Package knapsack selects the subset of food items that maximizes total
// calories without exceeding a weight capacity (the 0/1 knapsack problem).
// It provides two solvers behind a common interface: an exact
// subset-enumeration search, exponential in the menu size, and a
// calories-per-ounce greedy heuristic that is fast but only approximate
// for discrete selection. Weights and calories are real numbers, so the
// classic integral dynamic-programming formulation does not apply here.
package knapsack
