// Package catalog supplies the food catalog around the knapsack solvers:
// loading menus from the caret-delimited catalog file format, pre-filtering
// a menu by calorie range and size so exhaustive search stays tractable, and
// a concurrency-safe in-memory store holding the live menu.
package catalog
