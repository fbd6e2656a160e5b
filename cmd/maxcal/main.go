// Command maxcal loads a food catalog, optionally pre-filters it, and prints
// the best selection of foods for a weight capacity using the greedy
// heuristic, the exact exhaustive search, or both.
package main

import (
	"context"
	"fmt"
	"io"
	"math"
	"os"
	"time"

	"github.com/alecthomas/kingpin/v2"

	"github.com/avoronkov/maxcalories/internal/catalog"
	"github.com/avoronkov/maxcalories/internal/knapsack"
	"github.com/avoronkov/maxcalories/internal/render"
)

type options struct {
	catalogPath string
	capacity    float64
	strategy    string
	minCalories float64
	maxCalories float64
	maxItems    int
	timeout     time.Duration
}

func main() {
	app := kingpin.New("maxcal", "Selects the foods that maximize calories within a weight capacity")
	opts := options{}
	app.Flag("catalog", "Path to the caret-delimited catalog file").Required().StringVar(&opts.catalogPath)
	app.Flag("capacity", "Weight capacity in ounces").Required().Float64Var(&opts.capacity)
	app.Flag("strategy", "Solver strategy: greedy, exhaustive, or both").Default("both").EnumVar(&opts.strategy, "greedy", "exhaustive", "both")
	app.Flag("min-calories", "Pre-filter: minimum calories per item").Default("0").Float64Var(&opts.minCalories)
	app.Flag("max-calories", "Pre-filter: maximum calories per item (0 means unbounded)").Default("0").Float64Var(&opts.maxCalories)
	app.Flag("max-items", "Pre-filter: keep only the first N matching items (0 means all)").Default("0").IntVar(&opts.maxItems)
	app.Flag("timeout", "Abort exhaustive search after this duration").Default("30s").DurationVar(&opts.timeout)
	kingpin.MustParse(app.Parse(os.Args[1:]))

	if err := run(opts, os.Stdout); err != nil {
		fmt.Fprintln(os.Stderr, "maxcal:", err)
		os.Exit(1)
	}
}

func run(opts options, out io.Writer) error {
	menu, err := catalog.LoadFile(opts.catalogPath)
	if err != nil {
		return err
	}

	maxCalories := opts.maxCalories
	if maxCalories <= 0 {
		maxCalories = math.Inf(1)
	}
	maxItems := opts.maxItems
	if maxItems <= 0 {
		maxItems = len(menu)
	}
	menu = catalog.Filter(menu, opts.minCalories, maxCalories, maxItems)

	render.Menu(out, menu)

	ctx, cancel := context.WithTimeout(context.Background(), opts.timeout)
	defer cancel()

	if opts.strategy == "greedy" || opts.strategy == "both" {
		sel, err := knapsack.NewGreedy().Solve(ctx, menu, opts.capacity)
		if err != nil {
			return fmt.Errorf("greedy solve: %w", err)
		}
		render.Selection(out, "greedy", sel)
	}

	if opts.strategy == "exhaustive" || opts.strategy == "both" {
		sel, err := knapsack.NewExhaustive().Solve(ctx, menu, opts.capacity)
		if err != nil {
			return fmt.Errorf("exhaustive solve: %w", err)
		}
		render.Selection(out, "exhaustive", sel)
	}

	return nil
}
