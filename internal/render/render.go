// Package render writes human-readable listings of menus and selections.
// It only reads its inputs; formatting carries no contract beyond that.
package render

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/avoronkov/maxcalories/internal/knapsack"
)

// Menu writes each item of the menu followed by its grand totals.
func Menu(w io.Writer, menu knapsack.Menu) {
	fmt.Fprintln(w, "*** menu ***")
	if len(menu) == 0 {
		fmt.Fprintln(w, "[empty menu]")
		return
	}

	writeItems(w, menu)
	weight, calories := menu.Totals()
	writeTotals(w, weight, calories)
}

// Selection writes the selected items and their totals under a caption
// naming the strategy that produced them.
func Selection(w io.Writer, caption string, sel knapsack.Selection) {
	fmt.Fprintf(w, "*** %s selection ***\n", caption)
	if len(sel.Items) == 0 {
		fmt.Fprintln(w, "[empty selection]")
		return
	}

	writeItems(w, sel.Items)
	writeTotals(w, sel.TotalWeight, sel.TotalCalories)
}

func writeItems(w io.Writer, items []knapsack.Item) {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	for _, item := range items {
		fmt.Fprintf(tw, "%s\t%.2f oz\t%.2f cal\n", item.Description, item.Weight, item.Calories)
	}
	_ = tw.Flush()
}

func writeTotals(w io.Writer, weight, calories float64) {
	fmt.Fprintf(w, "> total weight: %.2f oz\n", weight)
	fmt.Fprintf(w, "> total calories: %.2f\n", calories)
}
