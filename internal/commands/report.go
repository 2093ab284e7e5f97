package commands

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/outlay-dev/outlay/internal/summary"
)

func newReportCommand() *cobra.Command {
	var all bool

	cmd := &cobra.Command{
		Use:   "report",
		Short: "Category breakdown for the viewed month, or overall analytics",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := openApp(cmd)
			if err != nil {
				return err
			}

			if all {
				return runAnalytics(cmd, a.Analytics())
			}

			if err := applyMonthFlag(cmd, a); err != nil {
				return err
			}
			d := a.Summary()
			if d.Totals.Count == 0 {
				fmt.Fprintf(cmd.OutOrStdout(), "No expenses in %s\n", d.Month.Label())
				return nil
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Category report — %s\n", d.Month.Label())
			if err := writeCategoryTable(cmd, d.Totals.Categories); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Total: %s over %d expense(s)\n",
				d.Totals.MonthTotal.StringFixed(2), d.Totals.Count)
			return nil
		},
	}

	cmd.Flags().String("month", "", "month to view, like 2024-06 (default current)")
	cmd.Flags().BoolVar(&all, "all", false, "analyze every record instead of one month")

	return cmd
}

func runAnalytics(cmd *cobra.Command, a summary.Analytics) error {
	out := cmd.OutOrStdout()
	if a.Count == 0 {
		fmt.Fprintln(out, "No expenses to analyze")
		return nil
	}

	fmt.Fprintf(out, "Total spent:     %s\n", a.Total.StringFixed(2))
	fmt.Fprintf(out, "Transactions:    %d\n", a.Count)
	fmt.Fprintf(out, "Average expense: %s\n", a.Average.StringFixed(2))
	fmt.Fprintf(out, "Largest expense: %s (%s)\n", a.Largest.Amount.StringFixed(2), a.Largest.Category)
	fmt.Fprintln(out)
	return writeCategoryTable(cmd, a.Categories)
}

func writeCategoryTable(cmd *cobra.Command, categories []summary.CategoryTotal) error {
	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "CATEGORY\tCOUNT\tAMOUNT\t% OF TOTAL")
	for _, ct := range categories {
		fmt.Fprintf(w, "%s\t%d\t%s\t%.1f%%\n", ct.Category, ct.Count, ct.Total.StringFixed(2), ct.Percent)
	}
	return w.Flush()
}
