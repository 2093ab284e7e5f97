package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/outlay-dev/outlay/internal/summary"
)

func newSummaryCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "summary",
		Short: "Show totals and budget status for the viewed month",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := openApp(cmd)
			if err != nil {
				return err
			}
			if err := applyMonthFlag(cmd, a); err != nil {
				return err
			}

			d := a.Summary()
			out := cmd.OutOrStdout()

			fmt.Fprintln(out, d.Month.Label())
			fmt.Fprintf(out, "Today:      %s\n", d.Totals.TodayTotal.StringFixed(2))
			fmt.Fprintf(out, "This week:  %s\n", d.Totals.WeekTotal.StringFixed(2))
			fmt.Fprintf(out, "This month: %s (%d expense(s))\n", d.Totals.MonthTotal.StringFixed(2), d.Totals.Count)
			fmt.Fprintln(out)

			if !d.Budget.Set {
				fmt.Fprintln(out, d.Budget.Message)
				return nil
			}
			fmt.Fprintf(out, "Budget %s [%s] %.0f%% used\n",
				severityMark(d.Budget.Severity), renderBar(d.Budget.BarPercent), d.Budget.PercentUsed)
			fmt.Fprintln(out, d.Budget.Message)
			return nil
		},
	}

	cmd.Flags().String("month", "", "month to view, like 2024-06 (default current)")

	return cmd
}

const barWidth = 20

func renderBar(percent int) string {
	filled := percent * barWidth / 100
	return strings.Repeat("#", filled) + strings.Repeat(".", barWidth-filled)
}

func severityMark(s summary.Severity) string {
	switch s {
	case summary.SeverityCritical:
		return "!!"
	case summary.SeverityWarning:
		return "! "
	default:
		return "ok"
	}
}
