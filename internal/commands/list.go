package commands

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/outlay-dev/outlay/internal/view"
)

func newListCommand() *cobra.Command {
	var search, category string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List the viewed month's expenses",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := openApp(cmd)
			if err != nil {
				return err
			}
			if err := applyMonthFlag(cmd, a); err != nil {
				return err
			}
			a.SetSearchText(search)
			a.SetCategoryFilter(category)

			records := a.FilteredRecords()
			fmt.Fprintf(cmd.OutOrStdout(), "%s — %d expense(s)\n", a.Month().Label(), len(records))
			if len(records) == 0 {
				return nil
			}

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "ID\tDATE\tCATEGORY\tDESCRIPTION\tAMOUNT")
			for _, e := range records {
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n",
					e.ID,
					e.Timestamp.Format("2006-01-02 15:04"),
					e.Category,
					e.Description,
					e.Amount.StringFixed(2))
			}
			return w.Flush()
		},
	}

	cmd.Flags().String("month", "", "month to view, like 2024-06 (default current)")
	cmd.Flags().StringVar(&search, "search", "", "case-insensitive text filter on description or category")
	cmd.Flags().StringVar(&category, "category", view.CategoryAll, "category filter")

	return cmd
}
