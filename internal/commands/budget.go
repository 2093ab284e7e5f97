package commands

import (
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/outlay-dev/outlay/internal/model"
)

func newBudgetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "budget [amount]",
		Short: "Show or set the monthly budget (0 clears it)",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := openApp(cmd)
			if err != nil {
				return err
			}

			if len(args) == 0 {
				d := a.Summary()
				fmt.Fprintln(cmd.OutOrStdout(), d.Budget.Message)
				return nil
			}

			budget, err := decimal.NewFromString(args[0])
			if err != nil {
				return fmt.Errorf("%w: %q", model.ErrInvalidAmount, args[0])
			}
			if err := a.SetBudget(budget); err != nil {
				return err
			}

			if budget.IsZero() {
				fmt.Fprintln(cmd.OutOrStdout(), "Budget cleared")
			} else {
				fmt.Fprintf(cmd.OutOrStdout(), "Monthly budget set to %s\n", budget.StringFixed(2))
			}
			return nil
		},
	}
}
