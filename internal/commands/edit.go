package commands

import (
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/outlay-dev/outlay/internal/ledger"
	"github.com/outlay-dev/outlay/internal/model"
)

func newEditCommand() *cobra.Command {
	var amountStr, categoryStr, description string

	cmd := &cobra.Command{
		Use:   "edit <id>",
		Short: "Edit an expense's amount, category, or description",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := openApp(cmd)
			if err != nil {
				return err
			}

			current, ok := a.GetExpense(args[0])
			if !ok {
				return fmt.Errorf("%w: %s", ledger.ErrNotFound, args[0])
			}

			amount := current.Amount
			if cmd.Flags().Changed("amount") {
				if amount, err = decimal.NewFromString(amountStr); err != nil {
					return fmt.Errorf("%w: %q", model.ErrInvalidAmount, amountStr)
				}
			}
			category := current.Category
			if cmd.Flags().Changed("category") {
				if category, err = model.ParseCategory(categoryStr); err != nil {
					return err
				}
			}
			if !cmd.Flags().Changed("description") {
				description = current.Description
			}

			if err := a.UpdateExpense(current.ID, amount, category, description); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Updated %s: %s %s (%s)\n",
				current.ID, amount.StringFixed(2), category, model.NormalizeDescription(description))
			return nil
		},
	}

	cmd.Flags().StringVar(&amountStr, "amount", "", "new amount")
	cmd.Flags().StringVar(&categoryStr, "category", "", "new category")
	cmd.Flags().StringVar(&description, "description", "", "new description")

	return cmd
}
