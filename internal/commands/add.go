package commands

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/outlay-dev/outlay/internal/model"
)

func newAddCommand() *cobra.Command {
	var dateStr string

	cmd := &cobra.Command{
		Use:   "add <amount> <category> [description...]",
		Short: "Record an expense",
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			amount, err := decimal.NewFromString(args[0])
			if err != nil {
				return fmt.Errorf("%w: %q", model.ErrInvalidAmount, args[0])
			}
			category, err := model.ParseCategory(args[1])
			if err != nil {
				return err
			}
			description := strings.Join(args[2:], " ")

			var ts time.Time
			if dateStr != "" {
				if ts, err = parseTimestamp(dateStr); err != nil {
					return err
				}
			}

			a, err := openApp(cmd)
			if err != nil {
				return err
			}

			e, err := a.AddExpense(amount, category, description, ts)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Added %s: %s %s (%s)\n",
				e.ID, e.Amount.StringFixed(2), e.Category, e.Description)
			return nil
		},
	}

	cmd.Flags().StringVar(&dateStr, "date", "", "timestamp, 2006-01-02 or \"2006-01-02 15:04:05\" (default now)")

	return cmd
}
