package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func newImportCommand() *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "import <file>",
		Short: "Import expenses from an exported CSV",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := openApp(cmd)
			if err != nil {
				return err
			}

			f, err := os.Open(args[0])
			if err != nil {
				return fmt.Errorf("opening import file: %w", err)
			}
			defer f.Close()

			n, err := a.Import(f, format)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Imported %d expense(s) from %s\n", n, args[0])
			return nil
		},
	}

	cmd.Flags().StringVar(&format, "format", "csv", "import format")

	return cmd
}
