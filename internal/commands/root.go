package commands

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/outlay-dev/outlay/internal/app"
	"github.com/outlay-dev/outlay/internal/buildinfo"
	"github.com/outlay-dev/outlay/internal/ledger"
)

// NewRootCommand creates the root CLI command with all subcommands registered.
func NewRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:     "outlay",
		Short:   "Flat-file personal expense tracking",
		Version: fmt.Sprintf("%s (commit: %s, built: %s)", buildinfo.Version, buildinfo.Commit, buildinfo.Date),
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		SilenceUsage: true,
	}

	rootCmd.PersistentFlags().String("home", "", "outlay home directory (default $OUTLAY_HOME, then the working directory)")

	rootCmd.AddCommand(
		newInitCommand(),
		newAddCommand(),
		newListCommand(),
		newEditCommand(),
		newRemoveCommand(),
		newClearCommand(),
		newBudgetCommand(),
		newSummaryCommand(),
		newReportCommand(),
		newExportCommand(),
		newImportCommand(),
	)

	return rootCmd
}

// homeDir resolves the outlay home: --home flag, then OUTLAY_HOME (with
// .env support), then the working directory.
func homeDir(cmd *cobra.Command) (string, error) {
	if home, _ := cmd.Flags().GetString("home"); home != "" {
		return filepath.Abs(home)
	}
	_ = godotenv.Load()
	if env := os.Getenv("OUTLAY_HOME"); env != "" {
		return filepath.Abs(env)
	}
	return os.Getwd()
}

// openApp builds the App for the resolved home. A data-file read
// failure is a warning, not a dead end: the command proceeds over an
// empty store, exactly as the original tolerated a broken load.
func openApp(cmd *cobra.Command) (*app.App, error) {
	home, err := homeDir(cmd)
	if err != nil {
		return nil, err
	}

	a, err := app.New(home)
	var perr *ledger.PersistenceError
	if errors.As(err, &perr) {
		fmt.Fprintf(cmd.ErrOrStderr(), "warning: %v\n", perr)
		return a, nil
	}
	return a, err
}

// parseTimestamp accepts "2006-01-02 15:04:05" or a bare date.
func parseTimestamp(s string) (time.Time, error) {
	for _, layout := range []string{"2006-01-02 15:04:05", "2006-01-02"} {
		if ts, err := time.ParseInLocation(layout, s, time.Local); err == nil {
			return ts, nil
		}
	}
	return time.Time{}, fmt.Errorf("invalid date %q (want 2006-01-02 or 2006-01-02 15:04:05)", s)
}

// applyMonthFlag points the app at --month ("2006-01") when given.
func applyMonthFlag(cmd *cobra.Command, a *app.App) error {
	monthStr, _ := cmd.Flags().GetString("month")
	if monthStr == "" {
		return nil
	}
	t, err := time.ParseInLocation("2006-01", monthStr, time.Local)
	if err != nil {
		return fmt.Errorf("invalid month %q (want 2006-01)", monthStr)
	}
	a.SetMonthTo(t.Year(), t.Month())
	return nil
}
