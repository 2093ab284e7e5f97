package commands

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/outlay-dev/outlay/internal/config"
	"github.com/outlay-dev/outlay/internal/gitops"
)

func newInitCommand() *cobra.Command {
	var useGit bool

	cmd := &cobra.Command{
		Use:   "init [directory]",
		Short: "Initialize a new outlay home",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := "."
			if len(args) > 0 {
				dir = args[0]
			}

			absDir, err := filepath.Abs(dir)
			if err != nil {
				return fmt.Errorf("resolving path: %w", err)
			}

			return runInit(cmd, absDir, useGit)
		},
	}

	cmd.Flags().BoolVar(&useGit, "git", false, "initialize a git repository and snapshot after every save")

	return cmd
}

func runInit(cmd *cobra.Command, dir string, useGit bool) error {
	for _, d := range []string{"data", "logs", "exports"} {
		if err := os.MkdirAll(filepath.Join(dir, d), 0o755); err != nil {
			return fmt.Errorf("creating directory %s: %w", d, err)
		}
	}

	settings := config.Default()
	settings.Git.AutoCommit = useGit
	if err := config.Save(filepath.Join(dir, config.FileName), settings); err != nil {
		return fmt.Errorf("writing settings: %w", err)
	}

	gitignore := "exports/\n"
	if err := os.WriteFile(filepath.Join(dir, ".gitignore"), []byte(gitignore), 0o644); err != nil {
		return fmt.Errorf("writing .gitignore: %w", err)
	}

	if useGit {
		if err := gitops.Init(dir); err != nil {
			return fmt.Errorf("git init: %w", err)
		}
		hash, err := gitops.Snapshot(dir, "init: new outlay home", settings.Git.AuthorName, settings.Git.AuthorEmail)
		if err != nil {
			return fmt.Errorf("initial snapshot: %w", err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Initialized outlay home at %s (%s)\n", dir, hash)
		return nil
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Initialized outlay home at %s\n", dir)
	return nil
}
