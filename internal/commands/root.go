package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/liasse-dev/liasse/internal/buildinfo"
)

// NewRootCommand creates the root CLI command with all subcommands
// registered.
func NewRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:     "liasse",
		Short:   "French PCG bookkeeping and financial statements",
		Version: fmt.Sprintf("%s (commit: %s, built: %s)", buildinfo.Version, buildinfo.Commit, buildinfo.Date),
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		SilenceUsage: true,
	}

	rootCmd.AddCommand(newInitCommand())
	rootCmd.AddCommand(newEntryCommand())
	rootCmd.AddCommand(newImportCommand())
	rootCmd.AddCommand(newReportCommand())

	return rootCmd
}
