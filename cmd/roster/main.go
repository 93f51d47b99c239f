package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/example/roster/internal/cli"
	"github.com/example/roster/internal/version"
)

func main() {
	rootCmd := &cobra.Command{
		Use:     "roster",
		Short:   "Roster - a local user roster browser",
		Version: version.String(),
		Long: `Roster keeps a user roster in a local database and lets you browse
it interactively or from the command line, with search, filters,
sorting, and incremental loading.`,
	}

	// Add subcommands
	rootCmd.AddCommand(cli.InitCmd())
	rootCmd.AddCommand(cli.BrowseCmd())
	rootCmd.AddCommand(cli.ListCmd())
	rootCmd.AddCommand(cli.SeedCmd())
	rootCmd.AddCommand(cli.StatusCmd())
	rootCmd.AddCommand(cli.ClearCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
