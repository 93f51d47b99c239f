package cli

import (
	"context"
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/example/roster/internal/wire"
)

// ClearCmd returns the clear command
func ClearCmd() *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:   "clear",
		Short: "Delete all roster entries",
		RunE: func(cmd *cobra.Command, args []string) error {
			if !yes {
				return fmt.Errorf("refusing to delete all entries without --yes")
			}

			app, err := wire.New()
			if err != nil {
				return fmt.Errorf("failed to start: %w", err)
			}
			defer app.Close()

			ctx := context.Background()
			before := app.Roster.Count(ctx)
			if err := app.Store.Clear(ctx); err != nil {
				return fmt.Errorf("failed to clear store: %w", err)
			}

			color.Green("Deleted %d users", before)
			return nil
		},
	}

	cmd.Flags().BoolVar(&yes, "yes", false, "confirm deletion")

	return cmd
}
