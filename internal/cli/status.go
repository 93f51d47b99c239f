package cli

import (
	"context"
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/example/roster/internal/db"
	"github.com/example/roster/internal/wire"
)

// StatusCmd returns the status command
func StatusCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show roster store status",
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := wire.New()
			if err != nil {
				return fmt.Errorf("failed to start: %w", err)
			}
			defer app.Close()

			label := color.New(color.Bold).SprintFunc()

			fmt.Printf("%s %s\n", label("Database:"), app.Config.DBPath)
			fmt.Printf("%s v%d\n", label("Schema:"), db.SchemaVersion(app.DB))
			fmt.Printf("%s %d\n", label("Users:"), app.Roster.Count(context.Background()))
			fmt.Printf("%s %d\n", label("Page size:"), app.Config.PageSize)

			switch {
			case app.Config.SeedFile != "":
				fmt.Printf("%s file %s\n", label("Seed source:"), app.Config.SeedFile)
			case app.Config.SeedURL != "":
				fmt.Printf("%s url %s\n", label("Seed source:"), app.Config.SeedURL)
			default:
				fmt.Printf("%s default (~/.roster/users.json)\n", label("Seed source:"))
			}
			return nil
		},
	}
}
