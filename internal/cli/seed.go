package cli

import (
	"context"
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/example/roster/internal/config"
	"github.com/example/roster/internal/db"
	"github.com/example/roster/internal/wire"
)

// SeedCmd returns the seed command
func SeedCmd() *cobra.Command {
	var (
		file     string
		url      string
		force    bool
		fixtures int
	)

	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Populate the roster from a seed source",
		Long: `Populate the roster from the configured seed source, or from a
source given on the command line.

By default seeding only happens when the store is empty. Pass --force
to clear existing rows and reseed. Pass --fixtures N to generate N
synthetic users instead of reading a seed source.

Examples:
  roster seed
  roster seed --file ./users.json --force
  roster seed --fixtures 500 --force`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return fmt.Errorf("failed to load config: %w", err)
			}
			if file != "" {
				cfg.SeedFile = file
				cfg.SeedURL = ""
			} else if url != "" {
				cfg.SeedURL = url
				cfg.SeedFile = ""
			}

			app, err := wire.NewWithConfig(cfg)
			if err != nil {
				return fmt.Errorf("failed to start: %w", err)
			}
			defer app.Close()

			ctx := context.Background()

			if fixtures > 0 {
				if !force && app.Roster.Count(ctx) > 0 {
					return fmt.Errorf("store is not empty; pass --force to replace it")
				}
				if force {
					if err := app.Store.Clear(ctx); err != nil {
						return fmt.Errorf("failed to clear store: %w", err)
					}
				}
				if err := db.SeedFixtures(app.DB, fixtures); err != nil {
					return fmt.Errorf("failed to generate fixtures: %w", err)
				}
				color.Green("Seeded %d synthetic users (%d total)", fixtures, app.Roster.Count(ctx))
				return nil
			}

			if force {
				if err := app.Roster.Reseed(ctx); err != nil {
					return fmt.Errorf("failed to reseed: %w", err)
				}
			} else {
				app.Roster.Initialize(ctx)
			}

			count := app.Roster.Count(ctx)
			if count == 0 {
				color.Yellow("Store is empty after seeding; check the seed source")
				return nil
			}
			color.Green("Roster holds %d users", count)
			return nil
		},
	}

	cmd.Flags().StringVar(&file, "file", "", "seed from a local JSON file")
	cmd.Flags().StringVar(&url, "url", "", "seed from an HTTP JSON endpoint")
	cmd.Flags().BoolVar(&force, "force", false, "clear existing rows before seeding")
	cmd.Flags().IntVar(&fixtures, "fixtures", 0, "generate N synthetic users instead of reading a source")

	return cmd
}
