package cli

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/example/roster/internal/config"
	"github.com/example/roster/internal/db"
)

// InitCmd returns the init command
func InitCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "Create the roster database and config",
		Long: `Create the roster database at the configured path and apply the
current schema. Safe to run repeatedly; an existing database is
migrated forward, never recreated.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return fmt.Errorf("failed to load config: %w", err)
			}
			if err := config.Save(cfg); err != nil {
				return fmt.Errorf("failed to write config: %w", err)
			}

			database, err := db.Open(cfg.DBPath)
			if err != nil {
				return fmt.Errorf("failed to initialize database: %w", err)
			}
			defer database.Close()

			color.Green("Database ready at %s (schema v%d)", cfg.DBPath, db.SchemaVersion(database))
			return nil
		},
	}
}
