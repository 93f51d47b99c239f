package cli

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/example/roster/internal/clock"
	"github.com/example/roster/internal/tui"
	"github.com/example/roster/internal/wire"
)

// BrowseCmd returns the browse command
func BrowseCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "browse",
		Short: "Browse the roster interactively",
		Long: `Open the interactive roster browser.

Search, filter, and sort the roster; scrolling near the bottom loads
further pages from the local store.

Keys:
  /      search (enter/esc to leave the input)
  1/2/3  cycle sort on first name / last name / birth date
  f      cycle the status filter (all, active, inactive)
  g      cycle the age filter (all, under 18, 18 and over)
  r      reset search, filters, and sort
  q      quit`,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := wire.New()
			if err != nil {
				return fmt.Errorf("failed to start: %w", err)
			}
			defer app.Close()

			model := tui.New(app.Roster, clock.Real(), app.Config.PageSize)
			program := tea.NewProgram(model, tea.WithAltScreen())
			if _, err := program.Run(); err != nil {
				return fmt.Errorf("browser failed: %w", err)
			}
			return nil
		},
	}
}
