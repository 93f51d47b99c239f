package cli

import (
	"context"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/example/roster/internal/clock"
	"github.com/example/roster/internal/core/query"
	"github.com/example/roster/internal/core/render"
	"github.com/example/roster/internal/models"
	"github.com/example/roster/internal/wire"
)

// ListCmd returns the list command
func ListCmd() *cobra.Command {
	var (
		search    string
		status    string
		age       string
		sortField string
		sortOrder string
		limit     int
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List roster entries",
		Long: `List roster entries with optional search, filters, and sort.

The same filter/sort pipeline backs the interactive browser; list runs
it once over the full roster and prints the result.

Examples:
  roster list
  roster list --search john
  roster list --status active --age over18
  roster list --sort lastName --order desc --limit 20`,
		RunE: func(cmd *cobra.Command, args []string) error {
			state, err := buildQueryState(search, status, age, sortField, sortOrder)
			if err != nil {
				return err
			}

			app, err := wire.New()
			if err != nil {
				return fmt.Errorf("failed to start: %w", err)
			}
			defer app.Close()

			ctx := context.Background()
			app.Roster.Initialize(ctx)

			users := loadAll(ctx, app)
			users = query.Apply(users, state, clock.Real().Now())
			if limit > 0 && len(users) > limit {
				users = users[:limit]
			}

			if len(users) == 0 {
				fmt.Println("No matching roster entries.")
				return nil
			}

			printUsers(users, state.SearchText)
			return nil
		},
	}

	cmd.Flags().StringVar(&search, "search", "", "substring to search names, phone, and birth date")
	cmd.Flags().StringVar(&status, "status", "all", "status filter: all, active, inactive")
	cmd.Flags().StringVar(&age, "age", "all", "age filter: all, under18, over18")
	cmd.Flags().StringVar(&sortField, "sort", "", "sort field: firstName, lastName, dateOfBirth")
	cmd.Flags().StringVar(&sortOrder, "order", "asc", "sort order: asc, desc")
	cmd.Flags().IntVar(&limit, "limit", 0, "maximum entries to print (0 = all)")

	return cmd
}

// loadAll pages through the store the same way the browser does, just
// without stopping between pages.
func loadAll(ctx context.Context, app *wire.App) []models.User {
	var users []models.User
	offset := 0
	for {
		page := app.Roster.GetPage(ctx, offset, app.Config.PageSize)
		if len(page) == 0 {
			return users
		}
		users = append(users, page...)
		offset += len(page)
	}
}

func printUsers(users []models.User, searchText string) {
	highlight := color.New(color.FgYellow, color.Bold).SprintFunc()
	mark := func(s string) string { return highlight(s) }

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "FIRST NAME\tLAST NAME\tDATE OF BIRTH\tPHONE\tSTATUS")
	for _, user := range users {
		status := "inactive"
		if user.Active {
			status = color.GreenString("active")
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n",
			render.Highlight(user.FirstName, searchText, mark),
			render.Highlight(user.LastName, searchText, mark),
			render.Highlight(render.FormatDate(user.DateOfBirth), searchText, mark),
			render.Highlight(user.PhoneNumber, searchText, mark),
			status,
		)
	}
	w.Flush()
}

// buildQueryState validates the flag values into a QueryState.
func buildQueryState(search, status, age, sortField, sortOrder string) (models.QueryState, error) {
	state := models.DefaultQueryState()
	state.SearchText = search

	switch models.StatusFilter(status) {
	case models.StatusFilterAll, models.StatusFilterActive, models.StatusFilterInactive:
		state.StatusFilter = models.StatusFilter(status)
	default:
		return state, fmt.Errorf("invalid --status %q (want all, active, or inactive)", status)
	}

	switch models.AgeFilter(age) {
	case models.AgeFilterAll, models.AgeFilterUnder18, models.AgeFilterOver18:
		state.AgeFilter = models.AgeFilter(age)
	default:
		return state, fmt.Errorf("invalid --age %q (want all, under18, or over18)", age)
	}

	if sortField != "" {
		switch models.SortField(sortField) {
		case models.SortFieldFirstName, models.SortFieldLastName, models.SortFieldDateOfBirth:
			state.SortField = models.SortField(sortField)
		default:
			return state, fmt.Errorf("invalid --sort %q (want firstName, lastName, or dateOfBirth)", sortField)
		}

		switch models.SortOrder(sortOrder) {
		case models.SortOrderAsc, models.SortOrderDesc:
			state.SortOrder = models.SortOrder(sortOrder)
		default:
			return state, fmt.Errorf("invalid --order %q (want asc or desc)", sortOrder)
		}
	}

	return state, nil
}
