package tui

import (
	"fmt"
	"strings"

	"github.com/example/roster/internal/models"
)

// View renders the browse screen: title, search line, filter bar,
// table, and status bar.
func (m Model) View() string {
	if m.phase == phaseInitializing {
		return m.styles.Loading.Render("Initializing roster...")
	}

	var b strings.Builder

	b.WriteString(m.styles.Title.Render("Roster"))
	b.WriteString("\n")
	b.WriteString(m.searchInput.View())
	b.WriteString("\n")
	b.WriteString(m.filterBar())
	b.WriteString("\n")
	b.WriteString(m.table.View())
	b.WriteString("\n")
	b.WriteString(m.statusBar())

	return b.String()
}

// filterBar shows the active status/age filters and sort, highlighting
// anything narrowing the view.
func (m Model) filterBar() string {
	segment := func(label, value string, active bool) string {
		text := fmt.Sprintf("%s: %s", label, value)
		if active {
			return m.styles.FilterOn.Render(text)
		}
		return m.styles.FilterBar.Render(text)
	}

	status := segment("status", string(m.query.StatusFilter), m.query.StatusFilter != models.StatusFilterAll)
	age := segment("age", string(m.query.AgeFilter), m.query.AgeFilter != models.AgeFilterAll)

	sortValue := "none"
	if m.query.SortField != models.SortFieldNone {
		sortValue = fmt.Sprintf("%s %s", m.query.SortField, m.query.SortOrder)
	}
	sort := segment("sort", sortValue, m.query.SortField != models.SortFieldNone)

	return strings.Join([]string{status, age, sort}, m.styles.FilterBar.Render("  |  "))
}

// statusBar shows counts, the load state, and the key help line.
func (m Model) statusBar() string {
	var parts []string

	parts = append(parts, fmt.Sprintf("%d/%d shown", len(m.displayed), len(m.workingSet)))
	if m.loadingMore {
		parts = append(parts, m.styles.Loading.Render("loading..."))
	} else if !m.hasMore {
		parts = append(parts, "all loaded")
	}

	help := m.styles.Help.Render("/ search  1/2/3 sort  f status  g age  r reset  q quit")
	return m.styles.StatusBar.Render(strings.Join(parts, "  ")) + "\n" + help
}
