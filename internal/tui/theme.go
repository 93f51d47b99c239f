package tui

import "github.com/charmbracelet/lipgloss"

// Styles groups the lipgloss styles used by the browse view.
type Styles struct {
	Title     lipgloss.Style
	FilterBar lipgloss.Style
	FilterOn  lipgloss.Style
	StatusBar lipgloss.Style
	Loading   lipgloss.Style
	Help      lipgloss.Style
}

// DefaultStyles returns the roster color scheme.
func DefaultStyles() Styles {
	return Styles{
		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("205")).
			Padding(0, 1),
		FilterBar: lipgloss.NewStyle().
			Foreground(lipgloss.Color("244")),
		FilterOn: lipgloss.NewStyle().
			Foreground(lipgloss.Color("212")).
			Bold(true),
		StatusBar: lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")),
		Loading: lipgloss.NewStyle().
			Foreground(lipgloss.Color("214")),
		Help: lipgloss.NewStyle().
			Foreground(lipgloss.Color("240")),
	}
}
