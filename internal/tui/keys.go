package tui

import "github.com/charmbracelet/bubbles/key"

// KeyMap holds the key bindings for the browse view.
type KeyMap struct {
	Search      key.Binding
	SortFirst   key.Binding
	SortLast    key.Binding
	SortDOB     key.Binding
	CycleStatus key.Binding
	CycleAge    key.Binding
	Reset       key.Binding
	Quit        key.Binding
}

// DefaultKeyMap returns the standard bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Search: key.NewBinding(
			key.WithKeys("/"),
			key.WithHelp("/", "search"),
		),
		SortFirst: key.NewBinding(
			key.WithKeys("1"),
			key.WithHelp("1", "sort first name"),
		),
		SortLast: key.NewBinding(
			key.WithKeys("2"),
			key.WithHelp("2", "sort last name"),
		),
		SortDOB: key.NewBinding(
			key.WithKeys("3"),
			key.WithHelp("3", "sort birth date"),
		),
		CycleStatus: key.NewBinding(
			key.WithKeys("f"),
			key.WithHelp("f", "status filter"),
		),
		CycleAge: key.NewBinding(
			key.WithKeys("g"),
			key.WithHelp("g", "age filter"),
		),
		Reset: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "reset filters"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}
