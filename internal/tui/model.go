// Package tui implements the interactive roster browser: a bubbletea
// model owning the in-memory working set and the current query state.
//
// The bubbletea update loop is the concurrency model: all state lives
// in the Model and is only ever mutated inside Update, so a pipeline
// re-run always sees the working set exactly as it stood when the
// triggering event was applied. Page loads run as commands off the
// loop; their results come back as messages.
package tui

import (
	"context"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/example/roster/internal/clock"
	"github.com/example/roster/internal/core/query"
	"github.com/example/roster/internal/core/render"
	"github.com/example/roster/internal/models"
	"github.com/example/roster/internal/ports/primary"
)

const (
	// searchDebounce is how long search input must settle before the
	// pipeline re-runs.
	searchDebounce = 300 * time.Millisecond

	// scrollDebounce coalesces bursts of cursor movement before the
	// proximity check runs.
	scrollDebounce = 100 * time.Millisecond

	// scrollThresholdRows triggers the next page load when the cursor
	// is within this many rows of the end of the displayed list.
	scrollThresholdRows = 10
)

// phase tracks initialization progress.
type phase int

const (
	phaseInitializing phase = iota
	phaseReady
)

// initDoneMsg signals that RosterService.Initialize completed (it never
// fails, so there is no error payload).
type initDoneMsg struct{}

// pageLoadedMsg delivers one page of users. Read failures are already
// masked to an empty page by the store, which the handler treats the
// same as end-of-data.
type pageLoadedMsg struct {
	users []models.User
}

// searchSettledMsg fires when the search debounce interval elapses.
// Stale sequences are discarded.
type searchSettledMsg struct {
	seq int
}

// scrollSettledMsg fires when the scroll debounce interval elapses.
type scrollSettledMsg struct {
	seq int
}

// Model is the browse view: working set, query state, pagination
// cursor, and the table/search widgets.
type Model struct {
	service primary.RosterService
	clock   clock.Clock
	keys    KeyMap
	styles  Styles

	phase      phase
	workingSet []models.User
	displayed  []models.User
	query      models.QueryState

	// Pagination cursor.
	pageSize    int
	offset      int
	hasMore     bool
	loadingMore bool

	// Debounce sequence counters. Bumping a counter invalidates every
	// tick already in flight for that input.
	searchSeq int
	scrollSeq int
	// lastApplied is the search text the pipeline last ran with; a
	// settled value equal to it is a no-op.
	lastApplied string

	table       table.Model
	searchInput textinput.Model
	width       int
	height      int
}

// New creates a browse model for the given service. The clock is
// injected so tests pin "now" for age filtering.
func New(service primary.RosterService, clk clock.Clock, pageSize int) Model {
	searchInput := textinput.New()
	searchInput.Placeholder = "name, phone, or birth date"
	searchInput.Prompt = "/ "
	searchInput.CharLimit = 64

	t := table.New(
		table.WithColumns(makeColumns(80)),
		table.WithFocused(true),
		table.WithHeight(20),
	)

	return Model{
		service:     service,
		clock:       clk,
		keys:        DefaultKeyMap(),
		styles:      DefaultStyles(),
		phase:       phaseInitializing,
		query:       models.DefaultQueryState(),
		pageSize:    pageSize,
		hasMore:     true,
		table:       t,
		searchInput: searchInput,
	}
}

// Init kicks off the one-time initialize; the first page load follows
// on initDoneMsg.
func (m Model) Init() tea.Cmd {
	service := m.service
	return func() tea.Msg {
		service.Initialize(context.Background())
		return initDoneMsg{}
	}
}

// Update is the single place model state changes.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.table.SetColumns(makeColumns(msg.Width))
		m.table.SetHeight(max(msg.Height-6, 3))
		return m, nil

	case initDoneMsg:
		m.phase = phaseReady
		return m.startLoad()

	case pageLoadedMsg:
		return m.handlePageLoaded(msg)

	case searchSettledMsg:
		if msg.seq != m.searchSeq {
			return m, nil
		}
		value := m.searchInput.Value()
		if value == m.lastApplied {
			return m, nil
		}
		m.lastApplied = value
		m.query.SearchText = value
		m.refresh()
		return m, nil

	case scrollSettledMsg:
		if msg.seq != m.scrollSeq {
			return m, nil
		}
		if m.nearBottom() {
			return m.startLoad()
		}
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m, nil
}

// handleKey routes keystrokes: to the search input while it has focus,
// otherwise to the filter/sort/navigation bindings.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.searchInput.Focused() {
		switch msg.String() {
		case "esc", "enter":
			m.searchInput.Blur()
			m.table.Focus()
			return m, nil
		case "ctrl+c":
			return m, tea.Quit
		}

		before := m.searchInput.Value()
		var cmd tea.Cmd
		m.searchInput, cmd = m.searchInput.Update(msg)
		if m.searchInput.Value() != before {
			m.searchSeq++
			return m, tea.Batch(cmd, m.searchTick(m.searchSeq))
		}
		return m, cmd
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Search):
		m.table.Blur()
		return m, m.searchInput.Focus()

	case key.Matches(msg, m.keys.SortFirst):
		m.query = query.NextSort(m.query, models.SortFieldFirstName)
		m.refresh()
		return m, nil

	case key.Matches(msg, m.keys.SortLast):
		m.query = query.NextSort(m.query, models.SortFieldLastName)
		m.refresh()
		return m, nil

	case key.Matches(msg, m.keys.SortDOB):
		m.query = query.NextSort(m.query, models.SortFieldDateOfBirth)
		m.refresh()
		return m, nil

	case key.Matches(msg, m.keys.CycleStatus):
		m.query.StatusFilter = nextStatusFilter(m.query.StatusFilter)
		m.refresh()
		return m, nil

	case key.Matches(msg, m.keys.CycleAge):
		m.query.AgeFilter = nextAgeFilter(m.query.AgeFilter)
		m.refresh()
		return m, nil

	case key.Matches(msg, m.keys.Reset):
		m.query = models.DefaultQueryState()
		m.lastApplied = ""
		m.searchSeq++
		m.searchInput.Reset()
		m.refresh()
		return m, nil
	}

	// Navigation goes to the table; movement near the bottom schedules
	// a debounced proximity check.
	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	if m.nearBottom() && m.hasMore && !m.loadingMore {
		m.scrollSeq++
		return m, tea.Batch(cmd, m.scrollTick(m.scrollSeq))
	}
	return m, cmd
}

// startLoad begins a page fetch unless one is already in flight or the
// store is exhausted.
func (m Model) startLoad() (Model, tea.Cmd) {
	if !m.hasMore || m.loadingMore {
		return m, nil
	}
	m.loadingMore = true

	service := m.service
	offset := m.offset
	limit := m.pageSize
	return m, func() tea.Msg {
		return pageLoadedMsg{users: service.GetPage(context.Background(), offset, limit)}
	}
}

// handlePageLoaded applies one completed page fetch. The loading flag
// clears on every path.
func (m Model) handlePageLoaded(msg pageLoadedMsg) (Model, tea.Cmd) {
	m.loadingMore = false

	if len(msg.users) == 0 {
		m.hasMore = false
		return m, nil
	}

	m.workingSet = append(m.workingSet, msg.users...)
	m.offset += len(msg.users)
	m.refresh()
	return m, nil
}

// refresh re-derives the displayed list from the working set and the
// current query state, and rebuilds the table rows.
func (m *Model) refresh() {
	m.displayed = query.Apply(m.workingSet, m.query, m.clock.Now())

	rows := make([]table.Row, len(m.displayed))
	for i, user := range m.displayed {
		status := "inactive"
		if user.Active {
			status = "active"
		}
		rows[i] = table.Row{
			user.FirstName,
			user.LastName,
			render.FormatDate(user.DateOfBirth),
			user.PhoneNumber,
			status,
		}
	}
	m.table.SetRows(rows)
	if m.table.Cursor() >= len(rows) && len(rows) > 0 {
		m.table.SetCursor(len(rows) - 1)
	}
}

// nearBottom reports whether the table cursor is within the proximity
// threshold of the end of the displayed list.
func (m Model) nearBottom() bool {
	if len(m.displayed) == 0 {
		return true
	}
	return len(m.displayed)-1-m.table.Cursor() <= scrollThresholdRows
}

func (m Model) searchTick(seq int) tea.Cmd {
	return tea.Tick(searchDebounce, func(time.Time) tea.Msg {
		return searchSettledMsg{seq: seq}
	})
}

func (m Model) scrollTick(seq int) tea.Cmd {
	return tea.Tick(scrollDebounce, func(time.Time) tea.Msg {
		return scrollSettledMsg{seq: seq}
	})
}

func nextStatusFilter(f models.StatusFilter) models.StatusFilter {
	switch f {
	case models.StatusFilterAll:
		return models.StatusFilterActive
	case models.StatusFilterActive:
		return models.StatusFilterInactive
	default:
		return models.StatusFilterAll
	}
}

func nextAgeFilter(f models.AgeFilter) models.AgeFilter {
	switch f {
	case models.AgeFilterAll:
		return models.AgeFilterUnder18
	case models.AgeFilterUnder18:
		return models.AgeFilterOver18
	default:
		return models.AgeFilterAll
	}
}

func makeColumns(width int) []table.Column {
	// Fixed-width columns except the phone number, which absorbs the
	// remaining space.
	phone := max(width-2-16-16-18-10, 12)
	return []table.Column{
		{Title: "First Name", Width: 16},
		{Title: "Last Name", Width: 16},
		{Title: "Date of Birth", Width: 18},
		{Title: "Phone", Width: phone},
		{Title: "Status", Width: 10},
	}
}
