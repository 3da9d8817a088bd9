package month

import (
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"notecal/internal/calendar"
	"notecal/internal/logs"
	"notecal/internal/notes"
	"notecal/internal/session"
	"notecal/internal/tui/messages"
)

// gridTop is the screen row of the first week row: title, blank line and
// weekday header come first.
const gridTop = 3

type focus int

const (
	focusInput focus = iota
	focusList
)

// Options configures a new Model.
type Options struct {
	Start    calendar.Month
	TrimRows bool
	Now      func() time.Time
}

// Model is the month calendar with its note editor and search overlay.
type Model struct {
	state    session.State
	store    *notes.Store
	grid     calendar.Grid
	cursor   time.Time
	input    textinput.Model
	focus    focus
	listIdx  int
	search   searchModel
	trimRows bool
	now      func() time.Time
	width    int
	height   int
}

// New creates a month view over store.
func New(store *notes.Store, opts Options) Model {
	now := opts.Now
	if now == nil {
		now = time.Now
	}

	ti := textinput.New()
	ti.Placeholder = "Enter event description"
	ti.CharLimit = 256
	ti.Prompt = ""

	today := now()
	state := session.New(today)
	cursor := today
	if opts.Start != (calendar.Month{}) && !opts.Start.Contains(today) {
		state = state.ShowMonth(opts.Start)
		cursor = opts.Start.First()
	}

	m := Model{
		state:    state,
		store:    store,
		cursor:   cursor,
		input:    ti,
		search:   newSearch(),
		trimRows: opts.TrimRows,
		now:      now,
		width:    80,
	}
	m.regrid()
	return m
}

func (m *Model) regrid() {
	m.grid = calendar.Generate(m.state.Month, m.now())
}

// State returns the current session state.
func (m Model) State() session.State {
	return m.state
}

// Cursor returns the date under the grid cursor.
func (m Model) Cursor() time.Time {
	return m.cursor
}

// Grid returns the grid currently displayed.
func (m Model) Grid() calendar.Grid {
	return m.grid
}

// CapturingInput reports whether keys go to a text field.
func (m Model) CapturingInput() bool {
	return m.search.active || m.state.Mode() == session.Editing
}

// HintText returns hint text for the current state
func (m Model) HintText() string {
	switch {
	case m.search.active:
		return "type to search  ↑/↓:navigate  enter:open  esc:cancel"
	case m.state.Mode() == session.Editing && m.focus == focusList:
		return "j/k:navigate  d:remove  tab/i:input  esc:close"
	case m.state.Mode() == session.Editing:
		return "enter:add  tab:notes  esc:close"
	}
	return ""
}

// SetSize updates the view dimensions
func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
	m.input.Width = max(10, width-12)
	m.search.input.Width = max(10, width-14)
}

// Init implements tea.Model
func (m Model) Init() tea.Cmd {
	return nil
}

// Update handles keys, clicks and date selection requests
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case messages.SelectDateMsg:
		m, cmd := m.selectDate(msg.Date)
		if msg.Index < m.store.Count(m.state.Selected) {
			m.listIdx = msg.Index
		}
		return m, cmd

	case tea.MouseMsg:
		if m.search.active {
			return m, nil
		}
		return m.updateMouse(msg)

	case tea.KeyMsg:
		if m.search.active {
			return m.updateSearch(msg)
		}
		if m.state.Mode() == session.Editing {
			return m.updateEditor(msg)
		}
		return m.updateCalendar(msg)
	}

	// Cursor blink and other input housekeeping
	var cmd tea.Cmd
	switch {
	case m.search.active:
		m.search.input, cmd = m.search.input.Update(msg)
	case m.state.Mode() == session.Editing && m.focus == focusInput:
		m.input, cmd = m.input.Update(msg)
	}
	return m, cmd
}

func (m Model) updateCalendar(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch msg.String() {
	case "h", "left":
		m.moveCursor(-1)
	case "l", "right":
		m.moveCursor(1)
	case "k", "up":
		m.moveCursor(-7)
	case "j", "down":
		m.moveCursor(7)
	case "H", "<", "pgup":
		m.state = m.state.PrevMonth()
		m.regrid()
		m.cursorToDay(1)
	case "L", ">", "pgdown":
		m.state = m.state.NextMonth()
		m.regrid()
		m.cursorToDay(1)
	case "t":
		m.state = m.state.Today(m.now())
		m.regrid()
		if cell, ok := m.grid.Today(); ok {
			m.cursor = cell.Date
		}
	case "enter", " ":
		return m.selectDate(m.cursor)
	case "/":
		return m.openSearch()
	}
	return m, nil
}

func (m *Model) moveCursor(days int) {
	m.cursor = m.cursor.AddDate(0, 0, days)
	if !m.state.Month.Contains(m.cursor) {
		m.state = m.state.ShowMonth(calendar.MonthOf(m.cursor))
		m.regrid()
	}
}

// cursorToDay moves the cursor to the given day of the displayed month.
func (m *Model) cursorToDay(day int) {
	row, col, ok := m.grid.Locate(day)
	if !ok {
		return
	}
	if cell, ok := m.grid.CellAt(row, col); ok {
		m.cursor = cell.Date
	}
}

func (m Model) updateMouse(msg tea.MouseMsg) (Model, tea.Cmd) {
	if msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft {
		return m, nil
	}
	cell, ok := m.grid.CellAt(msg.Y-gridTop, msg.X/cellWidth)
	if !ok || cell.Blank {
		return m, nil
	}
	return m.selectDate(cell.Date)
}

// selectDate opens the editor on date. Any uncommitted draft is dropped.
func (m Model) selectDate(date time.Time) (Model, tea.Cmd) {
	m.state = m.state.Select(date)
	m.cursor = m.state.Selected
	m.regrid()
	m.input.Reset()
	m.focus = focusInput
	m.listIdx = 0
	return m, m.input.Focus()
}

func (m Model) closeEditor() Model {
	m.state = m.state.Close()
	m.input.Reset()
	m.input.Blur()
	m.focus = focusInput
	m.listIdx = 0
	return m
}

func (m Model) addNote() (Model, tea.Cmd) {
	var err error
	m.state, err = session.Add(m.state, m.store)
	if m.state.Draft == "" {
		m.input.Reset()
	}
	if err != nil {
		logs.Logger.Printf("Error saving note: %v", err)
		return m, messages.Toast(messages.ToastError, "Could not save notes: "+err.Error())
	}
	return m, nil
}

func (m Model) removeNote() (Model, tea.Cmd) {
	if m.store.Count(m.state.Selected) == 0 {
		return m, nil
	}
	var err error
	m.state, err = session.Remove(m.state, m.store, m.listIdx)

	count := m.store.Count(m.state.Selected)
	if m.listIdx >= count {
		m.listIdx = max(0, count-1)
	}

	var cmds []tea.Cmd
	if count == 0 {
		m.focus = focusInput
		cmds = append(cmds, m.input.Focus())
	}
	if err != nil {
		logs.Logger.Printf("Error removing note: %v", err)
		cmds = append(cmds, messages.Toast(messages.ToastError, "Could not save notes: "+err.Error()))
	}
	return m, tea.Batch(cmds...)
}
