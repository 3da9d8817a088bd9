package tui

import (
	"time"

	"notecal/internal/logs"
	"notecal/internal/notes"
	"notecal/internal/tui/messages"
	"notecal/internal/tui/month"
	"notecal/internal/tui/shared"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// toastDuration is how long a toast stays on screen.
const toastDuration = 4 * time.Second

// AppModel is the root model: the month view plus help, toast and status bar.
type AppModel struct {
	store     *notes.Store
	monthView month.Model
	toast     toast
	showHelp  bool
	width     int
	height    int
	ready     bool
}

// NewAppModel creates the root application model
func NewAppModel(store *notes.Store, opts month.Options) AppModel {
	return AppModel{
		store:     store,
		monthView: month.New(store, opts),
	}
}

func (m AppModel) Init() tea.Cmd {
	return nil
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.ready = true
		contentHeight := msg.Height - 3 // Reserve space for status bar
		m.monthView.SetSize(msg.Width, contentHeight)
		return m, nil

	case messages.ToastMsg:
		m.toast = m.toast.show(msg)
		id := m.toast.id
		return m, tea.Tick(toastDuration, func(time.Time) tea.Msg {
			return messages.ClearToastMsg{ID: id}
		})

	case messages.ClearToastMsg:
		m.toast = m.toast.clear(msg.ID)
		return m, nil

	case tea.KeyMsg:
		// Global keys: ctrl+c always quits
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}

		// Dismiss help overlay on any key
		if m.showHelp {
			m.showHelp = false
			return m, nil
		}

		if !m.monthView.CapturingInput() {
			switch msg.String() {
			case "q":
				return m, tea.Quit
			case "?":
				m.showHelp = true
				return m, nil
			}
		}
	}

	var cmd tea.Cmd
	m.monthView, cmd = m.monthView.Update(msg)
	return m, cmd
}

func (m AppModel) View() string {
	if !m.ready {
		return "Loading..."
	}

	if m.showHelp {
		return shared.RenderHelpPopup(helpSections, m.width, m.height)
	}

	content := m.monthView.View()

	statusText := m.monthView.HintText()
	if statusText == "" {
		statusText = "enter/click: open date | /: search | ?: help | q: quit"
	}
	statusLine := HelpStyle.Render(statusText)
	if m.toast.visible() {
		statusLine = m.toast.render()
	}

	statusBar := StatusBarStyle.Width(m.width).Render(statusLine)

	return lipgloss.JoinVertical(lipgloss.Left, content, statusBar)
}

var helpSections = []shared.HelpSection{
	{
		Title: "Calendar",
		Binds: []shared.HelpBind{
			{Key: "h / l", Desc: "Previous / next day"},
			{Key: "k / j", Desc: "Previous / next week"},
			{Key: "H / L", Desc: "Previous / next month"},
			{Key: "t", Desc: "Jump to today"},
			{Key: "enter / click", Desc: "Open notes for date"},
			{Key: "/", Desc: "Search notes"},
		},
	},
	{
		Title: "Editor",
		Binds: []shared.HelpBind{
			{Key: "enter", Desc: "Add note"},
			{Key: "tab", Desc: "Switch input / note list"},
			{Key: "d / x", Desc: "Remove selected note"},
			{Key: "esc", Desc: "Close editor"},
		},
	},
	{
		Title: "Global",
		Binds: []shared.HelpBind{
			{Key: "?", Desc: "Show this help"},
			{Key: "q", Desc: "Quit"},
			{Key: "ctrl+c", Desc: "Force quit"},
		},
	},
}

// Run starts the TUI and blocks until it exits.
func Run(store *notes.Store, opts month.Options) error {
	logs.Logger.Println("Starting app in TUI mode")
	p := tea.NewProgram(NewAppModel(store, opts), tea.WithAltScreen(), tea.WithMouseCellMotion())
	_, err := p.Run()
	return err
}
