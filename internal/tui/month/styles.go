package month

import (
	"github.com/charmbracelet/lipgloss"
	"notecal/internal/tui/theme"
)

// cellWidth is the rendered width of one grid column.
const cellWidth = 5

// -- grid styles --
var (
	calDayHeaderStyle  = lipgloss.NewStyle().Bold(true).Foreground(theme.TextMuted).Width(cellWidth).Align(lipgloss.Center)
	calDayStyle        = lipgloss.NewStyle().Width(cellWidth).Align(lipgloss.Center)
	calTodayStyle      = lipgloss.NewStyle().Width(cellWidth).Align(lipgloss.Center).Bold(true).Foreground(theme.Success)
	calCursorStyle     = lipgloss.NewStyle().Width(cellWidth).Align(lipgloss.Center).Bold(true).Foreground(theme.TextBright).Background(theme.Primary)
	calSelectedStyle   = lipgloss.NewStyle().Width(cellWidth).Align(lipgloss.Center).Bold(true).Foreground(theme.TextBright).Background(theme.Accent)
	calHasItemsStyle   = lipgloss.NewStyle().Width(cellWidth).Align(lipgloss.Center).Foreground(theme.Warning)
	calEmptyStyle      = lipgloss.NewStyle().Width(cellWidth).Align(lipgloss.Center).Foreground(theme.TextMuted)
	calMonthTitleStyle = theme.Title
	navHintStyle       = theme.HelpHint
)

// -- editor styles --
var (
	editorTitleStyle  = theme.ModalTitle
	editorDateStyle   = theme.Subtitle
	editorBoxStyle    = theme.ModalBox
	editorFocusStyle  = theme.ModalBoxFocused
	emptyStyle        = lipgloss.NewStyle().Foreground(theme.TextMuted).Italic(true)
	noteCursorStyle   = lipgloss.NewStyle().Foreground(theme.Primary).Bold(true)
	noteSelectedStyle = lipgloss.NewStyle().Bold(true).Foreground(theme.TextBright).Background(theme.Primary)
	noteIndexStyle    = theme.Muted
	removeHintStyle   = lipgloss.NewStyle().Foreground(theme.Danger)
	inputPromptStyle  = lipgloss.NewStyle().Foreground(theme.Secondary)
)

// -- search styles --
var (
	searchLabelStyle = lipgloss.NewStyle().Foreground(theme.Secondary).Bold(true)
	searchDateStyle  = lipgloss.NewStyle().Foreground(theme.Accent)
)
