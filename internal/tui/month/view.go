package month

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"notecal/internal/calendar"
	"notecal/internal/session"
)

// View renders the month view
func (m Model) View() string {
	var sb strings.Builder

	// Title line
	title := calMonthTitleStyle.Render(fmt.Sprintf(" %s", m.state.Month))
	nav := navHintStyle.Render("[H/L: prev/next] [t: today] [/: search]")

	titleLine := title
	padding := m.width - lipgloss.Width(title) - lipgloss.Width(nav) - 1
	if padding > 0 {
		titleLine += strings.Repeat(" ", padding) + nav
	}
	sb.WriteString(titleLine)
	sb.WriteString("\n\n")

	// Calendar grid
	sb.WriteString(m.renderCalendar())
	sb.WriteString("\n")

	switch {
	case m.search.active:
		sb.WriteString(m.renderSearch())
	case m.state.Mode() == session.Editing:
		sb.WriteString(m.renderEditor())
	default:
		sb.WriteString(m.renderIdleDetail())
	}

	return sb.String()
}

func (m Model) renderCalendar() string {
	var sb strings.Builder

	for _, d := range m.grid.Header {
		sb.WriteString(calDayHeaderStyle.Render(d))
	}
	sb.WriteString("\n")

	rows := m.grid.Rows[:]
	if m.trimRows {
		rows = m.grid.Trimmed()
	}

	for _, row := range rows {
		for _, cell := range row {
			sb.WriteString(m.renderCell(cell))
		}
		sb.WriteString("\n")
	}

	return sb.String()
}

func (m Model) renderCell(cell calendar.DayCell) string {
	if cell.Blank {
		return calEmptyStyle.Render("")
	}

	count := m.store.Count(cell.Date)
	dayStr := fmt.Sprintf("%2d", cell.Day)
	if count > 0 {
		dayStr = fmt.Sprintf("%2d*", cell.Day)
	}

	switch {
	case m.state.HasSelection && calendar.SameDay(cell.Date, m.state.Selected):
		return calSelectedStyle.Render(dayStr)
	case calendar.SameDay(cell.Date, m.cursor):
		return calCursorStyle.Render(dayStr)
	case cell.IsToday:
		return calTodayStyle.Render(dayStr)
	case count > 0:
		return calHasItemsStyle.Render(dayStr)
	default:
		return calDayStyle.Render(dayStr)
	}
}
