package month

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/truncate"
)

func (m Model) updateEditor(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		return m.closeEditor(), nil
	case "tab", "shift+tab":
		if m.focus == focusInput && m.store.Count(m.state.Selected) > 0 {
			m.focus = focusList
			m.input.Blur()
			return m, nil
		}
		m.focus = focusInput
		return m, m.input.Focus()
	}

	if m.focus == focusList {
		return m.updateList(msg)
	}

	if msg.String() == "enter" {
		return m.addNote()
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	m.state = m.state.SetDraft(m.input.Value())
	return m, cmd
}

func (m Model) updateList(msg tea.KeyMsg) (Model, tea.Cmd) {
	count := m.store.Count(m.state.Selected)
	switch msg.String() {
	case "j", "down":
		if m.listIdx < count-1 {
			m.listIdx++
		}
	case "k", "up":
		if m.listIdx > 0 {
			m.listIdx--
		}
	case "d", "x", "delete", "backspace":
		return m.removeNote()
	case "i", "a", "enter":
		m.focus = focusInput
		return m, m.input.Focus()
	}
	return m, nil
}

func (m Model) renderEditor() string {
	var sb strings.Builder

	title := editorTitleStyle.Render("Add Events")
	date := editorDateStyle.Render(m.state.Selected.Format("Mon Jan 02 2006"))
	sb.WriteString(title + "  " + date + "\n\n")

	list := m.store.Notes(m.state.Selected)
	if len(list) == 0 {
		sb.WriteString(emptyStyle.Render("No events set for this date"))
		sb.WriteString("\n")
	}

	lineWidth := max(10, m.width-16)
	for i, note := range list {
		selected := m.focus == focusList && i == m.listIdx
		text := truncate.StringWithTail(note, uint(lineWidth), "…")
		index := noteIndexStyle.Render(fmt.Sprintf("%2d.", i+1))
		if selected {
			sb.WriteString(noteCursorStyle.Render(">") + " " + index + " " + noteSelectedStyle.Render(text))
			sb.WriteString("  " + removeHintStyle.Render("[d] remove"))
		} else {
			sb.WriteString("  " + index + " " + text)
		}
		sb.WriteString("\n")
	}

	sb.WriteString("\n")
	sb.WriteString(inputPromptStyle.Render("New: ") + m.input.View())

	box := editorBoxStyle
	if m.focus == focusInput {
		box = editorFocusStyle
	}
	return box.Width(max(20, m.width-4)).Render(sb.String())
}

func (m Model) renderIdleDetail() string {
	header := editorDateStyle.Render(fmt.Sprintf(" %s", m.cursor.Format("Mon, Jan 2")))
	count := m.store.Count(m.cursor)
	var status string
	switch count {
	case 0:
		status = emptyStyle.Render("No events")
	case 1:
		status = navHintStyle.Render("(1 event)")
	default:
		status = navHintStyle.Render(fmt.Sprintf("(%d events)", count))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, header, "  ", status, "  ", navHintStyle.Render("[enter: open]"))
}
