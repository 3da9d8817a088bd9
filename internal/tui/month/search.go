package month

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/muesli/reflow/truncate"
	"notecal/internal/notes"
	"notecal/internal/tui/messages"
)

// maxSearchResults caps the rendered result list.
const maxSearchResults = 8

type searchModel struct {
	active  bool
	input   textinput.Model
	results []notes.Match
	cursor  int
}

func newSearch() searchModel {
	ti := textinput.New()
	ti.Placeholder = "search notes"
	ti.CharLimit = 128
	ti.Prompt = ""
	return searchModel{input: ti}
}

func (m Model) openSearch() (Model, tea.Cmd) {
	m.search.active = true
	m.search.input.Reset()
	m.search.results = m.store.Search("")
	m.search.cursor = 0
	return m, m.search.input.Focus()
}

func (m Model) updateSearch(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.search.active = false
		m.search.input.Blur()
		return m, nil
	case "up", "ctrl+p", "ctrl+k":
		if m.search.cursor > 0 {
			m.search.cursor--
		}
		return m, nil
	case "down", "ctrl+n", "ctrl+j":
		if m.search.cursor < len(m.search.results)-1 {
			m.search.cursor++
		}
		return m, nil
	case "enter":
		if len(m.search.results) == 0 {
			return m, nil
		}
		match := m.search.results[m.search.cursor]
		m.search.active = false
		m.search.input.Blur()
		return m, messages.SelectDate(match.Date, match.Index)
	}

	var cmd tea.Cmd
	m.search.input, cmd = m.search.input.Update(msg)
	m.search.results = m.store.Search(m.search.input.Value())
	if m.search.cursor >= len(m.search.results) {
		m.search.cursor = max(0, len(m.search.results)-1)
	}
	return m, cmd
}

func (m Model) renderSearch() string {
	var sb strings.Builder
	sb.WriteString(searchLabelStyle.Render("Search: ") + m.search.input.View() + "\n\n")

	if len(m.search.results) == 0 {
		sb.WriteString(emptyStyle.Render("No matching events"))
		return editorFocusStyle.Width(max(20, m.width-4)).Render(sb.String())
	}

	// Keep the cursor inside the visible window
	start := 0
	if m.search.cursor >= maxSearchResults {
		start = m.search.cursor - maxSearchResults + 1
	}
	end := min(len(m.search.results), start+maxSearchResults)

	lineWidth := max(10, m.width-24)
	for i := start; i < end; i++ {
		match := m.search.results[i]
		date := searchDateStyle.Render(notes.Key(match.Date))
		text := truncate.StringWithTail(match.Text, uint(lineWidth), "…")
		if i == m.search.cursor {
			sb.WriteString(noteCursorStyle.Render(">") + " " + date + " " + noteSelectedStyle.Render(text))
		} else {
			sb.WriteString("  " + date + " " + text)
		}
		if i < end-1 {
			sb.WriteString("\n")
		}
	}
	return editorFocusStyle.Width(max(20, m.width-4)).Render(sb.String())
}
