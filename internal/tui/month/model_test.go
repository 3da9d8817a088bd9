package month

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"notecal/internal/calendar"
	"notecal/internal/notes"
	"notecal/internal/session"
	"notecal/internal/tui/messages"
)

func fixedNow() time.Time {
	return time.Date(2024, time.March, 10, 9, 0, 0, 0, time.Local)
}

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.Local)
}

func newTestModel(t *testing.T) (Model, *notes.Store, *notes.MemoryStorage) {
	t.Helper()
	storage := notes.NewMemoryStorage()
	store, err := notes.Open(storage, "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	m := New(store, Options{Now: fixedNow})
	m.SetSize(80, 30)
	return m, store, storage
}

func key(s string) tea.KeyMsg {
	switch s {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func send(m Model, msgs ...tea.Msg) Model {
	for _, msg := range msgs {
		m, _ = m.Update(msg)
	}
	return m
}

func typeText(m Model, text string) Model {
	for _, r := range text {
		m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
	return m
}

func TestNew_StartsOnToday(t *testing.T) {
	m, _, _ := newTestModel(t)
	if m.State().Month != (calendar.Month{Year: 2024, Month: time.March}) {
		t.Errorf("unexpected month %s", m.State().Month)
	}
	if !calendar.SameDay(m.Cursor(), fixedNow()) {
		t.Errorf("unexpected cursor %v", m.Cursor())
	}
	if m.State().Mode() != session.Idle {
		t.Error("expected idle")
	}
}

func TestNew_StartMonth(t *testing.T) {
	store, _ := notes.Open(notes.NewMemoryStorage(), "")
	m := New(store, Options{Start: calendar.Month{Year: 2023, Month: time.July}, Now: fixedNow})
	if m.State().Month != (calendar.Month{Year: 2023, Month: time.July}) {
		t.Errorf("unexpected month %s", m.State().Month)
	}
	if !calendar.SameDay(m.Cursor(), date(2023, time.July, 1)) {
		t.Errorf("expected cursor on first of month, got %v", m.Cursor())
	}
}

func TestCalendarNavigation(t *testing.T) {
	m, _, _ := newTestModel(t)

	m = send(m, key("l"), key("j"))
	if !calendar.SameDay(m.Cursor(), date(2024, time.March, 18)) {
		t.Errorf("expected March 18, got %v", m.Cursor())
	}

	m = send(m, key("L"))
	if m.State().Month != (calendar.Month{Year: 2024, Month: time.April}) {
		t.Errorf("expected April, got %s", m.State().Month)
	}
	if !m.Cursor().Equal(date(2024, time.April, 1)) {
		t.Errorf("expected cursor on April 1, got %v", m.Cursor())
	}

	m = send(m, key("H"), key("H"))
	if m.State().Month != (calendar.Month{Year: 2024, Month: time.February}) {
		t.Errorf("expected February, got %s", m.State().Month)
	}

	// Moving the cursor off the month follows it
	m = send(m, key("h"))
	if m.State().Month != (calendar.Month{Year: 2024, Month: time.January}) {
		t.Errorf("expected January, got %s", m.State().Month)
	}

	m = send(m, key("t"))
	if m.State().Month != (calendar.Month{Year: 2024, Month: time.March}) {
		t.Errorf("expected March after today, got %s", m.State().Month)
	}
	if !m.Cursor().Equal(date(2024, time.March, 10)) {
		t.Errorf("expected cursor on today's cell, got %v", m.Cursor())
	}
}

func TestEditor_AddAndClose(t *testing.T) {
	m, store, storage := newTestModel(t)

	m = send(m, key("enter"))
	if m.State().Mode() != session.Editing {
		t.Fatal("expected editing after enter")
	}
	if !m.CapturingInput() {
		t.Error("expected editor to capture input")
	}

	m = typeText(m, "dentist")
	if m.State().Draft != "dentist" {
		t.Errorf("expected draft to follow input, got %q", m.State().Draft)
	}
	m = send(m, key("enter"))

	day := fixedNow()
	if got := store.Notes(day); len(got) != 1 || got[0] != "dentist" {
		t.Fatalf("unexpected notes %v", got)
	}
	if m.State().Draft != "" {
		t.Errorf("expected draft cleared, got %q", m.State().Draft)
	}
	if _, err := storage.Read(notes.DefaultKey); err != nil {
		t.Errorf("expected persisted payload: %v", err)
	}

	m = send(m, key("esc"))
	if m.State().Mode() != session.Idle {
		t.Error("expected idle after esc")
	}
}

func TestEditor_BlankDraftIgnored(t *testing.T) {
	m, store, _ := newTestModel(t)
	m = send(m, key("enter"))
	m = typeText(m, "   ")
	m = send(m, key("enter"))

	if store.Has(fixedNow()) {
		t.Error("expected blank note to be ignored")
	}
	if m.State().Mode() != session.Editing {
		t.Error("expected to stay in editing")
	}
}

func TestEditor_Remove(t *testing.T) {
	m, store, _ := newTestModel(t)
	day := fixedNow()
	store.Add(day, "first")
	store.Add(day, "second")

	m = send(m, key("enter"), key("tab"), key("down"), key("d"))
	if got := store.Notes(day); len(got) != 1 || got[0] != "first" {
		t.Fatalf("unexpected notes after removal %v", got)
	}

	m = send(m, key("d"))
	if store.Has(day) {
		t.Error("expected all notes removed")
	}
	if m.focus != focusInput {
		t.Error("expected focus back on input once the list is empty")
	}

	// No list to remove from: tab stays on input and d is typed
	m = send(m, key("tab"), key("d"))
	if m.State().Draft != "d" {
		t.Errorf("expected d typed into draft, got %q", m.State().Draft)
	}
}

func TestSelectDiscardsDraft(t *testing.T) {
	m, _, _ := newTestModel(t)
	m = send(m, key("enter"))
	m = typeText(m, "unsaved")

	m = send(m, messages.SelectDateMsg{Date: date(2024, time.March, 20)})
	if m.State().Draft != "" {
		t.Errorf("expected draft discarded, got %q", m.State().Draft)
	}
	if !calendar.SameDay(m.State().Selected, date(2024, time.March, 20)) {
		t.Errorf("unexpected selection %v", m.State().Selected)
	}
}

func TestMouseClickSelectsDay(t *testing.T) {
	m, _, _ := newTestModel(t)

	// March 2024: day 17 sits in row 3, Sunday column
	m = send(m, tea.MouseMsg{X: 2, Y: gridTop + 3, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	if m.State().Mode() != session.Editing {
		t.Fatal("expected click to open the editor")
	}
	if !calendar.SameDay(m.State().Selected, date(2024, time.March, 17)) {
		t.Errorf("expected March 17, got %v", m.State().Selected)
	}
}

func TestMouseClickBlankCellIgnored(t *testing.T) {
	m, _, _ := newTestModel(t)

	// Row 0, Sunday is blank in March 2024
	m = send(m, tea.MouseMsg{X: 1, Y: gridTop, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	if m.State().Mode() != session.Idle {
		t.Error("expected click on blank cell to be ignored")
	}

	m = send(m, tea.MouseMsg{X: 1, Y: 0, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	if m.State().Mode() != session.Idle {
		t.Error("expected click on title to be ignored")
	}
}

func TestSearchJumpsToDate(t *testing.T) {
	m, store, _ := newTestModel(t)
	store.Add(date(2024, time.May, 4), "concert tickets")
	store.Add(date(2024, time.March, 2), "groceries")

	m = send(m, key("/"))
	if !m.CapturingInput() {
		t.Fatal("expected search to capture input")
	}
	m = typeText(m, "concert")
	m, cmd := m.Update(key("enter"))
	if m.CapturingInput() {
		t.Error("expected search closed after enter")
	}
	if cmd == nil {
		t.Fatal("expected a select-date command")
	}
	msg, ok := cmd().(messages.SelectDateMsg)
	if !ok {
		t.Fatalf("expected SelectDateMsg, got %T", msg)
	}
	m = send(m, msg)

	if m.State().Mode() != session.Editing {
		t.Fatal("expected editor open after search")
	}
	if !calendar.SameDay(m.State().Selected, date(2024, time.May, 4)) {
		t.Errorf("expected May 4, got %v", m.State().Selected)
	}
	if m.State().Month != (calendar.Month{Year: 2024, Month: time.May}) {
		t.Errorf("expected May displayed, got %s", m.State().Month)
	}
}

func TestSelectDateMsg_HighlightsIndex(t *testing.T) {
	m, store, _ := newTestModel(t)
	d := date(2024, time.March, 12)
	store.Add(d, "first")
	store.Add(d, "second")

	m = send(m, messages.SelectDateMsg{Date: d, Index: 1})
	if m.listIdx != 1 {
		t.Errorf("expected list index 1, got %d", m.listIdx)
	}

	m = send(m, messages.SelectDateMsg{Date: d, Index: 5})
	if m.listIdx != 0 {
		t.Errorf("expected out-of-range index to reset to 0, got %d", m.listIdx)
	}
}

func TestView(t *testing.T) {
	m, store, _ := newTestModel(t)
	store.Add(date(2024, time.March, 12), "standup")

	view := m.View()
	for _, want := range []string{"March 2024", "Sun", "Sat", "12*", "No events"} {
		if !strings.Contains(view, want) {
			t.Errorf("expected view to contain %q", want)
		}
	}

	m = send(m, messages.SelectDateMsg{Date: date(2024, time.March, 12)})
	view = m.View()
	for _, want := range []string{"Add Events", "Tue Mar 12 2024", "standup"} {
		if !strings.Contains(view, want) {
			t.Errorf("expected editor view to contain %q", want)
		}
	}

	m = send(m, messages.SelectDateMsg{Date: date(2024, time.March, 13)})
	if !strings.Contains(m.View(), "No events set for this date") {
		t.Error("expected empty editor message")
	}
}

func TestView_TrimRows(t *testing.T) {
	store, _ := notes.Open(notes.NewMemoryStorage(), "")
	feb := calendar.Month{Year: 2015, Month: time.February}

	full := New(store, Options{Start: feb, Now: fixedNow})
	trimmed := New(store, Options{Start: feb, Now: fixedNow, TrimRows: true})

	fullLines := strings.Count(full.renderCalendar(), "\n")
	trimmedLines := strings.Count(trimmed.renderCalendar(), "\n")
	if fullLines != 7 {
		t.Errorf("expected header plus 6 rows, got %d lines", fullLines)
	}
	if trimmedLines != 5 {
		t.Errorf("expected header plus 4 rows, got %d lines", trimmedLines)
	}
}
