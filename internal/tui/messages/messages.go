package messages

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// ToastLevel sets the colour of a toast.
type ToastLevel int

const (
	ToastInfo ToastLevel = iota
	ToastError
)

// ToastMsg asks the root model to flash a transient message.
type ToastMsg struct {
	Text  string
	Level ToastLevel
}

// ClearToastMsg expires the toast with the matching ID.
type ClearToastMsg struct {
	ID int
}

// SelectDateMsg asks the month view to open the editor on a date, with the
// note at Index highlighted.
type SelectDateMsg struct {
	Date  time.Time
	Index int
}

// Toast returns a command that emits a ToastMsg.
func Toast(level ToastLevel, text string) tea.Cmd {
	return func() tea.Msg {
		return ToastMsg{Text: text, Level: level}
	}
}

// SelectDate returns a command that emits a SelectDateMsg.
func SelectDate(date time.Time, index int) tea.Cmd {
	return func() tea.Msg {
		return SelectDateMsg{Date: date, Index: index}
	}
}
