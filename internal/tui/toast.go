package tui

import (
	"notecal/internal/tui/messages"
	"notecal/internal/tui/theme"
)

var (
	toastInfoStyle  = theme.Ok
	toastErrorStyle = theme.Error
)

// toast is a transient status-bar message. Each show bumps id so a stale
// clear tick cannot hide a newer toast.
type toast struct {
	id    int
	text  string
	level messages.ToastLevel
}

func (t toast) show(msg messages.ToastMsg) toast {
	return toast{id: t.id + 1, text: msg.Text, level: msg.Level}
}

func (t toast) clear(id int) toast {
	if id != t.id {
		return t
	}
	t.text = ""
	return t
}

func (t toast) visible() bool {
	return t.text != ""
}

func (t toast) render() string {
	if t.level == messages.ToastError {
		return toastErrorStyle.Render(t.text)
	}
	return toastInfoStyle.Render(t.text)
}
