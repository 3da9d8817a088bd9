// Package session holds the calendar's UI state as a plain value and the
// transitions between its two modes. Transitions never mutate the receiver.
package session

import (
	"time"

	"notecal/internal/calendar"
)

// Mode is the editor mode.
type Mode int

const (
	// Idle: no date selected, editor hidden.
	Idle Mode = iota
	// Editing: a date is selected and its notes are shown.
	Editing
)

// NoteWriter is the part of the note store that transitions mutate.
type NoteWriter interface {
	Add(date time.Time, text string) (bool, error)
	Remove(date time.Time, index int) (bool, error)
}

// State is the whole UI state: the displayed month, the selection and the
// uncommitted draft.
type State struct {
	Month        calendar.Month
	Selected     time.Time
	HasSelection bool
	Draft        string
}

// New returns an idle state showing now's month.
func New(now time.Time) State {
	return State{Month: calendar.MonthOf(now)}
}

// Mode derives the editor mode from the selection.
func (s State) Mode() Mode {
	if s.HasSelection {
		return Editing
	}
	return Idle
}

func (s State) PrevMonth() State {
	s.Month = s.Month.Prev()
	return s
}

func (s State) NextMonth() State {
	s.Month = s.Month.Next()
	return s
}

// ShowMonth displays m without touching the selection.
func (s State) ShowMonth(m calendar.Month) State {
	s.Month = m
	return s
}

// Today jumps the displayed month to now's month.
func (s State) Today(now time.Time) State {
	s.Month = calendar.MonthOf(now)
	return s
}

// Select opens the editor on date, discarding any draft. The displayed month
// follows the date.
func (s State) Select(date time.Time) State {
	s.Selected = time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, time.Local)
	s.HasSelection = true
	s.Draft = ""
	s.Month = calendar.MonthOf(date)
	return s
}

func (s State) SetDraft(text string) State {
	s.Draft = text
	return s
}

// Close returns to Idle, clearing selection and draft.
func (s State) Close() State {
	s.Selected = time.Time{}
	s.HasSelection = false
	s.Draft = ""
	return s
}

// Add commits the draft to the selected date. Blank drafts and the Idle mode
// leave the state unchanged. On a write error the note is still in memory,
// so the draft is cleared and the error returned.
func Add(s State, w NoteWriter) (State, error) {
	if !s.HasSelection {
		return s, nil
	}
	added, err := w.Add(s.Selected, s.Draft)
	if added {
		s.Draft = ""
	}
	return s, err
}

// Remove deletes the note at index on the selected date.
func Remove(s State, w NoteWriter, index int) (State, error) {
	if !s.HasSelection {
		return s, nil
	}
	_, err := w.Remove(s.Selected, index)
	return s, err
}
