package calendar

import (
	"fmt"
	"time"
)

// Month identifies a calendar month. It is always derived from a date and is
// never stored on its own.
type Month struct {
	Year  int
	Month time.Month
}

// MonthOf returns the month containing t.
func MonthOf(t time.Time) Month {
	return Month{Year: t.Year(), Month: t.Month()}
}

// ParseMonth parses a "2006-01" month string.
func ParseMonth(s string) (Month, error) {
	t, err := time.ParseInLocation("2006-01", s, time.Local)
	if err != nil {
		return Month{}, fmt.Errorf("invalid month %q, use yyyy-MM", s)
	}
	return MonthOf(t), nil
}

// First returns midnight on day 1 of the month in local time.
func (m Month) First() time.Time {
	return time.Date(m.Year, m.Month, 1, 0, 0, 0, 0, time.Local)
}

// Day returns midnight on the given day of the month.
func (m Month) Day(day int) time.Time {
	return time.Date(m.Year, m.Month, day, 0, 0, 0, 0, time.Local)
}

// Index returns the zero-based month index (January = 0).
func (m Month) Index() int {
	return int(m.Month) - 1
}

func (m Month) Prev() Month {
	return MonthOf(m.First().AddDate(0, -1, 0))
}

func (m Month) Next() Month {
	return MonthOf(m.First().AddDate(0, 1, 0))
}

// Contains reports whether t falls inside the month.
func (m Month) Contains(t time.Time) bool {
	return t.Year() == m.Year && t.Month() == m.Month
}

func (m Month) String() string {
	return m.First().Format("January 2006")
}

// DaysInMonth uses day 0 of the following month, which normalises to the
// last day of this one.
func DaysInMonth(m Month) int {
	return time.Date(m.Year, m.Month+1, 0, 0, 0, 0, 0, time.Local).Day()
}

// FirstWeekday returns the weekday of day 1, with Sunday = 0.
func FirstWeekday(m Month) int {
	return int(m.First().Weekday())
}

// SameDay reports whether two times share a calendar date.
func SameDay(a, b time.Time) bool {
	return a.Year() == b.Year() && a.Month() == b.Month() && a.Day() == b.Day()
}
