package calendar

import "time"

const (
	// Weeks is the number of body rows in every grid.
	Weeks = 6
	// DaysPerWeek is the number of columns.
	DaysPerWeek = 7
)

// WeekdayHeader is the header row, Sunday first.
var WeekdayHeader = [DaysPerWeek]string{"Sun", "Mon", "Tue", "Wed", "Thu", "Fri", "Sat"}

// DayCell is one slot of the grid. Blank cells carry a zero Date.
type DayCell struct {
	Date    time.Time
	Day     int
	Blank   bool
	IsToday bool
}

// Grid is a header row plus six week rows of seven cells each.
type Grid struct {
	Month  Month
	Header [DaysPerWeek]string
	Rows   [Weeks][DaysPerWeek]DayCell
}

// Generate lays out m as a 6x7 grid. Cells before day 1 and after the last
// day are blank; the cell matching now's date is marked as today.
func Generate(m Month, now time.Time) Grid {
	g := Grid{Month: m, Header: WeekdayHeader}

	firstDay := FirstWeekday(m)
	daysInMonth := DaysInMonth(m)

	day := 1
	for row := 0; row < Weeks; row++ {
		for col := 0; col < DaysPerWeek; col++ {
			if (row == 0 && col < firstDay) || day > daysInMonth {
				g.Rows[row][col] = DayCell{Blank: true}
				continue
			}
			date := m.Day(day)
			g.Rows[row][col] = DayCell{
				Date:    date,
				Day:     day,
				IsToday: SameDay(date, now),
			}
			day++
		}
	}
	return g
}

// Trimmed returns the body rows with trailing all-blank rows dropped.
func (g Grid) Trimmed() [][DaysPerWeek]DayCell {
	n := Weeks
	for n > 0 && rowBlank(g.Rows[n-1]) {
		n--
	}
	return g.Rows[:n]
}

// CellAt returns the cell at row, col, or false when out of bounds.
func (g Grid) CellAt(row, col int) (DayCell, bool) {
	if row < 0 || row >= Weeks || col < 0 || col >= DaysPerWeek {
		return DayCell{}, false
	}
	return g.Rows[row][col], true
}

// Locate finds the row and column holding day.
func (g Grid) Locate(day int) (row, col int, ok bool) {
	for r := range g.Rows {
		for c, cell := range g.Rows[r] {
			if !cell.Blank && cell.Day == day {
				return r, c, true
			}
		}
	}
	return 0, 0, false
}

// Today returns the cell marked as today, if the grid has one.
func (g Grid) Today() (DayCell, bool) {
	for r := range g.Rows {
		for _, cell := range g.Rows[r] {
			if cell.IsToday {
				return cell, true
			}
		}
	}
	return DayCell{}, false
}

func rowBlank(row [DaysPerWeek]DayCell) bool {
	for _, cell := range row {
		if !cell.Blank {
			return false
		}
	}
	return true
}
