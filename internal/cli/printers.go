package cli

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"
	"notecal/internal/calendar"
	"notecal/internal/notes"
)

var (
	headerColor = color.New(color.Bold, color.Underline)
	dateColor   = color.New(color.FgMagenta)
	faintColor  = color.New(color.Faint)
	noteDay     = color.New(color.Bold, color.FgHiWhite)
	todayColor  = color.New(color.Bold, color.FgGreen)
)

// printMatches prints notes as a DATE / # / NOTE table.
func printMatches(w io.Writer, matches []notes.Match) {
	table := uitable.New()
	table.MaxColWidth = 80
	table.Wrap = true
	table.AddRow(headerColor.Sprint("DATE"), headerColor.Sprint("#"), headerColor.Sprint("NOTE"))
	for _, m := range matches {
		table.AddRow(dateColor.Sprint(notes.Key(m.Date)), m.Index, m.Text)
	}
	fmt.Fprintln(w, table)
}

// printGrid prints g as a plain-text calendar. Days with notes are bold.
func printGrid(w io.Writer, g calendar.Grid, store *notes.Store, trim bool) {
	const colWidth = 4
	lineWidth := colWidth * calendar.DaysPerWeek

	title := g.Month.String()
	pad := max(0, (lineWidth-len(title))/2)
	fmt.Fprintln(w, strings.Repeat(" ", pad)+headerColor.Sprint(title))

	var header strings.Builder
	for _, d := range g.Header {
		header.WriteString(fmt.Sprintf("%-*s", colWidth, d))
	}
	fmt.Fprintln(w, faintColor.Sprint(strings.TrimRight(header.String(), " ")))

	rows := g.Rows[:]
	if trim {
		rows = g.Trimmed()
	}
	for _, row := range rows {
		var line strings.Builder
		for _, cell := range row {
			line.WriteString(formatCell(cell, store, colWidth))
		}
		fmt.Fprintln(w, strings.TrimRight(line.String(), " "))
	}
}

func formatCell(cell calendar.DayCell, store *notes.Store, width int) string {
	if cell.Blank {
		return strings.Repeat(" ", width)
	}
	text := fmt.Sprintf("%2d", cell.Day)
	marker := " "
	if store.Has(cell.Date) {
		marker = "*"
	}
	padding := strings.Repeat(" ", width-len(text)-len(marker))

	switch {
	case cell.IsToday:
		text = todayColor.Sprint(text)
	case marker == "*":
		text = noteDay.Sprint(text)
	}
	return text + marker + padding
}

func formatDay(t time.Time) string {
	return t.Format("Mon Jan 02 2006")
}
