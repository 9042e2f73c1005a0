// Package render turns engine results into console output: a greeting
// banner, a human-readable molad line, and a month grid. Everything writes
// to an io.Writer so output can be captured or mirrored.
package render

import (
	"fmt"
	"io"

	"github.com/mazs/luach/internal/hebcal"
)

// Banner writes the program greeting.
func Banner(w io.Writer, version string) {
	fmt.Fprintf(w, "Luach - Jewish Calendar, %s\n", version)
}

// MoladLine formats a weekday-normalized molad in the modern style, naming
// the weekday, the rough time of day, the 12-hour clock time, and the
// chalakim left over after whole minutes.
func MoladLine(m hebcal.Molad) string {
	c := m.Civil()
	hour, pm := c.Clock12()
	meridiem := "AM"
	if pm {
		meridiem = "PM"
	}
	chelek := "chalakim"
	if c.Chalakim == 1 {
		chelek = "chelek"
	}
	return fmt.Sprintf("The molad is %s %s, %d:%02d %s and %d %s.",
		hebcal.WeekdayName(c.Weekday), c.TimeOfDay,
		hour, c.Minutes, meridiem, c.Chalakim, chelek)
}

// Molad writes the molad line for a month.
func Molad(w io.Writer, month *hebcal.Month) {
	fmt.Fprintln(w, MoladLine(month.Molad()))
}

// MonthGrid writes a month as a Sunday-first calendar grid. With header
// set it is preceded by the month name, year number, and a weekday rule.
func MonthGrid(w io.Writer, month *hebcal.Month, header bool) {
	if header {
		fmt.Fprintf(w, "    %s %d\n", month.Name(), month.Year().Number())
		fmt.Fprintln(w, "  S  M  T  W  T  F  S")
	}

	// Column position: the grid is Sunday-first, with Shabbos in the last
	// column, so a month starting on Shabbos (0) indents six columns.
	start := month.RoshChodesh()
	col := (start + hebcal.DaysPerWeek - 1) % hebcal.DaysPerWeek

	for i := 0; i < col; i++ {
		fmt.Fprint(w, "   ")
	}
	for day := 1; day <= month.Length(); day++ {
		fmt.Fprintf(w, " %2d", day)
		col++
		if col == hebcal.DaysPerWeek && day < month.Length() {
			fmt.Fprintln(w)
			col = 0
		}
	}
	fmt.Fprintln(w)
}

// YearSummary writes a one-year overview: start weekday, leap flag, year
// type, length, and the Tishrei molad in both notations.
func YearSummary(w io.Writer, year *hebcal.Year) {
	leap := "regular year"
	if year.IsLeap() {
		leap = "leap year"
	}
	fmt.Fprintf(w, "Year %d: begins on %s, %s (%s), %d days\n",
		year.Number(), hebcal.WeekdayName(year.RoshHashana()), leap,
		year.Type(), year.Length())
	fmt.Fprintf(w, "Molad Tishrei: %s\n", year.Molad())
	fmt.Fprintln(w, MoladLine(year.Molad()))
}
