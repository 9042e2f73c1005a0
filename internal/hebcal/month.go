package hebcal

import "fmt"

// Normalized month numbers. The year begins with Tishrei, so months are
// numbered from it even though the months of the Torah count from Nissan.
// In a leap year the inserted month Adar Rishon takes plain Adar's slot
// (6) and Adar Sheini is numbered 13, out of chronological order, so that
// Nissan through Elul keep constant values in every year.
const (
	Tishrei  = 1
	Cheshvan = 2
	Kisleiv  = 3
	Teveis   = 4
	Shevat   = 5
	Adar     = 6
	Nissan   = 7
	Iyar     = 8
	Sivan    = 9
	Tammuz   = 10
	Av       = 11
	Elul     = 12
	AdarII   = 13
	AdarI    = 6
)

// Month lengths. A month is either chaser (29 days) or malei (30).
const (
	MonthChaser = 29
	MonthMalei  = 30
)

var regMonthNames = [12]string{
	"Tishrei", "Marcheshvan", "Kisleiv", "Teveis", "Shevat", "Adar",
	"Nissan", "Iyar", "Sivan", "Tammuz", "Av", "Elul",
}

var leapMonthNames = [13]string{
	"Tishrei", "Marcheshvan", "Kisleiv", "Teveis", "Shevat",
	"Adar Rishon", "Nissan", "Iyar", "Sivan", "Tammuz", "Av", "Elul",
	// Adar Sheini sits out of chronological position, at its normalized
	// index.
	"Adar Sheini",
}

// Sequentialize converts a normalized month number to its chronological
// position in the year: in a leap year Adar Sheini becomes 7 and Nissan
// through Elul shift to 8..13. Non-leap years and months up to Adar are
// unchanged.
func Sequentialize(month int, leap bool) int {
	switch {
	case !leap || month <= AdarI:
		return month
	case month < AdarII:
		return month + 1
	default: // Adar Sheini
		return Nissan
	}
}

// Normalize is the inverse of Sequentialize, converting a chronological
// month position back to the normalized numbering.
func Normalize(seq int, leap bool) int {
	switch {
	case !leap || seq <= AdarI:
		return seq
	case seq == Nissan:
		return AdarII
	default: // sequential 8..13 are Nissan..Elul
		return seq - 1
	}
}

// MonthLength returns the number of days in a normalized month. The base
// rule alternates: odd months are malei, even months chaser. Adar Rishon
// is always malei and Adar Sheini always chaser; Cheshvan stretches to 30
// in a shalem year and Kisleiv shrinks to 29 in a chaser year.
func MonthLength(month int, leap bool, yearType YearType) int {
	length := MonthChaser
	if month%2 != 0 {
		length = MonthMalei
	}
	if leap {
		if month == AdarI {
			length = MonthMalei
		} else if month == AdarII {
			length = MonthChaser
		}
	}
	if month == Cheshvan && yearType == Shalem {
		length = MonthMalei
	}
	if month == Kisleiv && yearType == Chaser {
		length = MonthChaser
	}
	return length
}

// Month holds the derived facts about one month of a specific year: the
// weekday of Rosh Chodesh, the month's length, its molad, and its display
// name. Computed once by NewMonth and immutable after.
type Month struct {
	year        *Year
	number      int // normalized
	molad       Molad
	roshChodesh int
	length      int
}

// NewMonth derives the month record for a normalized month number of the
// given year. Numbers outside 1..12 - or 13 in a year that has no Adar
// Sheini - are rejected with ErrInvalidInput. In a non-leap year month 6
// is plain Adar; in a leap year it is Adar Rishon.
func NewMonth(year *Year, month int) (*Month, error) {
	if year == nil {
		return nil, fmt.Errorf("%w: nil year", ErrInvalidInput)
	}
	if month < Tishrei || month > Elul {
		if !(month == AdarII && year.IsLeap()) {
			return nil, fmt.Errorf("%w: month %d of year %d", ErrInvalidInput, month, year.Number())
		}
	}

	m := &Month{year: year, number: month}
	m.molad = monthMolad(year.Molad(), month, year.IsLeap())
	m.roshChodesh = roshChodesh(year, month)
	m.length = MonthLength(month, year.IsLeap(), year.Type())
	return m, nil
}

// Year returns the year this month belongs to.
func (m *Month) Year() *Year { return m.year }

// Number returns the normalized month number.
func (m *Month) Number() int { return m.number }

// Molad returns the molad of this month, weekday-normalized.
func (m *Month) Molad() Molad { return m.molad }

// RoshChodesh returns the weekday of the first day of the month. When the
// preceding month is malei and Rosh Chodesh spans two days, this is the
// second of them.
func (m *Month) RoshChodesh() int { return m.roshChodesh }

// Length returns the number of days in the month, 29 or 30.
func (m *Month) Length() int { return m.length }

// Name returns the month's transliterated English name.
func (m *Month) Name() string {
	if m.year.IsLeap() {
		return leapMonthNames[m.number-1]
	}
	return regMonthNames[m.number-1]
}

// monthMolad advances a year's Tishrei molad month by month to the target
// month. The additions run in chronological order - Adar Rishon before
// Adar Sheini before Nissan - because each Add leans on the normalized
// weekday left by the one before it.
func monthMolad(tishrei Molad, month int, leap bool) Molad {
	molad := tishrei
	seq := Sequentialize(month, leap)
	for i := 1; i < seq; i++ {
		molad = molad.Add(nosar)
	}
	return molad
}

// roshChodesh accumulates the lengths of every month preceding the target
// month, in chronological order, on top of the year's start weekday. The
// per-month lengths already carry the leap-Adar and year-type adjustments,
// so Adar Rishon's 30 days push Adar Sheini and everything after it, and
// a shalem Cheshvan or chaser Kisleiv shifts the months past it by one.
func roshChodesh(year *Year, month int) int {
	day := year.RoshHashana()
	target := Sequentialize(month, year.IsLeap())
	for seq := 1; seq < target; seq++ {
		day += MonthLength(Normalize(seq, year.IsLeap()), year.IsLeap(), year.Type())
	}
	return day % DaysPerWeek
}
