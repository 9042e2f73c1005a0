package hebcal

import "fmt"

const (
	// MinYear is the first year the engine accepts.
	MinYear = 1
	// MaxYear is the last year the engine accepts.
	MaxYear = 6000

	yearsPerCycle = 19
)

// YearType categorizes a year's length relative to a regular year. The type
// determines the lengths of Cheshvan and Kisleiv.
type YearType int

const (
	// Chaser ("lacking") - Kisleiv has 29 days instead of 30; the year is
	// one day shorter than regular.
	Chaser YearType = iota
	// Kseder ("in order") - month lengths alternate regularly.
	Kseder
	// Shalem ("full") - Cheshvan has 30 days instead of 29; the year is
	// one day longer than regular.
	Shalem
	// InvalidYearType marks a start-weekday combination that the
	// postponement rules can never produce. It is unreachable for any
	// year derived by this engine.
	InvalidYearType
)

// Difference returns the year-length difference from a regular year: -1,
// 0, or +1. The sentinel for InvalidYearType is -354, so an escaped
// invalid type corrupts any length it touches loudly rather than quietly.
func (t YearType) Difference() int {
	switch t {
	case Chaser:
		return -1
	case Kseder:
		return 0
	case Shalem:
		return 1
	}
	return -354
}

func (t YearType) String() string {
	switch t {
	case Chaser:
		return "chaser"
	case Kseder:
		return "kseder"
	case Shalem:
		return "shalem"
	}
	return "invalid"
}

// Year holds the derived facts about one Hebrew year: its Tishrei molad,
// the weekday Rosh Hashana falls on, and its length category. All fields
// are computed once by NewYear and never change.
type Year struct {
	number      int
	molad       Molad // Tishrei molad, absolute day count retained
	roshHashana int
	yearType    YearType
}

// IsLeap reports whether year is one of the seven leap years of its
// 19-year cycle (positions 0, 3, 6, 8, 11, 14, 17 of year mod 19).
func IsLeap(year int) bool {
	switch year % yearsPerCycle {
	case 0, 3, 6, 8, 11, 14, 17:
		return true
	}
	return false
}

// NewYear derives the record for the given year number. Numbers outside
// [MinYear,MaxYear] are rejected with ErrInvalidInput. An inconsistent
// year type means the engine itself is broken and is reported as an error
// naming the offending combination.
func NewYear(number int) (*Year, error) {
	if number < MinYear || number > MaxYear {
		return nil, fmt.Errorf("%w: year %d outside [%d,%d]", ErrInvalidInput, number, MinYear, MaxYear)
	}

	molad := tishreiMolad(number)
	first := roshHashanaWeekday(number, molad)
	next := roshHashanaWeekday(number+1, tishreiMolad(number+1))
	yearType := yearTypeFor(first, next, IsLeap(number))
	if yearType == InvalidYearType {
		return nil, fmt.Errorf("hebcal: year %d: inconsistent year type for start %d, next %d, leap %t",
			number, first, next, IsLeap(number))
	}

	return &Year{
		number:      number,
		molad:       molad,
		roshHashana: first,
		yearType:    yearType,
	}, nil
}

// Number returns the year number, counted from Creation.
func (y *Year) Number() int { return y.number }

// IsLeap reports whether this year has 13 months.
func (y *Year) IsLeap() bool { return IsLeap(y.number) }

// Molad returns the molad of this year's Tishrei with its day field
// reduced to a weekday.
func (y *Year) Molad() Molad { return y.molad.NormalizeDays() }

// RoshHashana returns the weekday the year begins on. Only Shabbos (0),
// Monday (2), Tuesday (3), and Thursday (5) are possible.
func (y *Year) RoshHashana() int { return y.roshHashana }

// Type returns the year's length category.
func (y *Year) Type() YearType { return y.yearType }

// Months returns the number of months in the year, 12 or 13.
func (y *Year) Months() int {
	if y.IsLeap() {
		return 13
	}
	return 12
}

// Length returns the number of days in the year: 354 adjusted by the year
// type, plus 30 for the extra month of a leap year.
func (y *Year) Length() int {
	days := 354 + y.yearType.Difference()
	if y.IsLeap() {
		days += 30
	}
	return days
}

// tishreiMolad computes the molad of Tishrei of the given year by summing
// increments from baHaRad. Whole completed 19-year cycles are scaled with
// Times and added with Plus, keeping the literal day count, because a
// cycle's full span carries into the next. The years inside the current
// cycle are then added one at a time with Add, dropping a week per step:
// only the weekday survives to the result, and one drop per year keeps the
// day field from growing while losing nothing mod 7.
func tishreiMolad(year int) Molad {
	elapsed := year - 1
	cycles := elapsed / yearsPerCycle
	molad := machzor.Times(cycles).Plus(baHaRad)

	yearsIntoCycle := elapsed % yearsPerCycle
	for i := 1; i <= yearsIntoCycle; i++ {
		if IsLeap(i) {
			molad = molad.Add(leapYear)
		} else {
			molad = molad.Add(regYear)
		}
	}
	return molad
}

// roshHashanaWeekday finds the weekday Rosh Hashana falls on for a year
// with the given Tishrei molad. Rosh Hashana is the weekday of the molad
// unless one of the four dichuyim (postponements) moves it. The first
// three are mutually exclusive; Lo ADU Rosh is always checked last and may
// stack on top of an earlier delay.
//
// Static so that deriving next year's start, which the year type needs,
// stays a plain two-argument call instead of recursing into a full Year.
func roshHashanaWeekday(year int, molad Molad) int {
	molad = molad.NormalizeDays()
	days, hours, chalakim := molad.Days(), molad.Hours(), molad.Chalakim()

	weekday := days
	switch {
	case hours >= 18:
		// Molad Zaken: the molad falls after midday; delay a day.
		weekday++
	case !IsLeap(year) && days == 3 && (hours > 9 || (hours == 9 && chalakim >= 204)):
		// GaTaRaD: Tuesday molad at or past 9h 204c in a non-leap year.
		weekday++
	case IsLeap(year-1) && days == 2 && (hours > 15 || (hours == 15 && chalakim >= 589)):
		// BaTuTkufat: Monday molad at or past 15h 589c after a leap year.
		weekday++
	}
	switch weekday {
	case 1, 4, 6:
		// Lo ADU Rosh: the year may not begin on Sunday, Wednesday, or
		// Friday; push to the next day.
		weekday++
	}

	if weekday >= DaysPerWeek {
		weekday -= DaysPerWeek
	}
	return weekday
}

// yearTypeFor determines the year type from the start weekdays of this
// year and the next, plus this year's leap status. Only a few of the 4x4x2
// combinations can occur; the rest fall through to InvalidYearType.
func yearTypeFor(first, next int, leap bool) YearType {
	switch first {
	case 2: // Monday
		switch {
		case next == 5 && !leap:
			return Chaser
		case next == 0 && leap:
			return Chaser
		case next == 0:
			return Shalem
		case next == 2 && leap:
			return Shalem
		}
	case 3: // Tuesday
		if (next == 0 && !leap) || (next == 2 && leap) {
			return Kseder
		}
	case 5: // Thursday
		switch {
		case next == 2 && !leap:
			return Kseder
		case next == 3 && leap:
			return Chaser
		case next == 3:
			return Shalem
		case next == 5 && leap:
			return Shalem
		}
	case 0: // Shabbos
		switch {
		case next == 3 && !leap:
			return Chaser
		case next == 5 && leap:
			return Chaser
		case next == 5:
			return Shalem
		case next == 0 && leap:
			return Shalem
		}
	}
	return InvalidYearType
}
