// Package hebcal computes the structure of the traditional lunisolar Hebrew
// calendar from first principles: the molad (mean new-moon moment) of any
// month, the weekday a year begins on after the four postponement rules, the
// year length category, and per-month start weekdays and lengths.
//
// Time is counted the way the classical sources count it: a week of 7 days
// starting from Shabbos (0), a day of 24 hours beginning at nightfall, and an
// hour of 1080 chalakim (a chelek is 3 1/3 seconds).
package hebcal

import (
	"errors"
	"fmt"
)

const (
	// DaysPerWeek is the number of days in a week.
	DaysPerWeek = 7
	// HoursPerDay is the number of hours in a day, counted from nightfall.
	HoursPerDay = 24
	// ChalakimPerHour is the number of chalakim (parts) in an hour.
	ChalakimPerHour = 1080
	// ChalakimPerMinute is the number of chalakim in a minute.
	ChalakimPerMinute = 18
)

// ErrInvalidInput is returned when a constructor argument is outside its
// acceptable range.
var ErrInvalidInput = errors.New("hebcal: invalid input")

// Molad is a moment in time in the traditional system: a day count, an hour
// of the day, and chalakim of the hour. After any operation hours stay in
// [0,24) and chalakim in [0,1080). The day field is either a weekday in
// [0,6] (0 = Shabbos, 1..6 = Sunday..Friday) or an unbounded absolute day
// count, depending on whether the caller has dropped whole weeks.
//
// Some calculations only care about the day of the week, so days adding up
// to whole weeks can be dropped as they accumulate; others need the literal
// day count. The arithmetic therefore comes in pairs: Plus/Add and
// Times/Multiply, where the second of each pair drops whole weeks.
//
// A Molad is an immutable value; every operation returns a new one.
type Molad struct {
	days     int
	hours    int
	chalakim int
}

// Molad constants used by every calendar derivation. These are values, so
// arithmetic can never corrupt them.
var (
	// baHaRad is the (hypothetical) molad of Tishrei of year 1, a year
	// before Creation: day 2, hour 5, 204 chalakim.
	baHaRad = Molad{days: 2, hours: 5, chalakim: 204}

	// nosar is the week-dropped excess of one mean month, 29d 12h 793c
	// less four weeks.
	nosar = Molad{days: 1, hours: 12, chalakim: 793}

	// regYear is the week-dropped excess of a regular 12-month year.
	regYear = Molad{days: 4, hours: 8, chalakim: 876}

	// leapYear is the week-dropped excess of a 13-month leap year.
	leapYear = Molad{days: 5, hours: 21, chalakim: 589}

	// machzor is the week-dropped excess of a full 19-year cycle.
	machzor = Molad{days: 2, hours: 16, chalakim: 595}
)

// weekdayNames indexes weekday numbers after normalization. Shabbos is
// first because its normalized value is 0.
var weekdayNames = [DaysPerWeek]string{
	"Shabbos", "Sunday", "Monday", "Tuesday", "Wednesday", "Thursday", "Friday",
}

// WeekdayName returns the English name for a normalized weekday number.
func WeekdayName(day int) string {
	if day < 0 || day >= DaysPerWeek {
		return "Unknown"
	}
	return weekdayNames[day]
}

// NewMolad builds a Molad from a weekday, hour and chelek count. Any field
// outside its radix range is rejected with ErrInvalidInput.
func NewMolad(day, hour, chelek int) (Molad, error) {
	if day < 0 || day >= DaysPerWeek {
		return Molad{}, fmt.Errorf("%w: day %d outside [0,%d)", ErrInvalidInput, day, DaysPerWeek)
	}
	if hour < 0 || hour >= HoursPerDay {
		return Molad{}, fmt.Errorf("%w: hour %d outside [0,%d)", ErrInvalidInput, hour, HoursPerDay)
	}
	if chelek < 0 || chelek >= ChalakimPerHour {
		return Molad{}, fmt.Errorf("%w: chelek %d outside [0,%d)", ErrInvalidInput, chelek, ChalakimPerHour)
	}
	return Molad{days: day, hours: hour, chalakim: chelek}, nil
}

// Days returns the day field: a weekday when normalized, otherwise an
// absolute day count.
func (m Molad) Days() int { return m.days }

// Hours returns the hour of the day, counted from nightfall.
func (m Molad) Hours() int { return m.hours }

// Chalakim returns the chalakim of the hour.
func (m Molad) Chalakim() int { return m.chalakim }

// Plus adds two molads, retaining days that amount to whole weeks.
func (m Molad) Plus(o Molad) Molad {
	m.chalakim += o.chalakim
	if m.chalakim >= ChalakimPerHour {
		m.chalakim -= ChalakimPerHour
		m.hours++
	}
	m.hours += o.hours
	if m.hours >= HoursPerDay {
		m.hours -= HoursPerDay
		m.days++
	}
	m.days += o.days
	return m
}

// Add adds two molads and drops days that add up to a whole week. It
// subtracts at most one week, which is enough when the operands are a
// running weekday total and a single increment.
func (m Molad) Add(o Molad) Molad {
	m = m.Plus(o)
	if m.days >= DaysPerWeek {
		m.days -= DaysPerWeek
	}
	return m
}

// Times multiplies a molad by an integer factor, cascading chelek overflow
// into hours and hour overflow into days. The day count is kept whole:
// weeks are not dropped.
func (m Molad) Times(factor int) Molad {
	chalakim := m.chalakim * factor
	hours := m.hours * factor
	days := m.days * factor

	hours += chalakim / ChalakimPerHour
	chalakim %= ChalakimPerHour
	days += hours / HoursPerDay
	hours %= HoursPerDay

	return Molad{days: days, hours: hours, chalakim: chalakim}
}

// Multiply multiplies a molad by an integer factor and drops whole weeks,
// leaving a weekday in the day field.
func (m Molad) Multiply(factor int) Molad {
	return m.Times(factor).NormalizeDays()
}

// NormalizeDays drops whole weeks, reducing the day field to a weekday in
// [0,6]. Only meaningful when the day count is non-negative.
func (m Molad) NormalizeDays() Molad {
	m.days %= DaysPerWeek
	return m
}

// String renders the molad as "x days, y hours, and z chalakim", dropping
// the plural where a field is 1.
func (m Molad) String() string {
	chelek := "chalakim"
	if m.chalakim == 1 {
		chelek = "chelek"
	}
	return fmt.Sprintf("%d %s, %d %s, and %d %s",
		m.days, plural("day", m.days),
		m.hours, plural("hour", m.hours),
		m.chalakim, chelek)
}

func plural(unit string, n int) string {
	if n == 1 {
		return unit
	}
	return unit + "s"
}

// CivilTime is a molad re-based to the modern civil clock: the weekday and
// hour are shifted from hours-since-nightfall to hours-since-midnight, the
// chalakim are split into minutes and leftover chalakim, and the hour is
// bucketed into a rough time of day.
type CivilTime struct {
	Weekday   int    // normalized weekday, 0 = Shabbos
	Hour      int    // 0..23, counted from midnight
	Minutes   int    // chelek / 18
	Chalakim  int    // chelek % 18, the part that is less than a minute
	TimeOfDay string // predawn, morning, afternoon, or evening
}

// Civil converts a weekday-normalized molad to civil-clock form. Nightfall
// is taken as 6 PM, so six hours are subtracted; when that crosses
// midnight backwards the weekday moves back one day, Shabbos wrapping to
// Friday.
func (m Molad) Civil() CivilTime {
	day := m.days
	hour := m.hours - 6
	if hour < 0 {
		hour += HoursPerDay
		day--
		if day < 0 {
			day += DaysPerWeek
		}
	}

	var timeOfDay string
	switch {
	case hour >= 18:
		timeOfDay = "evening"
	case hour >= 12:
		timeOfDay = "afternoon"
	case hour >= 6:
		timeOfDay = "morning"
	default:
		timeOfDay = "predawn"
	}

	return CivilTime{
		Weekday:   day,
		Hour:      hour,
		Minutes:   m.chalakim / ChalakimPerMinute,
		Chalakim:  m.chalakim % ChalakimPerMinute,
		TimeOfDay: timeOfDay,
	}
}

// Clock12 returns the hour on a 12-hour clock and whether it is PM.
func (c CivilTime) Clock12() (hour int, pm bool) {
	hour = c.Hour % 12
	if hour == 0 {
		hour = 12
	}
	return hour, c.Hour >= 12
}
