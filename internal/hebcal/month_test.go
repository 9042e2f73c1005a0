package hebcal

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSequentializeNormalizeRoundTrip(t *testing.T) {
	for _, leap := range []bool{false, true} {
		last := Elul
		if leap {
			last = AdarII
		}
		for month := Tishrei; month <= last; month++ {
			seq := Sequentialize(month, leap)
			assert.Equal(t, month, Normalize(seq, leap), "month %d leap %t", month, leap)
		}
	}
}

func TestSequentialize(t *testing.T) {
	tests := []struct {
		month int
		leap  bool
		want  int
	}{
		{Tishrei, false, 1},
		{Adar, false, 6},
		{Nissan, false, 7},
		{Elul, false, 12},
		{Tishrei, true, 1},
		{AdarI, true, 6},
		{AdarII, true, 7},
		{Nissan, true, 8},
		{Elul, true, 13},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, Sequentialize(tt.month, tt.leap),
			"month %d leap %t", tt.month, tt.leap)
	}
}

func TestMonthLength(t *testing.T) {
	tests := []struct {
		name     string
		month    int
		leap     bool
		yearType YearType
		want     int
	}{
		{"Tishrei always malei", Tishrei, false, Kseder, 30},
		{"Cheshvan regular", Cheshvan, false, Kseder, 29},
		{"Cheshvan in shalem year", Cheshvan, false, Shalem, 30},
		{"Kisleiv regular", Kisleiv, false, Kseder, 30},
		{"Kisleiv in chaser year", Kisleiv, false, Chaser, 29},
		{"plain Adar", Adar, false, Kseder, 29},
		{"Adar Rishon forced malei", AdarI, true, Kseder, 30},
		{"Adar Sheini forced chaser", AdarII, true, Kseder, 29},
		{"Elul", Elul, false, Kseder, 29},
		{"Nissan", Nissan, true, Chaser, 30},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, MonthLength(tt.month, tt.leap, tt.yearType))
		})
	}
}

func TestNewMonthValidation(t *testing.T) {
	leap, err := NewYear(5784)
	require.NoError(t, err)
	plain, err := NewYear(5785)
	require.NoError(t, err)

	_, err = NewMonth(plain, 0)
	assert.ErrorIs(t, err, ErrInvalidInput)
	_, err = NewMonth(plain, 14)
	assert.ErrorIs(t, err, ErrInvalidInput)
	_, err = NewMonth(nil, Tishrei)
	assert.ErrorIs(t, err, ErrInvalidInput)

	// Adar Sheini only exists in a leap year.
	_, err = NewMonth(plain, AdarII)
	assert.ErrorIs(t, err, ErrInvalidInput)
	m, err := NewMonth(leap, AdarII)
	require.NoError(t, err)
	assert.Equal(t, "Adar Sheini", m.Name())

	// Month 6 is plain Adar in a regular year and Adar Rishon in a leap
	// year; the same selector resolves to whichever the year has.
	m, err = NewMonth(plain, Adar)
	require.NoError(t, err)
	assert.Equal(t, "Adar", m.Name())
	m, err = NewMonth(leap, AdarI)
	require.NoError(t, err)
	assert.Equal(t, "Adar Rishon", m.Name())
}

func TestMonthKnownStarts5784(t *testing.T) {
	// 5784: leap, chaser, began on Shabbos.
	year, err := NewYear(5784)
	require.NoError(t, err)

	tests := []struct {
		month       int
		name        string
		roshChodesh int
		length      int
	}{
		{Tishrei, "Tishrei", 0, 30},   // Sep 16 2023, Shabbos
		{Cheshvan, "Marcheshvan", 2, 29},
		{Kisleiv, "Kisleiv", 3, 29},   // chaser year trims Kisleiv
		{AdarI, "Adar Rishon", 0, 30}, // Feb 10 2024, Shabbos
		{AdarII, "Adar Sheini", 2, 29}, // Mar 11 2024, Monday
		{Nissan, "Nissan", 3, 30},     // Apr 9 2024, Tuesday
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, err := NewMonth(year, tt.month)
			require.NoError(t, err)
			assert.Equal(t, tt.name, m.Name())
			assert.Equal(t, tt.roshChodesh, m.RoshChodesh(), "rosh chodesh")
			assert.Equal(t, tt.length, m.Length(), "length")
		})
	}
}

func TestMonthKnownStarts5785(t *testing.T) {
	// 5785: regular, shalem, began on Thursday.
	year, err := NewYear(5785)
	require.NoError(t, err)

	tishrei, err := NewMonth(year, Tishrei)
	require.NoError(t, err)
	assert.Equal(t, 5, tishrei.RoshChodesh())

	// Shalem year stretches Cheshvan; its first day lands on Shabbos
	// (Nov 2 2024).
	cheshvan, err := NewMonth(year, Cheshvan)
	require.NoError(t, err)
	assert.Equal(t, 0, cheshvan.RoshChodesh())
	assert.Equal(t, 30, cheshvan.Length())
}

func TestMonthMolad(t *testing.T) {
	// Year 2's Tishrei molad is Friday 14h 0c; one month later Cheshvan's
	// molad lands on Sunday 2h 793c.
	year, err := NewYear(2)
	require.NoError(t, err)

	tishrei, err := NewMonth(year, Tishrei)
	require.NoError(t, err)
	assert.Equal(t, Molad{6, 14, 0}, tishrei.Molad())

	cheshvan, err := NewMonth(year, Cheshvan)
	require.NoError(t, err)
	assert.Equal(t, Molad{1, 2, 793}, cheshvan.Molad())
}

func TestMonthMoladChronologicalOrder(t *testing.T) {
	// In a leap year, Adar Sheini's molad is one month after Adar
	// Rishon's and one before Nissan's.
	year, err := NewYear(5784)
	require.NoError(t, err)

	adarI, err := NewMonth(year, AdarI)
	require.NoError(t, err)
	adarII, err := NewMonth(year, AdarII)
	require.NoError(t, err)
	nissan, err := NewMonth(year, Nissan)
	require.NoError(t, err)

	assert.Equal(t, adarI.Molad().Add(nosar), adarII.Molad())
	assert.Equal(t, adarII.Molad().Add(nosar), nissan.Molad())
}

func TestMonthDerivationIsIdempotent(t *testing.T) {
	year, err := NewYear(5786)
	require.NoError(t, err)

	a, err := NewMonth(year, Kisleiv)
	require.NoError(t, err)
	b, err := NewMonth(year, Kisleiv)
	require.NoError(t, err)
	assert.Equal(t, *a, *b)
}

func TestRoshChodeshConsecutive(t *testing.T) {
	// Each month starts exactly its predecessor's length after the
	// predecessor, for every month of every year in range.
	for yr := MinYear; yr <= MaxYear; yr++ {
		year, err := NewYear(yr)
		if err != nil {
			t.Fatalf("year %d: %v", yr, err)
		}
		prev := year.RoshHashana()
		prevLen := 0
		for seq := 1; seq <= year.Months(); seq++ {
			m, err := NewMonth(year, Normalize(seq, year.IsLeap()))
			if err != nil {
				t.Fatalf("year %d month %d: %v", yr, seq, err)
			}
			want := (prev + prevLen) % DaysPerWeek
			if m.RoshChodesh() != want {
				t.Fatalf("year %d month %d: rosh chodesh %d, want %d",
					yr, seq, m.RoshChodesh(), want)
			}
			prev = m.RoshChodesh()
			prevLen = m.Length()
		}
	}
}
