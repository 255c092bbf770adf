package booking

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustDate(t *testing.T, s string) Date {
	t.Helper()
	d, err := ParseDate(s)
	require.NoError(t, err)
	return d
}

func TestISOWeekKnownDates(t *testing.T) {
	cases := []struct {
		date string
		week int
	}{
		// Jan 1 2025 is a Wednesday; its Thursday is Jan 2, so week 1.
		{"2025-01-01", 1},
		{"2025-01-05", 1},
		{"2025-01-06", 2},
		{"2025-06-10", 24},
		{"2025-12-28", 52},
		// Dec 29-31 2025 belong to week 1 of 2026.
		{"2025-12-29", 1},
		{"2025-12-31", 1},
		// Dec 30 2024 opens the week containing Jan 1 2025.
		{"2024-12-30", 1},
		{"2024-12-29", 52},
	}
	for _, tc := range cases {
		t.Run(tc.date, func(t *testing.T) {
			assert.Equal(t, tc.week, ISOWeek(mustDate(t, tc.date)))
		})
	}
}

func TestISOWeekMatchesStdlib(t *testing.T) {
	// The reference algorithm must agree with time.Time.ISOWeek over a
	// span that crosses several year boundaries and a 53-week year.
	d := mustDate(t, "2019-12-01")
	end := mustDate(t, "2027-02-01")
	for ; d.Before(end); d = d.AddDays(1) {
		_, want := d.Time().ISOWeek()
		require.Equal(t, want, ISOWeek(d), "date %s", d)
	}
}

func TestISOWeekMonotonicWithinYear(t *testing.T) {
	// Iterating consecutive days, the week number never decreases
	// inside a year except for the year-end days that already belong
	// to week 1 of the following year.
	d := NewDate(2025, time.January, 1)
	prev := ISOWeek(d)
	for d = d.AddDays(1); d.Year == 2025; d = d.AddDays(1) {
		w := ISOWeek(d)
		if w == 1 && prev >= 52 {
			continue // wrapped into next year's week 1
		}
		require.GreaterOrEqual(t, w, prev, "date %s", d)
		prev = w
	}
}

func TestWeeksInYear(t *testing.T) {
	cases := []struct {
		year  int
		weeks int
	}{
		{2015, 53}, // Jan 1 2015 is a Thursday
		{2020, 53}, // Dec 31 2020 is a Thursday
		{2026, 53}, // Jan 1 2026 is a Thursday
		{2024, 52},
		{2025, 52},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.weeks, WeeksInYear(tc.year), "year %d", tc.year)
	}
}

func TestDateRoundTrip(t *testing.T) {
	d := mustDate(t, "2025-06-10")
	assert.Equal(t, "2025-06-10", d.String())
	assert.Equal(t, 2, d.ISOWeekday()) // a Tuesday

	_, err := ParseDate("2025-6-10")
	assert.Error(t, err)
	_, err = ParseDate("not-a-date")
	assert.Error(t, err)
}

func TestDateArithmetic(t *testing.T) {
	d := mustDate(t, "2025-02-27")
	assert.Equal(t, "2025-03-01", d.AddDays(2).String())
	assert.Equal(t, 2, d.DaysUntil(mustDate(t, "2025-03-01")))
	assert.Equal(t, -2, mustDate(t, "2025-03-01").DaysUntil(d))
	// Leap year February.
	assert.Equal(t, "2024-02-29", mustDate(t, "2024-02-28").AddDays(1).String())
}
