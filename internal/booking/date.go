// Package booking contains the guest-apartment booking rules: calendar
// day arithmetic, ISO week numbers, availability checks, the two-click
// date selection flow, month grid rendering and seasonal pricing.  The
// package is pure; persistence and HTTP live in the repository and
// handler layers.
package booking

import (
	"fmt"
	"time"
)

// Date is a calendar day without a time component.  All bookings store
// and compare days in this form so that local/UTC midnight conversions
// can never shift a stay by one day.  The zero value means "unset".
type Date struct {
	Year  int
	Month time.Month
	Day   int
}

// DateLayout is the wire and database format for calendar days.
const DateLayout = "2006-01-02"

// NewDate builds a normalized Date.  Out-of-range components are
// carried over the same way time.Date handles them.
func NewDate(year int, month time.Month, day int) Date {
	t := time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
	return Date{Year: t.Year(), Month: t.Month(), Day: t.Day()}
}

// DateOf truncates a time.Time to its calendar day in UTC.
func DateOf(t time.Time) Date {
	u := t.UTC()
	return Date{Year: u.Year(), Month: u.Month(), Day: u.Day()}
}

// ParseDate parses a YYYY-MM-DD string.
func ParseDate(s string) (Date, error) {
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return Date{}, fmt.Errorf("invalid date %q: %w", s, err)
	}
	return DateOf(t), nil
}

// Time returns the date as UTC midnight.
func (d Date) Time() time.Time {
	return time.Date(d.Year, d.Month, d.Day, 0, 0, 0, 0, time.UTC)
}

// String formats the date as YYYY-MM-DD.
func (d Date) String() string { return d.Time().Format(DateLayout) }

// IsZero reports whether the date is unset.
func (d Date) IsZero() bool { return d == Date{} }

// Equal reports whether two dates name the same calendar day.
func (d Date) Equal(o Date) bool { return d == o }

// Before reports whether d falls on an earlier day than o.
func (d Date) Before(o Date) bool { return d.Time().Before(o.Time()) }

// After reports whether d falls on a later day than o.
func (d Date) After(o Date) bool { return d.Time().After(o.Time()) }

// AddDays returns the date n days later (or earlier for negative n).
func (d Date) AddDays(n int) Date { return DateOf(d.Time().AddDate(0, 0, n)) }

// DaysUntil returns the number of whole days from d to o.  Negative
// when o is earlier than d.
func (d Date) DaysUntil(o Date) int {
	return int(o.Time().Sub(d.Time()) / (24 * time.Hour))
}

// ISOWeekday returns the day of week with Monday=1 through Sunday=7.
func (d Date) ISOWeekday() int {
	wd := int(d.Time().Weekday())
	if wd == 0 {
		return 7
	}
	return wd
}
