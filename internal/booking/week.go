package booking

import "time"

// ISOWeek returns the ISO-8601 week number (1..53) for a calendar day.
// Both the season pricing and the calendar grid depend on this value,
// so the reference algorithm is implemented here rather than deferred
// to time.Time.ISOWeek: shift the day to the Thursday of its week, then
// count whole weeks from January 1 of the Thursday's year.
func ISOWeek(d Date) int {
	thursday := d.AddDays(4 - d.ISOWeekday())
	yearStart := NewDate(thursday.Year, time.January, 1)
	return yearStart.DaysUntil(thursday)/7 + 1
}

// WeeksInYear returns 53 when January 1 or December 31 of the year
// falls on a Thursday, otherwise 52.
func WeeksInYear(year int) int {
	jan1 := NewDate(year, time.January, 1)
	dec31 := NewDate(year, time.December, 31)
	if jan1.ISOWeekday() == 4 || dec31.ISOWeekday() == 4 {
		return 53
	}
	return 52
}
