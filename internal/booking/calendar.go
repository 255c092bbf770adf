package booking

import "time"

// DayCell is one rendered day in a month grid.
type DayCell struct {
	Date     Date `json:"date"`
	Week     int  `json:"week"`
	Booked   bool `json:"booked"`
	Selected bool `json:"selected"`
	Today    bool `json:"today"`
}

// MonthGrid is a month laid out in Monday-first rows of seven cells.
// Cells before the first day of the month are nil placeholders with no
// date semantics; the final row may be shorter than seven.
type MonthGrid struct {
	Year  int          `json:"year"`
	Month time.Month   `json:"month"`
	Weeks [][]*DayCell `json:"weeks"`
}

// BuildMonthGrid renders one month against the given stays and picker
// selection.  The today marker is cosmetic only; it neither blocks
// selection nor booking.
func BuildMonthGrid(year int, month time.Month, stays []Stay, sel Selection, today Date) MonthGrid {
	first := NewDate(year, month, 1)
	daysInMonth := NewDate(year, month+1, 1).AddDays(-1).Day

	cells := make([]*DayCell, 0, daysInMonth+6)
	for i := 1; i < first.ISOWeekday(); i++ {
		cells = append(cells, nil)
	}
	for day := 1; day <= daysInMonth; day++ {
		d := NewDate(year, month, day)
		cells = append(cells, &DayCell{
			Date:     d,
			Week:     ISOWeek(d),
			Booked:   IsDayBooked(stays, d),
			Selected: sel.Contains(d),
			Today:    d.Equal(today),
		})
	}

	grid := MonthGrid{Year: first.Year, Month: first.Month}
	for len(cells) > 0 {
		n := 7
		if len(cells) < n {
			n = len(cells)
		}
		grid.Weeks = append(grid.Weeks, cells[:n])
		cells = cells[n:]
	}
	return grid
}
