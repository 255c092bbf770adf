package booking

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildMonthGridLeadingPlaceholders(t *testing.T) {
	// June 1 2025 is a Sunday, so a Monday-first grid has six empty
	// leading cells.
	grid := BuildMonthGrid(2025, time.June, nil, Selection{}, Date{})
	require.NotEmpty(t, grid.Weeks)
	first := grid.Weeks[0]
	require.Len(t, first, 7)
	for i := 0; i < 6; i++ {
		assert.Nil(t, first[i], "cell %d", i)
	}
	require.NotNil(t, first[6])
	assert.Equal(t, "2025-06-01", first[6].Date.String())

	// September 1 2025 is a Monday: no placeholders at all.
	grid = BuildMonthGrid(2025, time.September, nil, Selection{}, Date{})
	require.NotNil(t, grid.Weeks[0][0])
	assert.Equal(t, "2025-09-01", grid.Weeks[0][0].Date.String())
}

func TestBuildMonthGridCellCount(t *testing.T) {
	grid := BuildMonthGrid(2025, time.June, nil, Selection{}, Date{})
	var days int
	for _, week := range grid.Weeks {
		assert.LessOrEqual(t, len(week), 7)
		for _, cell := range week {
			if cell != nil {
				days++
			}
		}
	}
	assert.Equal(t, 30, days)
}

func TestBuildMonthGridMarkers(t *testing.T) {
	stays := []Stay{stay(t, "2025-06-10", "2025-06-12")}
	var sel Selection
	sel.SelectDay(mustDate(t, "2025-06-20"))
	sel.SelectDay(mustDate(t, "2025-06-22"))
	today := mustDate(t, "2025-06-15")

	grid := BuildMonthGrid(2025, time.June, stays, sel, today)

	byDay := map[string]*DayCell{}
	for _, week := range grid.Weeks {
		for _, cell := range week {
			if cell != nil {
				byDay[cell.Date.String()] = cell
			}
		}
	}

	assert.True(t, byDay["2025-06-10"].Booked)
	assert.True(t, byDay["2025-06-11"].Booked)
	assert.False(t, byDay["2025-06-13"].Booked)

	assert.True(t, byDay["2025-06-20"].Selected)
	assert.True(t, byDay["2025-06-21"].Selected)
	assert.False(t, byDay["2025-06-23"].Selected)

	assert.True(t, byDay["2025-06-15"].Today)
	assert.False(t, byDay["2025-06-14"].Today)

	// Week numbers ride along on every cell.
	assert.Equal(t, ISOWeek(mustDate(t, "2025-06-10")), byDay["2025-06-10"].Week)
}

func TestBuildMonthGridFebruary(t *testing.T) {
	grid := BuildMonthGrid(2024, time.February, nil, Selection{}, Date{})
	var last *DayCell
	for _, week := range grid.Weeks {
		for _, cell := range week {
			if cell != nil {
				last = cell
			}
		}
	}
	require.NotNil(t, last)
	assert.Equal(t, "2024-02-29", last.Date.String())
}
