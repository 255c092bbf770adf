package booking

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func testTable() *PriceTable {
	return &PriceTable{
		Rates: map[int]Rates{
			2025: {Year: 2025, Low: 350, High: 450, Tennis: 550},
		},
		Seasons: map[int]map[int]SeasonKind{
			2025: {
				27: SeasonHigh,
				28: SeasonHigh,
				29: SeasonTennis,
			},
		},
		BasePrice: 400,
	}
}

func TestSeasonForWeekDefaultsToLow(t *testing.T) {
	pt := testTable()
	assert.Equal(t, SeasonHigh, pt.SeasonForWeek(2025, 27))
	assert.Equal(t, SeasonTennis, pt.SeasonForWeek(2025, 29))
	assert.Equal(t, SeasonLow, pt.SeasonForWeek(2025, 3))
	assert.Equal(t, SeasonLow, pt.SeasonForWeek(2030, 27))
}

func TestPriceForNight(t *testing.T) {
	pt := testTable()
	// 2025-06-30 .. 2025-07-06 is ISO week 27 (high season).
	assert.Equal(t, int64(450), pt.PriceForNight(mustDate(t, "2025-07-01")))
	// Week 29 is the tennis week.
	assert.Equal(t, int64(550), pt.PriceForNight(mustDate(t, "2025-07-15")))
	// Unassigned week prices as low season.
	assert.Equal(t, int64(350), pt.PriceForNight(mustDate(t, "2025-03-03")))
	// No season table for 2026: apartment base price applies.
	assert.Equal(t, int64(400), pt.PriceForNight(mustDate(t, "2026-07-01")))
}

func TestTotalPriceChargesNightsNotCheckout(t *testing.T) {
	pt := testTable()

	// Two nights inside high-season week 27.
	total := pt.TotalPrice(mustDate(t, "2025-07-01"), mustDate(t, "2025-07-03"))
	assert.Equal(t, int64(2*450), total)
	assert.Equal(t, 2, Nights(mustDate(t, "2025-07-01"), mustDate(t, "2025-07-03")))

	// Zero-night stay costs nothing.
	assert.Equal(t, int64(0), pt.TotalPrice(mustDate(t, "2025-07-01"), mustDate(t, "2025-07-01")))
	assert.Equal(t, 0, Nights(mustDate(t, "2025-07-01"), mustDate(t, "2025-07-01")))
}

func TestTotalPriceSpansSeasons(t *testing.T) {
	pt := testTable()
	// Sunday of week 26 (low) followed by Monday of week 27 (high):
	// one low night plus one high night.
	start := mustDate(t, "2025-06-29")
	assert.Equal(t, 7, start.ISOWeekday())
	assert.Equal(t, 26, ISOWeek(start))
	assert.Equal(t, 27, ISOWeek(start.AddDays(1)))

	total := pt.TotalPrice(start, start.AddDays(2))
	assert.Equal(t, int64(350+450), total)
}

func TestTotalPriceSpansYears(t *testing.T) {
	pt := testTable()
	// Dec 31 2025 (week 1 of 2026, but rated by the 2025 table since
	// the calendar year is 2025) followed by Jan 1 2026 (no table,
	// base price).
	total := pt.TotalPrice(mustDate(t, "2025-12-31"), mustDate(t, "2026-01-02"))
	assert.Equal(t, int64(350+400), total)
}
