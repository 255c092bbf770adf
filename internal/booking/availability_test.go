package booking

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func stay(t *testing.T, start, end string) Stay {
	t.Helper()
	return Stay{Start: mustDate(t, start), End: mustDate(t, end)}
}

func TestRangesOverlap(t *testing.T) {
	cases := []struct {
		name         string
		aStart, aEnd string
		bStart, bEnd string
		want         bool
	}{
		{"genuine overlap", "2025-06-10", "2025-06-15", "2025-06-12", "2025-06-14", true},
		{"contained", "2025-06-12", "2025-06-14", "2025-06-10", "2025-06-15", true},
		{"identical range", "2025-06-10", "2025-06-15", "2025-06-10", "2025-06-15", true},
		{"shared start", "2025-06-10", "2025-06-12", "2025-06-10", "2025-06-15", true},
		{"touch at boundary", "2025-06-10", "2025-06-12", "2025-06-12", "2025-06-15", false},
		{"touch at other boundary", "2025-06-12", "2025-06-15", "2025-06-10", "2025-06-12", false},
		{"disjoint", "2025-06-01", "2025-06-05", "2025-06-10", "2025-06-15", false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := RangesOverlap(mustDate(t, tc.aStart), mustDate(t, tc.aEnd), mustDate(t, tc.bStart), mustDate(t, tc.bEnd))
			assert.Equal(t, tc.want, got)
			// Overlap is symmetric in its two ranges.
			sym := RangesOverlap(mustDate(t, tc.bStart), mustDate(t, tc.bEnd), mustDate(t, tc.aStart), mustDate(t, tc.aEnd))
			assert.Equal(t, got, sym, "symmetry violated")
		})
	}
}

func TestIsDayBookedInteriorDays(t *testing.T) {
	stays := []Stay{stay(t, "2025-07-04", "2025-07-10")}
	for d := mustDate(t, "2025-07-04"); !d.After(mustDate(t, "2025-07-10")); d = d.AddDays(1) {
		assert.True(t, IsDayBooked(stays, d), "day %s", d)
	}
	assert.False(t, IsDayBooked(stays, mustDate(t, "2025-07-03")))
	assert.False(t, IsDayBooked(stays, mustDate(t, "2025-07-11")))
}

func TestIsDayBookedTurnoverDay(t *testing.T) {
	// July 10 ends one stay and starts the next: the checkout/checkin
	// handoff day is free to render and select.
	stays := []Stay{
		stay(t, "2025-07-04", "2025-07-10"),
		stay(t, "2025-07-10", "2025-07-15"),
	}
	assert.False(t, IsDayBooked(stays, mustDate(t, "2025-07-10")))
	assert.True(t, IsDayBooked(stays, mustDate(t, "2025-07-09")))
	assert.True(t, IsDayBooked(stays, mustDate(t, "2025-07-11")))
}

func TestIsDayBookedIgnoresRejected(t *testing.T) {
	stays := []Stay{{Start: mustDate(t, "2025-07-04"), End: mustDate(t, "2025-07-10"), Rejected: true}}
	assert.False(t, IsDayBooked(stays, mustDate(t, "2025-07-06")))

	// A rejected end date does not create a fake turnover slot.
	stays = append(stays, stay(t, "2025-07-08", "2025-07-12"))
	assert.True(t, IsDayBooked(stays, mustDate(t, "2025-07-10")))
}

func TestConflicts(t *testing.T) {
	stays := []Stay{
		stay(t, "2025-06-01", "2025-06-05"),
		{Start: mustDate(t, "2025-06-10"), End: mustDate(t, "2025-06-15"), Rejected: true},
		stay(t, "2025-06-20", "2025-06-25"),
	}

	// Overlaps only the rejected stay: no conflict.
	assert.False(t, HasConflict(stays, mustDate(t, "2025-06-11"), mustDate(t, "2025-06-13")))

	// Boundary touch with the first stay: allowed.
	assert.False(t, HasConflict(stays, mustDate(t, "2025-06-05"), mustDate(t, "2025-06-08")))

	got := Conflicts(stays, mustDate(t, "2025-06-04"), mustDate(t, "2025-06-21"))
	assert.Len(t, got, 2)
}
