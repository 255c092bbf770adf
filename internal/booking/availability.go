package booking

// Stay is an existing booking's date range as seen by the availability
// rules.  Start and End are both inclusive calendar days.  Rejected
// stays never block anything.
type Stay struct {
	Start    Date
	End      Date
	Rejected bool
}

// RangesOverlap reports whether two inclusive date ranges collide.
// Ranges that touch only at a shared boundary day do not overlap: a
// guest may check in on the same day another checks out.
func RangesOverlap(aStart, aEnd, bStart, bEnd Date) bool {
	if aEnd.Equal(bStart) || aStart.Equal(bEnd) {
		return false
	}
	return aStart.Before(bEnd) && aEnd.After(bStart)
}

// IsDayBooked reports whether a day is taken by any non-rejected stay.
// A day that is simultaneously the end of one stay and the start of
// another counts as free; that is the same-day turnover slot.
func IsDayBooked(stays []Stay, day Date) bool {
	var isEnd, isStart bool
	for _, s := range stays {
		if s.Rejected {
			continue
		}
		if s.End.Equal(day) {
			isEnd = true
		}
		if s.Start.Equal(day) {
			isStart = true
		}
	}
	if isEnd && isStart {
		return false
	}
	for _, s := range stays {
		if s.Rejected {
			continue
		}
		if !day.Before(s.Start) && !day.After(s.End) {
			return true
		}
	}
	return false
}

// Conflicts returns the non-rejected stays that collide with the
// candidate range [start, end].
func Conflicts(stays []Stay, start, end Date) []Stay {
	var out []Stay
	for _, s := range stays {
		if s.Rejected {
			continue
		}
		if RangesOverlap(start, end, s.Start, s.End) {
			out = append(out, s)
		}
	}
	return out
}

// HasConflict reports whether the candidate range collides with any
// non-rejected stay.
func HasConflict(stays []Stay, start, end Date) bool {
	return len(Conflicts(stays, start, end)) > 0
}
