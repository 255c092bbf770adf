package booking

// SelectionState names the phases of the two-click range picker.
type SelectionState int

const (
	// SelectionEmpty means no day has been picked yet.
	SelectionEmpty SelectionState = iota
	// SelectionStartOnly means a start day is picked and the picker is
	// waiting for the end day.
	SelectionStartOnly
	// SelectionComplete means both days are picked and the booking
	// confirmation flow may begin.
	SelectionComplete
)

// Selection is the transient state of the date range picker.  The
// first click sets the start day, the second the end day.  Clicking a
// day before the current start while waiting for the end replaces the
// start instead of erroring, and any click after a complete selection
// restarts with that day as the new start.
type Selection struct {
	Start Date
	End   Date
}

// State derives the picker phase from which days are set.
func (s Selection) State() SelectionState {
	switch {
	case s.Start.IsZero():
		return SelectionEmpty
	case s.End.IsZero():
		return SelectionStartOnly
	default:
		return SelectionComplete
	}
}

// SelectDay advances the picker with a clicked day and returns the new
// state.
func (s *Selection) SelectDay(day Date) SelectionState {
	switch s.State() {
	case SelectionEmpty:
		s.Start = day
	case SelectionStartOnly:
		if day.Before(s.Start) {
			s.Start = day
		} else {
			s.End = day
		}
	default:
		s.Start = day
		s.End = Date{}
	}
	return s.State()
}

// Clear resets the picker to its empty state.
func (s *Selection) Clear() { *s = Selection{} }

// Contains reports whether a day falls inside the current selection.
// With only a start picked, just that day matches.
func (s Selection) Contains(day Date) bool {
	switch s.State() {
	case SelectionEmpty:
		return false
	case SelectionStartOnly:
		return day.Equal(s.Start)
	default:
		return !day.Before(s.Start) && !day.After(s.End)
	}
}
