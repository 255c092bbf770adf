package booking

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSelectionTwoClickFlow(t *testing.T) {
	var sel Selection
	assert.Equal(t, SelectionEmpty, sel.State())

	a := mustDate(t, "2025-08-10")
	b := mustDate(t, "2025-08-14")

	assert.Equal(t, SelectionStartOnly, sel.SelectDay(a))
	assert.Equal(t, a, sel.Start)

	assert.Equal(t, SelectionComplete, sel.SelectDay(b))
	assert.Equal(t, a, sel.Start)
	assert.Equal(t, b, sel.End)
}

func TestSelectionEarlierDayReplacesStart(t *testing.T) {
	var sel Selection
	a := mustDate(t, "2025-08-10")
	c := mustDate(t, "2025-08-07")

	sel.SelectDay(a)
	// Picking a day before the current start is not an error; it just
	// moves the start.
	assert.Equal(t, SelectionStartOnly, sel.SelectDay(c))
	assert.Equal(t, c, sel.Start)
	assert.True(t, sel.End.IsZero())
}

func TestSelectionSameDayCompletes(t *testing.T) {
	var sel Selection
	a := mustDate(t, "2025-08-10")
	sel.SelectDay(a)
	assert.Equal(t, SelectionComplete, sel.SelectDay(a))
	assert.Equal(t, a, sel.Start)
	assert.Equal(t, a, sel.End)
}

func TestSelectionRestartAfterComplete(t *testing.T) {
	var sel Selection
	sel.SelectDay(mustDate(t, "2025-08-10"))
	sel.SelectDay(mustDate(t, "2025-08-14"))

	d := mustDate(t, "2025-09-01")
	assert.Equal(t, SelectionStartOnly, sel.SelectDay(d))
	assert.Equal(t, d, sel.Start)
	assert.True(t, sel.End.IsZero())
}

func TestSelectionContains(t *testing.T) {
	var sel Selection
	assert.False(t, sel.Contains(mustDate(t, "2025-08-10")))

	sel.SelectDay(mustDate(t, "2025-08-10"))
	assert.True(t, sel.Contains(mustDate(t, "2025-08-10")))
	assert.False(t, sel.Contains(mustDate(t, "2025-08-11")))

	sel.SelectDay(mustDate(t, "2025-08-12"))
	assert.True(t, sel.Contains(mustDate(t, "2025-08-11")))
	assert.False(t, sel.Contains(mustDate(t, "2025-08-13")))
}

func TestSelectionClear(t *testing.T) {
	var sel Selection
	sel.SelectDay(mustDate(t, "2025-08-10"))
	sel.Clear()
	assert.Equal(t, SelectionEmpty, sel.State())
}
