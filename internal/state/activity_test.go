package state

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"PixelLab/internal/vector"
)

func TestLogIsBounded(t *testing.T) {
	m := newTestManager()
	for i := 0; i < MaxLogEntries+20; i++ {
		m.AddObject(vector.NewPoint(i, 0, red))
	}
	entries := m.Log().Entries()
	assert.Len(t, entries, MaxLogEntries)
	assert.Equal(t, EventAddedObject, entries[0].Kind)
	for i := 1; i < len(entries); i++ {
		assert.Greater(t, entries[i].Seq, entries[i-1].Seq)
	}
}

func TestEventsAreStructured(t *testing.T) {
	m := newTestManager()
	m.AddObject(vector.NewCircle(1, 1, 1, red, true))
	last, _ := m.Log().Last()
	assert.Equal(t, EventAddedObject, last.Kind)
	assert.Equal(t, "Circle", last.Type)
	assert.Equal(t, "Added Circle", EnglishLabels.Label(last))

	loud := LabelFunc(func(e Event) string { return string(e.Kind) + "!" })
	assert.Equal(t, "added_obj!", loud.Label(last))
}

func TestClockUpdateNeverGoesBack(t *testing.T) {
	c := NewClock(nil)
	c.Update(10)
	assert.Equal(t, uint64(11), c.Tick())
	c.Update(3)
	assert.Equal(t, uint64(12), c.Tick())
}
