package state

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"PixelLab/internal/vector"
)

func TestSnapshotIsDeep(t *testing.T) {
	m := newTestManager()
	p := vector.NewPoint(1, 1, red)
	m.AddObject(p)
	s := m.Snapshot()

	p.Translate(5, 5)
	m.AddObject(vector.NewPoint(2, 2, red))
	m.Restore(s)

	require.Equal(t, 1, m.Len())
	got := m.CurrentLayer().Objects()[0]
	assert.Equal(t, p.ID(), got.ID())
	assert.Equal(t, vector.NewBounds(1, 1, 1, 1), got.Bounds())
	assert.NotSame(t, p, got)
	assert.Same(t, m.CurrentLayer(), m.LayerOf(got))
}

func TestRestoreClearsSelection(t *testing.T) {
	m := newTestManager()
	p := vector.NewPoint(1, 1, red)
	m.AddObject(p)
	s := m.Snapshot()
	m.Select(p)
	m.Restore(s)
	assert.Zero(t, m.SelectionLen())
	assert.False(t, m.CurrentLayer().Objects()[0].IsSelected())
}

func TestHistoryUndoRedo(t *testing.T) {
	m := newTestManager()
	h := NewHistory(10)
	h.Push(m.Snapshot())
	assert.False(t, h.CanUndo())

	m.AddObject(vector.NewPoint(0, 0, red))
	h.Push(m.Snapshot())
	m.AddObject(vector.NewPoint(1, 0, red))
	h.Push(m.Snapshot())

	s, ok := h.Undo()
	require.True(t, ok)
	m.Restore(s)
	assert.Equal(t, 1, m.Len())
	assert.True(t, h.CanRedo())

	s, ok = h.Redo()
	require.True(t, ok)
	m.Restore(s)
	assert.Equal(t, 2, m.Len())
	assert.False(t, h.CanRedo())

	h.Undo()
	h.Push(m.Snapshot())
	assert.False(t, h.CanRedo(), "push drops redo")
}

func TestHistoryIsBounded(t *testing.T) {
	h := NewHistory(3)
	for i := 0; i < 5; i++ {
		m := newTestManager()
		for j := 0; j < i; j++ {
			m.AddObject(vector.NewPoint(j, 0, red))
		}
		h.Push(m.Snapshot())
	}
	assert.Equal(t, 3, h.Len())
	s, _ := h.Undo()
	s, _ = h.Undo()
	assert.Equal(t, 2, s.ObjectCount())
	assert.False(t, h.CanUndo())
}
