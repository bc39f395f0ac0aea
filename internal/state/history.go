package state

import "PixelLab/internal/vector"

// Snapshot is a deep copy of the layer stack and the current layer index.
// Object IDs are kept, so restoring one brings back the same identities.
type Snapshot struct {
	layers  []*Layer
	current int
}

// Snapshot copies the document's layers.
func (m *Manager) Snapshot() Snapshot {
	s := Snapshot{layers: make([]*Layer, len(m.layers)), current: m.current}
	for i, l := range m.layers {
		s.layers[i] = l.clone()
	}
	return s
}

// Restore replaces the layer stack with a copy of s and clears the
// selection. The snapshot itself stays usable.
func (m *Manager) Restore(s Snapshot) {
	if len(s.layers) == 0 {
		return
	}
	layers := make([]*Layer, len(s.layers))
	for i, l := range s.layers {
		layers[i] = l.clone()
	}
	m.install(layers, s.current)
}

// install swaps in a fully built layer stack and rebuilds the owner index.
func (m *Manager) install(layers []*Layer, current int) {
	m.DeselectAll()
	m.layers = layers
	m.current = max(0, min(current, len(layers)-1))
	m.owner = make(map[vector.ID]*Layer)
	for _, l := range layers {
		for _, o := range l.objects {
			m.owner[o.ID()] = l
		}
	}
}

// ObjectCount returns the number of top-level objects in the snapshot.
func (s Snapshot) ObjectCount() int {
	n := 0
	for _, l := range s.layers {
		n += len(l.objects)
	}
	return n
}

// DefaultHistorySize is the number of snapshots kept when none is given.
const DefaultHistorySize = 50

// History is a bounded undo/redo stack of snapshots. The newest entry is the
// current state; undo steps back to the one before it.
type History struct {
	size    int
	entries []Snapshot
	pos     int
}

// NewHistory returns a history holding at most size snapshots.
func NewHistory(size int) *History {
	if size < 2 {
		size = DefaultHistorySize
	}
	return &History{size: size, pos: -1}
}

// Push records s as the current state, dropping any redo steps and the
// oldest entry past the limit.
func (h *History) Push(s Snapshot) {
	h.entries = append(h.entries[:h.pos+1], s)
	if over := len(h.entries) - h.size; over > 0 {
		h.entries = append(h.entries[:0], h.entries[over:]...)
	}
	h.pos = len(h.entries) - 1
}

// CanUndo reports whether there is an earlier state to return to.
func (h *History) CanUndo() bool { return h.pos > 0 }

// CanRedo reports whether an undone state can be reapplied.
func (h *History) CanRedo() bool { return h.pos < len(h.entries)-1 }

// Undo steps back and returns the state to restore.
func (h *History) Undo() (Snapshot, bool) {
	if !h.CanUndo() {
		return Snapshot{}, false
	}
	h.pos--
	return h.entries[h.pos], true
}

// Redo steps forward and returns the state to restore.
func (h *History) Redo() (Snapshot, bool) {
	if !h.CanRedo() {
		return Snapshot{}, false
	}
	h.pos++
	return h.entries[h.pos], true
}

// Len returns the number of stored snapshots.
func (h *History) Len() int { return len(h.entries) }

// Reset forgets every snapshot.
func (h *History) Reset() {
	h.entries = nil
	h.pos = -1
}
