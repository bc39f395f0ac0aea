// Package state holds the document being edited: an ordered stack of
// layers, the objects on them, the current selection and the activity log.
//
// All mutation happens on one goroutine. No-op requests (a locked layer,
// too few objects to group, an empty selection) return false, nil or zero
// and are logged; they are never errors.
package state

import (
	"fmt"
	"log"

	"PixelLab/internal/vector"
)

// Manager owns the layers of one document.
type Manager struct {
	layers  []*Layer
	current int

	// owner maps every top-level object to the layer holding it. Objects
	// nested in groups are owned by their group and are not indexed.
	owner map[vector.ID]*Layer

	selection []vector.Object
	clock     *Clock
	log       *Log
	palette   *Palette
}

// Option configures a Manager.
type Option func(*Manager)

// WithClock sets the clock used to stamp log entries.
func WithClock(c *Clock) Option {
	return func(m *Manager) { m.clock = c }
}

// WithPalette seeds the document palette.
func WithPalette(p *Palette) Option {
	return func(m *Manager) { m.palette = p }
}

// NewManager returns a document with a single empty layer.
func NewManager(opts ...Option) *Manager {
	m := &Manager{}
	for _, opt := range opts {
		opt(m)
	}
	if m.clock == nil {
		m.clock = NewClock(nil)
	}
	if m.palette == nil {
		m.palette = DefaultPalette()
	}
	m.log = newLog(m.clock)
	m.reset()
	m.record(Event{Kind: EventProjectInitialized})
	return m
}

func (m *Manager) reset() {
	m.layers = []*Layer{NewLayer("Layer 1")}
	m.current = 0
	m.owner = make(map[vector.ID]*Layer)
	m.selection = nil
}

func (m *Manager) record(e Event) {
	e = m.log.Append(e)
	log.Printf("[STATE] %s", EnglishLabels.Label(e))
}

// Log returns the activity log.
func (m *Manager) Log() *Log { return m.log }

// Palette returns the document palette.
func (m *Manager) Palette() *Palette { return m.palette }

// Layers returns the layers bottom to top. The slice is a copy; the layers
// themselves are shared.
func (m *Manager) Layers() []*Layer {
	return append([]*Layer(nil), m.layers...)
}

// Layer returns the layer at index i, or nil.
func (m *Manager) Layer(i int) *Layer {
	if i < 0 || i >= len(m.layers) {
		return nil
	}
	return m.layers[i]
}

// LayerCount returns the number of layers, always at least one.
func (m *Manager) LayerCount() int { return len(m.layers) }

// CurrentLayer returns the layer new objects are added to.
func (m *Manager) CurrentLayer() *Layer { return m.layers[m.current] }

// CurrentLayerIndex returns the index of the current layer.
func (m *Manager) CurrentLayerIndex() int { return m.current }

// SetCurrentLayer makes layer i current. It reports false for an index out
// of range.
func (m *Manager) SetCurrentLayer(i int) bool {
	if i < 0 || i >= len(m.layers) {
		return false
	}
	m.current = i
	return true
}

// AddLayer appends a layer on top and makes it current. An empty name
// becomes "Layer N".
func (m *Manager) AddLayer(name string) *Layer {
	if name == "" {
		name = fmt.Sprintf("Layer %d", len(m.layers)+1)
	}
	l := NewLayer(name)
	m.layers = append(m.layers, l)
	m.current = len(m.layers) - 1
	m.record(Event{Kind: EventAddedLayer, Name: name})
	return l
}

// RemoveLayer destroys layer i and everything on it. The last remaining
// layer is never removed.
func (m *Manager) RemoveLayer(i int) bool {
	if len(m.layers) <= 1 || i < 0 || i >= len(m.layers) {
		return false
	}
	l := m.layers[i]
	for _, o := range l.objects {
		m.Deselect(o)
		delete(m.owner, o.ID())
	}
	l.objects = nil
	m.layers = append(m.layers[:i], m.layers[i+1:]...)
	if i < m.current {
		m.current--
	}
	m.current = min(m.current, len(m.layers)-1)
	m.record(Event{Kind: EventRemovedLayer, Name: l.Name})
	return true
}

// RenameLayer renames layer i.
func (m *Manager) RenameLayer(i int, name string) bool {
	l := m.Layer(i)
	if l == nil || name == "" {
		return false
	}
	l.Name = name
	m.record(Event{Kind: EventRenamedLayer, Name: name})
	return true
}

// SetLayerVisible shows or hides layer i.
func (m *Manager) SetLayerVisible(i int, visible bool) bool {
	l := m.Layer(i)
	if l == nil {
		return false
	}
	l.Visible = visible
	return true
}

// SetLayerLocked locks or unlocks layer i.
func (m *Manager) SetLayerLocked(i int, locked bool) bool {
	l := m.Layer(i)
	if l == nil {
		return false
	}
	l.Locked = locked
	return true
}

// MoveLayer moves layer from to position to in the stack, keeping the same
// layer current.
func (m *Manager) MoveLayer(from, to int) bool {
	if from < 0 || from >= len(m.layers) || to < 0 || to >= len(m.layers) || from == to {
		return false
	}
	cur := m.layers[m.current]
	l := m.layers[from]
	m.layers = append(m.layers[:from], m.layers[from+1:]...)
	m.layers = append(m.layers[:to], append([]*Layer{l}, m.layers[to:]...)...)
	for i, x := range m.layers {
		if x == cur {
			m.current = i
		}
	}
	m.record(Event{Kind: EventMovedLayer, Name: l.Name})
	return true
}

// Clear resets the document to a single empty layer.
func (m *Manager) Clear() {
	m.DeselectAll()
	m.reset()
	m.record(Event{Kind: EventCanvasCleared})
}

// LayerOf returns the layer owning a top-level object, or nil.
func (m *Manager) LayerOf(o vector.Object) *Layer {
	if o == nil {
		return nil
	}
	return m.owner[o.ID()]
}

// Len returns the number of top-level objects across all layers.
func (m *Manager) Len() int {
	return len(m.owner)
}

// All returns every top-level object, bottom layer first, bottom object
// first within a layer.
func (m *Manager) All() []vector.Object {
	var out []vector.Object
	for _, l := range m.layers {
		out = append(out, l.objects...)
	}
	return out
}

func typeName(o vector.Object) string {
	switch o.Kind() {
	case vector.KindPoint:
		return "Point"
	case vector.KindLine:
		return "Line"
	case vector.KindRectangle:
		return "Rectangle"
	case vector.KindCircle:
		return "Circle"
	case vector.KindPath:
		return "Path"
	case vector.KindGroup:
		return "Group"
	}
	return string(o.Kind())
}

// attach appends o on top of l and indexes it.
func (m *Manager) attach(l *Layer, o vector.Object) {
	l.push(o)
	m.owner[o.ID()] = l
}

// detach removes o from its owning layer and the index, returning the layer
// and the index o held in it.
func (m *Manager) detach(o vector.Object) (*Layer, int) {
	l := m.owner[o.ID()]
	if l == nil {
		return nil, -1
	}
	i := l.remove(o)
	delete(m.owner, o.ID())
	return l, i
}

// AddObject appends o on top of the current layer. It is a logged no-op when
// the current layer is locked or o already belongs to a layer.
func (m *Manager) AddObject(o vector.Object) bool {
	if o == nil {
		return false
	}
	cur := m.CurrentLayer()
	if cur.Locked {
		m.record(Event{Kind: EventAddRejected, Name: cur.Name, Type: typeName(o)})
		return false
	}
	if m.owner[o.ID()] != nil {
		return false
	}
	m.attach(cur, o)
	m.record(Event{Kind: EventAddedObject, Type: typeName(o)})
	return true
}

// AddImported places an imported group on the current layer. It follows the
// rules of AddObject but logs the source name and pixel count instead.
func (m *Manager) AddImported(g *vector.Group, source string) bool {
	if g == nil {
		return false
	}
	cur := m.CurrentLayer()
	if cur.Locked {
		m.record(Event{Kind: EventAddRejected, Name: cur.Name, Type: typeName(g)})
		return false
	}
	if m.owner[g.ID()] != nil {
		return false
	}
	m.attach(cur, g)
	m.record(Event{Kind: EventImported, Name: source, Count: g.Len()})
	return true
}

// RemoveObject destroys o if its layer is unlocked.
func (m *Manager) RemoveObject(o vector.Object) bool {
	l := m.LayerOf(o)
	if l == nil || l.Locked {
		return false
	}
	m.Deselect(o)
	m.detach(o)
	m.record(Event{Kind: EventRemovedObject, Type: typeName(o)})
	return true
}

// ObjectAt returns the topmost object under (x, y). Layers are searched top
// to bottom and objects top to bottom within a layer; hidden and locked
// layers are skipped entirely.
func (m *Manager) ObjectAt(x, y int) vector.Object {
	for i := len(m.layers) - 1; i >= 0; i-- {
		l := m.layers[i]
		if !l.Hittable() {
			continue
		}
		for j := len(l.objects) - 1; j >= 0; j-- {
			if o := l.objects[j]; o.ContainsPoint(x, y) {
				return o
			}
		}
	}
	return nil
}

// ObjectsIn returns every object on a visible, unlocked layer whose bounds
// intersect b, in the order of All.
func (m *Manager) ObjectsIn(b vector.Bounds) []vector.Object {
	var out []vector.Object
	for _, l := range m.layers {
		if !l.Hittable() {
			continue
		}
		for _, o := range l.objects {
			if o.Bounds().Intersects(b) {
				out = append(out, o)
			}
		}
	}
	return out
}
