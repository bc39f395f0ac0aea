package state

import (
	"fmt"
	"image/color"
	"slices"

	"PixelLab/internal/vector"
)

// Select adds o to the selection. Selecting an object twice has no effect.
func (m *Manager) Select(o vector.Object) {
	if o == nil || o.IsSelected() {
		return
	}
	o.SetSelected(true)
	m.selection = append(m.selection, o)
}

// Deselect removes o from the selection.
func (m *Manager) Deselect(o vector.Object) {
	if o == nil {
		return
	}
	if i := slices.Index(m.selection, o); i >= 0 {
		m.selection = slices.Delete(m.selection, i, i+1)
	}
	o.SetSelected(false)
}

// DeselectAll empties the selection.
func (m *Manager) DeselectAll() {
	for _, o := range m.selection {
		o.SetSelected(false)
	}
	m.selection = nil
}

// Selection returns the selected objects in the order they were selected.
func (m *Manager) Selection() []vector.Object {
	return slices.Clone(m.selection)
}

// SelectionLen returns the number of selected objects.
func (m *Manager) SelectionLen() int { return len(m.selection) }

// SelectOnly replaces the selection with o.
func (m *Manager) SelectOnly(o vector.Object) {
	m.DeselectAll()
	m.Select(o)
}

// SelectIn adds every hittable object whose bounds intersect b to the
// selection and returns how many objects are selected afterwards.
func (m *Manager) SelectIn(b vector.Bounds) int {
	for _, o := range m.ObjectsIn(b) {
		m.Select(o)
	}
	return len(m.selection)
}

// DeleteSelected removes every selected object whose layer is unlocked and
// returns how many were removed. The whole selection is cleared either way,
// including objects on locked layers that were kept.
func (m *Manager) DeleteSelected() int {
	n := 0
	for _, o := range m.selection {
		if l := m.LayerOf(o); l != nil && !l.Locked {
			m.detach(o)
			n++
		}
	}
	m.DeselectAll()
	if n > 0 {
		m.record(Event{Kind: EventDeletedObjects, Count: n})
	}
	return n
}

// TranslateSelected moves every selected object on an unlocked layer by
// (dx, dy) and returns how many moved.
func (m *Manager) TranslateSelected(dx, dy int) int {
	n := 0
	for _, o := range m.selection {
		if l := m.LayerOf(o); l != nil && !l.Locked {
			o.Translate(dx, dy)
			n++
		}
	}
	return n
}

// GroupSelected moves the selected objects into a new Group on the current
// layer, keeping their selection order, and selects the group alone.
// Selected objects on locked layers are excluded from the group and stay
// where they are, so they do not count toward the two members a group
// needs. It returns nil when fewer than two objects can be grouped or the
// current layer is locked.
func (m *Manager) GroupSelected() *vector.Group {
	if m.CurrentLayer().Locked {
		return nil
	}
	var members []vector.Object
	for _, o := range m.selection {
		if l := m.LayerOf(o); l != nil && !l.Locked {
			members = append(members, o)
		}
	}
	if len(members) < 2 {
		return nil
	}
	g := vector.NewGroup(fmt.Sprintf("Group %d", m.Len()))
	for _, o := range members {
		m.detach(o)
		m.Deselect(o)
		g.Add(o)
	}
	m.attach(m.CurrentLayer(), g)
	m.DeselectAll()
	m.Select(g)
	m.record(Event{Kind: EventGroupedObjects, Count: len(members)})
	return g
}

// UngroupSelected dissolves every selected group on an unlocked layer,
// splicing its children into the group's layer at the group's position.
// The released children join the selection in place of their groups; other
// selected objects stay selected. It returns the number of released children.
func (m *Manager) UngroupSelected() int {
	var released []vector.Object
	groups := 0
	for _, o := range slices.Clone(m.selection) {
		g, ok := vector.IsGroup(o)
		if !ok {
			continue
		}
		l := m.LayerOf(g)
		if l == nil || l.Locked {
			continue
		}
		m.Deselect(g)
		_, at := m.detach(g)
		children := g.Ungroup()
		l.insert(at, children...)
		for _, c := range children {
			m.owner[c.ID()] = l
		}
		released = append(released, children...)
		groups++
	}
	for _, c := range released {
		m.Select(c)
	}
	if groups > 0 {
		m.record(Event{Kind: EventUngroupedObjects, Count: groups})
	}
	return len(released)
}

// ChangeSelectedColor recolors the selection and returns how many objects
// took the color. A selected group passes the color to its direct children.
func (m *Manager) ChangeSelectedColor(c color.NRGBA) int {
	n := 0
	recolor := func(o vector.Object) {
		if co, ok := o.(vector.Colored); ok {
			co.SetColor(c)
			n++
		}
	}
	for _, o := range m.selection {
		if g, ok := vector.IsGroup(o); ok {
			for _, child := range g.Children() {
				recolor(child)
			}
			continue
		}
		recolor(o)
	}
	if n > 0 {
		m.record(Event{Kind: EventChangedColor, Count: n})
	}
	return n
}
