package state

import "PixelLab/internal/vector"

// Z-order changes act on each unlocked layer separately, and only on the
// selected objects living in that layer.

// MoveSelectedUp moves each selected object one step toward the top of its
// layer. Objects are visited top down so no object is moved twice, and a
// selected object never jumps over another selected one.
func (m *Manager) MoveSelectedUp() bool {
	moved := false
	for _, l := range m.layers {
		if l.Locked {
			continue
		}
		objs := l.objects
		for i := len(objs) - 2; i >= 0; i-- {
			if objs[i].IsSelected() && !objs[i+1].IsSelected() {
				objs[i], objs[i+1] = objs[i+1], objs[i]
				moved = true
			}
		}
	}
	if moved {
		m.record(Event{Kind: EventMovedForward})
	}
	return moved
}

// MoveSelectedDown moves each selected object one step toward the bottom of
// its layer, visiting objects bottom up.
func (m *Manager) MoveSelectedDown() bool {
	moved := false
	for _, l := range m.layers {
		if l.Locked {
			continue
		}
		objs := l.objects
		for i := 1; i < len(objs); i++ {
			if objs[i].IsSelected() && !objs[i-1].IsSelected() {
				objs[i], objs[i-1] = objs[i-1], objs[i]
				moved = true
			}
		}
	}
	if moved {
		m.record(Event{Kind: EventMovedBackward})
	}
	return moved
}

// MoveSelectedToFront lifts the selected objects of each layer to its top,
// keeping their relative order.
func (m *Manager) MoveSelectedToFront() bool {
	moved := false
	for _, l := range m.layers {
		if l.Locked {
			continue
		}
		sel, rest := partition(l)
		if len(sel) == 0 {
			continue
		}
		l.objects = append(rest, sel...)
		moved = true
	}
	if moved {
		m.record(Event{Kind: EventMovedToFront})
	}
	return moved
}

// MoveSelectedToBack drops the selected objects of each layer to its
// bottom, keeping their relative order.
func (m *Manager) MoveSelectedToBack() bool {
	moved := false
	for _, l := range m.layers {
		if l.Locked {
			continue
		}
		sel, rest := partition(l)
		if len(sel) == 0 {
			continue
		}
		l.objects = append(sel, rest...)
		moved = true
	}
	if moved {
		m.record(Event{Kind: EventMovedToBack})
	}
	return moved
}

func partition(l *Layer) (sel, rest []vector.Object) {
	for _, o := range l.objects {
		if o.IsSelected() {
			sel = append(sel, o)
		} else {
			rest = append(rest, o)
		}
	}
	return sel, rest
}
