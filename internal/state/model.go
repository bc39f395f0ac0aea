package state

import (
	"slices"

	"PixelLab/internal/vector"
)

// Layer is an ordered stack of objects. Later objects are drawn on top.
// The object list is only changed through the Manager so that the owner
// index stays in step with it.
type Layer struct {
	Name    string
	Visible bool
	Locked  bool
	objects []vector.Object
}

// NewLayer returns an empty, visible, unlocked layer.
func NewLayer(name string) *Layer {
	return &Layer{Name: name, Visible: true}
}

// Objects returns the layer's objects bottom to top. The slice is a copy.
func (l *Layer) Objects() []vector.Object {
	return slices.Clone(l.objects)
}

// Len returns the number of top-level objects on the layer.
func (l *Layer) Len() int { return len(l.objects) }

// Editable reports whether the layer accepts changes.
func (l *Layer) Editable() bool { return !l.Locked }

// Hittable reports whether the layer takes part in picking: it must be both
// visible and unlocked.
func (l *Layer) Hittable() bool { return l.Visible && !l.Locked }

func (l *Layer) indexOf(o vector.Object) int {
	return slices.Index(l.objects, o)
}

func (l *Layer) push(o vector.Object) {
	l.objects = append(l.objects, o)
}

func (l *Layer) insert(i int, objs ...vector.Object) {
	l.objects = slices.Insert(l.objects, i, objs...)
}

func (l *Layer) remove(o vector.Object) int {
	i := l.indexOf(o)
	if i >= 0 {
		l.objects = slices.Delete(l.objects, i, i+1)
	}
	return i
}

func (l *Layer) clone() *Layer {
	return &Layer{
		Name:    l.Name,
		Visible: l.Visible,
		Locked:  l.Locked,
		objects: vector.CloneAll(l.objects),
	}
}
