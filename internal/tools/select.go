package tools

import (
	"image"
	"image/color"

	"PixelLab/internal/vector"
)

// MarqueeColor is the color of the selection rectangle preview.
var MarqueeColor = color.NRGBA{100, 150, 255, 100}

type selectMode int

const (
	idle selectMode = iota
	moving
	marquee
)

// SelectTool picks and moves objects. Pressing on an object selects it,
// keeping the current selection if the object is already part of it, and
// dragging moves the selection. Pressing on empty canvas clears the
// selection and drags out a marquee; releasing selects every object whose
// bounds touch the marquee.
type SelectTool struct {
	mode   selectMode
	anchor image.Point
	last   image.Point
	rect   vector.Bounds
}

func NewSelect() *SelectTool { return &SelectTool{} }

func (t *SelectTool) Kind() Kind { return Select }

func (t *SelectTool) Press(x, y int, target Target) bool {
	t.anchor = image.Point{x, y}
	t.last = t.anchor
	if o := target.ObjectAt(x, y); o != nil {
		if !o.IsSelected() {
			target.SelectOnly(o)
		}
		t.mode = moving
		return false
	}
	target.DeselectAll()
	t.mode = marquee
	t.rect = vector.NewBounds(x, y, x, y)
	return false
}

// Drag moves the selection by the distance since the previous sample, or
// stretches the marquee.
func (t *SelectTool) Drag(x, y int, target Target) bool {
	switch t.mode {
	case moving:
		dx, dy := x-t.last.X, y-t.last.Y
		if dx == 0 && dy == 0 {
			return false
		}
		t.last = image.Point{x, y}
		return target.TranslateSelected(dx, dy) > 0
	case marquee:
		t.rect = vector.NewBounds(t.anchor.X, t.anchor.Y, x, y)
	}
	return false
}

func (t *SelectTool) Release(x, y int, target Target) bool {
	if t.mode == marquee {
		t.rect = vector.NewBounds(t.anchor.X, t.anchor.Y, x, y)
		target.SelectIn(t.rect)
	}
	t.mode = idle
	return false
}

// Preview is the marquee outline while one is being dragged.
func (t *SelectTool) Preview() vector.Object {
	if t.mode != marquee {
		return nil
	}
	return vector.NewRectangle(t.rect.MinX, t.rect.MinY, t.rect.MaxX, t.rect.MaxY, MarqueeColor, false)
}

// Moving reports whether a drag is moving the selection.
func (t *SelectTool) Moving() bool { return t.mode == moving }
