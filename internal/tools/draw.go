package tools

import (
	"image"
	"image/color"

	"PixelLab/internal/vector"
)

const (
	DefaultBrushSize  = 3
	MinBrushSize      = 1
	MaxBrushSize      = 100
	DefaultEraserSize = 3
	MinEraserSize     = 1
	MaxEraserSize     = 10
)

// PencilTool draws one-cell freehand strokes.
type PencilTool struct {
	pen
	path *vector.Path
}

func NewPencil(c color.NRGBA) *PencilTool {
	return &PencilTool{pen: pen{c}}
}

func (t *PencilTool) Kind() Kind { return Pencil }

func (t *PencilTool) Press(x, y int, _ Target) bool {
	t.path = vector.NewPath([]image.Point{{x, y}}, t.color)
	return false
}

func (t *PencilTool) Drag(x, y int, _ Target) bool {
	if t.path != nil {
		t.path.Append(x, y)
	}
	return false
}

// Release commits the stroke, or a Point if the pointer never moved.
func (t *PencilTool) Release(_, _ int, target Target) bool {
	if t.path == nil {
		return false
	}
	p := t.path
	t.path = nil
	if len(p.Points) == 1 {
		return target.AddObject(vector.NewPoint(p.Points[0].X, p.Points[0].Y, t.color))
	}
	return target.AddObject(p)
}

func (t *PencilTool) Preview() vector.Object {
	if t.path == nil {
		return nil
	}
	return t.path
}

// BrushTool draws freehand strokes a disk of Size cells wide.
type BrushTool struct {
	pen
	Size int
	path *vector.Path
}

func NewBrush(c color.NRGBA, size int) *BrushTool {
	t := &BrushTool{pen: pen{c}}
	t.SetSize(size)
	return t
}

// SetSize sets the brush diameter, clamped to [MinBrushSize, MaxBrushSize].
func (t *BrushTool) SetSize(n int) { t.Size = clamp(n, MinBrushSize, MaxBrushSize) }

func (t *BrushTool) Kind() Kind { return Brush }

func (t *BrushTool) Press(x, y int, _ Target) bool {
	t.path = vector.NewPath([]image.Point{{x, y}}, t.color)
	t.path.Thickness = t.Size
	return false
}

func (t *BrushTool) Drag(x, y int, _ Target) bool {
	if t.path != nil {
		t.path.Append(x, y)
	}
	return false
}

// Release commits the whole stroke as one Path. A tap leaves a single dab.
func (t *BrushTool) Release(_, _ int, target Target) bool {
	if t.path == nil {
		return false
	}
	p := t.path
	t.path = nil
	return target.AddObject(p)
}

func (t *BrushTool) Preview() vector.Object {
	if t.path == nil {
		return nil
	}
	return t.path
}

// shape is the press-drag-release cycle shared by the line, rectangle and
// circle tools: press anchors, drag reshapes the preview, release commits.
type shape struct {
	pen
	anchor  image.Point
	active  bool
	preview vector.Object
	build   func(x0, y0, x1, y1 int) vector.Object
}

func (s *shape) Press(x, y int, _ Target) bool {
	s.anchor = image.Point{x, y}
	s.active = true
	s.preview = s.build(x, y, x, y)
	return false
}

func (s *shape) Drag(x, y int, _ Target) bool {
	if s.active {
		s.preview = s.build(s.anchor.X, s.anchor.Y, x, y)
	}
	return false
}

// Release commits the shape, or a Point at the anchor when the pointer
// ends on it.
func (s *shape) Release(x, y int, target Target) bool {
	if !s.active {
		return false
	}
	s.active = false
	s.preview = nil
	if s.degenerate(x, y) {
		return target.AddObject(vector.NewPoint(s.anchor.X, s.anchor.Y, s.color))
	}
	return target.AddObject(s.build(s.anchor.X, s.anchor.Y, x, y))
}

func (s *shape) degenerate(x, y int) bool {
	return x == s.anchor.X && y == s.anchor.Y
}

func (s *shape) Preview() vector.Object { return s.preview }

// LineTool draws straight lines.
type LineTool struct{ shape }

func NewLine(c color.NRGBA) *LineTool {
	t := &LineTool{}
	t.color = c
	t.build = func(x0, y0, x1, y1 int) vector.Object {
		return vector.NewLine(x0, y0, x1, y1, t.color)
	}
	return t
}

func (t *LineTool) Kind() Kind { return Line }

// RectangleTool draws axis-aligned rectangles between the anchor and the
// pointer.
type RectangleTool struct {
	shape
	Filled bool
}

func NewRectangle(c color.NRGBA, filled bool) *RectangleTool {
	t := &RectangleTool{Filled: filled}
	t.color = c
	t.build = func(x0, y0, x1, y1 int) vector.Object {
		return vector.NewRectangle(x0, y0, x1, y1, t.color, t.Filled)
	}
	return t
}

func (t *RectangleTool) Kind() Kind { return Rectangle }

// CircleTool draws circles centered on the anchor. The radius is the larger
// of the horizontal and vertical distance to the pointer.
type CircleTool struct {
	shape
	Filled bool
}

func NewCircle(c color.NRGBA, filled bool) *CircleTool {
	t := &CircleTool{Filled: filled}
	t.color = c
	t.build = func(cx, cy, x, y int) vector.Object {
		return vector.NewCircle(cx, cy, circleRadius(cx, cy, x, y), t.color, t.Filled)
	}
	return t
}

func (t *CircleTool) Kind() Kind { return Circle }

func circleRadius(cx, cy, x, y int) int {
	return max(abs(x-cx), abs(y-cy))
}

// FillTool drops a single Point of its color where pressed.
type FillTool struct{ pen }

func NewFill(c color.NRGBA) *FillTool { return &FillTool{pen: pen{c}} }

func (t *FillTool) Kind() Kind { return Fill }

func (t *FillTool) Press(x, y int, target Target) bool {
	return target.AddObject(vector.NewPoint(x, y, t.color))
}

func (t *FillTool) Drag(int, int, Target) bool    { return false }
func (t *FillTool) Release(int, int, Target) bool { return false }
func (t *FillTool) Preview() vector.Object        { return nil }

func clamp(v, lo, hi int) int { return max(lo, min(hi, v)) }

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
