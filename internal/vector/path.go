package vector

import (
	"image"
	"image/color"
)

// Path is a polyline through at least one vertex. With a single vertex it
// degenerates to a point; Closed joins the last vertex back to the first.
// Brush strokes are Paths with Thickness above 1.
type Path struct {
	objectBase
	paint
	Points    []image.Point
	Closed    bool
	Thickness int
}

// NewPath returns an open, one-cell-thick path through pts. The slice is
// copied. pts must hold at least one vertex; a path without vertices draws
// nothing and is rejected when decoded.
func NewPath(pts []image.Point, c color.NRGBA) *Path {
	return &Path{
		objectBase: newBase(),
		paint:      paint{c},
		Points:     append([]image.Point(nil), pts...),
		Thickness:  1,
	}
}

func (p *Path) Kind() Kind { return KindPath }

// Append adds a vertex unless it repeats the last one. It reports whether
// the path grew.
func (p *Path) Append(x, y int) bool {
	pt := image.Point{X: x, Y: y}
	if n := len(p.Points); n > 0 && p.Points[n-1] == pt {
		return false
	}
	p.Points = append(p.Points, pt)
	return true
}

func (p *Path) Bounds() Bounds {
	if len(p.Points) == 0 {
		return Bounds{}
	}
	b := Bounds{p.Points[0].X, p.Points[0].Y, p.Points[0].X, p.Points[0].Y}
	for _, pt := range p.Points[1:] {
		b = b.Union(Bounds{pt.X, pt.Y, pt.X, pt.Y})
	}
	r := stampRadius(p.Thickness)
	return Bounds{b.MinX - r, b.MinY - r, b.MaxX + r, b.MaxY + r}
}

// segments calls fn for every drawn segment, including the closing one.
// A single vertex is reported as a zero-length segment.
func (p *Path) segments(fn func(x0, y0, x1, y1 int) bool) {
	switch len(p.Points) {
	case 0:
		return
	case 1:
		fn(p.Points[0].X, p.Points[0].Y, p.Points[0].X, p.Points[0].Y)
		return
	}
	for i := 0; i+1 < len(p.Points); i++ {
		a, b := p.Points[i], p.Points[i+1]
		if !fn(a.X, a.Y, b.X, b.Y) {
			return
		}
	}
	if p.Closed {
		a, b := p.Points[len(p.Points)-1], p.Points[0]
		fn(a.X, a.Y, b.X, b.Y)
	}
}

func (p *Path) Rasterize(width, height int) []Pixel {
	e := newEmitter(width, height, p.color)
	r := stampRadius(p.Thickness)
	p.segments(func(x0, y0, x1, y1 int) bool {
		e.line(x0, y0, x1, y1, r)
		return true
	})
	return e.out
}

func (p *Path) ContainsPoint(x, y int) bool {
	tol := strokeTolerance(p.Thickness)
	hit := false
	p.segments(func(x0, y0, x1, y1 int) bool {
		hit = segmentDistSq(x, y, x0, y0, x1, y1) <= tol
		return !hit
	})
	return hit
}

func (p *Path) Translate(dx, dy int) {
	for i := range p.Points {
		p.Points[i].X += dx
		p.Points[i].Y += dy
	}
}
