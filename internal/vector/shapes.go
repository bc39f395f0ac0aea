package vector

import "image/color"

// Point is a single cell.
type Point struct {
	objectBase
	paint
	X, Y int
}

// NewPoint returns a Point at (x, y).
func NewPoint(x, y int, c color.NRGBA) *Point {
	return &Point{objectBase: newBase(), paint: paint{c}, X: x, Y: y}
}

func (p *Point) Kind() Kind     { return KindPoint }
func (p *Point) Bounds() Bounds { return Bounds{p.X, p.Y, p.X, p.Y} }

func (p *Point) Rasterize(width, height int) []Pixel {
	e := newEmitter(width, height, p.color)
	e.put(p.X, p.Y)
	return e.out
}

func (p *Point) ContainsPoint(x, y int) bool { return p.X == x && p.Y == y }

func (p *Point) Translate(dx, dy int) {
	p.X += dx
	p.Y += dy
}

// Line is a straight stroke between two cells. Thickness above 1 stamps a
// disk along the line.
type Line struct {
	objectBase
	paint
	X0, Y0, X1, Y1 int
	Thickness      int
}

// NewLine returns a one-cell-thick line.
func NewLine(x0, y0, x1, y1 int, c color.NRGBA) *Line {
	return &Line{objectBase: newBase(), paint: paint{c}, X0: x0, Y0: y0, X1: x1, Y1: y1, Thickness: 1}
}

func (l *Line) Kind() Kind { return KindLine }

func (l *Line) Bounds() Bounds {
	r := stampRadius(l.Thickness)
	b := NewBounds(l.X0, l.Y0, l.X1, l.Y1)
	return Bounds{b.MinX - r, b.MinY - r, b.MaxX + r, b.MaxY + r}
}

func (l *Line) Rasterize(width, height int) []Pixel {
	e := newEmitter(width, height, l.color)
	e.line(l.X0, l.Y0, l.X1, l.Y1, stampRadius(l.Thickness))
	return e.out
}

func (l *Line) ContainsPoint(x, y int) bool {
	return segmentDistSq(x, y, l.X0, l.Y0, l.X1, l.Y1) <= strokeTolerance(l.Thickness)
}

func (l *Line) Translate(dx, dy int) {
	l.X0 += dx
	l.Y0 += dy
	l.X1 += dx
	l.Y1 += dy
}

// Rectangle is an axis-aligned box. The corners are kept normalized so that
// X0 <= X1 and Y0 <= Y1.
type Rectangle struct {
	objectBase
	paint
	X0, Y0, X1, Y1 int
	Filled         bool
}

// NewRectangle returns the box spanned by two corners in any order.
func NewRectangle(x0, y0, x1, y1 int, c color.NRGBA, filled bool) *Rectangle {
	b := NewBounds(x0, y0, x1, y1)
	return &Rectangle{
		objectBase: newBase(),
		paint:      paint{c},
		X0:         b.MinX,
		Y0:         b.MinY,
		X1:         b.MaxX,
		Y1:         b.MaxY,
		Filled:     filled,
	}
}

func (r *Rectangle) Kind() Kind     { return KindRectangle }
func (r *Rectangle) Bounds() Bounds { return Bounds{r.X0, r.Y0, r.X1, r.Y1} }

func (r *Rectangle) Rasterize(width, height int) []Pixel {
	e := newEmitter(width, height, r.color)
	if r.Filled {
		for y := max(0, r.Y0); y <= min(height-1, r.Y1); y++ {
			for x := max(0, r.X0); x <= min(width-1, r.X1); x++ {
				e.put(x, y)
			}
		}
		return e.out
	}
	for x := max(0, r.X0); x <= min(width-1, r.X1); x++ {
		e.plot(x, r.Y0)
		e.plot(x, r.Y1)
	}
	for y := max(0, r.Y0); y <= min(height-1, r.Y1); y++ {
		e.plot(r.X0, y)
		e.plot(r.X1, y)
	}
	return e.out
}

func (r *Rectangle) ContainsPoint(x, y int) bool {
	if r.Filled {
		return r.Bounds().Contains(x, y)
	}
	onRow := (y == r.Y0 || y == r.Y1) && x >= r.X0 && x <= r.X1
	onCol := (x == r.X0 || x == r.X1) && y >= r.Y0 && y <= r.Y1
	return onRow || onCol
}

func (r *Rectangle) Translate(dx, dy int) {
	r.X0 += dx
	r.Y0 += dy
	r.X1 += dx
	r.Y1 += dy
}

// Circle is a disk or ring around a centre cell.
type Circle struct {
	objectBase
	paint
	CX, CY int
	Radius int
	Filled bool
}

// NewCircle returns a circle; a negative radius is treated as zero.
func NewCircle(cx, cy, radius int, c color.NRGBA, filled bool) *Circle {
	return &Circle{objectBase: newBase(), paint: paint{c}, CX: cx, CY: cy, Radius: max(0, radius), Filled: filled}
}

func (c *Circle) Kind() Kind { return KindCircle }

func (c *Circle) Bounds() Bounds {
	return Bounds{c.CX - c.Radius, c.CY - c.Radius, c.CX + c.Radius, c.CY + c.Radius}
}

func (c *Circle) Rasterize(width, height int) []Pixel {
	e := newEmitter(width, height, c.color)
	r := c.Radius
	if c.Filled {
		for y := max(0, c.CY-r); y <= min(height-1, c.CY+r); y++ {
			for x := max(0, c.CX-r); x <= min(width-1, c.CX+r); x++ {
				dx, dy := x-c.CX, y-c.CY
				if dx*dx+dy*dy <= r*r {
					e.put(x, y)
				}
			}
		}
		return e.out
	}
	// Midpoint circle: one octant walked, mirrored eight ways.
	x, y := 0, r
	d := 1 - r
	c.octants(e, x, y)
	for x < y {
		if d < 0 {
			d += 2*x + 3
		} else {
			d += 2*(x-y) + 5
			y--
		}
		x++
		c.octants(e, x, y)
	}
	return e.out
}

func (c *Circle) octants(e *emitter, x, y int) {
	e.plot(c.CX+x, c.CY+y)
	e.plot(c.CX-x, c.CY+y)
	e.plot(c.CX+x, c.CY-y)
	e.plot(c.CX-x, c.CY-y)
	e.plot(c.CX+y, c.CY+x)
	e.plot(c.CX-y, c.CY+x)
	e.plot(c.CX+y, c.CY-x)
	e.plot(c.CX-y, c.CY-x)
}

func (c *Circle) ContainsPoint(x, y int) bool {
	dx, dy := x-c.CX, y-c.CY
	distSq := dx*dx + dy*dy
	rSq := c.Radius * c.Radius
	if c.Filled {
		return distSq <= rSq
	}
	return abs(distSq-rSq) <= 2*c.Radius
}

func (c *Circle) Translate(dx, dy int) {
	c.CX += dx
	c.CY += dy
}
