package vector

import (
	"image"
	"image/color"
)

// emitter collects clipped pixels for one primitive, dropping repeats so a
// stamped or self-overlapping outline lights each cell once.
type emitter struct {
	width, height int
	color         color.NRGBA
	out           []Pixel
	seen          map[image.Point]struct{}
}

func newEmitter(width, height int, c color.NRGBA) *emitter {
	return &emitter{width: width, height: height, color: c}
}

func (e *emitter) inside(x, y int) bool {
	return x >= 0 && x < e.width && y >= 0 && y < e.height
}

// put appends (x, y) without deduplication. Callers use it only where the
// walk cannot revisit a cell.
func (e *emitter) put(x, y int) {
	if e.inside(x, y) {
		e.out = append(e.out, Pixel{X: x, Y: y, Color: e.color})
	}
}

func (e *emitter) plot(x, y int) {
	if !e.inside(x, y) {
		return
	}
	if e.seen == nil {
		e.seen = make(map[image.Point]struct{})
	}
	p := image.Point{X: x, Y: y}
	if _, ok := e.seen[p]; ok {
		return
	}
	e.seen[p] = struct{}{}
	e.out = append(e.out, Pixel{X: x, Y: y, Color: e.color})
}

// stamp plots a disk of radius r centred on (cx, cy).
func (e *emitter) stamp(cx, cy, r int) {
	if r <= 0 {
		e.plot(cx, cy)
		return
	}
	for dy := -r; dy <= r; dy++ {
		for dx := -r; dx <= r; dx++ {
			if dx*dx+dy*dy <= r*r {
				e.plot(cx+dx, cy+dy)
			}
		}
	}
}

// line walks an integer Bresenham line from (x0, y0) to (x1, y1), inclusive
// of both ends, and stamps a disk of radius r at every step.
func (e *emitter) line(x0, y0, x1, y1, r int) {
	bresenham(x0, y0, x1, y1, func(x, y int) {
		e.stamp(x, y, r)
	})
}

// bresenham calls fn for each cell of the line from (x0, y0) to (x1, y1).
func bresenham(x0, y0, x1, y1 int, fn func(x, y int)) {
	dx := abs(x1 - x0)
	dy := abs(y1 - y0)
	sx, sy := 1, 1
	if x0 > x1 {
		sx = -1
	}
	if y0 > y1 {
		sy = -1
	}
	err := dx - dy
	x, y := x0, y0
	for {
		fn(x, y)
		if x == x1 && y == y1 {
			return
		}
		e2 := 2 * err
		if e2 > -dy {
			err -= dy
			x += sx
		}
		if e2 < dx {
			err += dx
			y += sy
		}
	}
}

// Bresenham returns the cells of the integer line between two points. Tools
// use it to fill the gap between consecutive drag samples.
func Bresenham(x0, y0, x1, y1 int) []image.Point {
	var pts []image.Point
	bresenham(x0, y0, x1, y1, func(x, y int) {
		pts = append(pts, image.Point{X: x, Y: y})
	})
	return pts
}

// stampRadius converts a stroke thickness into the radius of the disk
// stamped along it. Thickness 1 (or less) is a plain one-cell line.
func stampRadius(thickness int) int {
	if thickness <= 1 {
		return 0
	}
	return thickness / 2
}

// segmentDistSq is the squared distance from (px, py) to the segment
// (x0, y0)-(x1, y1).
func segmentDistSq(px, py, x0, y0, x1, y1 int) float64 {
	lengthSq := float64((x1-x0)*(x1-x0) + (y1-y0)*(y1-y0))
	if lengthSq == 0 {
		return float64((px-x0)*(px-x0) + (py-y0)*(py-y0))
	}
	t := float64((px-x0)*(x1-x0)+(py-y0)*(y1-y0)) / lengthSq
	t = max(0, min(1, t))
	cx := float64(x0) + t*float64(x1-x0)
	cy := float64(y0) + t*float64(y1-y0)
	ddx := float64(px) - cx
	ddy := float64(py) - cy
	return ddx*ddx + ddy*ddy
}

// hitTolerance is how close, in cells, a click must land to a thin stroke.
const hitTolerance = 2

func strokeTolerance(thickness int) float64 {
	t := float64(max(hitTolerance, stampRadius(thickness)))
	return t * t
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
