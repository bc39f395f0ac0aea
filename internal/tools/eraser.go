package tools

import (
	"image"

	"PixelLab/internal/vector"
)

// EraserTool deletes whole objects under a disk of Size cells. It acts on
// press and on every drag sample; there is nothing to commit on release.
type EraserTool struct {
	Size int
	last image.Point
	down bool
}

func NewEraser(size int) *EraserTool {
	t := &EraserTool{}
	t.SetSize(size)
	return t
}

// SetSize sets the eraser diameter, clamped to [MinEraserSize, MaxEraserSize].
func (t *EraserTool) SetSize(n int) { t.Size = clamp(n, MinEraserSize, MaxEraserSize) }

func (t *EraserTool) Kind() Kind { return Eraser }

func (t *EraserTool) Press(x, y int, target Target) bool {
	t.down = true
	t.last = image.Point{x, y}
	return t.erase(x, y, target)
}

// Drag erases along the line from the previous sample so that fast
// movements leave no gaps.
func (t *EraserTool) Drag(x, y int, target Target) bool {
	if !t.down {
		return false
	}
	erased := false
	for _, p := range vector.Bresenham(t.last.X, t.last.Y, x, y) {
		if t.erase(p.X, p.Y, target) {
			erased = true
		}
	}
	t.last = image.Point{x, y}
	return erased
}

func (t *EraserTool) Release(int, int, Target) bool {
	t.down = false
	return false
}

func (t *EraserTool) Preview() vector.Object { return nil }

// erase removes the topmost object at every cell of the disk centered on
// (cx, cy).
func (t *EraserTool) erase(cx, cy int, target Target) bool {
	r := t.Size / 2
	var hits []vector.Object
	for dy := -r; dy <= r; dy++ {
		for dx := -r; dx <= r; dx++ {
			if dx*dx+dy*dy > r*r {
				continue
			}
			o := target.ObjectAt(cx+dx, cy+dy)
			if o != nil && !contains(hits, o) {
				hits = append(hits, o)
			}
		}
	}
	removed := false
	for _, o := range hits {
		if target.RemoveObject(o) {
			removed = true
		}
	}
	return removed
}

func contains(objs []vector.Object, o vector.Object) bool {
	for _, x := range objs {
		if x == o {
			return true
		}
	}
	return false
}
