package vector

// Bounds is an inclusive bounding box on the canvas grid.
type Bounds struct {
	MinX, MinY, MaxX, MaxY int
}

// NewBounds returns the box spanned by two corners in any order.
func NewBounds(x0, y0, x1, y1 int) Bounds {
	return Bounds{
		MinX: min(x0, x1),
		MinY: min(y0, y1),
		MaxX: max(x0, x1),
		MaxY: max(y0, y1),
	}
}

// Union returns the smallest box covering both b and o.
func (b Bounds) Union(o Bounds) Bounds {
	return Bounds{
		MinX: min(b.MinX, o.MinX),
		MinY: min(b.MinY, o.MinY),
		MaxX: max(b.MaxX, o.MaxX),
		MaxY: max(b.MaxY, o.MaxY),
	}
}

// Intersects reports whether the boxes share at least one cell.
func (b Bounds) Intersects(o Bounds) bool {
	return !(b.MaxX < o.MinX || o.MaxX < b.MinX ||
		b.MaxY < o.MinY || o.MaxY < b.MinY)
}

// Contains reports whether the cell (x, y) lies inside the box.
func (b Bounds) Contains(x, y int) bool {
	return x >= b.MinX && x <= b.MaxX && y >= b.MinY && y <= b.MaxY
}

// Translate returns the box shifted by (dx, dy).
func (b Bounds) Translate(dx, dy int) Bounds {
	return Bounds{b.MinX + dx, b.MinY + dy, b.MaxX + dx, b.MaxY + dy}
}

// Width and Height count cells, so a single-cell box is 1x1.
func (b Bounds) Width() int  { return b.MaxX - b.MinX + 1 }
func (b Bounds) Height() int { return b.MaxY - b.MinY + 1 }
