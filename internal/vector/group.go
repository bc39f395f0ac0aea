package vector

import "fmt"

// Group owns an ordered list of children, drawn in order so later children
// cover earlier ones. Children may be groups themselves.
type Group struct {
	objectBase
	Name     string
	children []Object
}

// NewGroup returns a group that takes ownership of children. Passing an
// object that already lives elsewhere is a programming error; callers move
// objects out of their old container first.
func NewGroup(name string, children ...Object) *Group {
	if name == "" {
		name = "Group"
	}
	return &Group{objectBase: newBase(), Name: name, children: children}
}

func (g *Group) Kind() Kind { return KindGroup }

// Children returns the group's children in draw order. The slice is a copy.
func (g *Group) Children() []Object {
	return append([]Object(nil), g.children...)
}

// Len returns the number of direct children.
func (g *Group) Len() int { return len(g.children) }

// Add appends a child on top of the group.
func (g *Group) Add(o Object) {
	g.children = append(g.children, o)
}

// Remove detaches a direct child and reports whether it was present.
func (g *Group) Remove(o Object) bool {
	for i, c := range g.children {
		if c == o {
			g.children = append(g.children[:i], g.children[i+1:]...)
			return true
		}
	}
	return false
}

// Ungroup releases the children in draw order and leaves the group empty.
func (g *Group) Ungroup() []Object {
	out := g.children
	g.children = nil
	return out
}

// Bounds is the union of the children's bounds, or the zero box when empty.
func (g *Group) Bounds() Bounds {
	if len(g.children) == 0 {
		return Bounds{}
	}
	b := g.children[0].Bounds()
	for _, c := range g.children[1:] {
		b = b.Union(c.Bounds())
	}
	return b
}

func (g *Group) Rasterize(width, height int) []Pixel {
	var out []Pixel
	for _, c := range g.children {
		out = append(out, c.Rasterize(width, height)...)
	}
	return out
}

func (g *Group) ContainsPoint(x, y int) bool {
	for _, c := range g.children {
		if c.ContainsPoint(x, y) {
			return true
		}
	}
	return false
}

func (g *Group) Translate(dx, dy int) {
	for _, c := range g.children {
		c.Translate(dx, dy)
	}
}

func (g *Group) String() string {
	return fmt.Sprintf("%s (%d objects)", g.Name, len(g.children))
}

// Walk calls fn for o and, for groups, every descendant depth first.
func Walk(o Object, fn func(Object)) {
	fn(o)
	if g, ok := o.(*Group); ok {
		for _, c := range g.children {
			Walk(c, fn)
		}
	}
}
