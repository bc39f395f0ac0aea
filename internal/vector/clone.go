package vector

import "image"

// Clone deep-copies an object. The copy keeps the original's ID so that a
// restored snapshot refers to the same identities; it is never selected.
func Clone(o Object) Object {
	var c Object
	switch v := o.(type) {
	case *Point:
		cp := *v
		c = &cp
	case *Line:
		cp := *v
		c = &cp
	case *Rectangle:
		cp := *v
		c = &cp
	case *Circle:
		cp := *v
		c = &cp
	case *Path:
		cp := *v
		cp.Points = append([]image.Point(nil), v.Points...)
		c = &cp
	case *Group:
		cp := *v
		cp.children = make([]Object, len(v.children))
		for i, child := range v.children {
			cp.children[i] = Clone(child)
		}
		c = &cp
	default:
		panic("vector: unknown object variant")
	}
	c.SetSelected(false)
	return c
}

// CloneAll deep-copies a list of objects.
func CloneAll(objs []Object) []Object {
	out := make([]Object, len(objs))
	for i, o := range objs {
		out[i] = Clone(o)
	}
	return out
}
