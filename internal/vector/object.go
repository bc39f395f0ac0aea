// Package vector defines the editable shapes a document is built from.
//
// Every shape is a closed variant of Object: Point, Line, Rectangle, Circle,
// Path and Group. Shapes live on an integer canvas grid and know how to
// report their bounds, rasterize themselves, hit-test and move. Only Group
// needs special treatment by callers (grouping, ungrouping, recoloring), so
// the variant check is confined to those places.
package vector

import (
	"image/color"

	"github.com/google/uuid"
)

// ID is the stable identity of an object. It survives moves between layers,
// grouping, snapshots and serialization, and is independent of any index.
type ID = uuid.UUID

// NewID returns a fresh random object identity.
func NewID() ID {
	return uuid.New()
}

// Kind tags an object variant. The string values are the serialized type tags.
type Kind string

const (
	KindPoint     Kind = "pixel"
	KindLine      Kind = "line"
	KindRectangle Kind = "rectangle"
	KindCircle    Kind = "circle"
	KindPath      Kind = "path"
	KindGroup     Kind = "group"
)

// Pixel is one lit cell produced by rasterization.
type Pixel struct {
	X, Y  int
	Color color.NRGBA
}

// Object is implemented by every shape variant. The set of variants is
// closed: the unexported base method keeps other packages from adding one.
type Object interface {
	ID() ID
	Kind() Kind
	// Bounds is computed from geometry alone, never by rasterizing.
	Bounds() Bounds
	// Rasterize returns every lit pixel clipped to [0,width)x[0,height).
	// The order is stable for a given shape.
	Rasterize(width, height int) []Pixel
	ContainsPoint(x, y int) bool
	Translate(dx, dy int)
	IsSelected() bool
	SetSelected(bool)

	base() *objectBase
}

// Colored is implemented by every variant that carries its own color.
// Groups do not; their color is that of their children.
type Colored interface {
	Object
	Color() color.NRGBA
	SetColor(color.NRGBA)
}

type objectBase struct {
	id       ID
	selected bool
}

func newBase() objectBase {
	return objectBase{id: NewID()}
}

func (b *objectBase) ID() ID             { return b.id }
func (b *objectBase) IsSelected() bool   { return b.selected }
func (b *objectBase) SetSelected(s bool) { b.selected = s }
func (b *objectBase) base() *objectBase  { return b }

type paint struct {
	color color.NRGBA
}

func (p *paint) Color() color.NRGBA     { return p.color }
func (p *paint) SetColor(c color.NRGBA) { p.color = c }

// Black is the default shape color.
var Black = color.NRGBA{A: 255}

// IsGroup reports whether o is a Group and returns it.
func IsGroup(o Object) (*Group, bool) {
	g, ok := o.(*Group)
	return g, ok
}
