package vector

import (
	"errors"
	"fmt"
	"image"
	"image/color"

	"github.com/google/uuid"
)

var (
	// ErrUnknownType is returned for a record whose type tag names no variant.
	ErrUnknownType = errors.New("unknown object type")
	// ErrMissingField is returned when a required field is absent.
	ErrMissingField = errors.New("missing field")
	// ErrBadField is returned when a field is present but malformed.
	ErrBadField = errors.New("bad field")
)

// Record is the typed, serializable form of an object: a type tag plus the
// fields of that variant. Optional fields are pointers so that absence can
// be told apart from a zero value.
type Record struct {
	Type      Kind     `json:"type"`
	ID        string   `json:"id,omitempty"`
	Color     []int    `json:"color,omitempty"`
	X         *int     `json:"x,omitempty"`
	Y         *int     `json:"y,omitempty"`
	X0        *int     `json:"x0,omitempty"`
	Y0        *int     `json:"y0,omitempty"`
	X1        *int     `json:"x1,omitempty"`
	Y1        *int     `json:"y1,omitempty"`
	CX        *int     `json:"cx,omitempty"`
	CY        *int     `json:"cy,omitempty"`
	Radius    *int     `json:"radius,omitempty"`
	Thickness *int     `json:"thickness,omitempty"`
	Filled    *bool    `json:"filled,omitempty"`
	Closed    *bool    `json:"closed,omitempty"`
	Points    [][]int  `json:"points,omitempty"`
	Name      *string  `json:"name,omitempty"`
	Objects   []Record `json:"objects,omitempty"`
}

func intp(v int) *int       { return &v }
func boolp(v bool) *bool    { return &v }
func strp(v string) *string { return &v }

func colorSlice(c color.NRGBA) []int {
	return []int{int(c.R), int(c.G), int(c.B), int(c.A)}
}

// ToRecord serializes an object, recursing into groups.
func ToRecord(o Object) Record {
	r := Record{Type: o.Kind(), ID: o.ID().String()}
	switch v := o.(type) {
	case *Point:
		r.Color = colorSlice(v.color)
		r.X, r.Y = intp(v.X), intp(v.Y)
	case *Line:
		r.Color = colorSlice(v.color)
		r.X0, r.Y0, r.X1, r.Y1 = intp(v.X0), intp(v.Y0), intp(v.X1), intp(v.Y1)
		r.Thickness = intp(v.Thickness)
	case *Rectangle:
		r.Color = colorSlice(v.color)
		r.X0, r.Y0, r.X1, r.Y1 = intp(v.X0), intp(v.Y0), intp(v.X1), intp(v.Y1)
		r.Filled = boolp(v.Filled)
	case *Circle:
		r.Color = colorSlice(v.color)
		r.CX, r.CY, r.Radius = intp(v.CX), intp(v.CY), intp(v.Radius)
		r.Filled = boolp(v.Filled)
	case *Path:
		r.Color = colorSlice(v.color)
		r.Points = make([][]int, len(v.Points))
		for i, p := range v.Points {
			r.Points[i] = []int{p.X, p.Y}
		}
		r.Closed = boolp(v.Closed)
		r.Thickness = intp(v.Thickness)
	case *Group:
		r.Name = strp(v.Name)
		r.Objects = make([]Record, len(v.children))
		for i, c := range v.children {
			r.Objects[i] = ToRecord(c)
		}
	}
	return r
}

// FromRecord rebuilds an object from its record. Any malformed field,
// including one nested deep inside a group, fails the whole call.
func FromRecord(r Record) (Object, error) {
	d := decoder{r: r}
	o := d.object()
	if d.err != nil {
		return nil, d.err
	}
	return o, nil
}

// decoder keeps the first error so field reads can be chained.
type decoder struct {
	r   Record
	err error
}

func (d *decoder) fail(err error, format string, args ...any) {
	if d.err == nil {
		d.err = fmt.Errorf("%s: %w: %s", d.r.Type, err, fmt.Sprintf(format, args...))
	}
}

func (d *decoder) intField(name string, v *int) int {
	if v == nil {
		d.fail(ErrMissingField, "%q", name)
		return 0
	}
	return *v
}

func (d *decoder) colorField() color.NRGBA {
	if d.r.Color == nil {
		d.fail(ErrMissingField, `"color"`)
		return Black
	}
	if len(d.r.Color) != 4 {
		d.fail(ErrBadField, "color has %d channels, want 4", len(d.r.Color))
		return Black
	}
	var ch [4]uint8
	for i, v := range d.r.Color {
		if v < 0 || v > 255 {
			d.fail(ErrBadField, "color channel %d out of range: %d", i, v)
			return Black
		}
		ch[i] = uint8(v)
	}
	return color.NRGBA{R: ch[0], G: ch[1], B: ch[2], A: ch[3]}
}

func (d *decoder) id() ID {
	if d.r.ID == "" {
		return NewID()
	}
	id, err := uuid.Parse(d.r.ID)
	if err != nil {
		d.fail(ErrBadField, "id %q", d.r.ID)
		return NewID()
	}
	return id
}

func optBool(v *bool) bool {
	return v != nil && *v
}

func optThickness(v *int) int {
	if v == nil || *v < 1 {
		return 1
	}
	return *v
}

func (d *decoder) object() Object {
	r := d.r
	var o Object
	switch r.Type {
	case KindPoint:
		p := NewPoint(d.intField("x", r.X), d.intField("y", r.Y), d.colorField())
		o = p
	case KindLine:
		l := NewLine(d.intField("x0", r.X0), d.intField("y0", r.Y0), d.intField("x1", r.X1), d.intField("y1", r.Y1), d.colorField())
		l.Thickness = optThickness(r.Thickness)
		o = l
	case KindRectangle:
		o = NewRectangle(d.intField("x0", r.X0), d.intField("y0", r.Y0), d.intField("x1", r.X1), d.intField("y1", r.Y1), d.colorField(), optBool(r.Filled))
	case KindCircle:
		radius := d.intField("radius", r.Radius)
		if radius < 0 {
			d.fail(ErrBadField, "negative radius %d", radius)
		}
		o = NewCircle(d.intField("cx", r.CX), d.intField("cy", r.CY), radius, d.colorField(), optBool(r.Filled))
	case KindPath:
		if len(r.Points) == 0 {
			d.fail(ErrMissingField, `"points"`)
		}
		pts := make([]image.Point, len(r.Points))
		for i, p := range r.Points {
			if len(p) != 2 {
				d.fail(ErrBadField, "point %d has %d coordinates, want 2", i, len(p))
				break
			}
			pts[i] = image.Point{X: p[0], Y: p[1]}
		}
		p := NewPath(pts, d.colorField())
		p.Closed = optBool(r.Closed)
		p.Thickness = optThickness(r.Thickness)
		o = p
	case KindGroup:
		name := "Group"
		if r.Name != nil {
			name = *r.Name
		}
		g := NewGroup(name)
		for i, cr := range r.Objects {
			child, err := FromRecord(cr)
			if err != nil {
				if d.err == nil {
					d.err = fmt.Errorf("group %q: object %d: %w", name, i, err)
				}
				return nil
			}
			g.Add(child)
		}
		o = g
	default:
		d.err = fmt.Errorf("%w: %q", ErrUnknownType, r.Type)
		return nil
	}
	o.base().id = d.id()
	return o
}
