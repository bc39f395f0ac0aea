// Package tools turns pointer gestures into document edits.
//
// Each tool is a small state machine driven by Press, Drag and Release in
// canvas cells. Every event reports whether it changed the document, so the
// caller knows when to take an undo snapshot.
package tools

import (
	"image/color"

	"PixelLab/internal/vector"
)

// Target is the part of the document a tool edits. *state.Manager
// satisfies it.
type Target interface {
	AddObject(o vector.Object) bool
	RemoveObject(o vector.Object) bool
	ObjectAt(x, y int) vector.Object
	Select(o vector.Object)
	SelectOnly(o vector.Object)
	DeselectAll()
	SelectIn(b vector.Bounds) int
	TranslateSelected(dx, dy int) int
}

// Tool is one editing tool.
type Tool interface {
	Kind() Kind
	Press(x, y int, t Target) bool
	Drag(x, y int, t Target) bool
	Release(x, y int, t Target) bool
	// Preview is the in-progress shape to draw over the document, or nil.
	Preview() vector.Object
}

// Kind identifies a tool.
type Kind int

const (
	Select Kind = iota
	Pencil
	Brush
	Eraser
	Line
	Rectangle
	Circle
	Fill
	Eyedropper
)

// Kinds lists every tool in toolbar order.
var Kinds = []Kind{Select, Pencil, Brush, Eraser, Line, Rectangle, Circle, Fill, Eyedropper}

var kindNames = map[Kind]string{
	Select:     "select",
	Pencil:     "pencil",
	Brush:      "brush",
	Eraser:     "eraser",
	Line:       "line",
	Rectangle:  "rectangle",
	Circle:     "circle",
	Fill:       "fill",
	Eyedropper: "eyedropper",
}

func (k Kind) String() string {
	if s, ok := kindNames[k]; ok {
		return s
	}
	return "unknown"
}

// ParseKind returns the tool named s. "mouse" is accepted for Select.
func ParseKind(s string) (Kind, bool) {
	if s == "mouse" {
		return Select, true
	}
	for k, name := range kindNames {
		if name == s {
			return k, true
		}
	}
	return 0, false
}

// pen is the color shared by the drawing tools.
type pen struct {
	color color.NRGBA
}

func (p *pen) Color() color.NRGBA     { return p.color }
func (p *pen) SetColor(c color.NRGBA) { p.color = c }

type colored interface {
	SetColor(color.NRGBA)
}

// Set holds one instance of every tool and tracks the active one.
type Set struct {
	tools  map[Kind]Tool
	active Kind
	color  color.NRGBA
}

// NewSet builds every tool in color c. The eyedropper reads colors through
// sample and reports them to onPick.
func NewSet(c color.NRGBA, sample Sampler, onPick func(color.NRGBA)) *Set {
	return &Set{
		tools: map[Kind]Tool{
			Select:     NewSelect(),
			Pencil:     NewPencil(c),
			Brush:      NewBrush(c, DefaultBrushSize),
			Eraser:     NewEraser(DefaultEraserSize),
			Line:       NewLine(c),
			Rectangle:  NewRectangle(c, false),
			Circle:     NewCircle(c, false),
			Fill:       NewFill(c),
			Eyedropper: NewEyedropper(sample, onPick),
		},
		color: c,
	}
}

// Active returns the tool receiving pointer events.
func (s *Set) Active() Tool { return s.tools[s.active] }

// ActiveKind returns the kind of the active tool.
func (s *Set) ActiveKind() Kind { return s.active }

// SetActive switches tools. Unknown kinds are ignored.
func (s *Set) SetActive(k Kind) bool {
	if _, ok := s.tools[k]; !ok {
		return false
	}
	s.active = k
	return true
}

// Get returns the tool of kind k.
func (s *Set) Get(k Kind) Tool { return s.tools[k] }

// Color returns the drawing color.
func (s *Set) Color() color.NRGBA { return s.color }

// SetColor changes the color of every drawing tool.
func (s *Set) SetColor(c color.NRGBA) {
	s.color = c
	for _, t := range s.tools {
		if ct, ok := t.(colored); ok {
			ct.SetColor(c)
		}
	}
}

// SetBrushSize sets the brush diameter.
func (s *Set) SetBrushSize(n int) { s.tools[Brush].(*BrushTool).SetSize(n) }

// SetEraserSize sets the eraser diameter.
func (s *Set) SetEraserSize(n int) { s.tools[Eraser].(*EraserTool).SetSize(n) }

// SetFilled switches the rectangle and circle tools between outline and
// filled shapes.
func (s *Set) SetFilled(filled bool) {
	s.tools[Rectangle].(*RectangleTool).Filled = filled
	s.tools[Circle].(*CircleTool).Filled = filled
}
