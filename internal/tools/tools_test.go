package tools

import (
	"image"
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"PixelLab/internal/raster"
	"PixelLab/internal/state"
	"PixelLab/internal/vector"
)

var (
	red  = color.NRGBA{R: 255, A: 255}
	blue = color.NRGBA{B: 255, A: 255}
)

func only(t *testing.T, m *state.Manager) vector.Object {
	t.Helper()
	objs := m.All()
	require.Len(t, objs, 1)
	return objs[0]
}

func TestPencilStroke(t *testing.T) {
	m := state.NewManager()
	p := NewPencil(red)
	p.Press(1, 1, m)
	p.Drag(1, 1, m)
	p.Drag(2, 1, m)
	p.Drag(2, 1, m)
	p.Drag(4, 3, m)
	require.NotNil(t, p.Preview())
	assert.True(t, p.Release(4, 3, m))
	assert.Nil(t, p.Preview())

	path, ok := only(t, m).(*vector.Path)
	require.True(t, ok)
	assert.Equal(t, []image.Point{{1, 1}, {2, 1}, {4, 3}}, path.Points)
	assert.Equal(t, red, path.Color())
}

func TestTapsCommitPoints(t *testing.T) {
	for _, tool := range []Tool{NewPencil(red), NewLine(red), NewRectangle(red, true), NewCircle(red, false)} {
		t.Run(tool.Kind().String(), func(t *testing.T) {
			m := state.NewManager()
			tool.Press(3, 4, m)
			assert.True(t, tool.Release(3, 4, m))
			pt, ok := only(t, m).(*vector.Point)
			require.True(t, ok)
			assert.Equal(t, 3, pt.X)
			assert.Equal(t, 4, pt.Y)
			assert.Equal(t, red, pt.Color())
		})
	}
}

func TestBrushCarriesThickness(t *testing.T) {
	m := state.NewManager()
	b := NewBrush(blue, 5)
	b.Press(0, 0, m)
	b.Drag(10, 0, m)
	b.Release(10, 0, m)
	path, ok := only(t, m).(*vector.Path)
	require.True(t, ok)
	assert.Equal(t, 5, path.Thickness)

	img := raster.Compose(m.Layers(), 12, 6)
	for x := 0; x <= 10; x++ {
		assert.Equal(t, blue, img.NRGBAAt(x, 2), "no gap at x=%d", x)
	}
}

func TestBrushTapLeavesDab(t *testing.T) {
	m := state.NewManager()
	b := NewBrush(blue, 3)
	b.Press(4, 4, m)
	b.Release(4, 4, m)
	path, ok := only(t, m).(*vector.Path)
	require.True(t, ok)
	assert.Len(t, path.Points, 1)
}

func TestSizesAreClamped(t *testing.T) {
	assert.Equal(t, MaxBrushSize, NewBrush(red, 500).Size)
	assert.Equal(t, MinBrushSize, NewBrush(red, 0).Size)
	assert.Equal(t, MaxEraserSize, NewEraser(50).Size)
	assert.Equal(t, MinEraserSize, NewEraser(-1).Size)
}

func TestLinePreviewThenCommit(t *testing.T) {
	m := state.NewManager()
	l := NewLine(red)
	l.Press(1, 1, m)
	assert.Equal(t, vector.NewBounds(1, 1, 1, 1), l.Preview().Bounds())
	l.Drag(5, 3, m)
	assert.Equal(t, vector.NewBounds(1, 1, 5, 3), l.Preview().Bounds())
	assert.Zero(t, m.Len(), "nothing committed before release")

	l.Release(6, 3, m)
	line, ok := only(t, m).(*vector.Line)
	require.True(t, ok)
	assert.Equal(t, [4]int{1, 1, 6, 3}, [4]int{line.X0, line.Y0, line.X1, line.Y1})
	assert.Nil(t, l.Preview())
}

func TestRectangleNormalizes(t *testing.T) {
	m := state.NewManager()
	r := NewRectangle(red, true)
	r.Press(5, 5, m)
	r.Drag(2, 1, m)
	r.Release(2, 1, m)
	rect, ok := only(t, m).(*vector.Rectangle)
	require.True(t, ok)
	assert.True(t, rect.Filled)
	assert.Equal(t, vector.NewBounds(2, 1, 5, 5), rect.Bounds())
}

func TestCircleRadiusFromPointer(t *testing.T) {
	m := state.NewManager()
	c := NewCircle(red, false)
	c.Press(10, 10, m)
	c.Drag(13, 8, m)
	c.Release(13, 8, m)
	circle, ok := only(t, m).(*vector.Circle)
	require.True(t, ok)
	assert.Equal(t, 3, circle.Radius)
	assert.Equal(t, 10, circle.CX)
}

func TestShapeOnLockedLayerIsDropped(t *testing.T) {
	m := state.NewManager()
	m.CurrentLayer().Locked = true
	r := NewRectangle(red, false)
	r.Press(0, 0, m)
	assert.False(t, r.Release(3, 3, m))
	assert.Zero(t, m.Len())
}

func TestFillCommitsOnPress(t *testing.T) {
	m := state.NewManager()
	f := NewFill(blue)
	assert.True(t, f.Press(2, 2, m))
	assert.False(t, f.Release(2, 2, m))
	pt, ok := only(t, m).(*vector.Point)
	require.True(t, ok)
	assert.Equal(t, blue, pt.Color())
}

func TestEraserRemovesUnderDisk(t *testing.T) {
	m := state.NewManager()
	near := vector.NewPoint(6, 5, red)
	far := vector.NewPoint(9, 5, red)
	m.AddObject(near)
	m.AddObject(far)

	e := NewEraser(3)
	assert.True(t, e.Press(5, 5, m))
	assert.Nil(t, m.LayerOf(near))
	assert.NotNil(t, m.LayerOf(far))
	assert.False(t, e.Release(5, 5, m))
}

func TestEraserDragLeavesNoGaps(t *testing.T) {
	m := state.NewManager()
	for x := 0; x <= 20; x++ {
		p := vector.NewPoint(x, 0, red)
		m.AddObject(p)
	}
	e := NewEraser(1)
	e.Press(0, 0, m)
	assert.True(t, e.Drag(20, 0, m))
	assert.Zero(t, m.Len())
}

func TestEraserTakesTopmostOnly(t *testing.T) {
	m := state.NewManager()
	under := vector.NewPoint(1, 1, red)
	over := vector.NewPoint(1, 1, blue)
	m.AddObject(under)
	m.AddObject(over)
	e := NewEraser(1)
	e.Press(1, 1, m)
	assert.Equal(t, []vector.Object{under}, m.All())
}

func TestEyedropperSamplesComposite(t *testing.T) {
	m := state.NewManager()
	m.AddObject(vector.NewPoint(2, 2, blue))
	img := raster.Compose(m.Layers(), 4, 4)

	var picked []color.NRGBA
	e := NewEyedropper(func(x, y int) color.NRGBA { return raster.Sample(img, x, y) },
		func(c color.NRGBA) { picked = append(picked, c) })
	e.Press(2, 2, m)
	e.Drag(0, 0, m)
	e.Release(0, 0, m)
	e.Drag(2, 2, m)

	assert.Equal(t, []color.NRGBA{blue, {}}, picked)
	assert.Equal(t, 1, m.Len())
}

func TestSelectPressSelectsAndMoves(t *testing.T) {
	m := state.NewManager()
	a := vector.NewRectangle(0, 0, 2, 2, red, true)
	b := vector.NewPoint(8, 8, red)
	m.AddObject(a)
	m.AddObject(b)
	m.Select(b)

	s := NewSelect()
	s.Press(1, 1, m)
	assert.Equal(t, []vector.Object{a}, m.Selection())
	assert.True(t, s.Moving())

	assert.True(t, s.Drag(2, 1, m))
	assert.True(t, s.Drag(4, 3, m))
	assert.False(t, s.Drag(4, 3, m))
	s.Release(4, 3, m)
	assert.Equal(t, vector.NewBounds(3, 2, 5, 4), a.Bounds())
	assert.Equal(t, vector.NewBounds(8, 8, 8, 8), b.Bounds())
}

func TestSelectPressOnSelectedKeepsSelection(t *testing.T) {
	m := state.NewManager()
	a := vector.NewPoint(1, 1, red)
	b := vector.NewPoint(5, 5, red)
	m.AddObject(a)
	m.AddObject(b)
	m.Select(a)
	m.Select(b)

	s := NewSelect()
	s.Press(1, 1, m)
	s.Drag(2, 1, m)
	s.Release(2, 1, m)
	assert.Equal(t, 2, m.SelectionLen())
	assert.Equal(t, vector.NewBounds(6, 5, 6, 5), b.Bounds())
}

func TestSelectMarquee(t *testing.T) {
	m := state.NewManager()
	touched := vector.NewRectangle(4, 4, 9, 9, red, false)
	missed := vector.NewPoint(15, 15, red)
	m.AddObject(touched)
	m.AddObject(missed)
	m.Select(missed)

	s := NewSelect()
	s.Press(0, 0, m)
	assert.Zero(t, m.SelectionLen(), "pressing empty canvas clears the selection")
	s.Drag(5, 5, m)
	require.NotNil(t, s.Preview())
	assert.Equal(t, vector.NewBounds(0, 0, 5, 5), s.Preview().Bounds())
	s.Release(5, 5, m)

	assert.Equal(t, []vector.Object{touched}, m.Selection())
	assert.Nil(t, s.Preview())
}

func TestSetSwitchesAndRecolors(t *testing.T) {
	s := NewSet(red, nil, nil)
	assert.Equal(t, Select, s.ActiveKind())
	require.True(t, s.SetActive(Brush))
	assert.Equal(t, Brush, s.Active().Kind())
	assert.False(t, s.SetActive(Kind(99)))

	s.SetColor(blue)
	assert.Equal(t, blue, s.Get(Pencil).(*PencilTool).Color())
	assert.Equal(t, blue, s.Get(Circle).(*CircleTool).Color())

	s.SetFilled(true)
	assert.True(t, s.Get(Rectangle).(*RectangleTool).Filled)
	s.SetBrushSize(7)
	assert.Equal(t, 7, s.Get(Brush).(*BrushTool).Size)
}

func TestParseKind(t *testing.T) {
	for _, k := range Kinds {
		got, ok := ParseKind(k.String())
		require.True(t, ok)
		assert.Equal(t, k, got)
	}
	k, ok := ParseKind("mouse")
	assert.True(t, ok)
	assert.Equal(t, Select, k)
	_, ok = ParseKind("lasso")
	assert.False(t, ok)
}
