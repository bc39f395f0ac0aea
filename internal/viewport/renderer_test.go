package viewport

import (
	"image"
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"PixelLab/internal/state"
	"PixelLab/internal/vector"
)

var red = color.NRGBA{R: 255, A: 255}

func rgba(c color.NRGBA) color.RGBA {
	return color.RGBA{c.R, c.G, c.B, c.A}
}

// newScene returns a 4x4 canvas shown at 10x in a 40x40 view, so cell
// (x, y) covers screen pixels [10x, 10x+10).
func newScene() (*state.Manager, *Viewport, *Renderer) {
	m := state.NewManager()
	v := New(4, 4)
	v.SetSize(40, 40)
	v.ShowGrid = false
	return m, v, NewRenderer(m, v)
}

func TestFrameScalesNearest(t *testing.T) {
	m, _, r := newScene()
	m.AddObject(vector.NewPoint(1, 2, red))
	f := r.Frame()
	require.Equal(t, image.Rect(0, 0, 40, 40), f.Bounds())
	assert.Equal(t, rgba(red), f.RGBAAt(10, 20))
	assert.Equal(t, rgba(red), f.RGBAAt(19, 29))
	assert.NotEqual(t, rgba(red), f.RGBAAt(20, 29))
}

func TestEmptyCellsAreCheckered(t *testing.T) {
	_, _, r := newScene()
	f := r.Frame()
	assert.Equal(t, color.RGBA{200, 200, 200, 255}, f.RGBAAt(5, 5))
	assert.Equal(t, color.RGBA{230, 230, 230, 255}, f.RGBAAt(15, 5))
}

func TestBackgroundOutsideCanvas(t *testing.T) {
	_, v, r := newScene()
	v.SetSize(60, 60)
	f := r.Frame()
	assert.Equal(t, rgba(Background), f.RGBAAt(2, 2))
}

func TestFramesAreCoalesced(t *testing.T) {
	m, v, r := newScene()
	r.Frame()
	r.Frame()
	assert.Equal(t, 1, r.Renders())

	m.AddObject(vector.NewPoint(0, 0, red))
	r.Invalidate()
	r.Invalidate()
	r.Frame()
	r.Frame()
	assert.Equal(t, 2, r.Renders())

	v.PanBy(1, 0)
	r.Frame()
	assert.Equal(t, 3, r.Renders())
}

func TestPreviewOverwritesAtFullOpacity(t *testing.T) {
	_, _, r := newScene()
	r.SetPreview(vector.NewPoint(0, 0, color.NRGBA{R: 255, A: 20}))
	f := r.Frame()
	assert.Equal(t, rgba(red), f.RGBAAt(5, 5))

	assert.Equal(t, color.NRGBA{}, r.Composite().NRGBAAt(0, 0), "composite excludes the preview")
}

func TestSelectionOutline(t *testing.T) {
	m, _, r := newScene()
	p := vector.NewPoint(1, 1, red)
	m.AddObject(p)
	m.Select(p)
	f := r.Frame()
	// Cell 1 spans [10,20); the box runs from 5 to 25.
	assert.Equal(t, rgba(SelectionColor), f.RGBAAt(5, 15))
	assert.Equal(t, rgba(SelectionColor), f.RGBAAt(24, 15))
	assert.Equal(t, rgba(red), f.RGBAAt(15, 15))
}

func TestGridDrawnWhenZoomedIn(t *testing.T) {
	_, v, r := newScene()
	v.ShowGrid = true
	f := r.Frame()
	assert.Equal(t, rgba(GridColor), f.RGBAAt(10, 5))
	assert.Equal(t, rgba(GridColor), f.RGBAAt(5, 20))
}
