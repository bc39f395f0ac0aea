package ui

import (
	"image"
	"image/color"
	"os"
	"path/filepath"
	"testing"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"PixelLab/internal/config"
)

func newTestBoard(t *testing.T) (*Editor, *BoardWidget) {
	t.Helper()
	test.NewApp()
	ed := newTestEditor(t)
	b := NewBoardWidget(ed)
	b.Resize(fyne.NewSize(80, 80))
	return ed, b
}

func mouse(x, y float32, button desktop.MouseButton) *desktop.MouseEvent {
	return &desktop.MouseEvent{
		PointEvent: fyne.PointEvent{Position: fyne.NewPos(x, y)},
		Button:     button,
	}
}

func drag(x, y float32) *fyne.DragEvent {
	return &fyne.DragEvent{PointEvent: fyne.PointEvent{Position: fyne.NewPos(x, y)}}
}

func TestBoardResizeSetsView(t *testing.T) {
	ed, _ := newTestBoard(t)
	w, h := ed.View.Size()
	assert.Equal(t, 80.0, w)
	assert.Equal(t, 80.0, h)
}

func TestBoardPrimaryButtonDraws(t *testing.T) {
	ed, b := newTestBoard(t)
	changes := 0
	b.OnChanged = func() { changes++ }

	b.MouseDown(mouse(15, 15, desktop.MouseButtonPrimary))
	b.Dragged(drag(25, 15))
	b.Dragged(drag(35, 15))
	b.MouseUp(mouse(35, 15, desktop.MouseButtonPrimary))

	assert.False(t, ed.Drawing())
	require.Equal(t, 1, ed.Doc.Len())
	assert.NotNil(t, ed.Doc.ObjectAt(3, 1))
	assert.Equal(t, 4, changes)
}

func TestBoardDragEndFinishesGesture(t *testing.T) {
	ed, b := newTestBoard(t)
	b.MouseDown(mouse(15, 15, desktop.MouseButtonPrimary))
	b.Dragged(drag(45, 45))
	b.DragEnd()
	assert.False(t, ed.Drawing())
	assert.Equal(t, 1, ed.Doc.Len())

	b.MouseUp(mouse(45, 45, desktop.MouseButtonPrimary))
	assert.Equal(t, 1, ed.Doc.Len())
	assert.Equal(t, 2, ed.History.Len())
}

func TestBoardSecondaryButtonPans(t *testing.T) {
	ed, b := newTestBoard(t)
	b.MouseDown(mouse(40, 40, desktop.MouseButtonSecondary))
	assert.Equal(t, desktop.DefaultCursor, b.Cursor())
	b.MouseMoved(mouse(50, 45, desktop.MouseButtonSecondary))
	b.Dragged(drag(50, 45))
	b.MouseUp(mouse(50, 45, desktop.MouseButtonSecondary))

	px, py := ed.View.Pan()
	assert.Equal(t, 10.0, px)
	assert.Equal(t, 5.0, py)
	assert.Zero(t, ed.Doc.Len())
	assert.Equal(t, desktop.CrosshairCursor, b.Cursor())
}

func TestBoardWheelZoomsAtCursor(t *testing.T) {
	ed, b := newTestBoard(t)
	b.Scrolled(&fyne.ScrollEvent{
		PointEvent: fyne.PointEvent{Position: fyne.NewPos(5, 5)},
		Scrolled:   fyne.Delta{DY: 1},
	})
	assert.InDelta(t, 11.0, ed.View.Zoom(), 1e-9)
	x, y := ed.View.ScreenToCanvas(5, 5)
	assert.Equal(t, 0, x)
	assert.Equal(t, 0, y)

	b.Scrolled(&fyne.ScrollEvent{Scrolled: fyne.Delta{DY: -1}})
	assert.InDelta(t, 9.9, ed.View.Zoom(), 1e-9)
}

func TestBoardHoverReportsCell(t *testing.T) {
	_, b := newTestBoard(t)
	var got image.Point
	var inside bool
	b.OnHover = func(x, y int, ok bool) { got, inside = image.Pt(x, y), ok }

	b.MouseMoved(mouse(35, 72, desktop.MouseButtonPrimary))
	assert.Equal(t, image.Pt(3, 7), got)
	assert.True(t, inside)

	b.MouseMoved(mouse(95, 5, 0))
	assert.False(t, inside)
}

func TestBoardFrameFillsRaster(t *testing.T) {
	ed, b := newTestBoard(t)
	img := b.frame(120, 90)
	assert.Equal(t, image.Rect(0, 0, 120, 90), img.Bounds())
	w, h := ed.View.Size()
	assert.Equal(t, 120.0, w)
	assert.Equal(t, 90.0, h)
}

func TestMainWindowBuildsAndSavesConfig(t *testing.T) {
	a := test.NewApp()
	conf := config.Default()
	conf.CanvasWidth, conf.CanvasHeight = 8, 8
	path := filepath.Join(t.TempDir(), "config.toml")

	mw := newMainWindow(a, conf, path)
	assert.Equal(t, "PixelLab - Untitled", mw.win.Title())
	assert.Equal(t, 1, mw.layers.list.Length())

	mw.run(func() { mw.editor.AddLayer() })()
	assert.Equal(t, 2, mw.layers.list.Length())
	assert.Equal(t, "PixelLab - Untitled*", mw.win.Title())
	assert.Equal(t, mw.editor.Doc.Palette().Len(), len(mw.toolbar.swatches.Objects))

	mw.toolbar.pickColor(red)
	assert.Equal(t, red, mw.editor.Tools.Color())
	mw.run(func() { mw.editor.Doc.Palette().Add(color.NRGBA{R: 12, G: 34, B: 56, A: 255}) })()
	assert.Equal(t, mw.editor.Doc.Palette().Len(), len(mw.toolbar.swatches.Objects))

	mw.close()
	_, err := os.Stat(path)
	require.NoError(t, err)
	saved, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, mw.editor.Doc.Palette().Hex(), saved.Palette)
}
