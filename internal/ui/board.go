package ui

import (
	"image"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/widget"
)

// BoardWidget shows the editor's canvas and feeds it pointer input. The
// primary button drives the active tool; the secondary and middle buttons
// pan; the wheel zooms about the cursor.
type BoardWidget struct {
	widget.BaseWidget
	editor *Editor
	raster *canvas.Raster

	panning  bool
	last     fyne.Position
	lastDrag fyne.Position

	// OnChanged is called after any input that changed what is shown.
	OnChanged func()
	// OnHover reports the cell under the pointer; ok is false off the canvas.
	OnHover func(x, y int, ok bool)
}

var _ fyne.Widget = (*BoardWidget)(nil)
var _ fyne.Draggable = (*BoardWidget)(nil)
var _ fyne.Scrollable = (*BoardWidget)(nil)
var _ desktop.Mouseable = (*BoardWidget)(nil)
var _ desktop.Hoverable = (*BoardWidget)(nil)
var _ desktop.Cursorable = (*BoardWidget)(nil)

func NewBoardWidget(ed *Editor) *BoardWidget {
	b := &BoardWidget{editor: ed}
	b.raster = canvas.NewRaster(b.frame)
	b.raster.ScaleMode = canvas.ImageScalePixels
	b.raster.SetMinSize(fyne.NewSize(300, 300))
	b.ExtendBaseWidget(b)
	return b
}

// frame is the raster generator; w and h are in device pixels.
func (b *BoardWidget) frame(w, h int) image.Image {
	b.editor.View.SetSize(float64(w), float64(h))
	return b.editor.Renderer.Frame()
}

// scale converts widget units to device pixels.
func (b *BoardWidget) scale() float32 {
	if app := fyne.CurrentApp(); app != nil {
		if c := app.Driver().CanvasForObject(b); c != nil {
			return c.Scale()
		}
	}
	return 1
}

func (b *BoardWidget) pixels(pos fyne.Position) (float64, float64) {
	s := b.scale()
	return float64(pos.X * s), float64(pos.Y * s)
}

func (b *BoardWidget) Resize(size fyne.Size) {
	b.BaseWidget.Resize(size)
	s := b.scale()
	b.editor.View.SetSize(float64(size.Width*s), float64(size.Height*s))
}

func (b *BoardWidget) refresh() {
	b.raster.Refresh()
	if b.OnChanged != nil {
		b.OnChanged()
	}
}

func (b *BoardWidget) MouseDown(ev *desktop.MouseEvent) {
	switch ev.Button {
	case desktop.MouseButtonPrimary:
		b.lastDrag = ev.Position
		if b.editor.Press(b.pixels(ev.Position)) {
			b.refresh()
		}
	case desktop.MouseButtonSecondary, desktop.MouseButtonTertiary:
		b.panning = true
		b.last = ev.Position
	}
}

func (b *BoardWidget) MouseUp(ev *desktop.MouseEvent) {
	if b.panning && ev.Button != desktop.MouseButtonPrimary {
		b.panning = false
		return
	}
	if ev.Button == desktop.MouseButtonPrimary && b.editor.Drawing() {
		b.editor.Release(b.pixels(ev.Position))
		b.refresh()
	}
}

func (b *BoardWidget) Dragged(ev *fyne.DragEvent) {
	if b.panning {
		b.panTo(ev.Position)
		return
	}
	if !b.editor.Drawing() {
		return
	}
	b.lastDrag = ev.Position
	b.editor.Drag(b.pixels(ev.Position))
	b.refresh()
}

// DragEnd finishes a gesture whose button-up was not delivered to the
// widget, for instance because the pointer left it.
func (b *BoardWidget) DragEnd() {
	if b.editor.Drawing() {
		b.editor.Release(b.pixels(b.lastDrag))
		b.refresh()
	}
}

func (b *BoardWidget) panTo(pos fyne.Position) {
	s := b.scale()
	dx, dy := (pos.X-b.last.X)*s, (pos.Y-b.last.Y)*s
	b.last = pos
	if dx == 0 && dy == 0 {
		return
	}
	b.editor.View.PanBy(float64(dx), float64(dy))
	b.refresh()
}

func (b *BoardWidget) MouseIn(*desktop.MouseEvent) {}
func (b *BoardWidget) MouseOut()                   {}

func (b *BoardWidget) MouseMoved(ev *desktop.MouseEvent) {
	if b.panning {
		b.panTo(ev.Position)
	}
	if b.OnHover != nil {
		x, y := b.editor.View.ScreenToCanvas(b.pixels(ev.Position))
		w, h := b.editor.View.CanvasSize()
		b.OnHover(x, y, x >= 0 && y >= 0 && x < w && y < h)
	}
}

func (b *BoardWidget) Scrolled(ev *fyne.ScrollEvent) {
	if ev.Scrolled.DY == 0 {
		return
	}
	sx, sy := b.pixels(ev.Position)
	if b.editor.ZoomAt(float64(ev.Scrolled.DY), sx, sy) {
		b.refresh()
	}
}

func (b *BoardWidget) Cursor() desktop.Cursor {
	if b.panning {
		return desktop.DefaultCursor
	}
	return desktop.CrosshairCursor
}

func (b *BoardWidget) CreateRenderer() fyne.WidgetRenderer {
	return widget.NewSimpleRenderer(b.raster)
}
