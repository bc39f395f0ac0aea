package viewport

import (
	"image"
	"image/color"
	"log"

	"golang.org/x/image/draw"

	"PixelLab/internal/raster"
	"PixelLab/internal/state"
	"PixelLab/internal/vector"
)

var (
	Background     = color.NRGBA{0x1e, 0x1e, 0x1e, 0xff}
	GridColor      = color.NRGBA{0x40, 0x40, 0x40, 0xff}
	SelectionColor = color.NRGBA{0x00, 0xff, 0xff, 0xff}
)

// selectionWidth is the outline thickness in screen pixels.
const selectionWidth = 2

// Source is what the renderer draws: a layer stack and a selection.
// *state.Manager satisfies it.
type Source interface {
	Layers() []*state.Layer
	Selection() []vector.Object
}

// Renderer turns a Source into screen frames. Work is done only when the
// document has been invalidated or the viewport has changed since the last
// frame, so it can be asked for a frame on every pointer event.
type Renderer struct {
	src  Source
	view *Viewport

	preview   vector.Object
	dirty     bool
	stale     bool
	viewRev   uint64
	composite *image.NRGBA
	frame     *image.RGBA
	renders   int
}

// NewRenderer returns a renderer drawing src through view.
func NewRenderer(src Source, view *Viewport) *Renderer {
	return &Renderer{src: src, view: view, dirty: true, stale: true}
}

// Invalidate marks the document as changed.
func (r *Renderer) Invalidate() { r.dirty, r.stale = true, true }

// SetSource switches documents, as after opening a file.
func (r *Renderer) SetSource(src Source) {
	r.src = src
	r.Invalidate()
}

// SetPreview sets the in-progress shape drawn above the document. Nil
// clears it.
func (r *Renderer) SetPreview(o vector.Object) {
	r.preview = o
	r.dirty = true
}

// Preview returns the current preview object.
func (r *Renderer) Preview() vector.Object { return r.preview }

// Renders returns how many frames have actually been drawn.
func (r *Renderer) Renders() int { return r.renders }

// Composite returns the composited document without the preview. The
// buffer is shared until the next invalidation; callers must not modify it.
func (r *Renderer) Composite() *image.NRGBA {
	w, h := r.view.CanvasSize()
	if r.stale || r.composite == nil || r.composite.Bounds() != image.Rect(0, 0, w, h) {
		r.composite = raster.Compose(r.src.Layers(), w, h)
		r.stale = false
	}
	return r.composite
}

// Frame returns the current screen image, redrawing only when needed.
func (r *Renderer) Frame() *image.RGBA {
	if !r.dirty && r.frame != nil && r.viewRev == r.view.Revision() {
		return r.frame
	}
	buf := r.Composite()
	r.dirty = false
	r.viewRev = r.view.Revision()
	if r.preview != nil {
		cp := image.NewNRGBA(buf.Bounds())
		copy(cp.Pix, buf.Pix)
		raster.Overlay(cp, r.preview)
		buf = cp
	}
	r.draw(buf)
	r.renders++
	return r.frame
}

func (r *Renderer) draw(buf *image.NRGBA) {
	vw, vh := r.view.Size()
	size := image.Rect(0, 0, max(round(vw), 0), max(round(vh), 0))
	if r.frame == nil || r.frame.Bounds() != size {
		log.Printf("[RENDER] frame %dx%d", size.Dx(), size.Dy())
		r.frame = image.NewRGBA(size)
	}
	fill(r.frame, size, Background)
	draw.NearestNeighbor.Scale(r.frame, r.view.CanvasRect(), checkered(buf), buf.Bounds(), draw.Src, nil)
	if r.view.GridVisible() {
		r.drawGrid()
	}
	for _, o := range r.src.Selection() {
		r.outline(o.Bounds())
	}
}

// checkered flattens buf onto a checkerboard so that translucent and empty
// cells read as transparent. Opaque cells are copied unchanged.
func checkered(buf *image.NRGBA) *image.NRGBA {
	b := buf.Bounds()
	out := image.NewNRGBA(b)
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			c := buf.NRGBAAt(x, y)
			if c.A < 255 {
				c = overChecker(c, x, y)
			}
			out.SetNRGBA(x, y, c)
		}
	}
	return out
}

func overChecker(c color.NRGBA, x, y int) color.NRGBA {
	base := float64(((x+y)%2)*30 + 200)
	a := float64(c.A) / 255
	mix := func(v uint8) uint8 { return uint8(float64(v)*a + base*(1-a)) }
	return color.NRGBA{mix(c.R), mix(c.G), mix(c.B), 255}
}

func (r *Renderer) drawGrid() {
	cw, ch := r.view.CanvasSize()
	area := r.view.CanvasRect().Intersect(r.frame.Bounds())
	if area.Empty() {
		return
	}
	for x := 0; x <= cw; x++ {
		sx, _ := r.view.CanvasToScreen(float64(x), 0)
		if px := round(sx); px >= area.Min.X-1 && px <= area.Max.X {
			fill(r.frame, image.Rect(px, area.Min.Y, px+1, area.Max.Y), GridColor)
		}
	}
	for y := 0; y <= ch; y++ {
		_, sy := r.view.CanvasToScreen(0, float64(y))
		if py := round(sy); py >= area.Min.Y-1 && py <= area.Max.Y {
			fill(r.frame, image.Rect(area.Min.X, py, area.Max.X, py+1), GridColor)
		}
	}
}

// outline draws the selection box around b, half a cell outside it.
func (r *Renderer) outline(b vector.Bounds) {
	x0, y0 := r.view.CanvasToScreen(float64(b.MinX)-0.5, float64(b.MinY)-0.5)
	x1, y1 := r.view.CanvasToScreen(float64(b.MaxX)+1.5, float64(b.MaxY)+1.5)
	box := image.Rect(round(x0), round(y0), round(x1), round(y1))
	const w = selectionWidth
	fill(r.frame, image.Rect(box.Min.X, box.Min.Y, box.Max.X, box.Min.Y+w), SelectionColor)
	fill(r.frame, image.Rect(box.Min.X, box.Max.Y-w, box.Max.X, box.Max.Y), SelectionColor)
	fill(r.frame, image.Rect(box.Min.X, box.Min.Y, box.Min.X+w, box.Max.Y), SelectionColor)
	fill(r.frame, image.Rect(box.Max.X-w, box.Min.Y, box.Max.X, box.Max.Y), SelectionColor)
}

func fill(dst draw.Image, rect image.Rectangle, c color.Color) {
	draw.Draw(dst, rect, image.NewUniform(c), image.Point{}, draw.Src)
}
