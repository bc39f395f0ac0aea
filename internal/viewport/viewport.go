// Package viewport maps between canvas cells and screen pixels and renders
// the composited document for display.
package viewport

import (
	"image"
	"math"
)

const (
	MinZoom     = 0.5
	MaxZoom     = 100.0
	DefaultZoom = 10.0

	// Zoom factors of one wheel notch in and out.
	ZoomStep    = 1.1
	ZoomOutStep = 0.9

	// DefaultGridMinZoom is the zoom at which cell borders become legible.
	DefaultGridMinZoom = 4.0
)

// Viewport holds zoom and pan. Screen coordinates are relative to the
// top-left of the on-screen view. The canvas is centered in the view, then
// shifted by the pan offset.
type Viewport struct {
	zoom        float64
	panX, panY  float64
	viewW       float64
	viewH       float64
	canvasW     int
	canvasH     int
	ShowGrid    bool
	GridMinZoom float64

	rev uint64
}

// New returns a viewport for a canvas of the given size at the default zoom.
func New(canvasW, canvasH int) *Viewport {
	return &Viewport{
		zoom:        DefaultZoom,
		canvasW:     canvasW,
		canvasH:     canvasH,
		ShowGrid:    true,
		GridMinZoom: DefaultGridMinZoom,
	}
}

func (v *Viewport) changed() { v.rev++ }

// Revision increases whenever the mapping changes.
func (v *Viewport) Revision() uint64 { return v.rev }

// Zoom returns screen pixels per canvas cell.
func (v *Viewport) Zoom() float64 { return v.zoom }

// Pan returns the pan offset in screen pixels.
func (v *Viewport) Pan() (float64, float64) { return v.panX, v.panY }

// Size returns the on-screen view size.
func (v *Viewport) Size() (float64, float64) { return v.viewW, v.viewH }

// CanvasSize returns the canvas size in cells.
func (v *Viewport) CanvasSize() (int, int) { return v.canvasW, v.canvasH }

// SetSize records the size of the on-screen view.
func (v *Viewport) SetSize(w, h float64) {
	if w == v.viewW && h == v.viewH {
		return
	}
	v.viewW, v.viewH = w, h
	v.changed()
}

// SetCanvasSize changes the canvas dimensions.
func (v *Viewport) SetCanvasSize(w, h int) {
	if w == v.canvasW && h == v.canvasH {
		return
	}
	v.canvasW, v.canvasH = w, h
	v.changed()
}

// SetZoom sets the zoom, clamped to [MinZoom, MaxZoom], about the view
// center. It reports whether the zoom changed.
func (v *Viewport) SetZoom(z float64) bool {
	return v.zoomAbout(z, v.viewW/2, v.viewH/2)
}

// ZoomAt multiplies the zoom by factor, keeping the canvas point under the
// screen position (sx, sy) fixed.
func (v *Viewport) ZoomAt(factor, sx, sy float64) bool {
	return v.zoomAbout(v.zoom*factor, sx, sy)
}

func (v *Viewport) zoomAbout(z, sx, sy float64) bool {
	z = math.Max(MinZoom, math.Min(MaxZoom, z))
	if z == v.zoom {
		return false
	}
	// Offset of the cursor from the canvas center, in canvas units.
	px := (sx - v.viewW/2 - v.panX) / v.zoom
	py := (sy - v.viewH/2 - v.panY) / v.zoom
	v.zoom = z
	v.panX = sx - v.viewW/2 - px*z
	v.panY = sy - v.viewH/2 - py*z
	v.changed()
	return true
}

// ZoomIn zooms one step in about the view center.
func (v *Viewport) ZoomIn() bool { return v.ZoomAt(ZoomStep, v.viewW/2, v.viewH/2) }

// ZoomOut zooms one step out about the view center.
func (v *Viewport) ZoomOut() bool { return v.ZoomAt(ZoomOutStep, v.viewW/2, v.viewH/2) }

// ResetZoom restores the default zoom and centers the canvas.
func (v *Viewport) ResetZoom() {
	v.zoom = DefaultZoom
	v.panX, v.panY = 0, 0
	v.changed()
}

// PanBy shifts the view by (dx, dy) screen pixels.
func (v *Viewport) PanBy(dx, dy float64) {
	if dx == 0 && dy == 0 {
		return
	}
	v.panX += dx
	v.panY += dy
	v.changed()
}

// CanvasToScreen maps a canvas position to the screen. Integer inputs give
// the top-left corner of that cell.
func (v *Viewport) CanvasToScreen(x, y float64) (float64, float64) {
	sx := (x-float64(v.canvasW)/2)*v.zoom + v.viewW/2 + v.panX
	sy := (y-float64(v.canvasH)/2)*v.zoom + v.viewH/2 + v.panY
	return sx, sy
}

// ScreenToCanvasF is the exact inverse of CanvasToScreen.
func (v *Viewport) ScreenToCanvasF(sx, sy float64) (float64, float64) {
	x := (sx-v.viewW/2-v.panX)/v.zoom + float64(v.canvasW)/2
	y := (sy-v.viewH/2-v.panY)/v.zoom + float64(v.canvasH)/2
	return x, y
}

// ScreenToCanvas returns the cell under a screen position. Positions left
// of or above the canvas give negative cells.
func (v *Viewport) ScreenToCanvas(sx, sy float64) (int, int) {
	x, y := v.ScreenToCanvasF(sx, sy)
	return int(math.Floor(x)), int(math.Floor(y))
}

// CanvasRect is the canvas's on-screen rectangle, rounded to pixels.
func (v *Viewport) CanvasRect() image.Rectangle {
	x0, y0 := v.CanvasToScreen(0, 0)
	x1, y1 := v.CanvasToScreen(float64(v.canvasW), float64(v.canvasH))
	return image.Rect(round(x0), round(y0), round(x1), round(y1))
}

// GridVisible reports whether the grid should be drawn at the current zoom.
func (v *Viewport) GridVisible() bool {
	return v.ShowGrid && v.zoom >= v.GridMinZoom
}

func round(f float64) int { return int(math.Round(f)) }
