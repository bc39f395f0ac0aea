// Package raster composites a layer stack into a pixel buffer.
//
// The buffer is non-premultiplied RGBA. It is the one source for export,
// the eyedropper and the on-screen view.
package raster

import (
	"image"
	"image/color"

	"PixelLab/internal/state"
	"PixelLab/internal/vector"
)

// Compose rasterizes the visible layers bottom to top into a new
// width x height buffer. Zero or negative sizes give an empty buffer.
func Compose(layers []*state.Layer, width, height int) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, max(width, 0), max(height, 0)))
	ComposeInto(img, layers)
	return img
}

// ComposeInto draws the visible layers over img, which is not cleared.
func ComposeInto(img *image.NRGBA, layers []*state.Layer) {
	for _, l := range layers {
		if !l.Visible {
			continue
		}
		for _, o := range l.Objects() {
			Draw(img, o)
		}
	}
}

// Draw blends one object onto img.
func Draw(img *image.NRGBA, o vector.Object) {
	b := img.Bounds()
	for _, p := range o.Rasterize(b.Dx(), b.Dy()) {
		i := img.PixOffset(p.X+b.Min.X, p.Y+b.Min.Y)
		dst := color.NRGBA{img.Pix[i], img.Pix[i+1], img.Pix[i+2], img.Pix[i+3]}
		out := Blend(dst, p.Color)
		img.Pix[i], img.Pix[i+1], img.Pix[i+2], img.Pix[i+3] = out.R, out.G, out.B, out.A
	}
}

// Blend puts src over dst. An opaque source replaces the destination and a
// transparent one leaves it alone. Otherwise the color channels are mixed by
// source alpha and the alphas are summed, saturating at 255; repeated
// semi-transparent strokes therefore become opaque faster than true "over"
// compositing would make them.
func Blend(dst, src color.NRGBA) color.NRGBA {
	switch src.A {
	case 255:
		return src
	case 0:
		return dst
	}
	a := float64(src.A) / 255
	mix := func(s, d uint8) uint8 {
		return uint8(float64(s)*a + float64(d)*(1-a))
	}
	return color.NRGBA{
		R: mix(src.R, dst.R),
		G: mix(src.G, dst.G),
		B: mix(src.B, dst.B),
		A: uint8(min(255, int(src.A)+int(dst.A))),
	}
}

// Overlay writes o onto img at full opacity, replacing what is there. It is
// used for the shape being drawn, which must stay visible whatever its color.
func Overlay(img *image.NRGBA, o vector.Object) {
	b := img.Bounds()
	for _, p := range o.Rasterize(b.Dx(), b.Dy()) {
		c := p.Color
		c.A = 255
		img.SetNRGBA(p.X+b.Min.X, p.Y+b.Min.Y, c)
	}
}

// Sample returns the color at (x, y), or transparent outside img.
func Sample(img *image.NRGBA, x, y int) color.NRGBA {
	b := img.Bounds()
	if !(image.Point{x + b.Min.X, y + b.Min.Y}.In(b)) {
		return color.NRGBA{}
	}
	return img.NRGBAAt(x+b.Min.X, y+b.Min.Y)
}
