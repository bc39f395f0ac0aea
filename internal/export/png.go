// Package export writes the composited document as PNG, SVG or PDF.
package export

import (
	"fmt"
	"image"
	"image/png"
	"io"
	"log"
	"os"

	"golang.org/x/image/draw"
)

const MaxScale = 64

// Upscale enlarges img by an integer factor with nearest-neighbor sampling
// so that every cell stays a crisp square.
func Upscale(img image.Image, scale int) *image.NRGBA {
	scale = max(1, min(MaxScale, scale))
	b := img.Bounds()
	out := image.NewNRGBA(image.Rect(0, 0, b.Dx()*scale, b.Dy()*scale))
	draw.NearestNeighbor.Scale(out, out.Bounds(), img, b, draw.Src, nil)
	return out
}

// PNG encodes img enlarged by scale.
func PNG(w io.Writer, img image.Image, scale int) error {
	if err := png.Encode(w, Upscale(img, scale)); err != nil {
		return fmt.Errorf("failed to encode png: %w", err)
	}
	return nil
}

// PNGFile writes img to path as a PNG enlarged by scale.
func PNGFile(path string, img image.Image, scale int) error {
	return writeFile(path, func(w io.Writer) error { return PNG(w, img, scale) })
}

func writeFile(path string, write func(io.Writer) error) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("failed to close %s: %w", path, cerr)
		}
	}()
	if err := write(f); err != nil {
		return err
	}
	log.Printf("[EXPORT] wrote %s", path)
	return nil
}
