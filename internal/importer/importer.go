// Package importer traces bitmap images into groups of Points.
//
// Tracing runs off the UI goroutine. It only reads the decoded image and
// builds a new Group; the caller adds the finished group to the document.
package importer

import (
	"fmt"
	"image"
	"image/color"
	"io"
	"log"
	"os"
	"path/filepath"
	"runtime"
	"sync"

	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	_ "golang.org/x/image/bmp"
	"golang.org/x/image/draw"
	_ "golang.org/x/image/tiff"
	"golang.org/x/sync/errgroup"

	"PixelLab/internal/vector"
)

// Extensions lists the file types Load understands.
var Extensions = []string{".png", ".jpg", ".jpeg", ".gif", ".bmp", ".tiff", ".tif"}

// Progress receives a completion percentage from 0 to 100. It may be called
// from a goroutine other than the caller's, but never concurrently.
type Progress func(percent int)

// Result is what Start delivers once an import finishes.
type Result struct {
	Group *vector.Group
	Err   error
}

// Decode reads an image in any registered format.
func Decode(r io.Reader) (image.Image, string, error) {
	img, format, err := image.Decode(r)
	if err != nil {
		return nil, "", fmt.Errorf("failed to decode image: %w", err)
	}
	return img, format, nil
}

// Fit scales img down with nearest-neighbor sampling until it fits inside
// width x height, keeping its aspect ratio. Images that already fit are
// returned unchanged.
func Fit(img image.Image, width, height int) image.Image {
	b := img.Bounds()
	if b.Dx() <= width && b.Dy() <= height {
		return img
	}
	scale := min(float64(width)/float64(b.Dx()), float64(height)/float64(b.Dy()))
	w := max(1, int(float64(b.Dx())*scale))
	h := max(1, int(float64(b.Dy())*scale))
	out := image.NewNRGBA(image.Rect(0, 0, w, h))
	draw.NearestNeighbor.Scale(out, out.Bounds(), img, b, draw.Src, nil)
	return out
}

// Trace returns one Point per pixel of img that is not fully transparent,
// in row-major order, with the image's top-left at (0, 0). Rows are traced
// in parallel bands.
func Trace(img image.Image, progress Progress) []vector.Object {
	b := img.Bounds()
	rows := b.Dy()
	if rows <= 0 || b.Dx() <= 0 {
		report(progress, 100)
		return nil
	}
	workers := min(runtime.GOMAXPROCS(0), rows)
	band := (rows + workers - 1) / workers
	bands := make([][]vector.Object, (rows+band-1)/band)

	var (
		mu   sync.Mutex
		done int
		g    errgroup.Group
	)
	for i := range bands {
		i := i
		y0 := b.Min.Y + i*band
		y1 := min(y0+band, b.Max.Y)
		g.Go(func() error {
			bands[i] = traceRows(img, y0, y1)
			mu.Lock()
			done += y1 - y0
			report(progress, 40+done*50/rows)
			mu.Unlock()
			return nil
		})
	}
	g.Wait()

	var out []vector.Object
	for _, objs := range bands {
		out = append(out, objs...)
	}
	return out
}

func traceRows(img image.Image, y0, y1 int) []vector.Object {
	b := img.Bounds()
	var out []vector.Object
	for y := y0; y < y1; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			c := color.NRGBAModel.Convert(img.At(x, y)).(color.NRGBA)
			if c.A == 0 {
				continue
			}
			out = append(out, vector.NewPoint(x-b.Min.X, y-b.Min.Y, c))
		}
	}
	return out
}

// Load decodes the image at path, fits it to the canvas and traces it into a
// group named after the file.
func Load(path string, width, height int, progress Progress) (*vector.Group, error) {
	report(progress, 10)
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open image: %w", err)
	}
	defer f.Close()

	img, format, err := Decode(f)
	if err != nil {
		return nil, err
	}
	report(progress, 20)
	ob := img.Bounds()
	img = Fit(img, width, height)
	report(progress, 30)
	log.Printf("[IMPORT] %s: %s %dx%d traced at %dx%d", filepath.Base(path), format, ob.Dx(), ob.Dy(), img.Bounds().Dx(), img.Bounds().Dy())

	objs := Trace(img, progress)
	report(progress, 95)
	g := vector.NewGroup("Imported: "+filepath.Base(path), objs...)
	report(progress, 100)
	log.Printf("[IMPORT] %s: %d points", filepath.Base(path), len(objs))
	return g, nil
}

// Start runs Load on its own goroutine. The channel yields exactly one
// Result and is then closed.
func Start(path string, width, height int, progress Progress) <-chan Result {
	ch := make(chan Result, 1)
	go func() {
		defer close(ch)
		g, err := Load(path, width, height, progress)
		if err != nil {
			log.Printf("[IMPORT] %s: %v", filepath.Base(path), err)
		}
		ch <- Result{Group: g, Err: err}
	}()
	return ch
}

func report(progress Progress, percent int) {
	if progress != nil {
		progress(percent)
	}
}
