package export

import (
	"fmt"
	"image"
	"image/color"
	"io"

	"github.com/jung-kurt/gofpdf"
)

// Page geometry in millimeters.
const (
	pageW  = 210.0
	pageH  = 297.0
	margin = 10.0
)

// PDF draws img centered on an A4 page, one filled square per visible cell.
// Neighboring cells of the same color in a row share one rectangle.
func PDF(w io.Writer, img image.Image) error {
	p := pdfDocument(img)
	if err := p.Output(w); err != nil {
		return fmt.Errorf("failed to write pdf: %w", err)
	}
	return nil
}

// PDFFile writes img to path as PDF.
func PDFFile(path string, img image.Image) error {
	return writeFile(path, func(w io.Writer) error { return PDF(w, img) })
}

func pdfDocument(img image.Image) *gofpdf.Fpdf {
	p := gofpdf.New("P", "mm", "A4", "")
	p.SetTitle("PixelLab export", true)
	p.AddPage()

	b := img.Bounds()
	if b.Empty() {
		return p
	}
	cell := min((pageW-2*margin)/float64(b.Dx()), (pageH-2*margin)/float64(b.Dy()))
	left := (pageW - cell*float64(b.Dx())) / 2
	top := (pageH - cell*float64(b.Dy())) / 2

	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; {
			c := color.NRGBAModel.Convert(img.At(x, y)).(color.NRGBA)
			run := 1
			for x+run < b.Max.X && color.NRGBAModel.Convert(img.At(x+run, y)).(color.NRGBA) == c {
				run++
			}
			if c.A > 0 {
				p.SetAlpha(float64(c.A)/255, "Normal")
				p.SetFillColor(int(c.R), int(c.G), int(c.B))
				p.Rect(left+float64(x-b.Min.X)*cell, top+float64(y-b.Min.Y)*cell, float64(run)*cell, cell, "F")
			}
			x += run
		}
	}
	p.SetAlpha(1, "Normal")
	return p
}
