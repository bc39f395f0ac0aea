package export

import (
	"bufio"
	"fmt"
	"image"
	"image/color"
	"io"
)

// SVG writes one unit square per visible cell of img. Cells with partial
// alpha carry an opacity attribute; transparent cells are left out.
func SVG(w io.Writer, img image.Image) error {
	b := img.Bounds()
	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "<?xml version=\"1.0\" encoding=\"UTF-8\"?>\n")
	fmt.Fprintf(bw, "<svg width=\"%d\" height=\"%d\" xmlns=\"http://www.w3.org/2000/svg\" viewBox=\"0 0 %d %d\">\n",
		b.Dx(), b.Dy(), b.Dx(), b.Dy())
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			c := color.NRGBAModel.Convert(img.At(x, y)).(color.NRGBA)
			if c.A == 0 {
				continue
			}
			fmt.Fprintf(bw, "  <rect x=\"%d\" y=\"%d\" width=\"1\" height=\"1\" fill=\"rgb(%d,%d,%d)\"",
				x-b.Min.X, y-b.Min.Y, c.R, c.G, c.B)
			if c.A < 255 {
				fmt.Fprintf(bw, " opacity=\"%.3f\"", float64(c.A)/255)
			}
			fmt.Fprintf(bw, "/>\n")
		}
	}
	fmt.Fprintf(bw, "</svg>\n")
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("failed to write svg: %w", err)
	}
	return nil
}

// SVGFile writes img to path as SVG.
func SVGFile(path string, img image.Image) error {
	return writeFile(path, func(w io.Writer) error { return SVG(w, img) })
}
