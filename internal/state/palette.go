package state

import (
	"fmt"
	"image/color"
	"slices"
	"strconv"
	"strings"
)

// Palette is the document's list of quick-access colors. Colors are always
// opaque; the hex form carries no alpha.
type Palette struct {
	colors []color.NRGBA
}

var defaultPalette = []color.NRGBA{
	{0, 0, 0, 255},
	{255, 255, 255, 255},
	{128, 128, 128, 255},
	{255, 0, 0, 255},
	{0, 255, 0, 255},
	{0, 0, 255, 255},
	{255, 255, 0, 255},
	{0, 255, 255, 255},
	{255, 0, 255, 255},
	{255, 128, 0, 255},
	{128, 0, 255, 255},
	{0, 128, 64, 255},
}

// DefaultPalette returns the twelve built-in colors.
func DefaultPalette() *Palette {
	return &Palette{colors: slices.Clone(defaultPalette)}
}

// NewPalette returns a palette of the given colors, made opaque.
func NewPalette(colors ...color.NRGBA) *Palette {
	p := &Palette{}
	for _, c := range colors {
		p.Add(c)
	}
	return p
}

// Add appends c unless the palette already holds it.
func (p *Palette) Add(c color.NRGBA) {
	c.A = 255
	if !slices.Contains(p.colors, c) {
		p.colors = append(p.colors, c)
	}
}

// Remove deletes the color at index i.
func (p *Palette) Remove(i int) bool {
	if i < 0 || i >= len(p.colors) {
		return false
	}
	p.colors = slices.Delete(p.colors, i, i+1)
	return true
}

// At returns the color at index i.
func (p *Palette) At(i int) (color.NRGBA, bool) {
	if i < 0 || i >= len(p.colors) {
		return color.NRGBA{}, false
	}
	return p.colors[i], true
}

// Colors returns a copy of the palette.
func (p *Palette) Colors() []color.NRGBA { return slices.Clone(p.colors) }

// Len returns the number of colors.
func (p *Palette) Len() int { return len(p.colors) }

// Hex returns the palette as "#rrggbb" strings.
func (p *Palette) Hex() []string {
	out := make([]string, len(p.colors))
	for i, c := range p.colors {
		out[i] = FormatHex(c)
	}
	return out
}

// SetHex replaces the palette with parsed hex colors. Malformed entries
// become black, matching files written by older versions.
func (p *Palette) SetHex(list []string) {
	p.colors = p.colors[:0]
	for _, s := range list {
		c, err := ParseHex(s)
		if err != nil {
			c = color.NRGBA{A: 255}
		}
		p.colors = append(p.colors, c)
	}
}

// FormatHex renders c as "#rrggbb", dropping alpha.
func FormatHex(c color.NRGBA) string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// ParseHex reads "#rrggbb" or "rrggbb" into an opaque color.
func ParseHex(s string) (color.NRGBA, error) {
	h := strings.TrimPrefix(s, "#")
	if len(h) != 6 {
		return color.NRGBA{}, fmt.Errorf("parse color %q: want 6 hex digits", s)
	}
	v, err := strconv.ParseUint(h, 16, 32)
	if err != nil {
		return color.NRGBA{}, fmt.Errorf("parse color %q: %w", s, err)
	}
	return color.NRGBA{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v), A: 255}, nil
}
