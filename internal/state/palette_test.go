package state

import (
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultPalette(t *testing.T) {
	p := DefaultPalette()
	assert.Equal(t, 12, p.Len())
	c, ok := p.At(3)
	require.True(t, ok)
	assert.Equal(t, "#ff0000", FormatHex(c))
}

func TestPaletteAddDedupes(t *testing.T) {
	p := NewPalette()
	p.Add(color.NRGBA{R: 1, A: 10})
	p.Add(color.NRGBA{R: 1, A: 255})
	assert.Equal(t, 1, p.Len())
	assert.True(t, p.Remove(0))
	assert.False(t, p.Remove(0))
}

func TestParseHex(t *testing.T) {
	c, err := ParseHex("#1a2B3c")
	require.NoError(t, err)
	assert.Equal(t, color.NRGBA{0x1a, 0x2b, 0x3c, 255}, c)

	_, err = ParseHex("#123")
	assert.Error(t, err)
	_, err = ParseHex("zzzzzz")
	assert.Error(t, err)
}

func TestSetHexFallsBackToBlack(t *testing.T) {
	p := NewPalette()
	p.SetHex([]string{"#00ff00", "bad"})
	assert.Equal(t, []string{"#00ff00", "#000000"}, p.Hex())
}
