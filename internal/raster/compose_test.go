package raster

import (
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"PixelLab/internal/state"
	"PixelLab/internal/vector"
)

var (
	red  = color.NRGBA{R: 255, A: 255}
	blue = color.NRGBA{B: 255, A: 255}
)

func layer(objs ...vector.Object) *state.Layer {
	m := state.NewManager()
	for _, o := range objs {
		m.AddObject(o)
	}
	return m.CurrentLayer()
}

func TestOpaqueReplaces(t *testing.T) {
	img := Compose([]*state.Layer{
		layer(vector.NewPoint(0, 0, blue)),
		layer(vector.NewPoint(0, 0, red)),
	}, 2, 2)
	assert.Equal(t, red, img.NRGBAAt(0, 0))
	assert.Equal(t, color.NRGBA{}, img.NRGBAAt(1, 1))
}

func TestFilledRectangleScenario(t *testing.T) {
	img := Compose([]*state.Layer{layer(vector.NewRectangle(0, 0, 1, 1, red, true))}, 4, 4)
	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			want := color.NRGBA{}
			if x <= 1 && y <= 1 {
				want = red
			}
			assert.Equal(t, want, img.NRGBAAt(x, y), "(%d,%d)", x, y)
		}
	}
}

func TestBlend(t *testing.T) {
	tests := []struct {
		name     string
		dst, src color.NRGBA
		want     color.NRGBA
	}{
		{"opaque", blue, red, red},
		{"transparent", blue, color.NRGBA{R: 255}, blue},
		{"saturates", color.NRGBA{A: 200}, color.NRGBA{R: 255, A: 102}, color.NRGBA{R: 102, A: 255}},
		{"empty dst", color.NRGBA{}, color.NRGBA{R: 255, A: 51}, color.NRGBA{R: 51, A: 51}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Blend(tt.dst, tt.src))
		})
	}
}

func TestHiddenLayersSkipped(t *testing.T) {
	l := layer(vector.NewPoint(0, 0, red))
	l.Visible = false
	img := Compose([]*state.Layer{l}, 1, 1)
	assert.Equal(t, color.NRGBA{}, img.NRGBAAt(0, 0))
}

func TestLockedLayersStillDrawn(t *testing.T) {
	l := layer(vector.NewPoint(0, 0, red))
	l.Locked = true
	img := Compose([]*state.Layer{l}, 1, 1)
	assert.Equal(t, red, img.NRGBAAt(0, 0))
}

func TestZeroSizeCanvas(t *testing.T) {
	img := Compose([]*state.Layer{layer(vector.NewRectangle(0, 0, 5, 5, red, true))}, 0, 0)
	require.NotNil(t, img)
	assert.True(t, img.Bounds().Empty())
}

func TestOverlayIsOpaque(t *testing.T) {
	img := Compose([]*state.Layer{layer(vector.NewPoint(0, 0, blue))}, 2, 2)
	Overlay(img, vector.NewPoint(0, 0, color.NRGBA{R: 255, A: 10}))
	assert.Equal(t, red, img.NRGBAAt(0, 0))
}

func TestSample(t *testing.T) {
	img := Compose([]*state.Layer{layer(vector.NewPoint(1, 1, red))}, 3, 3)
	assert.Equal(t, red, Sample(img, 1, 1))
	assert.Equal(t, color.NRGBA{}, Sample(img, 5, 1))
	assert.Equal(t, color.NRGBA{}, Sample(img, -1, 0))
}
