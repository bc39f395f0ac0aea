package importer

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/image/bmp"

	"PixelLab/internal/vector"
)

func checker(w, h int) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			if (x+y)%2 == 0 {
				img.SetNRGBA(x, y, color.NRGBA{R: uint8(x), G: uint8(y), A: 255})
			}
		}
	}
	return img
}

func TestTraceSkipsTransparent(t *testing.T) {
	img := checker(5, 7)
	objs := Trace(img, nil)
	require.Len(t, objs, 18)
	prev := -1
	for _, o := range objs {
		p, ok := o.(*vector.Point)
		require.True(t, ok)
		assert.Zero(t, (p.X+p.Y)%2)
		assert.Equal(t, color.NRGBA{R: uint8(p.X), G: uint8(p.Y), A: 255}, p.Color())
		idx := p.Y*5 + p.X
		assert.Greater(t, idx, prev, "row-major order")
		prev = idx
	}
}

func TestTraceKeepsPartialAlpha(t *testing.T) {
	img := image.NewNRGBA(image.Rect(10, 10, 12, 11))
	img.SetNRGBA(11, 10, color.NRGBA{B: 200, A: 1})
	objs := Trace(img, nil)
	require.Len(t, objs, 1)
	assert.Equal(t, vector.NewBounds(1, 0, 1, 0), objs[0].Bounds())
}

func TestTraceEmpty(t *testing.T) {
	var got []int
	objs := Trace(image.NewNRGBA(image.Rectangle{}), func(p int) { got = append(got, p) })
	assert.Empty(t, objs)
	assert.Equal(t, []int{100}, got)
}

func TestFit(t *testing.T) {
	small := checker(4, 4)
	assert.Same(t, small, Fit(small, 8, 8))

	big := Fit(checker(100, 50), 32, 32)
	assert.Equal(t, image.Rect(0, 0, 32, 16), big.Bounds())

	thin := Fit(checker(1000, 1), 10, 10)
	assert.Equal(t, image.Rect(0, 0, 10, 1), thin.Bounds())
}

func writePNG(t *testing.T, img image.Image) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "sprite.png")
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	require.NoError(t, os.WriteFile(path, buf.Bytes(), 0644))
	return path
}

func TestLoad(t *testing.T) {
	path := writePNG(t, checker(4, 4))
	var (
		mu  sync.Mutex
		got []int
	)
	g, err := Load(path, 32, 32, func(p int) {
		mu.Lock()
		got = append(got, p)
		mu.Unlock()
	})
	require.NoError(t, err)
	assert.Equal(t, "Imported: sprite.png", g.Name)
	assert.Equal(t, 8, g.Len())
	require.NotEmpty(t, got)
	assert.Equal(t, 100, got[len(got)-1])
	for i := 1; i < len(got); i++ {
		assert.GreaterOrEqual(t, got[i], got[i-1])
	}
}

func TestLoadBMP(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sprite.bmp")
	var buf bytes.Buffer
	img := image.NewNRGBA(image.Rect(0, 0, 3, 3))
	for i := 0; i < len(img.Pix); i += 4 {
		img.Pix[i], img.Pix[i+3] = 90, 255
	}
	require.NoError(t, bmp.Encode(&buf, img))
	require.NoError(t, os.WriteFile(path, buf.Bytes(), 0644))

	g, err := Load(path, 32, 32, nil)
	require.NoError(t, err)
	require.Equal(t, 9, g.Len())
	p := g.Children()[4].(*vector.Point)
	assert.Equal(t, color.NRGBA{R: 90, A: 255}, p.Color())
}

func TestLoadErrors(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.png"), 8, 8, nil)
	assert.Error(t, err)

	path := filepath.Join(t.TempDir(), "junk.png")
	require.NoError(t, os.WriteFile(path, []byte("not an image"), 0644))
	_, err = Load(path, 8, 8, nil)
	assert.Error(t, err)
}

func TestStartDeliversOnce(t *testing.T) {
	path := writePNG(t, checker(6, 6))
	ch := Start(path, 32, 32, nil)
	res, ok := <-ch
	require.True(t, ok)
	require.NoError(t, res.Err)
	assert.Equal(t, 18, res.Group.Len())
	_, ok = <-ch
	assert.False(t, ok)

	res = <-Start("/does/not/exist.png", 8, 8, nil)
	assert.Error(t, res.Err)
	assert.Nil(t, res.Group)
}
