package tools

import (
	"image/color"

	"PixelLab/internal/vector"
)

// Sampler reads the composited document at a canvas cell.
type Sampler func(x, y int) color.NRGBA

// EyedropperTool picks colors from the composited document. It never
// changes the document.
type EyedropperTool struct {
	sample Sampler
	onPick func(color.NRGBA)
	down   bool
}

func NewEyedropper(sample Sampler, onPick func(color.NRGBA)) *EyedropperTool {
	return &EyedropperTool{sample: sample, onPick: onPick}
}

func (t *EyedropperTool) Kind() Kind { return Eyedropper }

func (t *EyedropperTool) Press(x, y int, _ Target) bool {
	t.down = true
	t.pick(x, y)
	return false
}

func (t *EyedropperTool) Drag(x, y int, _ Target) bool {
	if t.down {
		t.pick(x, y)
	}
	return false
}

func (t *EyedropperTool) Release(int, int, Target) bool {
	t.down = false
	return false
}

func (t *EyedropperTool) Preview() vector.Object { return nil }

func (t *EyedropperTool) pick(x, y int) {
	if t.sample == nil || t.onPick == nil {
		return
	}
	t.onPick(t.sample(x, y))
}
