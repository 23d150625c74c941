package ascii

import (
	"math"

	"github.com/lucasb-eyer/go-colorful"
)

// HighlightThreshold is the brightness at or above which a pixel renders
// blank when highlight suppression is enabled.
const HighlightThreshold = 253

// PixelBuffer is a read-only source of 8-bit pixels.
//
// Coordinates are 0-based with (0,0) at the top-left. Implementations must
// return valid values for 0 <= x < Width() and 0 <= y < Height().
type PixelBuffer interface {
	Width() int
	Height() int
	Pixel(x, y int) (a, r, g, b uint8)
}

// Brightness returns the unweighted mean of the three color channels,
// truncated toward zero.
func Brightness(r, g, b uint8) int {
	return (int(r) + int(g) + int(b)) / 3
}

// sample is one pixel read from a buffer.
type sample struct {
	alpha      uint8
	brightness int
	tint       colorful.Color
}

// transparent reports whether the sample renders blank without touching
// the ramp.
func (s sample) transparent() bool {
	return s.alpha == 0
}

func readSample(buf PixelBuffer, x, y int) sample {
	a, r, g, b := buf.Pixel(x, y)
	return sample{
		alpha:      a,
		brightness: Brightness(r, g, b),
		tint: colorful.Color{
			R: float64(r) / 255.0,
			G: float64(g) / 255.0,
			B: float64(b) / 255.0,
		},
	}
}

// squareStep returns the integer source stride for the square-cell variant.
// It never drops below 1, so images narrower than width are read pixel by
// pixel instead of producing a zero stride.
func squareStep(sourceWidth, width int) int {
	step := sourceWidth / width
	if step < 1 {
		step = 1
	}
	return step
}

// aspectGeometry holds the sampling parameters of the aspect-corrected
// variant.
type aspectGeometry struct {
	scale float64
	cols  int
	rows  int
}

// newAspectGeometry derives the real-valued scale and the output size. The
// row count halves the scaled height because a glyph cell is about twice as
// tall as it is wide. A scale below 1 upsamples by repeating source pixels.
func newAspectGeometry(sourceWidth, sourceHeight, width int) aspectGeometry {
	scale := float64(sourceWidth) / float64(width)
	return aspectGeometry{
		scale: scale,
		cols:  width,
		rows:  int(float64(sourceHeight) / scale / 2),
	}
}

// source maps an output cell to the source pixel it reads, clamped to the
// buffer so floating point rounding cannot step past the last pixel.
func (g aspectGeometry) source(col, row, sourceWidth, sourceHeight int) (x, y int) {
	x = int(math.Floor(float64(col) * g.scale))
	y = int(math.Floor(float64(row) * g.scale * 2))
	return clamp(x, 0, sourceWidth-1), clamp(y, 0, sourceHeight-1)
}

func clamp(val, min, max int) int {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}
