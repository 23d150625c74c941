package ascii

import "fmt"

// DefaultRamp is the density ramp used when none is configured.
const DefaultRamp = " .:-=+*#%@"

// Ramp is an ordered, non-empty glyph sequence. Index 0 is the least dense
// glyph and is used for the darkest pixels; the last index is the most dense.
//
// A Ramp is immutable. Flip returns a new value.
type Ramp struct {
	glyphs []rune
}

// NewRamp builds a ramp from the runes of chars.
//
// Returns an error wrapping ErrInvalidConfig if chars is empty.
func NewRamp(chars string) (Ramp, error) {
	glyphs := []rune(chars)
	if len(glyphs) == 0 {
		return Ramp{}, fmt.Errorf("%w: density ramp must not be empty", ErrInvalidConfig)
	}
	return Ramp{glyphs: glyphs}, nil
}

// MustRamp is like NewRamp but panics on an empty ramp.
func MustRamp(chars string) Ramp {
	r, err := NewRamp(chars)
	if err != nil {
		panic(err)
	}
	return r
}

// Len returns the number of glyphs in the ramp.
func (r Ramp) Len() int {
	return len(r.glyphs)
}

// Glyph maps a brightness in [0,255] to a glyph.
//
// The index is floor(brightness*(Len-1)/255) using integer division, so
// Glyph(0) is the first glyph and Glyph(255) is the last. Values outside
// [0,255] are clamped.
func (r Ramp) Glyph(brightness int) rune {
	if brightness < 0 {
		brightness = 0
	} else if brightness > 255 {
		brightness = 255
	}
	return r.glyphs[brightness*(len(r.glyphs)-1)/255]
}

// Flip returns a new ramp with the glyph order reversed.
func (r Ramp) Flip() Ramp {
	flipped := make([]rune, len(r.glyphs))
	for i, g := range r.glyphs {
		flipped[len(r.glyphs)-1-i] = g
	}
	return Ramp{glyphs: flipped}
}

// String returns the ramp's glyphs in order.
func (r Ramp) String() string {
	return string(r.glyphs)
}
