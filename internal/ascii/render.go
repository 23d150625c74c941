package ascii

import "fmt"

// SquareOptions tunes the square-cell variant.
type SquareOptions struct {
	// SuppressHighlights renders pixels with brightness >= HighlightThreshold
	// blank, the same as fully transparent pixels.
	SuppressHighlights bool
}

// Render converts buf into a grid of exactly width columns using the
// aspect-corrected variant.
//
// The number of rows is floor(sourceHeight/scale/2) with
// scale = sourceWidth/width. Every row is emitted, including blank ones;
// trimming is left to Crop. A very wide image may produce zero rows.
//
// Returns an error wrapping ErrInvalidConfig if width is not positive, the
// ramp is empty, or buf has no pixels.
func Render(buf PixelBuffer, ramp Ramp, width int) (*Grid, error) {
	return renderAspect(buf, ramp, width, false)
}

// RenderSquare converts buf into a grid using the square-cell variant.
//
// The source is read every step pixels on both axes, where
// step = max(1, sourceWidth/width). Each sample becomes two cells: the
// glyph and a space separator. Rows that hold only whitespace are omitted,
// so the row count can be lower than the number of vertical steps.
func RenderSquare(buf PixelBuffer, ramp Ramp, width int, opts SquareOptions) (*Grid, error) {
	if err := checkRenderInput(buf, ramp, width); err != nil {
		return nil, err
	}

	srcW, srcH := buf.Width(), buf.Height()
	step := squareStep(srcW, width)
	cols := (srcW + step - 1) / step

	grid := &Grid{}
	for y := 0; y < srcH; y += step {
		row := newRowBuilder(cols * 2)
		for x := 0; x < srcW; x += step {
			s := readSample(buf, x, y)
			glyph := cellGlyph(s, ramp, opts.SuppressHighlights)
			row.add(glyph, s.tint)
			row.add(' ', s.tint)
		}
		if row.blank() {
			continue
		}
		grid.appendRow(row)
	}
	return grid, nil
}

func renderAspect(buf PixelBuffer, ramp Ramp, width int, suppressHighlights bool) (*Grid, error) {
	if err := checkRenderInput(buf, ramp, width); err != nil {
		return nil, err
	}

	srcW, srcH := buf.Width(), buf.Height()
	geo := newAspectGeometry(srcW, srcH, width)

	grid := &Grid{}
	for r := 0; r < geo.rows; r++ {
		row := newRowBuilder(geo.cols)
		for c := 0; c < geo.cols; c++ {
			x, y := geo.source(c, r, srcW, srcH)
			s := readSample(buf, x, y)
			row.add(cellGlyph(s, ramp, suppressHighlights), s.tint)
		}
		grid.appendRow(row)
	}
	return grid, nil
}

// cellGlyph picks the glyph for one sample. Transparent pixels bypass the
// ramp entirely: a black opaque pixel still gets the ramp's first glyph.
func cellGlyph(s sample, ramp Ramp, suppressHighlights bool) rune {
	if s.transparent() {
		return ' '
	}
	if suppressHighlights && s.brightness >= HighlightThreshold {
		return ' '
	}
	return ramp.Glyph(s.brightness)
}

func checkRenderInput(buf PixelBuffer, ramp Ramp, width int) error {
	if ramp.Len() == 0 {
		return fmt.Errorf("%w: density ramp must not be empty", ErrInvalidConfig)
	}
	if width <= 0 {
		return fmt.Errorf("%w: width must be positive, got %d", ErrInvalidConfig, width)
	}
	if buf == nil || buf.Width() <= 0 || buf.Height() <= 0 {
		return fmt.Errorf("%w: pixel buffer has no pixels", ErrInvalidConfig)
	}
	return nil
}
