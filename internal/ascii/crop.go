package ascii

import "fmt"

// Crop trims uniform border rows and columns from g, keeping up to padding
// uniform lines on each trimmed edge.
//
// A line is uniform when every glyph in it is either the line's reference
// glyph or whitespace (any rune <= ' '). The reference glyph of a row is its
// leftmost cell; the reference glyph of a column is its bottom cell.
//
// Rows are cropped first. Columns are then scanned over the remaining rows
// only. For each edge the run of uniform lines is counted up to the first
// non-uniform line, reduced by padding, floored at zero, and removed.
//
// When every line is uniform the top and bottom runs overlap. If the slice
// that remains has zero or negative length, Crop returns an empty grid and
// no error.
//
// # Errors
//
//   - ErrDegenerateGrid if g has no rows or no columns
//   - ErrInvalidConfig if padding is negative
func Crop(g *Grid, padding int) (*Grid, error) {
	if g == nil || g.Rows() == 0 || g.Cols() == 0 {
		return nil, fmt.Errorf("%w: cannot crop a grid with no cells", ErrDegenerateGrid)
	}
	if padding < 0 {
		return nil, fmt.Errorf("%w: padding must not be negative, got %d", ErrInvalidConfig, padding)
	}

	rows, cols := g.Rows(), g.Cols()

	fromTop := 0
	for r := 0; r < rows && g.uniformRow(r, 0, cols); r++ {
		fromTop++
	}
	fromBottom := 0
	for r := rows - 1; r >= 0 && g.uniformRow(r, 0, cols); r-- {
		fromBottom++
	}
	top := trimmed(fromTop, padding)
	bottom := rows - trimmed(fromBottom, padding)
	if bottom <= top {
		return &Grid{}, nil
	}

	fromLeft := 0
	for c := 0; c < cols && g.uniformCol(c, top, bottom); c++ {
		fromLeft++
	}
	fromRight := 0
	for c := cols - 1; c >= 0 && g.uniformCol(c, top, bottom); c-- {
		fromRight++
	}
	left := trimmed(fromLeft, padding)
	right := cols - trimmed(fromRight, padding)
	if right <= left {
		return &Grid{}, nil
	}

	return g.slice(top, bottom, left, right), nil
}

// trimmed returns how many of run uniform lines are removed when padding
// lines must be kept.
func trimmed(run, padding int) int {
	if run-padding < 0 {
		return 0
	}
	return run - padding
}

// uniformRow reports whether row r is uniform over columns [left, right).
func (g *Grid) uniformRow(r, left, right int) bool {
	ref := g.glyphs[r][left]
	for c := left; c < right; c++ {
		if !uniformWith(g.glyphs[r][c], ref) {
			return false
		}
	}
	return true
}

// uniformCol reports whether column c is uniform over rows [top, bottom).
// The reference glyph is taken from the bottom row of the range.
func (g *Grid) uniformCol(c, top, bottom int) bool {
	ref := g.glyphs[bottom-1][c]
	for r := top; r < bottom; r++ {
		if !uniformWith(g.glyphs[r][c], ref) {
			return false
		}
	}
	return true
}

func uniformWith(glyph, ref rune) bool {
	return glyph == ref || glyph <= ' '
}
