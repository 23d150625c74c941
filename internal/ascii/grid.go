package ascii

import (
	"fmt"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

// Grid is a rectangular, immutable grid of glyphs.
//
// Each cell also carries the color of the pixel it was sampled from. Grids
// built from text with GridFromLines have zero tints.
type Grid struct {
	glyphs [][]rune
	tints  [][]colorful.Color
}

// GridFromLines builds a grid from text lines, one row per line.
//
// Returns an error if the lines do not all have the same number of runes.
// An empty slice yields an empty grid.
func GridFromLines(lines []string) (*Grid, error) {
	g := &Grid{
		glyphs: make([][]rune, len(lines)),
		tints:  make([][]colorful.Color, len(lines)),
	}
	for i, line := range lines {
		row := []rune(line)
		if i > 0 && len(row) != len(g.glyphs[0]) {
			return nil, fmt.Errorf("line %d has %d glyphs, want %d", i, len(row), len(g.glyphs[0]))
		}
		g.glyphs[i] = row
		g.tints[i] = make([]colorful.Color, len(row))
	}
	return g, nil
}

// Rows returns the number of rows.
func (g *Grid) Rows() int {
	return len(g.glyphs)
}

// Cols returns the number of columns, or 0 for a grid with no rows.
func (g *Grid) Cols() int {
	if len(g.glyphs) == 0 {
		return 0
	}
	return len(g.glyphs[0])
}

// Glyph returns the glyph at (row, col).
func (g *Grid) Glyph(row, col int) rune {
	return g.glyphs[row][col]
}

// Tint returns the sampled color at (row, col).
func (g *Grid) Tint(row, col int) colorful.Color {
	return g.tints[row][col]
}

// Lines returns one string per row.
func (g *Grid) Lines() []string {
	lines := make([]string, len(g.glyphs))
	for i, row := range g.glyphs {
		lines[i] = string(row)
	}
	return lines
}

// String joins the rows with newlines. The last row has no trailing newline.
func (g *Grid) String() string {
	return strings.Join(g.Lines(), "\n")
}

// slice returns the sub-grid of rows [top, bottom) and columns [left, right).
// The backing arrays are shared; callers never mutate grids after building.
func (g *Grid) slice(top, bottom, left, right int) *Grid {
	if bottom <= top || right <= left {
		return &Grid{}
	}
	out := &Grid{
		glyphs: make([][]rune, 0, bottom-top),
		tints:  make([][]colorful.Color, 0, bottom-top),
	}
	for r := top; r < bottom; r++ {
		out.glyphs = append(out.glyphs, g.glyphs[r][left:right:right])
		out.tints = append(out.tints, g.tints[r][left:right:right])
	}
	return out
}

// rowBuilder accumulates one row of cells before it is appended to a grid.
type rowBuilder struct {
	glyphs []rune
	tints  []colorful.Color
}

func newRowBuilder(capacity int) *rowBuilder {
	return &rowBuilder{
		glyphs: make([]rune, 0, capacity),
		tints:  make([]colorful.Color, 0, capacity),
	}
}

func (b *rowBuilder) add(glyph rune, tint colorful.Color) {
	b.glyphs = append(b.glyphs, glyph)
	b.tints = append(b.tints, tint)
}

// blank reports whether every glyph in the row is whitespace.
func (b *rowBuilder) blank() bool {
	return strings.TrimSpace(string(b.glyphs)) == ""
}

func (g *Grid) appendRow(b *rowBuilder) {
	g.glyphs = append(g.glyphs, b.glyphs)
	g.tints = append(g.tints, b.tints)
}
