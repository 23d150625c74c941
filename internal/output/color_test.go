package output

import (
	"reflect"
	"strings"
	"testing"

	"github.com/muesli/termenv"

	"github.com/ironsheep/image-ascii/internal/ascii"
)

// solidBuffer is a uniform opaque pixel buffer.
type solidBuffer struct {
	w, h    int
	r, g, b uint8
}

func (s solidBuffer) Width() int  { return s.w }
func (s solidBuffer) Height() int { return s.h }
func (s solidBuffer) Pixel(x, y int) (uint8, uint8, uint8, uint8) {
	return 255, s.r, s.g, s.b
}

func renderSolid(t *testing.T, r, g, b uint8) *ascii.Grid {
	t.Helper()
	grid, err := ascii.Render(solidBuffer{w: 4, h: 8, r: r, g: g, b: b}, ascii.MustRamp(ascii.DefaultRamp), 4)
	if err != nil {
		t.Fatalf("Render failed: %v", err)
	}
	return grid
}

func TestColorize_AsciiProfileIsPlain(t *testing.T) {
	grid := renderSolid(t, 255, 0, 0)

	got := Colorize(grid, termenv.Ascii)
	if !reflect.DeepEqual(got, grid.Lines()) {
		t.Errorf("got %q, want %q", got, grid.Lines())
	}
}

func TestColorize_TrueColor(t *testing.T) {
	grid := renderSolid(t, 255, 0, 0)

	lines := Colorize(grid, termenv.TrueColor)
	if len(lines) != grid.Rows() {
		t.Fatalf("lines: got %d, want %d", len(lines), grid.Rows())
	}
	for i, line := range lines {
		if !strings.Contains(line, "38;2;255;0;0") {
			t.Errorf("line %d missing red foreground sequence: %q", i, line)
		}
		if !strings.Contains(line, "-") {
			t.Errorf("line %d lost its glyph: %q", i, line)
		}
	}
}

func TestColorize_BlankCellsUncolored(t *testing.T) {
	grid := renderSolid(t, 0, 0, 0)

	lines := Colorize(grid, termenv.TrueColor)
	for i, line := range lines {
		if line != strings.Repeat(" ", grid.Cols()) {
			t.Errorf("line %d: got %q, want plain spaces", i, line)
		}
	}
}

func TestColorize_GridFromLinesUsesBlack(t *testing.T) {
	grid, err := ascii.GridFromLines([]string{"@ "})
	if err != nil {
		t.Fatalf("GridFromLines failed: %v", err)
	}

	lines := Colorize(grid, termenv.TrueColor)
	if !strings.Contains(lines[0], "38;2;0;0;0") {
		t.Errorf("got %q, want black foreground", lines[0])
	}
	if !strings.HasSuffix(lines[0], " ") {
		t.Errorf("trailing blank cell should stay a space: %q", lines[0])
	}
}
