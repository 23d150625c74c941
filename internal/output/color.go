package output

import (
	"strings"
	"unicode"

	"github.com/muesli/termenv"

	"github.com/ironsheep/image-ascii/internal/ascii"
)

// Colorize renders g as lines of glyphs colored with their tints.
//
// Blank cells stay plain spaces. With the termenv.Ascii profile the result
// equals g.Lines().
func Colorize(g *ascii.Grid, p termenv.Profile) []string {
	if p == termenv.Ascii {
		return g.Lines()
	}

	lines := make([]string, g.Rows())
	var sb strings.Builder
	for r := 0; r < g.Rows(); r++ {
		sb.Reset()
		for c := 0; c < g.Cols(); c++ {
			glyph := g.Glyph(r, c)
			if unicode.IsSpace(glyph) {
				sb.WriteRune(glyph)
				continue
			}
			fg := p.Color(g.Tint(r, c).Hex())
			sb.WriteString(p.String(string(glyph)).Foreground(fg).String())
		}
		lines[r] = sb.String()
	}
	return lines
}
