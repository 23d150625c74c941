// Package output writes rendered glyph grids to terminals and text files.
//
// Plain output is one line per grid row, each terminated by a newline.
// Colored output wraps every non-blank glyph in an ANSI foreground sequence
// built from the color of the pixel it was sampled from. The escape
// sequences are chosen by a termenv.Profile, so the same grid degrades to
// 256 or 16 colors, or to plain text, depending on the terminal.
package output
