// Package ascii renders pixel buffers as grids of glyphs.
//
// The pipeline has four parts:
//   - Ramp: an ordered glyph sequence from least to most dense
//   - Sampler: nearest-neighbor source coordinates and per-pixel brightness
//   - Renderer: builds a Grid from a PixelBuffer and a Ramp
//   - Cropper: trims uniform border rows and columns from a Grid
//
// # Render Variants
//
// Render is the aspect-corrected variant. The horizontal scale is the real
// ratio sourceWidth/width, and each output row advances twice that distance
// in the source because terminal cells are about twice as tall as wide.
// The grid is always rectangular with exactly width columns.
//
// RenderSquare is the square-cell variant. It steps through the source in
// integer strides of max(1, sourceWidth/width) on both axes and follows
// every glyph with a single space. Rows that contain only whitespace are
// dropped.
//
// # Brightness
//
// Brightness is the unweighted integer mean of the red, green and blue
// channels. A fully transparent pixel (alpha 0) always renders as a space
// and never consults the ramp.
//
// # Error Handling
//
// Invalid options are reported with ErrInvalidConfig before any pixel is
// read. Cropping a grid with no rows or no columns reports
// ErrDegenerateGrid. Use errors.Is to test for either.
//
// # Thread Safety
//
// Ramp, Grid and Options are immutable values. Rendering reads the pixel
// buffer only, so one buffer may be shared by concurrent conversions.
package ascii
