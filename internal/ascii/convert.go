package ascii

import "fmt"

const (
	// DefaultWidth is the target width of the aspect-corrected variant.
	DefaultWidth = 150

	// DefaultSquareWidth is the target width of the square-cell variant.
	DefaultSquareWidth = 70

	// DefaultPadding is the number of uniform lines Crop keeps per edge.
	DefaultPadding = 2
)

// Options configures one conversion. It is built once and passed by value.
type Options struct {
	// Ramp maps brightness to glyphs. Must not be empty.
	Ramp Ramp

	// Width is the target grid width in samples. Must be positive.
	Width int

	// Padding is the crop margin kept on each trimmed edge. Must not be negative.
	Padding int

	// Flip reverses the ramp before rendering.
	Flip bool

	// Crop trims uniform border rows and columns after rendering.
	Crop bool

	// Square selects the square-cell variant instead of the aspect-corrected one.
	Square bool

	// SuppressHighlights renders near-white pixels blank.
	SuppressHighlights bool
}

// DefaultOptions returns the aspect-corrected defaults: the default ramp,
// a width of DefaultWidth and a padding of DefaultPadding.
func DefaultOptions() Options {
	return Options{
		Ramp:    MustRamp(DefaultRamp),
		Width:   DefaultWidth,
		Padding: DefaultPadding,
	}
}

// Validate checks the options before any rendering starts.
func (o Options) Validate() error {
	if o.Ramp.Len() == 0 {
		return fmt.Errorf("%w: density ramp must not be empty", ErrInvalidConfig)
	}
	if o.Width <= 0 {
		return fmt.Errorf("%w: width must be positive, got %d", ErrInvalidConfig, o.Width)
	}
	if o.Padding < 0 {
		return fmt.Errorf("%w: padding must not be negative, got %d", ErrInvalidConfig, o.Padding)
	}
	return nil
}

// Convert runs the full pipeline: validate, flip, render, crop.
//
// Any error aborts the conversion and no grid is returned.
func Convert(buf PixelBuffer, opts Options) (*Grid, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}

	ramp := opts.Ramp
	if opts.Flip {
		ramp = ramp.Flip()
	}

	var (
		grid *Grid
		err  error
	)
	if opts.Square {
		grid, err = RenderSquare(buf, ramp, opts.Width, SquareOptions{SuppressHighlights: opts.SuppressHighlights})
	} else {
		grid, err = renderAspect(buf, ramp, opts.Width, opts.SuppressHighlights)
	}
	if err != nil {
		return nil, err
	}

	if !opts.Crop {
		return grid, nil
	}
	return Crop(grid, opts.Padding)
}
