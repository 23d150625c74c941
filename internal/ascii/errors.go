package ascii

import "errors"

var (
	// ErrInvalidConfig reports options that cannot produce a conversion:
	// an empty ramp, a non-positive width, or a negative padding.
	ErrInvalidConfig = errors.New("invalid config")

	// ErrDegenerateGrid reports a grid with no rows or no columns reaching
	// an operation that needs at least one cell.
	ErrDegenerateGrid = errors.New("degenerate grid")
)
