package imaging

import (
	"fmt"
	"image"

	"github.com/anthonynsimon/bild/adjust"

	"github.com/ironsheep/image-ascii/internal/ascii"
)

// Adjustments are tonal corrections applied to the source image before
// sampling. The zero value applies nothing.
type Adjustments struct {
	// Contrast in [-1, 1]. 0 leaves contrast unchanged.
	Contrast float64 `json:"contrast" toml:"contrast"`

	// Brightness in [-1, 1]. 0 leaves brightness unchanged.
	Brightness float64 `json:"brightness" toml:"brightness"`

	// Gamma correction factor. 0 and 1 both leave the image unchanged.
	Gamma float64 `json:"gamma" toml:"gamma"`
}

// IsZero reports whether the adjustments leave the image untouched.
func (a Adjustments) IsZero() bool {
	return a.Contrast == 0 && a.Brightness == 0 && (a.Gamma == 0 || a.Gamma == 1)
}

// Validate checks the adjustment ranges. Failures wrap ascii.ErrInvalidConfig.
func (a Adjustments) Validate() error {
	if a.Contrast < -1 || a.Contrast > 1 {
		return fmt.Errorf("%w: contrast must be in [-1,1], got %g", ascii.ErrInvalidConfig, a.Contrast)
	}
	if a.Brightness < -1 || a.Brightness > 1 {
		return fmt.Errorf("%w: brightness must be in [-1,1], got %g", ascii.ErrInvalidConfig, a.Brightness)
	}
	if a.Gamma < 0 {
		return fmt.Errorf("%w: gamma must not be negative, got %g", ascii.ErrInvalidConfig, a.Gamma)
	}
	return nil
}

// Adjust applies a to img in the order brightness, contrast, gamma.
// When a is zero the original image is returned as is.
func Adjust(img image.Image, a Adjustments) image.Image {
	if a.IsZero() {
		return img
	}

	out := img
	if a.Brightness != 0 {
		out = adjust.Brightness(out, a.Brightness)
	}
	if a.Contrast != 0 {
		out = adjust.Contrast(out, a.Contrast)
	}
	if a.Gamma != 0 && a.Gamma != 1 {
		out = adjust.Gamma(out, a.Gamma)
	}
	return out
}
