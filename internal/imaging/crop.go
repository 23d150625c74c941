package imaging

import (
	"fmt"
	"image"

	"github.com/disintegration/imaging"

	"github.com/ironsheep/image-ascii/internal/ascii"
)

// Region is a rectangle in source pixel coordinates. (X1,Y1) is inclusive
// and (X2,Y2) is exclusive.
type Region struct {
	X1 int `json:"x1"`
	Y1 int `json:"y1"`
	X2 int `json:"x2"`
	Y2 int `json:"y2"`
}

// CropRegion extracts r from img. The result has its origin at (0,0).
// An empty or out-of-bounds region wraps ascii.ErrInvalidConfig.
func CropRegion(img image.Image, r Region) (image.Image, error) {
	bounds := img.Bounds()

	if r.X1 < bounds.Min.X || r.Y1 < bounds.Min.Y || r.X2 > bounds.Max.X || r.Y2 > bounds.Max.Y {
		return nil, fmt.Errorf("%w: crop region (%d,%d)-(%d,%d) outside image bounds (%d,%d)-(%d,%d)",
			ascii.ErrInvalidConfig, r.X1, r.Y1, r.X2, r.Y2,
			bounds.Min.X, bounds.Min.Y, bounds.Max.X, bounds.Max.Y)
	}
	if r.X1 >= r.X2 || r.Y1 >= r.Y2 {
		return nil, fmt.Errorf("%w: invalid crop region: x1 must be < x2, y1 must be < y2", ascii.ErrInvalidConfig)
	}

	return imaging.Crop(img, image.Rect(r.X1, r.Y1, r.X2, r.Y2)), nil
}

// NamedRegion resolves a named part of img to a Region.
//
// Recognized names: top-left, top-right, bottom-left, bottom-right,
// top-half, bottom-half, left-half, right-half and center (the middle 50%).
func NamedRegion(img image.Image, name string) (Region, error) {
	bounds := img.Bounds()
	w := bounds.Dx()
	h := bounds.Dy()
	midX := w / 2
	midY := h / 2

	var r Region
	switch name {
	case "top-left":
		r = Region{0, 0, midX, midY}
	case "top-right":
		r = Region{midX, 0, w, midY}
	case "bottom-left":
		r = Region{0, midY, midX, h}
	case "bottom-right":
		r = Region{midX, midY, w, h}
	case "top-half":
		r = Region{0, 0, w, midY}
	case "bottom-half":
		r = Region{0, midY, w, h}
	case "left-half":
		r = Region{0, 0, midX, h}
	case "right-half":
		r = Region{midX, 0, w, h}
	case "center":
		qW := w / 4
		qH := h / 4
		r = Region{qW, qH, w - qW, h - qH}
	default:
		return Region{}, fmt.Errorf("%w: unknown region: %s", ascii.ErrInvalidConfig, name)
	}

	r.X1 += bounds.Min.X
	r.X2 += bounds.Min.X
	r.Y1 += bounds.Min.Y
	r.Y2 += bounds.Min.Y
	return r, nil
}
