package imaging

import (
	"image"

	"github.com/disintegration/imaging"

	"github.com/ironsheep/image-ascii/internal/ascii"
)

var _ ascii.PixelBuffer = (*Buffer)(nil)

// Buffer is a read-only pixel buffer over a decoded image.
//
// The source image is copied once into non-premultiplied 8-bit RGBA, so
// Pixel returns the straight color of a translucent pixel rather than its
// alpha-scaled value. A Buffer is never modified after NewBuffer returns and
// may be shared by concurrent conversions.
type Buffer struct {
	pix *image.NRGBA
}

// NewBuffer copies img into a Buffer. The buffer origin is always (0,0),
// whatever the bounds of img.
func NewBuffer(img image.Image) *Buffer {
	return &Buffer{pix: imaging.Clone(img)}
}

// Width returns the buffer width in pixels.
func (b *Buffer) Width() int {
	return b.pix.Rect.Dx()
}

// Height returns the buffer height in pixels.
func (b *Buffer) Height() int {
	return b.pix.Rect.Dy()
}

// Pixel returns the alpha, red, green and blue components at (x, y).
func (b *Buffer) Pixel(x, y int) (a, r, g, bl uint8) {
	i := b.pix.PixOffset(x, y)
	p := b.pix.Pix[i : i+4 : i+4]
	return p[3], p[0], p[1], p[2]
}

// LoadBuffer loads path through the cache, applies adj, and returns a
// pixel buffer ready for conversion.
//
// Errors from loading wrap ErrImageRead. Invalid adjustments are reported
// before the file is read.
func LoadBuffer(cache *ImageCache, path string, adj Adjustments) (*Buffer, error) {
	if err := adj.Validate(); err != nil {
		return nil, err
	}
	img, err := cache.Load(path)
	if err != nil {
		return nil, err
	}
	return NewBuffer(Adjust(img, adj)), nil
}
