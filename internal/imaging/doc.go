// Package imaging loads image files into pixel buffers for glyph rendering.
//
// It is the only part of the module that touches the file system on the
// input side. Decoding is delegated to the standard library and
// golang.org/x/image decoders through github.com/disintegration/imaging, so
// PNG, JPEG, GIF, BMP, TIFF and WebP are all accepted.
//
// # Pipeline
//
// A typical conversion goes through these steps:
//
//	cache := imaging.NewImageCache()
//	buf, err := imaging.LoadBuffer(cache, "photo.jpg", imaging.Adjustments{})
//	if err != nil {
//		return err
//	}
//	grid, err := ascii.Convert(buf, ascii.DefaultOptions())
//
// CropRegion and Adjust may be applied to the decoded image before it is
// copied into a Buffer.
//
// # Coordinate System
//
// All pixel coordinates in this package are 0-based:
//   - X: horizontal position (0 = leftmost pixel)
//   - Y: vertical position (0 = topmost pixel)
//   - For regions, (x1,y1) is inclusive (top-left), (x2,y2) is exclusive (bottom-right)
//
// A Buffer always starts at (0,0), even when built from a sub-image.
//
// # Thread Safety
//
// ImageCache is safe for concurrent use. A Buffer is never written after it
// is built, so one Buffer can feed several conversions at once.
//
// # Error Handling
//
// Load failures wrap ErrImageRead. Out-of-range adjustments and invalid
// crop regions wrap ascii.ErrInvalidConfig, so callers can tell a bad file
// from a bad request with errors.Is.
package imaging
