package imaging

import (
	"image"

	"github.com/disintegration/imaging"
)

// Frame is a decoded image rendered at scan size, stored as non-premultiplied
// RGBA with its origin at (0, 0). It satisfies anomaly.PixelBuffer.
type Frame struct {
	img *image.NRGBA
}

// NewFrame renders img into a Frame.
//
// Width and height play the role of the display surface size:
//   - both zero, or equal to the natural size: the image is copied as-is
//   - one zero: the other is honored and the aspect ratio kept
//   - both set: the image is stretched to exactly width×height
//
// A nil image or a negative size produces an empty frame.
func NewFrame(img image.Image, width, height int) *Frame {
	if img == nil || width < 0 || height < 0 {
		return &Frame{img: &image.NRGBA{}}
	}

	b := img.Bounds()
	if (width == 0 && height == 0) || (width == b.Dx() && height == b.Dy()) {
		return &Frame{img: imaging.Clone(img)}
	}
	return &Frame{img: imaging.Resize(img, width, height, imaging.Linear)}
}

// Width returns the rendered width in pixels.
func (f *Frame) Width() int {
	return f.img.Bounds().Dx()
}

// Height returns the rendered height in pixels.
func (f *Frame) Height() int {
	return f.img.Bounds().Dy()
}

// RGBA returns the straight (non-premultiplied) channels at (x, y).
func (f *Frame) RGBA(x, y int) (r, g, b, a uint8) {
	i := f.img.PixOffset(x+f.img.Rect.Min.X, y+f.img.Rect.Min.Y)
	p := f.img.Pix[i : i+4 : i+4]
	return p[0], p[1], p[2], p[3]
}

// Image exposes the rendered pixels, e.g. as the base for an overlay.
func (f *Frame) Image() image.Image {
	return f.img
}
