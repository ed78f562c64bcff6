package anomaly

import "fmt"

// PixelBuffer is a read-only rectangular grid of RGBA samples with origin at
// the top-left. Any pixel source (decoded file, canvas snapshot, in-memory
// array) can back a scan by implementing it.
type PixelBuffer interface {
	Width() int
	Height() int
	// RGBA returns the 8-bit channels at (x, y). Callers keep x in
	// [0, Width) and y in [0, Height).
	RGBA(x, y int) (r, g, b, a uint8)
}

// Buffer is an in-memory PixelBuffer laid out row-major with four bytes per
// pixel, the same layout as a canvas ImageData array.
type Buffer struct {
	W, H int
	Pix  []uint8
}

// NewBuffer allocates a transparent black w×h buffer.
func NewBuffer(w, h int) *Buffer {
	if w < 0 || h < 0 {
		w, h = 0, 0
	}
	return &Buffer{W: w, H: h, Pix: make([]uint8, 4*w*h)}
}

// NewBufferFromPix wraps an existing RGBA byte slice.
func NewBufferFromPix(w, h int, pix []uint8) (*Buffer, error) {
	if w < 0 || h < 0 {
		return nil, fmt.Errorf("invalid buffer size %dx%d", w, h)
	}
	if len(pix) != 4*w*h {
		return nil, fmt.Errorf("pixel data length %d does not match %dx%d RGBA", len(pix), w, h)
	}
	return &Buffer{W: w, H: h, Pix: pix}, nil
}

// Width returns the number of columns; zero for a nil buffer.
func (b *Buffer) Width() int {
	if b == nil {
		return 0
	}
	return b.W
}

// Height returns the number of rows; zero for a nil buffer.
func (b *Buffer) Height() int {
	if b == nil {
		return 0
	}
	return b.H
}

// Offset returns the index of the first byte of pixel (x, y) in Pix.
func (b *Buffer) Offset(x, y int) int {
	return 4 * (y*b.W + x)
}

// RGBA returns the channels of pixel (x, y). Coordinates outside the buffer
// panic, as with slice indexing.
func (b *Buffer) RGBA(x, y int) (r, g, bl, a uint8) {
	i := b.Offset(x, y)
	return b.Pix[i], b.Pix[i+1], b.Pix[i+2], b.Pix[i+3]
}

// At returns the pixel at linear index i (i = y*W + x). An empty buffer has
// no pixels and reports ok == false; an index past the end panics like RGBA.
func (b *Buffer) At(i int) (r, g, bl, a uint8, ok bool) {
	if isEmpty(b) {
		return 0, 0, 0, 0, false
	}
	r, g, bl, a = b.RGBA(i%b.W, i/b.W)
	return r, g, bl, a, true
}

// Set writes one pixel.
func (b *Buffer) Set(x, y int, r, g, bl, a uint8) {
	i := b.Offset(x, y)
	b.Pix[i], b.Pix[i+1], b.Pix[i+2], b.Pix[i+3] = r, g, bl, a
}

// Fill paints every pixel with the same color.
func (b *Buffer) Fill(r, g, bl, a uint8) {
	for i := 0; i < len(b.Pix); i += 4 {
		b.Pix[i], b.Pix[i+1], b.Pix[i+2], b.Pix[i+3] = r, g, bl, a
	}
}

func isEmpty(buf PixelBuffer) bool {
	return buf == nil || buf.Width() <= 0 || buf.Height() <= 0
}
