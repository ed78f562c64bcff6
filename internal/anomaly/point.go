package anomaly

import "fmt"

// PointDifference compares one pixel against the buffer's background.
type PointDifference struct {
	X          int     `json:"x"`
	Y          int     `json:"y"`
	Pixel      Color   `json:"pixel"`
	Background Color   `json:"background"`
	Distance   float64 `json:"distance"`
}

// PointDifferenceAt returns the RGB distance between the pixel at (x, y) and
// the mean color of buf. The background is recomputed on every call.
func PointDifferenceAt(buf PixelBuffer, x, y int) (*PointDifference, error) {
	if isEmpty(buf) {
		return nil, ErrEmptyBuffer
	}
	if x < 0 || y < 0 || x >= buf.Width() || y >= buf.Height() {
		return nil, fmt.Errorf("%w: (%d,%d) not in %dx%d", ErrOutOfBounds, x, y, buf.Width(), buf.Height())
	}

	r, g, b, _ := buf.RGBA(x, y)
	pixel := ColorFromRGB(r, g, b)
	bg := Mean(buf)

	return &PointDifference{
		X:          x,
		Y:          y,
		Pixel:      pixel,
		Background: bg,
		Distance:   RGBDistance(pixel, bg),
	}, nil
}

// Summary formats the difference for the inspection info box.
func (p *PointDifference) Summary() string {
	return fmt.Sprintf("Color Difference: %.2f\nAnomaly RGB: %s\nBackground RGB: (%.2f, %.2f, %.2f)",
		p.Distance, p.Pixel, p.Background.R, p.Background.G, p.Background.B)
}
