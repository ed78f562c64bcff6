package anomaly

import (
	"fmt"
	"math"

	"github.com/lucasb-eyer/go-colorful"
)

// Color is an RGB triple on the 0-255 scale. Components are real-valued
// because background averages are usually fractional; sampled pixels hold
// integral values.
type Color struct {
	R float64 `json:"r"`
	G float64 `json:"g"`
	B float64 `json:"b"`
}

// ColorFromRGB builds a Color from 8-bit channel values.
func ColorFromRGB(r, g, b uint8) Color {
	return Color{R: float64(r), G: float64(g), B: float64(b)}
}

// Brightness is the plain mean of the three channels.
func (c Color) Brightness() float64 {
	return (c.R + c.G + c.B) / 3
}

// Hex formats the color as "#RRGGBB", rounding fractional channels.
func (c Color) Hex() string {
	return colorful.Color{R: c.R / 255, G: c.G / 255, B: c.B / 255}.Clamped().Hex()
}

// String renders "(r, g, b)". Integral colors print without decimals, others
// with two, matching the inspection info box.
func (c Color) String() string {
	if isIntegral(c.R) && isIntegral(c.G) && isIntegral(c.B) {
		return fmt.Sprintf("(%d, %d, %d)", int(c.R), int(c.G), int(c.B))
	}
	return fmt.Sprintf("(%.2f, %.2f, %.2f)", c.R, c.G, c.B)
}

func isIntegral(v float64) bool {
	return v == math.Trunc(v)
}
