package anomaly

import "math"

// RGBDistance returns the Euclidean distance between two colors in RGB space,
// using the 0-255 channel scale.
func RGBDistance(a, b Color) float64 {
	dr := a.R - b.R
	dg := a.G - b.G
	db := a.B - b.B
	return math.Sqrt(dr*dr + dg*dg + db*db)
}

// PlanarDistance returns the Euclidean distance between two pixel coordinates.
func PlanarDistance(x1, y1, x2, y2 int) float64 {
	dx := float64(x1 - x2)
	dy := float64(y1 - y2)
	return math.Sqrt(dx*dx + dy*dy)
}
