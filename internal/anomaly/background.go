package anomaly

// Mean computes the average R, G and B over every pixel of buf. Alpha is
// ignored. A nil or zero-area buffer yields the zero Color; callers are
// expected to guard against that case first.
func Mean(buf PixelBuffer) Color {
	if isEmpty(buf) {
		return Color{}
	}

	w, h := buf.Width(), buf.Height()
	var sumR, sumG, sumB uint64
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			r, g, b, _ := buf.RGBA(x, y)
			sumR += uint64(r)
			sumG += uint64(g)
			sumB += uint64(b)
		}
	}

	n := float64(w) * float64(h)
	return Color{
		R: float64(sumR) / n,
		G: float64(sumG) / n,
		B: float64(sumB) / n,
	}
}
