package imaging

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"image"

	"github.com/anthonynsimon/bild/imgio"
	"github.com/disintegration/imaging"
)

// ZoomResult is a magnified patch around one pixel, encoded as base64 PNG.
type ZoomResult struct {
	// Region is the cropped source rectangle, clipped to the image.
	X1          int    `json:"x1"`
	Y1          int    `json:"y1"`
	X2          int    `json:"x2"`
	Y2          int    `json:"y2"`
	Scale       int    `json:"scale"`
	Width       int    `json:"width"`
	Height      int    `json:"height"`
	ImageBase64 string `json:"image_base64"`
	MimeType    string `json:"mime_type"`
}

// Zoom crops the square of the given radius around (x, y) and enlarges it by
// scale with nearest-neighbor sampling, so single-pixel anomalies stay sharp.
func Zoom(img image.Image, x, y, radius, scale int) (*ZoomResult, error) {
	if radius < 0 || scale < 1 {
		return nil, fmt.Errorf("invalid zoom: radius %d, scale %d", radius, scale)
	}

	bounds := img.Bounds()
	cx, cy := bounds.Min.X+x, bounds.Min.Y+y
	if !image.Pt(cx, cy).In(bounds) {
		return nil, fmt.Errorf("coordinates (%d,%d) outside image bounds", x, y)
	}

	rect := image.Rect(cx-radius, cy-radius, cx+radius+1, cy+radius+1).Intersect(bounds)
	patch := imaging.Crop(img, rect)
	if scale > 1 {
		patch = imaging.Resize(patch, patch.Bounds().Dx()*scale, patch.Bounds().Dy()*scale, imaging.NearestNeighbor)
	}

	var buf bytes.Buffer
	if err := imgio.PNGEncoder()(&buf, patch); err != nil {
		return nil, fmt.Errorf("failed to encode zoomed image: %w", err)
	}

	return &ZoomResult{
		X1:          rect.Min.X - bounds.Min.X,
		Y1:          rect.Min.Y - bounds.Min.Y,
		X2:          rect.Max.X - bounds.Min.X,
		Y2:          rect.Max.Y - bounds.Min.Y,
		Scale:       scale,
		Width:       patch.Bounds().Dx(),
		Height:      patch.Bounds().Dy(),
		ImageBase64: base64.StdEncoding.EncodeToString(buf.Bytes()),
		MimeType:    "image/png",
	}, nil
}
