package imaging

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"image"
	"image/color"
	"math"

	"github.com/anthonynsimon/bild/imgio"
	"github.com/disintegration/imaging"
	"github.com/lucasb-eyer/go-colorful"
)

// Marker colors and radii used by the inspection overlay.
const (
	DetectionColor  = "#ff0000"
	DetectionRadius = 3
	HighlightColor  = "#ffff00"
	HighlightRadius = 5

	strokeWidth = 2.0
)

// Marker is a circle outline drawn around a pixel coordinate.
type Marker struct {
	X      int    `json:"x"`
	Y      int    `json:"y"`
	Radius int    `json:"radius"`
	Color  string `json:"color"` // "#rrggbb"
}

// DetectionMarker marks a freshly detected anomaly.
func DetectionMarker(x, y int) Marker {
	return Marker{X: x, Y: y, Radius: DetectionRadius, Color: DetectionColor}
}

// HighlightMarker marks the anomaly the user selected.
func HighlightMarker(x, y int) Marker {
	return Marker{X: x, Y: y, Radius: HighlightRadius, Color: HighlightColor}
}

// OverlayResult contains the annotated image as base64 PNG.
type OverlayResult struct {
	Width       int    `json:"width"`
	Height      int    `json:"height"`
	ImageBase64 string `json:"image_base64"`
	MimeType    string `json:"mime_type"`
	Markers     int    `json:"markers"`
}

// DrawMarkers returns a copy of img with every marker stroked on top. The
// source image is never modified, so each call starts from a clean picture.
func DrawMarkers(img image.Image, markers []Marker) (*image.NRGBA, error) {
	dst := imaging.Clone(img)
	for _, m := range markers {
		c, err := colorful.Hex(m.Color)
		if err != nil {
			return nil, fmt.Errorf("invalid marker color %q: %w", m.Color, err)
		}
		r, g, b := c.RGB255()
		drawCircle(dst, m.X, m.Y, m.Radius, color.NRGBA{R: r, G: g, B: b, A: 255})
	}
	return dst, nil
}

// RenderMarkers draws markers over img and encodes the result as PNG.
func RenderMarkers(img image.Image, markers []Marker) (*OverlayResult, error) {
	dst, err := DrawMarkers(img, markers)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	if err := imgio.PNGEncoder()(&buf, dst); err != nil {
		return nil, fmt.Errorf("failed to encode image: %w", err)
	}

	return &OverlayResult{
		Width:       dst.Bounds().Dx(),
		Height:      dst.Bounds().Dy(),
		ImageBase64: base64.StdEncoding.EncodeToString(buf.Bytes()),
		MimeType:    "image/png",
		Markers:     len(markers),
	}, nil
}

// SaveOverlay draws markers over img and writes a PNG file to path.
func SaveOverlay(path string, img image.Image, markers []Marker) error {
	dst, err := DrawMarkers(img, markers)
	if err != nil {
		return err
	}
	if err := imgio.Save(path, dst, imgio.PNGEncoder()); err != nil {
		return fmt.Errorf("failed to save overlay: %w", err)
	}
	return nil
}

// drawCircle strokes a 2px circle outline centered on (cx, cy).
func drawCircle(img *image.NRGBA, cx, cy, radius int, c color.NRGBA) {
	bounds := img.Bounds()
	half := strokeWidth / 2
	reach := radius + int(math.Ceil(half))

	for y := cy - reach; y <= cy+reach; y++ {
		for x := cx - reach; x <= cx+reach; x++ {
			if x < bounds.Min.X || x >= bounds.Max.X || y < bounds.Min.Y || y >= bounds.Max.Y {
				continue
			}
			d := math.Hypot(float64(x-cx), float64(y-cy))
			if math.Abs(d-float64(radius)) <= half {
				img.SetNRGBA(x, y, c)
			}
		}
	}
}
