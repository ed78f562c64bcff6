package anomaly

import (
	"errors"
	"fmt"
	"log"
)

var (
	// ErrIndexOutOfRange is returned when a record index does not exist in
	// the Result being queried.
	ErrIndexOutOfRange = errors.New("anomaly index out of range")

	// ErrEmptyBuffer is returned by queries that need at least one pixel.
	ErrEmptyBuffer = errors.New("pixel buffer is empty")

	// ErrOutOfBounds is returned for coordinates outside the buffer.
	ErrOutOfBounds = errors.New("coordinates outside buffer")
)

// Options tunes a Detector. DefaultOptions holds the values the inspection
// tool has always used.
type Options struct {
	// Margin is the border width, in pixels, that is never scanned.
	Margin int

	// MinDistance is the clustering distance. A candidate strictly closer
	// than this to an accepted anomaly is discarded.
	MinDistance float64

	// BrightnessCutoff selects between the two thresholds: a background
	// brighter than this uses BrightThreshold.
	BrightnessCutoff float64

	// BrightThreshold is the color distance a pixel must exceed on a bright
	// background.
	BrightThreshold float64

	// DarkThreshold is the color distance a pixel must exceed otherwise.
	DarkThreshold float64
}

// DefaultOptions returns margin 20, clustering distance 10 and thresholds
// 80/100 split at brightness 128.
func DefaultOptions() Options {
	return Options{
		Margin:           20,
		MinDistance:      10,
		BrightnessCutoff: 128,
		BrightThreshold:  80,
		DarkThreshold:    100,
	}
}

// Threshold picks the color-distance threshold for a background brightness.
func (o Options) Threshold(brightness float64) float64 {
	if brightness > o.BrightnessCutoff {
		return o.BrightThreshold
	}
	return o.DarkThreshold
}

// Record is one accepted anomaly. Index is its position in discovery order
// and never changes after the scan.
type Record struct {
	X     int `json:"x"`
	Y     int `json:"y"`
	Index int `json:"index"`
}

func (r Record) String() string {
	return fmt.Sprintf("(%d, %d)", r.X, r.Y)
}

// Result is the outcome of a single scan. It is never updated after Detect
// returns; a new scan produces a new Result.
type Result struct {
	Hue        Hue      `json:"hue"`
	Width      int      `json:"width"`
	Height     int      `json:"height"`
	Background Color    `json:"background"`
	Brightness float64  `json:"brightness"`
	Threshold  float64  `json:"threshold"`
	Records    []Record `json:"records"`
}

// Len returns the number of anomalies.
func (r *Result) Len() int {
	if r == nil {
		return 0
	}
	return len(r.Records)
}

// Record looks up an anomaly by its index. Out-of-range indices are an
// error, never clamped.
func (r *Result) Record(index int) (Record, error) {
	if index < 0 || index >= r.Len() {
		return Record{}, fmt.Errorf("%w: %d (have %d)", ErrIndexOutOfRange, index, r.Len())
	}
	return r.Records[index], nil
}

// Coordinates renders the list shown to the user, one "(x, y)" per record.
func (r *Result) Coordinates() []string {
	out := make([]string, 0, r.Len())
	if r == nil {
		return out
	}
	for _, rec := range r.Records {
		out = append(out, rec.String())
	}
	return out
}

// Detector scans pixel buffers for hue anomalies. It holds no state between
// calls and may be reused.
type Detector struct {
	opts Options
}

// NewDetector creates a Detector with the given options.
func NewDetector(opts Options) *Detector {
	return &Detector{opts: opts}
}

// Options returns the detector configuration.
func (d *Detector) Options() Options {
	return d.opts
}

// Detect runs a scan with DefaultOptions.
func Detect(buf PixelBuffer, hue Hue) *Result {
	return NewDetector(DefaultOptions()).Detect(buf, hue)
}

// Detect scans buf for pixels that differ from the mean background by more
// than the adaptive threshold and match hue.
//
// Parameters:
//   - buf: The pixels to scan. nil, or a buffer with zero width or height, is
//     logged and yields an empty Result.
//   - hue: The dominant channel a candidate must have. An unknown value
//     matches nothing.
//
// Returns a Result that is never nil and whose Records slice is never nil.
// Background, Brightness and Threshold record what the scan compared against,
// and Records are numbered 0..n-1 in scan order.
//
// # Algorithm
//
//  1. Background is the mean of every pixel, margins included.
//  2. Threshold is BrightThreshold when the background brightness exceeds
//     BrightnessCutoff, DarkThreshold otherwise.
//  3. Pixels within Margin of the left or top edge, or beyond
//     width-Margin / height-Margin, are skipped.
//  4. A pixel is a candidate when its distance to the background is strictly
//     greater than the threshold and hue dominates it.
//  5. A candidate strictly closer than MinDistance to an accepted record is
//     dropped.
//
// The scan visits interior pixels row by row, so for a fixed buffer and hue
// the output is always the same, and within a cluster of nearby candidates
// the first one in scan order is kept.
func (d *Detector) Detect(buf PixelBuffer, hue Hue) *Result {
	res := &Result{Hue: hue, Records: []Record{}}
	if isEmpty(buf) {
		if buf == nil {
			log.Printf("anomaly: no image available, skipping scan")
		} else {
			log.Printf("anomaly: image has zero area (%dx%d), skipping scan", buf.Width(), buf.Height())
		}
		return res
	}

	w, h := buf.Width(), buf.Height()
	res.Width, res.Height = w, h
	res.Background = Mean(buf)
	res.Brightness = res.Background.Brightness()
	res.Threshold = d.opts.Threshold(res.Brightness)

	margin := d.opts.Margin
	// Border pixels are skipped; the last scanned column is w-margin.
	xMax := minInt(w-1, w-margin)
	yMax := minInt(h-1, h-margin)
	xMin := maxInt(0, margin)
	yMin := maxInt(0, margin)

	index := newClusterIndex(d.opts.MinDistance)
	for y := yMin; y <= yMax; y++ {
		for x := xMin; x <= xMax; x++ {
			r, g, b, _ := buf.RGBA(x, y)
			if RGBDistance(ColorFromRGB(r, g, b), res.Background) <= res.Threshold {
				continue
			}
			if !hue.Matches(r, g, b) {
				continue
			}
			if index.tooClose(x, y) {
				continue
			}
			rec := Record{X: x, Y: y, Index: len(res.Records)}
			res.Records = append(res.Records, rec)
			index.add(rec)
		}
	}

	return res
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
