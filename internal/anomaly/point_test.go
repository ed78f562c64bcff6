package anomaly

import (
	"errors"
	"math"
	"strings"
	"testing"
)

func TestMean(t *testing.T) {
	buf := NewBuffer(2, 2)
	buf.Set(0, 0, 255, 0, 0, 255)
	buf.Set(1, 0, 0, 255, 0, 0) // alpha is ignored
	buf.Set(0, 1, 0, 0, 255, 128)
	buf.Set(1, 1, 1, 1, 1, 255)

	got := Mean(buf)
	want := Color{R: 64, G: 64, B: 64}
	if got != want {
		t.Errorf("Mean: got %+v, want %+v", got, want)
	}

	if (Mean(nil) != Color{}) {
		t.Error("Mean(nil) should be the zero color")
	}
	if (Mean(NewBuffer(0, 5)) != Color{}) {
		t.Error("Mean of zero-area buffer should be the zero color")
	}
}

func TestBuffer_LinearAccess(t *testing.T) {
	buf := NewBuffer(4, 3)
	buf.Set(2, 1, 10, 20, 30, 40)

	r, g, b, a, ok := buf.At(1*4 + 2)
	if !ok || r != 10 || g != 20 || b != 30 || a != 40 {
		t.Errorf("At: got (%d,%d,%d,%d) ok=%v", r, g, b, a, ok)
	}
	if off := buf.Offset(2, 1); off != 24 {
		t.Errorf("Offset: got %d, want 24", off)
	}
}

func TestBuffer_AtEmpty(t *testing.T) {
	var nilBuf *Buffer
	for name, buf := range map[string]*Buffer{
		"zero width":  NewBuffer(0, 3),
		"zero height": NewBuffer(3, 0),
		"nil":         nilBuf,
	} {
		if _, _, _, _, ok := buf.At(0); ok {
			t.Errorf("%s: At(0) should report no pixel", name)
		}
	}
}

func TestNewBufferFromPix(t *testing.T) {
	if _, err := NewBufferFromPix(2, 2, make([]uint8, 16)); err != nil {
		t.Errorf("valid pixel data rejected: %v", err)
	}
	if _, err := NewBufferFromPix(2, 2, make([]uint8, 15)); err == nil {
		t.Error("short pixel data should be rejected")
	}
	if _, err := NewBufferFromPix(-1, 2, nil); err == nil {
		t.Error("negative size should be rejected")
	}
}

func TestPointDifferenceAt(t *testing.T) {
	buf := newSolidBuffer(60, 60, 0, 0, 0)
	buf.Set(30, 30, 255, 0, 0, 255)

	pd, err := PointDifferenceAt(buf, 30, 30)
	if err != nil {
		t.Fatalf("PointDifferenceAt failed: %v", err)
	}

	if pd.Pixel != (Color{255, 0, 0}) {
		t.Errorf("Pixel: got %+v", pd.Pixel)
	}
	wantBg := Color{R: 255.0 / 3600.0}
	if pd.Background != wantBg {
		t.Errorf("Background: got %+v, want %+v", pd.Background, wantBg)
	}
	if math.Abs(pd.Distance-(255-wantBg.R)) > 1e-9 {
		t.Errorf("Distance: got %v, want %v", pd.Distance, 255-wantBg.R)
	}
}

func TestPointDifferenceAt_Reproducible(t *testing.T) {
	buf := newNoiseBuffer(64, 48, 3)

	first, err := PointDifferenceAt(buf, 10, 20)
	if err != nil {
		t.Fatalf("first call failed: %v", err)
	}
	second, err := PointDifferenceAt(buf, 10, 20)
	if err != nil {
		t.Fatalf("second call failed: %v", err)
	}
	if first.Distance != second.Distance {
		t.Errorf("Distance differs between calls: %v vs %v", first.Distance, second.Distance)
	}
}

func TestPointDifferenceAt_Errors(t *testing.T) {
	buf := newSolidBuffer(10, 10, 0, 0, 0)

	tests := []struct {
		name string
		buf  PixelBuffer
		x, y int
		want error
	}{
		{"nil buffer", nil, 0, 0, ErrEmptyBuffer},
		{"zero area", NewBuffer(0, 0), 0, 0, ErrEmptyBuffer},
		{"negative x", buf, -1, 0, ErrOutOfBounds},
		{"y too large", buf, 0, 10, ErrOutOfBounds},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := PointDifferenceAt(tt.buf, tt.x, tt.y)
			if !errors.Is(err, tt.want) {
				t.Errorf("got err %v, want %v", err, tt.want)
			}
		})
	}
}

func TestPointDifference_Summary(t *testing.T) {
	pd := &PointDifference{
		Pixel:      Color{255, 0, 0},
		Background: Color{R: 0.0708, G: 12.5, B: 3},
		Distance:   254.93,
	}

	got := pd.Summary()
	for _, want := range []string{
		"Color Difference: 254.93",
		"Anomaly RGB: (255, 0, 0)",
		"Background RGB: (0.07, 12.50, 3.00)",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("Summary missing %q:\n%s", want, got)
		}
	}
}
