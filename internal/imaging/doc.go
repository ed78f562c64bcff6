// Package imaging loads images from disk and turns them into the pixel
// buffers and annotated renderings used by the anomaly tools.
//
// # Coordinate System
//
// All pixel coordinates in this package are 0-based:
//   - X: horizontal position (0 = leftmost pixel)
//   - Y: vertical position (0 = topmost pixel)
//   - For regions, (x1,y1) is inclusive (top-left), (x2,y2) is exclusive (bottom-right)
//
// # Frames
//
// A Frame is an image rendered at a requested canvas size, stored as
// non-premultiplied RGBA. It satisfies anomaly.PixelBuffer, so detection runs
// directly on it. Asking for size 0x0 (or the natural size) keeps the pixels
// untouched; any other size is resampled with a linear filter.
//
// # Overlays
//
// Detections are drawn as red circles of radius 3 and a selected anomaly as a
// yellow circle of radius 5, both 2 pixels wide. Drawing always happens on a
// copy, so earlier markers never leak into later renderings.
//
// # Thread Safety
//
// The ImageCache type is safe for concurrent use. Frames are not modified
// after construction and may be shared between goroutines.
package imaging
