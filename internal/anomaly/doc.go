// Package anomaly flags pixels whose color stands out from an image's average
// background and whose dominant channel matches a requested hue category.
//
// # Algorithm Overview
//
// A scan runs in a single synchronous pass:
//
//  1. Background: arithmetic mean RGB over every pixel of the buffer
//  2. Threshold: 80 when the background brightness is above 128, otherwise 100
//  3. Scan: interior pixels only (a fixed 20 pixel margin is skipped), row-major
//  4. Filter: color distance to the background must exceed the threshold and
//     the pixel must satisfy the hue's strict channel dominance rule
//  5. Clustering: a candidate closer than 10 pixels to an accepted anomaly is
//     dropped, so the first pixel of a cluster in scan order wins
//
// # Results
//
// Detect returns a Result that owns the ordered anomaly records. Records carry
// a 0-based index assigned at discovery time. Lookups by index go through the
// Result that produced them; there is no package-level "current" list.
//
// # Coordinate System
//
// Origin (0, 0) is the top-left pixel, X grows rightward, Y grows downward.
//
// # Limitations
//
// This is a visual inspection aid. The mean background is skewed by large
// foreground objects and there is no noise filtering beyond the clustering
// distance.
package anomaly
