package anomaly

import "math"

// cellKey addresses one bucket of the clustering grid.
type cellKey struct {
	cx, cy int
}

// maxCell bounds the bucket width. A larger or non-finite minDist puts every
// record in one bucket, which degrades to comparing against all of them.
const maxCell = 1 << 24

// clusterIndex answers "is any accepted point closer than minDist to (x, y)?"
// Buckets are at least minDist wide, so only the 3×3 block of cells around
// the query can hold a point inside the radius. Acceptance order and results
// are identical to comparing against every accepted point.
type clusterIndex struct {
	minDist float64
	cell    int // 0 means a single bucket
	cells   map[cellKey][]Record
}

func newClusterIndex(minDist float64) *clusterIndex {
	var cell int
	switch {
	case !(minDist <= maxCell): // also catches NaN and +Inf
		cell = 0
	case minDist < 1:
		cell = 1
	default:
		cell = int(math.Ceil(minDist))
	}
	return &clusterIndex{
		minDist: minDist,
		cell:    cell,
		cells:   make(map[cellKey][]Record),
	}
}

func (ci *clusterIndex) key(x, y int) cellKey {
	if ci.cell == 0 {
		return cellKey{}
	}
	return cellKey{cx: floorDiv(x, ci.cell), cy: floorDiv(y, ci.cell)}
}

// tooClose reports whether an accepted record lies strictly within minDist.
func (ci *clusterIndex) tooClose(x, y int) bool {
	if ci.minDist <= 0 {
		return false
	}
	k := ci.key(x, y)
	for dy := -1; dy <= 1; dy++ {
		for dx := -1; dx <= 1; dx++ {
			for _, r := range ci.cells[cellKey{cx: k.cx + dx, cy: k.cy + dy}] {
				if PlanarDistance(r.X, r.Y, x, y) < ci.minDist {
					return true
				}
			}
		}
	}
	return false
}

func (ci *clusterIndex) add(r Record) {
	k := ci.key(r.X, r.Y)
	ci.cells[k] = append(ci.cells[k], r)
}

func floorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}
