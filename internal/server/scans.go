package server

import (
	"sync"

	"github.com/ironsheep/hue-anomaly-mcp/internal/anomaly"
	"github.com/ironsheep/hue-anomaly-mcp/internal/imaging"
)

// scan is the latest detection for one image: the frame it ran on and the
// result it produced. Highlights are drawn on the same frame.
type scan struct {
	frame  *imaging.Frame
	result *anomaly.Result
}

// scanStore holds the latest scan per image path. A new scan replaces the
// previous one wholesale.
type scanStore struct {
	mu    sync.RWMutex
	scans map[string]*scan
}

func newScanStore() *scanStore {
	return &scanStore{scans: make(map[string]*scan)}
}

func (st *scanStore) put(path string, sc *scan) {
	st.mu.Lock()
	st.scans[path] = sc
	st.mu.Unlock()
}

func (st *scanStore) get(path string) (*scan, bool) {
	st.mu.RLock()
	sc, ok := st.scans[path]
	st.mu.RUnlock()
	return sc, ok
}
