// Package dedupe tracks seen record identifiers during corpus ingestion.
//
// The public exports repeat titles across rows (re-releases, merged
// editions), so a load must keep only the first occurrence of each id.
package dedupe

import (
	"sync"
	"sync/atomic"
)

// Deduper records seen record IDs so repeated rows can be dropped.
type Deduper interface {
	// SeenAndRecord atomically checks if id was seen and records it if not.
	// Returns true if id was already seen, false if it was newly recorded.
	SeenAndRecord(id string) bool

	Size() int64
}

// inMemoryDeduper implements Deduper over a plain map. Bounded mode stops
// recording new ids once maxSize is reached, so an oversized corpus
// degrades to pass-through instead of growing without limit.
type inMemoryDeduper struct {
	mu      sync.Mutex
	seen    map[string]struct{}
	maxSize int
	size    atomic.Int64
}

// New creates an in-memory deduper with configuration options.
func New(opts ...Option) Deduper {
	d := &inMemoryDeduper{
		seen: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// SeenAndRecord atomically checks if id was seen and records it if not.
func (d *inMemoryDeduper) SeenAndRecord(id string) bool {
	d.mu.Lock()
	defer d.mu.Unlock()

	if _, exists := d.seen[id]; exists {
		return true
	}
	if d.maxSize > 0 && len(d.seen) >= d.maxSize {
		// At capacity: treat unseen ids as new without tracking them.
		return false
	}
	d.seen[id] = struct{}{}
	d.size.Add(1)
	return false
}

// Size returns the current number of tracked ids.
func (d *inMemoryDeduper) Size() int64 {
	return d.size.Load()
}
