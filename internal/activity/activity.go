// Package activity implements a bounded, best-effort feed of recent
// search_or_insert/delete verdicts, for operator introspection into a
// running dedup index without wiring a full metrics backend.
//
// The feed retains a fixed-size window of recent decisions in an
// *lru.ARCCache, letting the cache's own eviction policy handle bounding.
// The cache has its own internal locking and is never acquired while the
// coordinator's index lock is held (recording happens after
// SearchOrInsert/Delete return), so it cannot introduce a new ordering
// hazard on the index's writer lock.
package activity

import (
	"sync"
	"time"

	lru "github.com/opencoff/golang-lru"
)

// DefaultCapacity bounds how many recent entries are retained.
const DefaultCapacity = 256

// Kind classifies what happened to a video_id.
type Kind string

const (
	KindMatched Kind = "matched"
	KindAdded   Kind = "added"
	KindDeleted Kind = "deleted"
	KindError   Kind = "error"
)

// Entry records one verdict for one video_id.
type Entry struct {
	VideoID string    `json:"video_id"`
	Kind    Kind      `json:"kind"`
	Detail  string    `json:"detail,omitempty"`
	At      time.Time `json:"at"`
}

// Feed is a bounded, thread-safe recent-activity log. Its mutex only
// protects the sequence counter; cache access relies on the cache's own
// locking. It is independent of (and never held alongside) the
// coordinator's index lock.
type Feed struct {
	mu    sync.Mutex
	cache *lru.ARCCache
	seq   uint64
}

// New returns a Feed retaining up to capacity entries.
func New(capacity int) *Feed {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	cache, err := lru.NewARC(capacity)
	if err != nil {
		// lru.NewARC only fails for size <= 0, which is excluded above.
		panic(err)
	}
	return &Feed{cache: cache}
}

// Record appends an entry, keyed by a monotonically increasing sequence
// number so repeated activity on the same video_id doesn't overwrite older
// history — the cache's own ARC eviction policy handles bounding.
func (f *Feed) Record(videoID string, kind Kind, detail string, now time.Time) {
	f.mu.Lock()
	f.seq++
	key := f.seq
	f.mu.Unlock()

	f.cache.Add(key, Entry{VideoID: videoID, Kind: kind, Detail: detail, At: now})
}

// Recent returns up to n of the most recently recorded entries, newest
// first. It walks backward from the current sequence counter; entries
// evicted by the ARC cache are skipped.
func (f *Feed) Recent(n int) []Entry {
	f.mu.Lock()
	seq := f.seq
	f.mu.Unlock()

	out := make([]Entry, 0, n)
	for ; seq > 0 && len(out) < n; seq-- {
		v, ok := f.cache.Get(seq)
		if !ok {
			continue
		}
		out = append(out, v.(Entry))
	}
	return out
}
