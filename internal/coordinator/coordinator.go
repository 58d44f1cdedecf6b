// Package coordinator implements the search-or-insert / delete surface and
// the concurrency contract that makes it safe under many concurrent
// callers.
//
// The registry and the MIH index move together: a search that misses and
// falls through to an insert must not let any other mutation land in
// between, or two near-duplicate hashes submitted concurrently could both
// be inserted. Coordinator enforces this with a single sync.RWMutex
// guarding both structures jointly: one mutex, one piece of state it
// exclusively owns, applied at the whole-index granularity rather than
// sharded per key, since sharding would let two writers mutate different
// buckets of the same MIH index concurrently and corrupt its bucket
// membership.
package coordinator

import (
	"errors"
	"sync"

	"github.com/dolr-ai/videohash-indexer/internal/hashcode"
	"github.com/dolr-ai/videohash-indexer/internal/mih"
	"github.com/dolr-ai/videohash-indexer/internal/registry"
)

// DefaultMaxHammingDistance is r, the default Hamming-distance threshold
// under which two hashes are considered a match.
const DefaultMaxHammingDistance = 10

// DefaultDuplicateSimilarity is the default is-duplicate similarity
// threshold, as a percentage.
const DefaultDuplicateSimilarity = 90.0

// Sentinel errors surfaced to callers. They are returned as-is, never
// wrapped, so callers can compare with errors.Is/==.
var (
	ErrInvalidHash         = hashcode.ErrInvalidHash
	ErrDuplicateIdentifier = errors.New("coordinator: video_id already registered")
	ErrNotFound            = errors.New("coordinator: video_id not found")
)

// MatchDetails describes the matched entry when search_or_insert finds a
// near-duplicate.
type MatchDetails struct {
	VideoID              string
	SimilarityPercentage float64
	IsDuplicate          bool
}

// Verdict is the outcome of a SearchOrInsert call.
type Verdict struct {
	MatchFound bool
	Match      MatchDetails // zero value unless MatchFound
	HashAdded  bool
}

// Coordinator owns the registry and MIH index and enforces the joint
// locking discipline that keeps them consistent with each other. The zero
// value is not usable; construct with New.
type Coordinator struct {
	mu sync.RWMutex

	reg *registry.Registry
	idx *mih.Index

	maxHammingDistance  int
	duplicateSimilarity float64
}

// Option configures a Coordinator at construction time.
type Option func(*Coordinator)

// WithMaxHammingDistance overrides r (default DefaultMaxHammingDistance).
func WithMaxHammingDistance(r int) Option {
	return func(c *Coordinator) { c.maxHammingDistance = r }
}

// WithDuplicateSimilarity overrides the is-duplicate threshold percentage
// (default DefaultDuplicateSimilarity).
func WithDuplicateSimilarity(pct float64) Option {
	return func(c *Coordinator) { c.duplicateSimilarity = pct }
}

// New returns an empty Coordinator.
func New(opts ...Option) *Coordinator {
	c := &Coordinator{
		reg:                 registry.New(),
		idx:                 mih.New(),
		maxHammingDistance:  DefaultMaxHammingDistance,
		duplicateSimilarity: DefaultDuplicateSimilarity,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// SearchOrInsert looks for a near-duplicate of hashString within the
// configured Hamming-distance threshold, and inserts v/hashString as a new
// entry when no match is found. hashString must be a valid 64-character
// binary string; v is the caller's opaque video identifier.
//
// The search and the fallthrough insert run under a single writer-lock
// hold for the whole call: a read-only pre-check followed by a separate
// insert would let a concurrent SearchOrInsert land a near-match in the
// gap, letting two near-duplicate hashes both get inserted instead of the
// second one matching the first.
func (c *Coordinator) SearchOrInsert(v string, hashString string) (Verdict, error) {
	code, err := hashcode.Parse(hashString)
	if err != nil {
		return Verdict{}, ErrInvalidHash
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if slot, matchDist, found := c.idx.Search(code, c.maxHammingDistance); found {
		matchedID := c.videoIDAtSlot(slot)
		sim := hashcode.Similarity(matchDist)
		return Verdict{
			MatchFound: true,
			Match: MatchDetails{
				VideoID:              matchedID,
				SimilarityPercentage: sim,
				IsDuplicate:          sim >= c.duplicateSimilarity,
			},
			HashAdded: false,
		}, nil
	}

	slot, err := c.reg.Insert(v, code)
	if err != nil {
		// The only failure mode of Insert is a duplicate identifier: v is
		// already registered, but its stored hash (and everything else in
		// the index) is more than r away from this hash, or Search would
		// have already returned MatchFound above — including against v's
		// own entry.
		return Verdict{}, ErrDuplicateIdentifier
	}
	c.idx.Insert(slot, code)

	return Verdict{MatchFound: false, HashAdded: true}, nil
}

// Delete removes v from both the registry and the MIH index, keeping the
// two structures in lockstep. Requires a writer hold.
func (c *Coordinator) Delete(v string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	removedSlot, movedFrom, err := c.reg.Remove(v)
	if err != nil {
		return ErrNotFound
	}
	c.idx.Remove(removedSlot, movedFrom)
	return nil
}

// Lookup is a read-only introspection operation: it answers whether v is
// currently registered and, if so, hands back its stored hash.
func (c *Coordinator) Lookup(v string) (code hashcode.Code, ok bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	_, storedCode, err := c.reg.LookupByID(v)
	if err != nil {
		return 0, false
	}
	return storedCode, true
}

// Len returns the current population N. Read-only introspection, reader
// hold only.
func (c *Coordinator) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.reg.Len()
}

// videoIDAtSlot resolves a MIH slot back to its external identifier. It must
// be called with at least the reader lock held; SearchOrInsert already holds
// the writer lock at its call site.
func (c *Coordinator) videoIDAtSlot(slot int) string {
	return c.reg.VideoIDAt(slot)
}
