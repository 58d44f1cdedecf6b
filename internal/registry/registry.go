// Package registry implements the bidirectional mapping between opaque
// external video identifiers and the dense internal slot codes the MIH
// index keys off of.
//
// Registry is not safe for concurrent use on its own — the coordinator
// package is the sole owner and serializes access with its own lock before
// touching the registry in a multi-step operation.
package registry

import (
	"errors"

	"github.com/dolr-ai/videohash-indexer/internal/hashcode"
)

// ErrNotFound is returned when a video_id has no entry.
var ErrNotFound = errors.New("registry: video_id not found")

// ErrDuplicate is returned by Insert when a video_id is already present.
var ErrDuplicate = errors.New("registry: video_id already present")

// entry pairs an external identifier with its stored code.
type entry struct {
	videoID string
	code    hashcode.Code
}

// Registry holds two views of the same entries: byID for identifier
// lookups, bySlot for dense slot numbering. Both views are kept in
// lockstep by every mutating method, and slots stay contiguous via
// swap-remove, after every call that returns a nil error.
type Registry struct {
	byID   map[string]int // video_id -> slot
	bySlot []entry        // slot -> (video_id, code)
}

// New returns an empty Registry.
func New() *Registry {
	return &Registry{
		byID: make(map[string]int),
	}
}

// Len returns the current population N.
func (r *Registry) Len() int {
	return len(r.bySlot)
}

// LookupByID returns the slot and code stored for v, or ErrNotFound.
func (r *Registry) LookupByID(v string) (slot int, code hashcode.Code, err error) {
	i, ok := r.byID[v]
	if !ok {
		return 0, 0, ErrNotFound
	}
	return i, r.bySlot[i].code, nil
}

// VideoIDAt returns the video_id stored at slot i, the inverse of
// LookupByID. The caller must have already established i is in range.
func (r *Registry) VideoIDAt(i int) string {
	return r.bySlot[i].videoID
}

// Insert appends (v, c) at slot N and returns N, or fails with ErrDuplicate
// if v is already present. The registry is left unchanged on error.
func (r *Registry) Insert(v string, c hashcode.Code) (slot int, err error) {
	if _, ok := r.byID[v]; ok {
		return 0, ErrDuplicate
	}

	slot = len(r.bySlot)
	r.bySlot = append(r.bySlot, entry{videoID: v, code: c})
	r.byID[v] = slot
	return slot, nil
}

// Remove deletes v via swap-remove: the entry at the last slot (if it is not
// the one being removed) is moved into the vacated slot to keep slots
// contiguous, and the returned movedFrom tells the caller (the coordinator)
// which slot's index in the MIH index must be relocated to removedSlot.
// movedFrom is -1 when no entry was moved (v was already the last slot).
//
// On ErrNotFound, the registry is left unchanged.
func (r *Registry) Remove(v string) (removedSlot int, movedFrom int, err error) {
	i, ok := r.byID[v]
	if !ok {
		return 0, -1, ErrNotFound
	}

	last := len(r.bySlot) - 1
	if i == last {
		delete(r.byID, v)
		r.bySlot = r.bySlot[:last]
		return i, -1, nil
	}

	moved := r.bySlot[last]
	r.bySlot[i] = moved
	r.byID[moved.videoID] = i
	delete(r.byID, v)
	r.bySlot = r.bySlot[:last]

	return i, last, nil
}
