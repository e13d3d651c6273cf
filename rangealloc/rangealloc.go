package rangealloc

import (
	"fmt"
	"sort"
	"sync"
)

// Range is a contiguous span of elements within an Allocator's backing
// storage, given as [Offset, Offset+Length).
type Range struct {
	Offset uint32
	Length uint32
}

// End returns the exclusive end of the range.
func (r Range) End() uint32 {
	return r.Offset + r.Length
}

// Allocator is a growable sub-allocator over a backing []T slice. It hands
// out Ranges via a first-fit free list and coalesces adjacent free ranges on
// release. The backing slice doubles in capacity (like append) when no free
// range is large enough to satisfy a request.
//
// muStorage guards storage and size; muFree guards the free list
// separately, so a Slice/At read never blocks behind a concurrent Free.
type Allocator[T any] struct {
	muStorage sync.RWMutex
	storage   []T
	size      uint32 // elements in use at the high-water mark (storage[:size] is backing)

	muFree sync.Mutex
	free   []Range // sorted by Offset, mutually disjoint, coalesced
}

// New creates an Allocator with the given initial backing capacity.
// Complexity: O(initialCapacity).
func New[T any](initialCapacity uint32) *Allocator[T] {
	return &Allocator[T]{
		storage: make([]T, initialCapacity),
	}
}

// Alloc reserves a contiguous Range of length elements, growing the backing
// storage if necessary, and returns it. Complexity: O(len(free list)) for
// the first-fit scan, amortized O(n) for growth.
func (a *Allocator[T]) Alloc(length uint32) (Range, error) {
	if length == 0 {
		return Range{}, ErrZeroSize
	}

	a.muFree.Lock()
	defer a.muFree.Unlock()

	for i, r := range a.free {
		if r.Length >= length {
			allocated := Range{Offset: r.Offset, Length: length}
			remaining := Range{Offset: r.Offset + length, Length: r.Length - length}
			if remaining.Length == 0 {
				a.free = append(a.free[:i], a.free[i+1:]...)
			} else {
				a.free[i] = remaining
			}

			return allocated, nil
		}
	}

	// No free range large enough: grow the tail.
	a.muStorage.Lock()
	offset := a.size
	needed := offset + length
	if needed > uint32(len(a.storage)) {
		newCap := uint32(len(a.storage))
		if newCap == 0 {
			newCap = length
		}
		for newCap < needed {
			newCap *= 2
		}
		grown := make([]T, newCap)
		copy(grown, a.storage)
		a.storage = grown
	}
	a.size = needed
	a.muStorage.Unlock()

	return Range{Offset: offset, Length: length}, nil
}

// Free releases a previously allocated Range back to the free list,
// coalescing it with any adjacent free ranges.
func (a *Allocator[T]) Free(r Range) error {
	if r.Length == 0 {
		return fmt.Errorf("rangealloc: %w: zero-length range", ErrRangeNotOwned)
	}

	a.muFree.Lock()
	defer a.muFree.Unlock()

	insertAt := sort.Search(len(a.free), func(i int) bool { return a.free[i].Offset >= r.Offset })
	a.free = append(a.free, Range{})
	copy(a.free[insertAt+1:], a.free[insertAt:])
	a.free[insertAt] = r

	// Coalesce with the following neighbor, then the preceding one.
	if insertAt+1 < len(a.free) && a.free[insertAt].End() == a.free[insertAt+1].Offset {
		a.free[insertAt].Length += a.free[insertAt+1].Length
		a.free = append(a.free[:insertAt+1], a.free[insertAt+2:]...)
	}
	if insertAt > 0 && a.free[insertAt-1].End() == a.free[insertAt].Offset {
		a.free[insertAt-1].Length += a.free[insertAt].Length
		a.free = append(a.free[:insertAt], a.free[insertAt+1:]...)
	}

	return nil
}

// Slice returns the live view [r.Offset, r.End()) into the backing storage.
// The returned slice aliases the allocator's storage; callers must not
// retain it across a subsequent Alloc that may trigger growth.
func (a *Allocator[T]) Slice(r Range) []T {
	a.muStorage.RLock()
	defer a.muStorage.RUnlock()

	return a.storage[r.Offset:r.End()]
}

// At returns a copy of the single element at absolute index i. Used by
// readers (the traverser) that walk threaded links one node at a time rather
// than through a caller-held Range.
func (a *Allocator[T]) At(i uint32) T {
	a.muStorage.RLock()
	defer a.muStorage.RUnlock()

	return a.storage[i]
}

// Len returns the current high-water mark (elements ever allocated from the
// tail, including ones since freed).
func (a *Allocator[T]) Len() uint32 {
	a.muStorage.RLock()
	defer a.muStorage.RUnlock()

	return a.size
}
