package rangealloc

import "errors"

// Sentinel errors for the range allocator.
var (
	// ErrZeroSize indicates Alloc was called with a zero element count.
	ErrZeroSize = errors.New("rangealloc: size must be > 0")

	// ErrRangeNotOwned indicates Free was called with a Range this
	// allocator did not hand out, or one already freed.
	ErrRangeNotOwned = errors.New("rangealloc: range not owned by this allocator")
)
