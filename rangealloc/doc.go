// Package rangealloc implements a growable element-ranged sub-allocator over a
// single backing buffer (Range offsets and lengths count elements, not bytes).
//
// It is the storage layer underneath meshindex's vertex/index/AABB pools:
// each BLAS geometry claims one contiguous Range when it is assembled, and
// releases it on delete_blas. The backing buffer grows (doubling, like a
// Go slice) when no existing free range is large enough, instead of forcing
// every caller to pre-size a fixed pool.
package rangealloc
