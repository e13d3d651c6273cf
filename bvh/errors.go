package bvh

import "errors"

// ErrNonFiniteAABB indicates an input AABB contains a NaN or infinite
// component, other than the canonical empty-box sentinel values. Spec §7:
// "NaN in geometry -> refuse the build."
var ErrNonFiniteAABB = errors.New("bvh: non-finite AABB component")
