// Package tlas assembles Top-Level Acceleration Structures: an array of
// instances referencing BLAS handles, transforms, and masks/flags, bound
// together by one BVH over their world-space bounds.
//
// A TLAS group owns a sub-range of instances and a BVH whose leaves index
// into that sub-range; the group's Handle maps (via the Store's arena) to
// the root node index recorded at build time.
package tlas
