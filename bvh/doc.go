// Package bvh builds flattened, threaded bounding-volume hierarchies over a
// sequence of AABBs.
//
// Build runs a binned surface-area-heuristic (SAH) split at each node, then
// flattens the resulting binary tree to pre-order and threads hit_next/
// miss_next links so the tree can be walked stacklessly. Both BLAS (over
// per-triangle/per-box AABBs) and TLAS (over per-instance world AABBs)
// builders in this module call Build.
//
// Determinism: Build is deterministic for a fixed primitive order and
// Option set.
package bvh
