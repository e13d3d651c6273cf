// Package traverse implements the host reference traversal: given a ray and
// a live TLAS handle, walk the TLAS BVH, then each hit instance's BLAS BVH,
// testing triangles via Möller-Trumbore and procedural geometry via a
// caller-supplied intersect callback, arbitrating accept/ignore/terminate
// through an any-hit callback.
//
// The traversal itself never allocates a stack: both the TLAS and BLAS BVHs
// are threaded (bvh.Node.HitNext/MissNext), so a single integer cursor
// walks each tree to completion or early termination.
package traverse
