// Package meshindex holds the per-BLAS geometry metadata and the shared
// vertex/index/AABB/node pools that BLAS geometries sub-allocate from.
//
// Every BLAS geometry (triangle list or procedural AABB list) gets its own
// threaded BVH, whose nodes live in the shared Pools.Nodes allocator, and a
// GeometryMeta record pointing at that BVH's root plus the global offset
// ("primitive_start") where its primitives begin in Pools.Indices/Pools.Boxes.
package meshindex
