// Package blas assembles Bottom-Level Acceleration Structures: each BLAS is
// a collection of triangle-list or AABB-list geometries, every geometry
// carrying its own threaded BVH.
//
// Store.CreateBLAS builds one bvh.Build per geometry, offsets its node
// indices into the shared meshindex.Pools.Nodes pool, copies the geometry's
// vertex indices (triangles) or box pairs (procedural) into the pools in
// BVH-sorted order, and records a meshindex.GeometryMeta per geometry plus a
// BlasMeta range for the BLAS as a whole. The BLAS's root AABB — the union
// of its geometries' BVH-root AABBs — is published for TLAS construction.
package blas
