// Package raygraph is a host-side GPU ray-tracing acceleration structure
// and task-graph engine: bottom-level and top-level acceleration structures
// (BLAS/TLAS) over a threaded, stackless BVH, a traverser implementing the
// any-hit/intersect-shader arbitration a GPU ray-tracing pipeline performs,
// and a task-graph scheduler modeling fixed-size-workgroup dispatch rounds
// for recursive ray-tracing-style work (shadow rays, bounces, ...).
//
// Subpackages:
//
//	vecmath/    — Vec3/Mat4/AABB/Ray and the float32 linear algebra they need
//	rangealloc/ — growable shared-storage sub-allocator (vertex/index/node pools)
//	bvh/        — threaded (stackless) BVH builder over AABBs
//	arena/      — generation-checked handle table for live BLAS/TLAS records
//	meshindex/  — geometry metadata and the pools BLAS/TLAS share
//	blas/       — bottom-level acceleration structures (per-geometry BVH)
//	tlas/       — top-level acceleration structures (per-instance BVH)
//	traverse/   — the ray traverser: TLAS walk, BLAS walk, any-hit arbitration
//	bumpalloc/  — GPU-style bump allocator (atomic alloc/dealloc/compact)
//	taskpool/   — fixed-capacity slot pool of in-flight tasks
//	taskgroup/  — round-based tick/poll/compact over a taskpool.Pool
//	taskgraph/  — orchestrates multiple task groups across dispatch rounds
//	builder/    — deterministic graph topology constructors (scene fixtures)
//	core/       — the Graph type builder constructs topology on
//	fixtures/   — scene generators (cube, grid-of-cubes, Platonic markers)
package raygraph
