package meshindex

import (
	"github.com/rayforge/raygraph/bvh"
	"github.com/rayforge/raygraph/rangealloc"
	"github.com/rayforge/raygraph/vecmath"
)

// Geometry flag bits.
const (
	GeometryOpaque            uint32 = 1 << 0
	GeometryNoDuplicateAnyHit uint32 = 1 << 1
)

// GeometryMeta describes one geometry's BVH and where its primitives begin
// in the shared global pool. PrimitiveStart indexes the
// geometry's primitive array (triangles in Pools.Indices/3, boxes in
// Pools.Boxes); VertexStart additionally offsets a triangle geometry's
// vertex indices into Pools.Vertices and is unused for AABB geometries.
type GeometryMeta struct {
	BVHRootIdx     uint32
	GeometryIdx    uint32
	PrimitiveStart uint32
	VertexStart    uint32
	GeometryFlags  uint32
}

// BlasMeta indexes a BLAS's geometry-meta ranges.
type BlasMeta struct {
	TriRootRange rangealloc.Range
	BoxRootRange rangealloc.Range
}

// Pools are the global, shared backing arrays that every BLAS's geometries
// sub-allocate from.
type Pools struct {
	Vertices    *rangealloc.Allocator[vecmath.Vec3]   // flat vertex positions
	Indices     *rangealloc.Allocator[uint32]          // flat triangle-index triples
	Boxes       *rangealloc.Allocator[vecmath.AABB]    // flat procedural AABBs
	Nodes       *rangealloc.Allocator[bvh.Node]         // flat threaded BVH nodes, shared by all geometries
	TriGeomMeta *rangealloc.Allocator[GeometryMeta]
	BoxGeomMeta *rangealloc.Allocator[GeometryMeta]
}

// NewPools creates an empty set of pools with small initial capacities; each
// grows on demand (rangealloc.Allocator semantics).
func NewPools() *Pools {
	return &Pools{
		Vertices:    rangealloc.New[vecmath.Vec3](64),
		Indices:     rangealloc.New[uint32](64),
		Boxes:       rangealloc.New[vecmath.AABB](16),
		Nodes:       rangealloc.New[bvh.Node](64),
		TriGeomMeta: rangealloc.New[GeometryMeta](16),
		BoxGeomMeta: rangealloc.New[GeometryMeta](16),
	}
}

// AppendTree copies a freshly built threaded BVH into pool, offsetting every
// internal HitNext/MissNext index (but never the InvalidNext sentinel) by
// the allocated range's base, and returns the BLAS-global root index.
func AppendTree(pool *rangealloc.Allocator[bvh.Node], nodes []bvh.Node) (rootIdx uint32, err error) {
	r, err := pool.Alloc(uint32(len(nodes)))
	if err != nil {
		return 0, err
	}

	dst := pool.Slice(r)
	for i, n := range nodes {
		if n.HitNext != bvh.InvalidNext {
			n.HitNext += r.Offset
		}
		if n.MissNext != bvh.InvalidNext {
			n.MissNext += r.Offset
		}
		dst[i] = n
	}

	return r.Offset, nil
}
