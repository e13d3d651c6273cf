package blas

import (
	"fmt"
	"sync"

	"github.com/rayforge/raygraph/arena"
	"github.com/rayforge/raygraph/bvh"
	"github.com/rayforge/raygraph/meshindex"
	"github.com/rayforge/raygraph/rangealloc"
	"github.com/rayforge/raygraph/vecmath"
)

// GeometryKind selects between the two geometry representations a BLAS
// geometry may use.
type GeometryKind int

const (
	Triangles GeometryKind = iota
	AABBs
)

// GeometrySource describes one geometry to be built into a BLAS.
type GeometrySource struct {
	Kind      GeometryKind
	Positions []vecmath.Vec3 // Triangles path
	Indices   []uint32       // Triangles path; length must be a multiple of 3
	Boxes     []vecmath.AABB // AABBs path
	Flags     uint32         // meshindex.Geometry* bits
}

// Handle references a live BLAS.
type Handle = arena.Handle

// record is the live BLAS state kept behind the Store's arena.
type record struct {
	meta     meshindex.BlasMeta
	rootAABB vecmath.AABB
}

// Store owns the BLAS arena and the shared geometry pools every BLAS
// sub-allocates from.
type Store struct {
	mu    sync.RWMutex
	pools *meshindex.Pools
	blass *arena.Arena[record]
}

// NewStore creates a Store backed by the given shared pools.
func NewStore(pools *meshindex.Pools) *Store {
	return &Store{pools: pools, blass: arena.New[record]()}
}

// CreateBLAS builds a BVH per geometry and publishes the BLAS.
func (s *Store) CreateBLAS(sources []GeometrySource) (Handle, error) {
	if len(sources) == 0 {
		return Handle{}, ErrEmptySources
	}

	var triMetas, boxMetas []meshindex.GeometryMeta
	rootAABB := vecmath.EmptyAABB()

	for geomIdx, src := range sources {
		switch src.Kind {
		case Triangles:
			meta, box, err := s.buildTriangleGeometry(uint32(geomIdx), src)
			if err != nil {
				return Handle{}, err
			}
			triMetas = append(triMetas, meta)
			rootAABB = rootAABB.Union(box)
		case AABBs:
			meta, box, err := s.buildAABBGeometry(uint32(geomIdx), src)
			if err != nil {
				return Handle{}, err
			}
			boxMetas = append(boxMetas, meta)
			rootAABB = rootAABB.Union(box)
		}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	triRange, err := s.appendMeta(s.pools.TriGeomMeta, triMetas)
	if err != nil {
		return Handle{}, err
	}
	boxRange, err := s.appendMeta(s.pools.BoxGeomMeta, boxMetas)
	if err != nil {
		return Handle{}, err
	}

	h := s.blass.Insert(record{
		meta:     meshindex.BlasMeta{TriRootRange: triRange, BoxRootRange: boxRange},
		rootAABB: rootAABB,
	})

	return h, nil
}

// DeleteBLAS invalidates h. The underlying pool storage is not reclaimed by
// this call — pools only grow, and a BLAS rebuild instead swaps the whole
// set atomically rather than deallocating device buffers in place.
func (s *Store) DeleteBLAS(h Handle) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.blass.Delete(h); err != nil {
		return fmt.Errorf("blas: %w", ErrHandleNotFound)
	}

	return nil
}

// RootAABB returns the BLAS's root bounding box, the union of its
// geometries' BVH-root AABBs.
func (s *Store) RootAABB(h Handle) (vecmath.AABB, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	r, err := s.blass.Get(h)
	if err != nil {
		return vecmath.AABB{}, fmt.Errorf("blas: %w", ErrHandleNotFound)
	}

	return r.rootAABB, nil
}

// Meta returns the BlasMeta for h, used by the traverser to walk a BLAS's
// geometry-meta ranges.
func (s *Store) Meta(h Handle) (meshindex.BlasMeta, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	r, err := s.blass.Get(h)
	if err != nil {
		return meshindex.BlasMeta{}, fmt.Errorf("blas: %w", ErrHandleNotFound)
	}

	return r.meta, nil
}

// Pools exposes the shared pools for the traverser's read-only access.
func (s *Store) Pools() *meshindex.Pools {
	return s.pools
}

func (s *Store) appendMeta(pool *rangealloc.Allocator[meshindex.GeometryMeta], metas []meshindex.GeometryMeta) (rangealloc.Range, error) {
	if len(metas) == 0 {
		return rangealloc.Range{}, nil
	}
	r, err := pool.Alloc(uint32(len(metas)))
	if err != nil {
		return rangealloc.Range{}, err
	}
	copy(pool.Slice(r), metas)

	return r, nil
}

func (s *Store) buildTriangleGeometry(geomIdx uint32, src GeometrySource) (meshindex.GeometryMeta, vecmath.AABB, error) {
	if len(src.Indices)%3 != 0 {
		return meshindex.GeometryMeta{}, vecmath.AABB{}, ErrIndexCountNotMultipleOfThree
	}
	triCount := len(src.Indices) / 3

	for _, v := range src.Positions {
		if !vecmath.IsFiniteVec3(v) {
			return meshindex.GeometryMeta{}, vecmath.AABB{}, ErrNonFiniteVertex
		}
	}

	triBoxes := make([]vecmath.AABB, triCount)
	for t := 0; t < triCount; t++ {
		i0, i1, i2 := src.Indices[t*3], src.Indices[t*3+1], src.Indices[t*3+2]
		if int(i0) >= len(src.Positions) || int(i1) >= len(src.Positions) || int(i2) >= len(src.Positions) {
			return meshindex.GeometryMeta{}, vecmath.AABB{}, ErrIndexOutOfRange
		}
		b := vecmath.EmptyAABB()
		b = b.ExtendPoint(src.Positions[i0])
		b = b.ExtendPoint(src.Positions[i1])
		b = b.ExtendPoint(src.Positions[i2])
		triBoxes[t] = b
	}

	built, err := bvh.Build(triBoxes)
	if err != nil {
		return meshindex.GeometryMeta{}, vecmath.AABB{}, err
	}

	s.mu.Lock()
	rootIdx, err := meshindex.AppendTree(s.pools.Nodes, built.Nodes)
	if err != nil {
		s.mu.Unlock()
		return meshindex.GeometryMeta{}, vecmath.AABB{}, err
	}

	vertexRange, err := s.pools.Vertices.Alloc(uint32(len(src.Positions)))
	if err != nil {
		s.mu.Unlock()
		return meshindex.GeometryMeta{}, vecmath.AABB{}, err
	}
	copy(s.pools.Vertices.Slice(vertexRange), src.Positions)

	indexRange, err := s.pools.Indices.Alloc(uint32(triCount * 3))
	if err != nil {
		s.mu.Unlock()
		return meshindex.GeometryMeta{}, vecmath.AABB{}, err
	}
	dst := s.pools.Indices.Slice(indexRange)
	for i, origTri := range built.PrimitiveOrder {
		i0, i1, i2 := src.Indices[origTri*3], src.Indices[origTri*3+1], src.Indices[origTri*3+2]
		dst[i*3+0] = i0
		dst[i*3+1] = i1
		dst[i*3+2] = i2
	}
	s.mu.Unlock()

	meta := meshindex.GeometryMeta{
		BVHRootIdx:     rootIdx,
		GeometryIdx:    geomIdx,
		PrimitiveStart: indexRange.Offset / 3,
		VertexStart:    vertexRange.Offset,
		GeometryFlags:  src.Flags,
	}

	return meta, built.RootAABB(), nil
}

func (s *Store) buildAABBGeometry(geomIdx uint32, src GeometrySource) (meshindex.GeometryMeta, vecmath.AABB, error) {
	for _, b := range src.Boxes {
		if !vecmath.IsFiniteVec3(b.Min) || !vecmath.IsFiniteVec3(b.Max) {
			return meshindex.GeometryMeta{}, vecmath.AABB{}, ErrNonFiniteVertex
		}
	}

	built, err := bvh.Build(src.Boxes)
	if err != nil {
		return meshindex.GeometryMeta{}, vecmath.AABB{}, err
	}

	s.mu.Lock()
	rootIdx, err := meshindex.AppendTree(s.pools.Nodes, built.Nodes)
	if err != nil {
		s.mu.Unlock()
		return meshindex.GeometryMeta{}, vecmath.AABB{}, err
	}

	boxRange, err := s.pools.Boxes.Alloc(uint32(len(src.Boxes)))
	if err != nil {
		s.mu.Unlock()
		return meshindex.GeometryMeta{}, vecmath.AABB{}, err
	}
	dst := s.pools.Boxes.Slice(boxRange)
	for i, origIdx := range built.PrimitiveOrder {
		dst[i] = src.Boxes[origIdx]
	}
	s.mu.Unlock()

	meta := meshindex.GeometryMeta{
		BVHRootIdx:     rootIdx,
		GeometryIdx:    geomIdx,
		PrimitiveStart: boxRange.Offset,
		GeometryFlags:  src.Flags,
	}

	return meta, built.RootAABB(), nil
}
