package tlas

import (
	"fmt"
	"sync"

	"github.com/rayforge/raygraph/arena"
	"github.com/rayforge/raygraph/blas"
	"github.com/rayforge/raygraph/bvh"
	"github.com/rayforge/raygraph/meshindex"
	"github.com/rayforge/raygraph/rangealloc"
	"github.com/rayforge/raygraph/vecmath"
)

// Handle references a live TLAS group.
type Handle = arena.Handle

type record struct {
	instances rangealloc.Range // range into Pools.Instances/Boundings
	rootIdx   uint32           // absolute index into Pools.Nodes
}

// Pools are the shared backing arrays every TLAS group sub-allocates from.
type Pools struct {
	Instances *rangealloc.Allocator[TlasInstance]
	Boundings *rangealloc.Allocator[TlasBounding]
	Nodes     *rangealloc.Allocator[bvh.Node]
}

// NewPools creates an empty set of TLAS pools.
func NewPools() *Pools {
	return &Pools{
		Instances: rangealloc.New[TlasInstance](16),
		Boundings: rangealloc.New[TlasBounding](16),
		Nodes:     rangealloc.New[bvh.Node](16),
	}
}

// Store owns the TLAS arena and shared pools.
type Store struct {
	mu     sync.RWMutex
	pools  *Pools
	blases *blas.Store
	tlases *arena.Arena[record]
}

// NewStore creates a Store backed by pools and the BLAS store used to
// resolve each instance's root AABB.
func NewStore(pools *Pools, blases *blas.Store) *Store {
	return &Store{pools: pools, blases: blases, tlases: arena.New[record]()}
}

// CreateTLAS builds a BVH over instances' world-space bounds and publishes
// the TLAS group.
func (s *Store) CreateTLAS(sources []InstanceSource) (Handle, error) {
	if len(sources) == 0 {
		return Handle{}, ErrEmptyInstances
	}

	worldBoxes := make([]vecmath.AABB, len(sources))
	inverses := make([]vecmath.Mat4, len(sources))
	for i, src := range sources {
		localAABB, err := s.blases.RootAABB(src.BLASHandle)
		if err != nil {
			return Handle{}, fmt.Errorf("tlas: instance %d: %w", i, ErrUnknownBLAS)
		}
		inv, ok := vecmath.InverseOrNone(src.Transform)
		if !ok {
			return Handle{}, fmt.Errorf("tlas: instance %d: %w", i, ErrSingularTransform)
		}
		inverses[i] = inv
		worldBoxes[i] = localAABB.Transform(src.Transform)
	}

	built, err := bvh.Build(worldBoxes)
	if err != nil {
		return Handle{}, err
	}

	instances := make([]TlasInstance, len(sources))
	boundings := make([]TlasBounding, len(sources))
	for i, origIdx := range built.PrimitiveOrder {
		src := sources[origIdx]
		flags := src.Flags
		if vecmath.IsHandednessFlipped(src.Transform) {
			flags ^= FlagTriangleFlipFacing
		}
		instances[i] = TlasInstance{
			Transform:    src.Transform,
			TransformInv: inverses[origIdx],
			CustomID:     src.CustomIndex,
			SBTOffset:    src.SBTOffset,
			Flags:        flags,
			BLASHandle:   src.BLASHandle,
		}
		boundings[i] = TlasBounding{
			WorldMin: worldBoxes[origIdx].Min,
			WorldMax: worldBoxes[origIdx].Max,
			Mask:     src.Mask,
			Flags:    flags,
		}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	instRange, err := s.pools.Instances.Alloc(uint32(len(instances)))
	if err != nil {
		return Handle{}, err
	}
	copy(s.pools.Instances.Slice(instRange), instances)

	boundRange, err := s.pools.Boundings.Alloc(uint32(len(boundings)))
	if err != nil {
		return Handle{}, err
	}
	copy(s.pools.Boundings.Slice(boundRange), boundings)

	rootIdx, err := meshindex.AppendTree(s.pools.Nodes, built.Nodes)
	if err != nil {
		return Handle{}, err
	}

	h := s.tlases.Insert(record{instances: instRange, rootIdx: rootIdx})

	return h, nil
}

// DeleteTLAS invalidates h.
func (s *Store) DeleteTLAS(h Handle) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.tlases.Delete(h); err != nil {
		return fmt.Errorf("tlas: %w", ErrHandleNotFound)
	}

	return nil
}

// RootIdx returns the absolute node index of h's BVH root in Pools.Nodes.
func (s *Store) RootIdx(h Handle) (uint32, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	r, err := s.tlases.Get(h)
	if err != nil {
		return 0, fmt.Errorf("tlas: %w", ErrHandleNotFound)
	}

	return r.rootIdx, nil
}

// InstanceRange returns the [start,end) range this TLAS's leaves index into
// within Pools.Instances/Pools.Boundings.
func (s *Store) InstanceRange(h Handle) (rangealloc.Range, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	r, err := s.tlases.Get(h)
	if err != nil {
		return rangealloc.Range{}, fmt.Errorf("tlas: %w", ErrHandleNotFound)
	}

	return r.instances, nil
}

// Pools exposes the shared pools for the traverser's read-only access.
func (s *Store) Pools() *Pools {
	return s.pools
}
