package traverse

import (
	"fmt"

	"github.com/rayforge/raygraph/blas"
	"github.com/rayforge/raygraph/bvh"
	"github.com/rayforge/raygraph/meshindex"
	"github.com/rayforge/raygraph/rangealloc"
	"github.com/rayforge/raygraph/tlas"
	"github.com/rayforge/raygraph/vecmath"
)

// Traverser walks a TLAS, then each hit instance's BLAS, for a single
// host-side ray query.
type Traverser struct {
	tlases *tlas.Store
	blases *blas.Store
}

// New creates a Traverser reading from the given stores.
func New(tlases *tlas.Store, blases *blas.Store) *Traverser {
	return &Traverser{tlases: tlases, blases: blases}
}

// state is the mutable per-trace bookkeeping: the shrinking ray range, the
// best accepted hit so far, and early-termination.
type state struct {
	ray       vecmath.Ray
	best      *Result
	terminate bool
	cfg       config
}

// consider arbitrates one candidate hit through the any-hit callback.
// Opaque geometry always accepts (an any-hit shader may still request
// early termination, but may not reject the hit); non-opaque geometry is
// rejected whenever the callback omits AnyHitAccept. Returns whether the
// candidate was accepted as the new closest hit.
func (st *state) consider(ctx HitContext, info HitInfo, opaque bool) bool {
	if info.HitDistance < st.ray.TMin || info.HitDistance > st.ray.TMax {
		return false
	}

	result := st.cfg.anyHit(ctx, info)
	accepted := opaque || result&AnyHitAccept != 0

	if accepted {
		st.best = &Result{Ctx: ctx, Info: info}
		st.ray.TMax = info.HitDistance
	}
	if result&AnyHitTerminate != 0 {
		st.terminate = true
	}
	if accepted && st.ray.Flags&uint32(RayFlagTerminateOnFirstHit) != 0 {
		st.terminate = true
	}

	return accepted
}

// Trace walks h's TLAS BVH and every hit instance's BLAS, returning the
// closest accepted hit. A nil Result with a nil error means the ray found
// nothing.
func (tr *Traverser) Trace(ray vecmath.Ray, h tlas.Handle, opts ...Option) (*Result, error) {
	cfg := DefaultOptions()
	for _, o := range opts {
		o(&cfg)
	}

	rootIdx, err := tr.tlases.RootIdx(h)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrHandleNotFound, err)
	}
	instRange, err := tr.tlases.InstanceRange(h)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrHandleNotFound, err)
	}

	st := &state{ray: ray, cfg: cfg}
	tr.walkTLAS(rootIdx, instRange, st)

	return st.best, nil
}

func (tr *Traverser) walkTLAS(root uint32, instRange rangealloc.Range, st *state) {
	nodes := tr.tlases.Pools().Nodes
	for idx := root; idx != bvh.InvalidNext; {
		if st.terminate {
			return
		}
		n := nodes.At(idx)
		if _, _, hit := n.AABB().Hit(st.ray); !hit {
			idx = n.MissNext
			continue
		}
		if n.IsLeaf() {
			for i := n.ContentStart; i < n.ContentEnd; i++ {
				tr.testInstance(instRange.Offset+i, st)
				if st.terminate {
					return
				}
			}
			idx = n.MissNext
			continue
		}
		idx = n.HitNext
	}
}

func (tr *Traverser) testInstance(globalIdx uint32, st *state) {
	pools := tr.tlases.Pools()

	bound := pools.Boundings.At(globalIdx)
	if st.ray.Mask&bound.Mask == 0 {
		return
	}
	worldBox := vecmath.AABB{Min: bound.WorldMin, Max: bound.WorldMax}
	if _, _, hit := worldBox.Hit(st.ray); !hit {
		return
	}

	inst := pools.Instances.At(globalIdx)
	meta, err := tr.blases.Meta(inst.BLASHandle)
	if err != nil {
		return // instance references a BLAS that is no longer live
	}

	// The object-space direction is normalized; scaling (its length before
	// normalization) converts object-space hit distances back to world-space
	// distances.
	objDir := vecmath.TransformDirection(inst.TransformInv, st.ray.Direction)
	scaling := objDir.Len()
	if scaling == 0 {
		return
	}

	objRay := vecmath.Ray{
		Origin:    vecmath.TransformPoint(inst.TransformInv, st.ray.Origin),
		Direction: objDir.Mul(1 / scaling),
		TMin:      st.ray.TMin * scaling,
		TMax:      st.ray.TMax * scaling,
		Flags:     st.ray.Flags,
		Mask:      st.ray.Mask,
	}

	ctxBase := HitContext{
		InstanceID:     globalIdx,
		CustomID:       inst.CustomID,
		SBTOffset:      inst.SBTOffset,
		ObjectToWorld:  inst.Transform,
		WorldToObject:  inst.TransformInv,
		ObjectSpaceRay: objRay,
	}

	if st.ray.Flags&uint32(RayFlagSkipTriangles) == 0 {
		tr.walkBLASTriangles(meta.TriRootRange, objRay, inst.Flags, scaling, ctxBase, st)
		if st.terminate {
			return
		}
	}
	if st.ray.Flags&uint32(RayFlagSkipAABBs) == 0 {
		tr.walkBLASAABBs(meta.BoxRootRange, objRay, inst.Flags, scaling, ctxBase, st)
	}
}

func effectiveOpaque(geomFlags, instFlags, rayFlags uint32) bool {
	opaque := geomFlags&meshindex.GeometryOpaque != 0
	if instFlags&tlas.FlagForceOpaque != 0 {
		opaque = true
	}
	if instFlags&tlas.FlagForceNoOpaque != 0 {
		opaque = false
	}
	if rayFlags&uint32(RayFlagOpaque) != 0 {
		opaque = true
	}
	if rayFlags&uint32(RayFlagNoOpaque) != 0 {
		opaque = false
	}

	return opaque
}

func passesFacingCull(facing int8, instFlags, rayFlags uint32) bool {
	if instFlags&tlas.FlagTriangleFacingCullDisable != 0 {
		return true
	}
	if rayFlags&uint32(RayFlagCullBackFacing) != 0 && facing < 0 {
		return false
	}
	if rayFlags&uint32(RayFlagCullFrontFacing) != 0 && facing > 0 {
		return false
	}

	return true
}

func (tr *Traverser) walkBLASTriangles(metaRange rangealloc.Range, objRay vecmath.Ray, instFlags uint32, scaling float32, ctxBase HitContext, st *state) {
	pools := tr.blases.Pools()
	for _, meta := range pools.TriGeomMeta.Slice(metaRange) {
		if st.terminate {
			return
		}
		opaque := effectiveOpaque(meta.GeometryFlags, instFlags, st.ray.Flags)
		if st.ray.Flags&uint32(RayFlagCullOpaque) != 0 && opaque {
			continue
		}
		if st.ray.Flags&uint32(RayFlagCullNoOpaque) != 0 && !opaque {
			continue
		}
		tr.walkTriangleBVH(meta, objRay, instFlags, opaque, scaling, ctxBase, st)
	}
}

func (tr *Traverser) walkTriangleBVH(meta meshindex.GeometryMeta, objRay vecmath.Ray, instFlags uint32, opaque bool, scaling float32, ctxBase HitContext, st *state) {
	pools := tr.blases.Pools()
	nodes := pools.Nodes

	for idx := meta.BVHRootIdx; idx != bvh.InvalidNext; {
		if st.terminate {
			return
		}
		curRay := objRay.WithRange(objRay.TMin, st.ray.TMax*scaling)
		n := nodes.At(idx)
		if _, _, hit := n.AABB().Hit(curRay); !hit {
			idx = n.MissNext
			continue
		}
		if !n.IsLeaf() {
			idx = n.HitNext
			continue
		}

		for local := n.ContentStart; local < n.ContentEnd; local++ {
			globalTri := meta.PrimitiveStart + local
			raw := globalTri * 3
			i0 := pools.Indices.At(raw)
			i1 := pools.Indices.At(raw + 1)
			i2 := pools.Indices.At(raw + 2)
			v0 := pools.Vertices.At(meta.VertexStart + i0)
			v1 := pools.Vertices.At(meta.VertexStart + i1)
			v2 := pools.Vertices.At(meta.VertexStart + i2)

			facing, tObj, _, _, hit := intersectTriangle(curRay.Origin, curRay.Direction, v0, v1, v2, curRay.TMin, curRay.TMax)
			if !hit || !passesFacingCull(facing, instFlags, st.ray.Flags) {
				continue
			}
			if instFlags&tlas.FlagTriangleFlipFacing != 0 {
				facing = -facing
			}
			kind := HitKindFrontFacingTriangle
			if facing < 0 {
				kind = HitKindBackFacingTriangle
			}

			ctx := ctxBase
			ctx.GeometryID = meta.GeometryIdx
			ctx.PrimitiveID = local
			ctx.ObjectSpaceRay = curRay
			info := HitInfo{HitKind: kind, HitDistance: tObj / scaling}

			st.consider(ctx, info, opaque)
			if st.terminate {
				return
			}
			curRay = curRay.WithRange(curRay.TMin, st.ray.TMax*scaling)
		}
		idx = n.MissNext
	}
}

func (tr *Traverser) walkBLASAABBs(metaRange rangealloc.Range, objRay vecmath.Ray, instFlags uint32, scaling float32, ctxBase HitContext, st *state) {
	pools := tr.blases.Pools()
	for _, meta := range pools.BoxGeomMeta.Slice(metaRange) {
		if st.terminate {
			return
		}
		opaque := effectiveOpaque(meta.GeometryFlags, instFlags, st.ray.Flags)
		if st.ray.Flags&uint32(RayFlagCullOpaque) != 0 && opaque {
			continue
		}
		if st.ray.Flags&uint32(RayFlagCullNoOpaque) != 0 && !opaque {
			continue
		}
		tr.walkAABBBVH(meta, objRay, opaque, scaling, ctxBase, st)
	}
}

func (tr *Traverser) walkAABBBVH(meta meshindex.GeometryMeta, objRay vecmath.Ray, opaque bool, scaling float32, ctxBase HitContext, st *state) {
	nodes := tr.blases.Pools().Nodes

	for idx := meta.BVHRootIdx; idx != bvh.InvalidNext; {
		if st.terminate {
			return
		}
		curRay := objRay.WithRange(objRay.TMin, st.ray.TMax*scaling)
		n := nodes.At(idx)
		if _, _, hit := n.AABB().Hit(curRay); !hit {
			idx = n.MissNext
			continue
		}
		if !n.IsLeaf() {
			idx = n.HitNext
			continue
		}

		for local := n.ContentStart; local < n.ContentEnd; local++ {
			ctx := ctxBase
			ctx.GeometryID = meta.GeometryIdx
			ctx.PrimitiveID = local
			ctx.ObjectSpaceRay = curRay
			rep := &reporter{st: st, ctx: ctx, opaque: opaque, scaling: scaling}
			st.cfg.intersect(ctx, rep)
			if st.terminate {
				return
			}
		}
		idx = n.MissNext
	}
}

// reporter implements IntersectionReporter for one procedural-geometry
// candidate, converting the caller's object-space hit parameter to world
// distance before routing it through the same any-hit arbitration the
// triangle path uses.
type reporter struct {
	st      *state
	ctx     HitContext
	opaque  bool
	scaling float32
}

func (r *reporter) ReportIntersection(t float32, kind HitKind) bool {
	return r.st.consider(r.ctx, HitInfo{HitKind: kind, HitDistance: t / r.scaling}, r.opaque)
}
