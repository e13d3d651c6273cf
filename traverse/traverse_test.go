package traverse

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	blaspkg "github.com/rayforge/raygraph/blas"
	"github.com/rayforge/raygraph/meshindex"
	tlaspkg "github.com/rayforge/raygraph/tlas"
	"github.com/rayforge/raygraph/vecmath"
)

func setupQuadTrace(t *testing.T, geomFlags, mask uint32) (*Traverser, tlaspkg.Handle) {
	t.Helper()
	blasStore := blaspkg.NewStore(meshindex.NewPools())
	bh, err := blasStore.CreateBLAS([]blaspkg.GeometrySource{{
		Kind: blaspkg.Triangles,
		Positions: []vecmath.Vec3{
			{-1, -1, 0}, {1, -1, 0}, {1, 1, 0}, {-1, 1, 0},
		},
		Indices: []uint32{0, 1, 2, 0, 2, 3},
		Flags:   geomFlags,
	}})
	require.NoError(t, err)

	tlasStore := tlaspkg.NewStore(tlaspkg.NewPools(), blasStore)
	th, err := tlasStore.CreateTLAS([]tlaspkg.InstanceSource{
		{Transform: vecmath.Identity(), Mask: mask, BLASHandle: bh},
	})
	require.NoError(t, err)

	return New(tlasStore, blasStore), th
}

func TestTraceHitsTriangleQuad(t *testing.T) {
	tr, h := setupQuadTrace(t, 0, 0xFF)

	ray := vecmath.Ray{
		Origin:    vecmath.Vec3{0, 0, 5},
		Direction: vecmath.Vec3{0, 0, -1},
		TMin:      0,
		TMax:      100,
		Mask:      0xFF,
	}

	result, err := tr.Trace(ray, h)
	require.NoError(t, err)
	require.NotNil(t, result)
	assert.InDelta(t, 5, result.Info.HitDistance, 1e-4)
}

func TestTraceMissesWhenMaskDisjoint(t *testing.T) {
	tr, h := setupQuadTrace(t, 0, 0xFF)

	ray := vecmath.Ray{
		Origin:    vecmath.Vec3{0, 0, 5},
		Direction: vecmath.Vec3{0, 0, -1},
		TMin:      0,
		TMax:      100,
		Mask:      0x00, // disjoint from instance mask 0xFF
	}

	result, err := tr.Trace(ray, h)
	require.NoError(t, err)
	assert.Nil(t, result)
}

func TestTraceAnyHitCanIgnoreNonOpaqueGeometry(t *testing.T) {
	tr, h := setupQuadTrace(t, 0, 0xFF) // geometry flags 0: not opaque

	ray := vecmath.Ray{
		Origin:    vecmath.Vec3{0, 0, 5},
		Direction: vecmath.Vec3{0, 0, -1},
		TMin:      0,
		TMax:      100,
		Mask:      0xFF,
	}

	result, err := tr.Trace(ray, h, WithAnyHit(func(HitContext, HitInfo) AnyHitResult {
		return 0 // never accept
	}))
	require.NoError(t, err)
	assert.Nil(t, result)
}

func TestTraceOpaqueGeometryCannotBeIgnored(t *testing.T) {
	tr, h := setupQuadTrace(t, meshindex.GeometryOpaque, 0xFF)

	ray := vecmath.Ray{
		Origin:    vecmath.Vec3{0, 0, 5},
		Direction: vecmath.Vec3{0, 0, -1},
		TMin:      0,
		TMax:      100,
		Mask:      0xFF,
	}

	result, err := tr.Trace(ray, h, WithAnyHit(func(HitContext, HitInfo) AnyHitResult {
		return 0 // would reject, but geometry is opaque
	}))
	require.NoError(t, err)
	require.NotNil(t, result)
	assert.InDelta(t, 5, result.Info.HitDistance, 1e-4)
}

func TestTraceIntersectShaderReportsProceduralHit(t *testing.T) {
	blasStore := blaspkg.NewStore(meshindex.NewPools())
	bh, err := blasStore.CreateBLAS([]blaspkg.GeometrySource{{
		Kind:  blaspkg.AABBs,
		Boxes: []vecmath.AABB{{Min: vecmath.Vec3{-1, -1, -1}, Max: vecmath.Vec3{1, 1, 1}}},
	}})
	require.NoError(t, err)

	tlasStore := tlaspkg.NewStore(tlaspkg.NewPools(), blasStore)
	th, err := tlasStore.CreateTLAS([]tlaspkg.InstanceSource{
		{Transform: vecmath.Identity(), Mask: 0xFF, BLASHandle: bh},
	})
	require.NoError(t, err)

	tr := New(tlasStore, blasStore)
	ray := vecmath.Ray{
		Origin:    vecmath.Vec3{0, 0, 5},
		Direction: vecmath.Vec3{0, 0, -1},
		TMin:      0,
		TMax:      100,
		Mask:      0xFF,
	}

	result, err := tr.Trace(ray, th, WithIntersect(func(ctx HitContext, reporter IntersectionReporter) {
		reporter.ReportIntersection(ctx.ObjectSpaceRay.TMin+4, HitKind(7))
	}))
	require.NoError(t, err)
	require.NotNil(t, result)
	assert.Equal(t, HitKind(7), result.Info.HitKind)
	assert.InDelta(t, 4, result.Info.HitDistance, 1e-4)
}

func withFlags(r vecmath.Ray, flags RayFlags) vecmath.Ray {
	r.Flags = uint32(flags)

	return r
}

func TestTraceFacingAndCullFlags(t *testing.T) {
	tr, h := setupQuadTrace(t, 0, 0xFF)

	front := vecmath.Ray{Origin: vecmath.Vec3{0, 0, 5}, Direction: vecmath.Vec3{0, 0, -1}, TMin: 0, TMax: 100, Mask: 0xFF}
	back := vecmath.Ray{Origin: vecmath.Vec3{0, 0, -5}, Direction: vecmath.Vec3{0, 0, 1}, TMin: 0, TMax: 100, Mask: 0xFF}

	cases := []struct {
		name     string
		ray      vecmath.Ray
		wantHit  bool
		wantKind HitKind
	}{
		{"front_uncalled", front, true, HitKindFrontFacingTriangle},
		{"back_uncalled", back, true, HitKindBackFacingTriangle},
		{"back_cull_back_facing", withFlags(back, RayFlagCullBackFacing), false, 0},
		{"front_cull_back_facing_unaffected", withFlags(front, RayFlagCullBackFacing), true, HitKindFrontFacingTriangle},
		{"front_cull_front_facing", withFlags(front, RayFlagCullFrontFacing), false, 0},
		{"back_cull_front_facing_unaffected", withFlags(back, RayFlagCullFrontFacing), true, HitKindBackFacingTriangle},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			result, err := tr.Trace(c.ray, h)
			require.NoError(t, err)
			if !c.wantHit {
				assert.Nil(t, result)

				return
			}
			require.NotNil(t, result)
			assert.Equal(t, c.wantKind, result.Info.HitKind)
		})
	}
}

// twoBoxesAlongRay builds a BLAS whose single AABB geometry has two disjoint
// boxes, one each side of z=0 (z in [3,5] and [-5,-3]), so a ray traveling
// along -z from z=10 crosses both in sequence.
func twoBoxesAlongRay(t *testing.T) (*Traverser, tlaspkg.Handle) {
	t.Helper()
	blasStore := blaspkg.NewStore(meshindex.NewPools())
	bh, err := blasStore.CreateBLAS([]blaspkg.GeometrySource{{
		Kind: blaspkg.AABBs,
		Boxes: []vecmath.AABB{
			{Min: vecmath.Vec3{-1, -1, 3}, Max: vecmath.Vec3{1, 1, 5}},
			{Min: vecmath.Vec3{-1, -1, -5}, Max: vecmath.Vec3{1, 1, -3}},
		},
	}})
	require.NoError(t, err)

	tlasStore := tlaspkg.NewStore(tlaspkg.NewPools(), blasStore)
	th, err := tlasStore.CreateTLAS([]tlaspkg.InstanceSource{
		{Transform: vecmath.Identity(), Mask: 0xFF, BLASHandle: bh},
	})
	require.NoError(t, err)

	return New(tlasStore, blasStore), th
}

func TestTraceAnyHitTerminateStopsTraversalAfterFirstCandidate(t *testing.T) {
	tr, h := twoBoxesAlongRay(t)

	ray := vecmath.Ray{
		Origin:    vecmath.Vec3{0, 0, 10},
		Direction: vecmath.Vec3{0, 0, -1},
		TMin:      0,
		TMax:      100,
		Mask:      0xFF,
	}

	var calls int
	result, err := tr.Trace(ray, h,
		WithIntersect(func(ctx HitContext, reporter IntersectionReporter) {
			calls++
			reporter.ReportIntersection(ctx.ObjectSpaceRay.TMin, HitKind(0))
		}),
		WithAnyHit(func(HitContext, HitInfo) AnyHitResult {
			return AnyHitAccept | AnyHitTerminate
		}),
	)

	require.NoError(t, err)
	require.NotNil(t, result)
	assert.Equal(t, 1, calls, "AnyHitTerminate must stop the walk before the second box is ever intersected")
}

func TestTraceTerminateOnFirstHitFlagStopsAfterAccept(t *testing.T) {
	tr, h := twoBoxesAlongRay(t)

	ray := vecmath.Ray{
		Origin:    vecmath.Vec3{0, 0, 10},
		Direction: vecmath.Vec3{0, 0, -1},
		TMin:      0,
		TMax:      100,
		Mask:      0xFF,
		Flags:     uint32(RayFlagTerminateOnFirstHit),
	}

	var calls int
	result, err := tr.Trace(ray, h, WithIntersect(func(ctx HitContext, reporter IntersectionReporter) {
		calls++
		reporter.ReportIntersection(ctx.ObjectSpaceRay.TMin, HitKind(0))
	}))

	require.NoError(t, err)
	require.NotNil(t, result)
	assert.Equal(t, 1, calls, "RAY_FLAG_TERMINATE_ON_FIRST_HIT must stop the walk right after the first accepted candidate")
}
