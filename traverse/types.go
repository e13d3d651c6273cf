package traverse

import "github.com/rayforge/raygraph/vecmath"

// HitKind classifies what was hit. 0 and 1 are reserved for the built-in
// triangle front/back distinction; 2-255 are available for a caller's
// procedural-geometry intersect callback to report its own kinds.
type HitKind uint32

const (
	HitKindFrontFacingTriangle HitKind = 0
	HitKindBackFacingTriangle  HitKind = 1
)

// RayFlags are the ray-level control bits a Trace call can set.
type RayFlags uint32

const (
	RayFlagOpaque               RayFlags = 1 << 0
	RayFlagNoOpaque             RayFlags = 1 << 1
	RayFlagTerminateOnFirstHit  RayFlags = 1 << 2
	RayFlagSkipClosestHitShader RayFlags = 1 << 3
	RayFlagCullBackFacing       RayFlags = 1 << 4
	RayFlagCullFrontFacing      RayFlags = 1 << 5
	RayFlagCullOpaque           RayFlags = 1 << 6
	RayFlagCullNoOpaque         RayFlags = 1 << 7
	RayFlagSkipTriangles        RayFlags = 1 << 8
	RayFlagSkipAABBs            RayFlags = 1 << 9
)

// AnyHitResult is the bitmask an AnyHitFunc or a ReportIntersection caller
// returns, arbitrating whether a candidate hit is kept.
type AnyHitResult uint32

const (
	// AnyHitAccept keeps the candidate as the new closest hit, shrinking
	// ray_range. Without this bit the candidate is discarded (IGNORE_HIT).
	AnyHitAccept AnyHitResult = 1 << 0
	// AnyHitTerminate stops traversal immediately after this candidate is
	// resolved, regardless of whether it was accepted.
	AnyHitTerminate AnyHitResult = 1 << 1
)

// HitContext describes the candidate intersection passed to AnyHitFunc and
// IntersectFunc.
type HitContext struct {
	InstanceID     uint32
	GeometryID     uint32
	PrimitiveID    uint32
	CustomID       uint32
	SBTOffset      uint32
	ObjectToWorld  vecmath.Mat4
	WorldToObject  vecmath.Mat4
	ObjectSpaceRay vecmath.Ray
}

// HitInfo carries the per-candidate geometric result alongside a HitContext.
type HitInfo struct {
	HitKind     HitKind
	HitDistance float32 // world-space distance along the original ray
}

// Result is the closest accepted hit returned by a completed trace, or nil
// for a miss.
type Result struct {
	Ctx  HitContext
	Info HitInfo
}

// AnyHitFunc arbitrates a candidate hit: a triangle hit the traverser
// computed itself via the built-in Möller-Trumbore test, or a procedural hit
// reported through IntersectionReporter.
type AnyHitFunc func(ctx HitContext, info HitInfo) AnyHitResult

// IntersectionReporter is the capability an IntersectFunc uses to report a
// candidate hit it computed for procedural (AABB) geometry; it internally
// dispatches to the any-hit callback and folds in opacity, mirroring the
// built-in triangle path.
type IntersectionReporter interface {
	ReportIntersection(t float32, kind HitKind) bool
}

// IntersectFunc evaluates a procedural (AABB) geometry candidate, reporting
// zero or more intersections via reporter. Never called for triangle
// geometry, which is intersected automatically.
type IntersectFunc func(ctx HitContext, reporter IntersectionReporter)
