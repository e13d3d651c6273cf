package vecmath

import "math"

// AABB is an axis-aligned bounding box, stored as an ordered (Min, Max) pair
// with Min <= Max component-wise.
type AABB struct {
	Min Vec3
	Max Vec3
}

// EmptyAABB returns the canonical empty box: Min = +Inf, Max = -Inf.
// Any Union with a real box yields that box back unchanged (identity element).
func EmptyAABB() AABB {
	inf := float32(math.Inf(1))

	return AABB{
		Min: Vec3{inf, inf, inf},
		Max: Vec3{-inf, -inf, -inf},
	}
}

// IsEmpty reports whether b is the empty box (any Min component exceeds the
// matching Max component).
func (b AABB) IsEmpty() bool {
	return b.Min[0] > b.Max[0] || b.Min[1] > b.Max[1] || b.Min[2] > b.Max[2]
}

// Union returns the smallest AABB containing both b and o.
func (b AABB) Union(o AABB) AABB {
	return AABB{
		Min: componentMin(b.Min, o.Min),
		Max: componentMax(b.Max, o.Max),
	}
}

// ExtendPoint returns the smallest AABB containing b and the point p.
func (b AABB) ExtendPoint(p Vec3) AABB {
	return AABB{
		Min: componentMin(b.Min, p),
		Max: componentMax(b.Max, p),
	}
}

// Center returns the midpoint of the box. Meaningless for an empty box
// (NaN components for EmptyAABB).
func (b AABB) Center() Vec3 {
	return b.Min.Add(b.Max).Mul(0.5)
}

// Extent returns the per-axis size of the box (Max - Min). Negative on an
// empty box.
func (b AABB) Extent() Vec3 {
	return b.Max.Sub(b.Min)
}

// SurfaceArea returns the surface area of the box, used by the SAH cost
// function. Zero for a degenerate (zero-extent) box; meaningless for an
// empty box (+Inf for EmptyAABB, possibly negative for other inverted
// boxes) — callers must not call SurfaceArea on an empty box without
// checking IsEmpty first.
func (b AABB) SurfaceArea() float32 {
	e := b.Extent()

	return 2 * (e[0]*e[1] + e[1]*e[2] + e[2]*e[0])
}

// LongestAxis returns the index (0=x, 1=y, 2=z) of the box's longest extent.
func (b AABB) LongestAxis() int {
	e := b.Extent()
	axis := 0
	if e[1] > e[axis] {
		axis = 1
	}
	if e[2] > e[axis] {
		axis = 2
	}

	return axis
}

// Transform returns the AABB enclosing all eight corners of b transformed by
// m. Used when publishing a BLAS's root AABB as a per-instance world-space
// bound.
func (b AABB) Transform(m Mat4) AABB {
	if b.IsEmpty() {
		return b
	}

	result := EmptyAABB()
	for i := 0; i < 8; i++ {
		corner := Vec3{b.Min[0], b.Min[1], b.Min[2]}
		if i&1 != 0 {
			corner[0] = b.Max[0]
		}
		if i&2 != 0 {
			corner[1] = b.Max[1]
		}
		if i&4 != 0 {
			corner[2] = b.Max[2]
		}
		result = result.ExtendPoint(TransformPoint(m, corner))
	}

	return result
}

// Hit performs the slab intersection test against ray r, returning the
// entry/exit distances clipped to r's current range and whether the ray
// intersects the box at all.
func (b AABB) Hit(r Ray) (tMin, tMax float32, hit bool) {
	tMin, tMax = r.TMin, r.TMax
	for axis := 0; axis < 3; axis++ {
		origin := r.Origin[axis]
		dir := r.Direction[axis]
		if dir == 0 {
			if origin < b.Min[axis] || origin > b.Max[axis] {
				return 0, 0, false
			}
			continue
		}
		invDir := 1 / dir
		t0 := (b.Min[axis] - origin) * invDir
		t1 := (b.Max[axis] - origin) * invDir
		if t0 > t1 {
			t0, t1 = t1, t0
		}
		if t0 > tMin {
			tMin = t0
		}
		if t1 < tMax {
			tMax = t1
		}
		if tMin > tMax {
			return 0, 0, false
		}
	}

	return tMin, tMax, true
}

func componentMin(a, b Vec3) Vec3 {
	return Vec3{min32(a[0], b[0]), min32(a[1], b[1]), min32(a[2], b[2])}
}

func componentMax(a, b Vec3) Vec3 {
	return Vec3{max32(a[0], b[0]), max32(a[1], b[1]), max32(a[2], b[2])}
}

func min32(a, b float32) float32 {
	if a < b {
		return a
	}

	return b
}

func max32(a, b float32) float32 {
	if a > b {
		return a
	}

	return b
}
