package vecmath

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// Vec3 is a 3-component single-precision vector.
type Vec3 = mgl32.Vec3

// Vec4 is a 4-component single-precision vector (homogeneous coordinates).
type Vec4 = mgl32.Vec4

// Mat4 is a column-major 4x4 single-precision matrix.
type Mat4 = mgl32.Mat4

// Identity returns the 4x4 identity matrix.
func Identity() Mat4 {
	return mgl32.Ident4()
}

// InverseOrNone returns the inverse of m, or false if m is singular.
func InverseOrNone(m Mat4) (Mat4, bool) {
	det := m.Det()
	if det > -1e-12 && det < 1e-12 {
		return Mat4{}, false
	}

	return m.Inv(), true
}

// TransformPoint applies m to the point p (w=1), returning the transformed
// point in Cartesian coordinates.
func TransformPoint(m Mat4, p Vec3) Vec3 {
	v4 := m.Mul4x1(Vec4{p[0], p[1], p[2], 1})

	return Vec3{v4[0], v4[1], v4[2]}
}

// TransformDirection applies the linear part of m to the direction d (w=0).
func TransformDirection(m Mat4, d Vec3) Vec3 {
	v4 := m.Mul4x1(Vec4{d[0], d[1], d[2], 0})

	return Vec3{v4[0], v4[1], v4[2]}
}

// IsFiniteVec3 reports whether every component of v is finite (not NaN/Inf).
// Used by build-time validation to refuse a build over non-finite geometry.
func IsFiniteVec3(v Vec3) bool {
	for _, c := range v {
		if math.IsNaN(float64(c)) || math.IsInf(float64(c), 0) {
			return false
		}
	}

	return true
}

// IsUnitDirection reports whether v has unit length within the given epsilon.
func IsUnitDirection(v Vec3, eps float32) bool {
	l := v.Len()

	return l > 1-eps && l < 1+eps
}
