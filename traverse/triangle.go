package traverse

import "github.com/rayforge/raygraph/vecmath"

const triangleEpsilon = 1e-7

// intersectTriangle implements the Möller-Trumbore ray/triangle test.
// origin and dir are in the same
// (object) space as v0, v1, v2; dir need not be unit length. Returns the hit
// parameter t (in units of dir's own length, not world distance) and the
// barycentric u, v, along with the unflipped facing: +1 front (det > 0),
// -1 back, 0 on a parallel miss.
func intersectTriangle(origin, dir, v0, v1, v2 vecmath.Vec3, tMin, tMax float32) (facing int8, t, u, v float32, hit bool) {
	e1 := v1.Sub(v0)
	e2 := v2.Sub(v0)
	pvec := dir.Cross(e2)
	det := e1.Dot(pvec)
	if det > -triangleEpsilon && det < triangleEpsilon {
		return 0, 0, 0, 0, false
	}
	invDet := 1 / det

	tvec := origin.Sub(v0)
	u = tvec.Dot(pvec) * invDet
	if u < 0 || u > 1 {
		return 0, 0, 0, 0, false
	}

	qvec := tvec.Cross(e1)
	v = dir.Dot(qvec) * invDet
	if v < 0 || u+v > 1 {
		return 0, 0, 0, 0, false
	}

	t = e2.Dot(qvec) * invDet
	if t < tMin || t > tMax {
		return 0, 0, 0, 0, false
	}

	if det > 0 {
		facing = 1
	} else {
		facing = -1
	}

	return facing, t, u, v, true
}
