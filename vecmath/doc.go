// Package vecmath provides the geometry primitives shared by every other
// package in this module: 3/4-component vectors, 4x4 matrices, axis-aligned
// bounding boxes, and rays.
//
// Vec3, Vec4 and Mat4 are thin aliases over github.com/go-gl/mathgl/mgl32,
// the vector/matrix library the retrieved Go 3-D engines (gekko3d/gekko,
// leterax/go-voxels) use for exactly this purpose. AABB, Ray and the
// transform round-trip helpers are this module's own, layered on top.
//
// Complexity: every exported function here is O(1) unless noted.
package vecmath
