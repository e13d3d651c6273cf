package fixtures

import (
	"github.com/rayforge/raygraph/blas"
	"github.com/rayforge/raygraph/meshindex"
	"github.com/rayforge/raygraph/vecmath"
)

// UnitCube returns a triangle GeometrySource for an axis-aligned cube of
// side length 1 centered at the origin, wound so every face's normal
// points outward. 8 vertices, 12 triangles.
func UnitCube(flags uint32) blas.GeometrySource {
	h := float32(0.5)
	v := [8]vecmath.Vec3{
		{-h, -h, -h}, {h, -h, -h}, {h, h, -h}, {-h, h, -h},
		{-h, -h, h}, {h, -h, h}, {h, h, h}, {-h, h, h},
	}

	tris := [][3]int{
		{0, 3, 2}, {0, 2, 1}, // back  (-z)
		{4, 5, 6}, {4, 6, 7}, // front (+z)
		{0, 4, 7}, {0, 7, 3}, // left  (-x)
		{1, 2, 6}, {1, 6, 5}, // right (+x)
		{0, 1, 5}, {0, 5, 4}, // bottom (-y)
		{3, 7, 6}, {3, 6, 2}, // top (+y)
	}

	indices := make([]uint32, 0, len(tris)*3)
	for _, t := range tris {
		indices = append(indices, uint32(t[0]), uint32(t[1]), uint32(t[2]))
	}

	return blas.GeometrySource{
		Kind:      blas.Triangles,
		Positions: v[:],
		Indices:   indices,
		Flags:     flags | meshindex.GeometryOpaque,
	}
}
