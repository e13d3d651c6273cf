package fixtures

import (
	"fmt"
	"math"
	"sort"
	"strconv"

	"github.com/rayforge/raygraph/blas"
	"github.com/rayforge/raygraph/builder"
	"github.com/rayforge/raygraph/meshindex"
	"github.com/rayforge/raygraph/vecmath"
)

const centerVertexID = "Center"

// vertexPosition returns an approximate 3D embedding for vertex idx of the
// named solid, consistent with builder's own edge layout for that solid
// (variants_platonic.go): poles, rings and spokes line up with the
// indices builder.PlatonicSolid actually wires together. The embeddings are
// not exact regular-polyhedron coordinates, only convex and
// topology-consistent — sufficient for scene markers.
func vertexPosition(name builder.PlatonicName, idx int) vecmath.Vec3 {
	const deg = math.Pi / 180

	switch name {
	case builder.Tetrahedron:
		pts := [4]vecmath.Vec3{
			{1, 1, 1}, {1, -1, -1}, {-1, 1, -1}, {-1, -1, 1},
		}
		return pts[idx]

	case builder.Cube:
		h := float32(1)
		xy := [4][2]float32{{-h, -h}, {h, -h}, {h, h}, {-h, h}}
		if idx < 4 {
			return vecmath.Vec3{xy[idx][0], xy[idx][1], -h}
		}
		p := xy[idx-4]
		return vecmath.Vec3{p[0], p[1], h}

	case builder.Octahedron:
		switch idx {
		case 0:
			return vecmath.Vec3{0, 0, 1}
		case 1:
			return vecmath.Vec3{0, 0, -1}
		default:
			ring := [4]float64{0, 90, 180, 270} // indices 2,4,3,5 -> ring order
			order := map[int]int{2: 0, 4: 1, 3: 2, 5: 3}
			a := ring[order[idx]] * deg
			return vecmath.Vec3{float32(math.Cos(a)), float32(math.Sin(a)), 0}
		}

	case builder.Icosahedron:
		const poleZ = 1.0
		const ringZ = 1.0 / 2.2360679
		const ringR = 2.0 / 2.2360679
		switch {
		case idx == 0:
			return vecmath.Vec3{0, 0, poleZ}
		case idx == 11:
			return vecmath.Vec3{0, 0, -poleZ}
		case idx >= 1 && idx <= 5:
			a := float64(idx-1) * 72 * deg
			return vecmath.Vec3{float32(ringR * math.Cos(a)), float32(ringR * math.Sin(a)), ringZ}
		default: // 6..10
			a := (float64(idx-6)*72 + 36) * deg
			return vecmath.Vec3{float32(ringR * math.Cos(a)), float32(ringR * math.Sin(a)), -ringZ}
		}

	case builder.Dodecahedron:
		const rTop, hTop = 0.85, 1.0
		const rMid, hMid = 1.0, 0.35
		switch {
		case idx <= 4: // top pentagon
			a := float64(idx) * 72 * deg
			return vecmath.Vec3{float32(rTop * math.Cos(a)), hTop, float32(rTop * math.Sin(a))}
		case idx <= 9: // bottom pentagon
			a := (float64(idx-5)*72 + 36) * deg
			return vecmath.Vec3{float32(rTop * math.Cos(a)), -hTop, float32(rTop * math.Sin(a))}
		default: // middle decagon band, 10..19
			m := idx - 10
			a := float64(m) * 36 * deg
			z := hMid
			if m%2 != 0 {
				z = -hMid
			}
			return vecmath.Vec3{float32(rMid * math.Cos(a)), float32(z), float32(rMid * math.Sin(a))}
		}
	}

	return vecmath.Vec3{}
}

// PlatonicSolidMarkers builds a procedural (AABB) GeometrySource with one
// small box per vertex of the named solid's builder.PlatonicSolid topology,
// plus a center marker when withCenter is set. halfExtent sets each
// marker box's half-width.
func PlatonicSolidMarkers(name builder.PlatonicName, withCenter bool, halfExtent float32) (blas.GeometrySource, error) {
	g, err := builder.BuildGraph(nil, nil, builder.PlatonicSolid(name, withCenter))
	if err != nil {
		return blas.GeometrySource{}, fmt.Errorf("fixtures: PlatonicSolidMarkers: %w", err)
	}

	ids := g.Vertices()
	sort.Strings(ids) // core.Graph already returns sorted IDs; sort is belt-and-braces

	ext := vecmath.Vec3{halfExtent, halfExtent, halfExtent}
	boxes := make([]vecmath.AABB, 0, len(ids))
	for _, id := range ids {
		var pos vecmath.Vec3
		if id == centerVertexID {
			pos = vecmath.Vec3{0, 0, 0}
		} else {
			idx, err := strconv.Atoi(id)
			if err != nil {
				return blas.GeometrySource{}, fmt.Errorf("fixtures: PlatonicSolidMarkers: vertex id %q: %w", id, err)
			}
			pos = vertexPosition(name, idx)
		}

		boxes = append(boxes, vecmath.AABB{Min: pos.Sub(ext), Max: pos.Add(ext)})
	}

	return blas.GeometrySource{
		Kind:  blas.AABBs,
		Boxes: boxes,
		Flags: meshindex.GeometryOpaque,
	}, nil
}
