package fixtures

import (
	"fmt"
	"sort"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/rayforge/raygraph/blas"
	"github.com/rayforge/raygraph/builder"
	"github.com/rayforge/raygraph/tlas"
)

// GridOfCubes places rows*cols copies of blasHandle on an XZ grid, spacing
// units apart, centered on the origin, at y=0. Instance layout reuses
// builder.Grid's own row-major vertex topology: the (row,col) coordinates
// driving each instance's translation come from walking the core.Graph
// builder.Grid produces, not from a parallel nested loop.
func GridOfCubes(rows, cols int, spacing float32, blasHandle blas.Handle) ([]tlas.InstanceSource, error) {
	g, err := builder.BuildGraph(nil, nil, builder.Grid(rows, cols))
	if err != nil {
		return nil, fmt.Errorf("fixtures: GridOfCubes: %w", err)
	}

	ids := g.Vertices() // sorted "r,c" lexicographically (core guarantees this)
	sort.Strings(ids)

	out := make([]tlas.InstanceSource, 0, len(ids))
	offsetR := float32(rows-1) / 2
	offsetC := float32(cols-1) / 2
	for _, id := range ids {
		var r, c int
		if _, err := fmt.Sscanf(id, "%d,%d", &r, &c); err != nil {
			return nil, fmt.Errorf("fixtures: GridOfCubes: malformed vertex id %q: %w", id, err)
		}

		x := (float32(c) - offsetC) * spacing
		z := (float32(r) - offsetR) * spacing
		out = append(out, tlas.InstanceSource{
			Transform:  mgl32.Translate3D(x, 0, z),
			Mask:       0xFF,
			BLASHandle: blasHandle,
		})
	}

	return out, nil
}
