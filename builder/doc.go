// Package builder provides reusable "functional-options"-style scene
// constructors for core.Graph: deterministic topology generators used by
// fixtures to derive ray-tracing scene layouts (grid placement, Platonic
// solid vertex/edge structure) rather than reimplementing grid or polyhedron
// iteration by hand.
//
// The package offers the following key components:
//
//   - Configuration primitives:
//     – BuilderOption:  a function that mutates builderConfig before use.
//     – builderConfig:  holds RNG, ID-scheme, and weight function.
//   - Vertex-ID scheme:
//     – DefaultIDFn:    decimal strings ("0","1",…).
//   - Edge-weight distribution:
//     – DefaultWeightFn: constant weight DefaultEdgeWeight.
//   - Topology constructors (impl_*.go):
//     – Grid:          R×C orthogonal grid, IDs "r,c".
//     – PlatonicSolid:  one of the five Platonic solid shells, optional hub.
//
// Guarantees:
//
//   - Idempotent configuration: re-running the same builder on g will not
//     duplicate vertices or edges.
//   - Fast-fail on invalid option parameters via panics in option constructors.
//   - Structured runtime errors wrapping sentinel errors for invalid build
//     parameters.
//
// See individual function documentation for detailed contracts, panic
// conditions, parameter descriptions, and performance notes.
package builder
