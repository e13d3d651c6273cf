// Package fixtures builds small, deterministic scenes for tests, examples,
// and manual scratch work: a unit cube mesh, a regular grid of cube
// instances, and procedural marker geometry for the five Platonic solids.
//
// The Platonic-solid markers reuse builder.PlatonicSolid's deterministic
// vertex/edge topology rather than an ad-hoc ordering of their own, and
// layer canonical 3D coordinates on top, one small AABB box per graph
// vertex.
package fixtures
