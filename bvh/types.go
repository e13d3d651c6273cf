package bvh

import "github.com/rayforge/raygraph/vecmath"

// InvalidNext is the threaded-link sentinel terminating traversal.
const InvalidNext uint32 = 0xFFFFFFFF

// Node is the device-layout BVH node:
//
//	{ aabb_min, hit_next, aabb_max, miss_next, content_range }
//
// For a leaf, HitNext == MissNext and (ContentStart, ContentEnd) indexes the
// primitive array. For an internal node, HitNext is the left child's index
// and MissNext is the node to visit on an AABB miss.
type Node struct {
	AABBMin      vecmath.Vec3
	HitNext      uint32
	AABBMax      vecmath.Vec3
	MissNext     uint32
	ContentStart uint32
	ContentEnd   uint32
}

// IsLeaf reports whether n is a leaf node.
func (n Node) IsLeaf() bool {
	return n.HitNext == n.MissNext
}

// AABB returns the node's bounding box as a vecmath.AABB.
func (n Node) AABB() vecmath.AABB {
	return vecmath.AABB{Min: n.AABBMin, Max: n.AABBMax}
}

// BuildResult is the output of Build: the flattened node array and the
// permutation applied to the input primitive order.
type BuildResult struct {
	Nodes []Node

	// PrimitiveOrder[i] is the original index of the primitive now at
	// position i in every leaf's content range.
	PrimitiveOrder []uint32
}

// RootAABB returns the bounding box of the whole tree (the root node's
// AABB), or the empty AABB if the tree has no nodes.
func (r *BuildResult) RootAABB() vecmath.AABB {
	if len(r.Nodes) == 0 {
		return vecmath.EmptyAABB()
	}

	return r.Nodes[0].AABB()
}
