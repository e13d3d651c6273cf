package bvh

import (
	"math"

	"gonum.org/v1/gonum/floats"

	"github.com/rayforge/raygraph/vecmath"
)

// Build constructs a flattened, threaded BVH over boxes using a binned SAH
// split at every internal node. An empty input produces a single-node BVH
// with an empty AABB rather than an error.
func Build(boxes []vecmath.AABB, opts ...Option) (*BuildResult, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	if len(boxes) == 0 {
		empty := vecmath.EmptyAABB()

		return &BuildResult{
			Nodes:          []Node{{AABBMin: empty.Min, AABBMax: empty.Max, HitNext: InvalidNext, MissNext: InvalidNext}},
			PrimitiveOrder: nil,
		}, nil
	}

	for _, b := range boxes {
		if !b.IsEmpty() && (!vecmath.IsFiniteVec3(b.Min) || !vecmath.IsFiniteVec3(b.Max)) {
			return nil, ErrNonFiniteAABB
		}
	}

	order := make([]uint32, len(boxes))
	for i := range order {
		order[i] = uint32(i)
	}

	b := &builder{boxes: boxes, order: order, cfg: cfg}
	root := b.build(0, len(order), 0)

	nodes := make([]Node, 0, len(b.tmp))
	b.flatten(root, &nodes)
	threadLinks(nodes, InvalidNext)

	return &BuildResult{Nodes: nodes, PrimitiveOrder: order}, nil
}

// treeNode is the intermediate (pre-threading) tree representation: either a
// leaf with a primitive range, or an internal node with two children.
type treeNode struct {
	aabb        vecmath.AABB
	isLeaf      bool
	start, end  int // primitive range in builder.order, valid for leaves
	left, right *treeNode
}

type builder struct {
	boxes []vecmath.AABB
	order []uint32
	cfg   config
	tmp   []*treeNode // only used to size the flattened allocation
}

// build recursively partitions order[start:end] into a SAH-split binary
// tree, reordering the shared order slice in place.
func (b *builder) build(start, end, depth int) *treeNode {
	nodeAABB := vecmath.EmptyAABB()
	centroidBounds := vecmath.EmptyAABB()
	for i := start; i < end; i++ {
		box := b.boxes[b.order[i]]
		nodeAABB = nodeAABB.Union(box)
		centroidBounds = centroidBounds.ExtendPoint(box.Center())
	}

	n := end - start
	leaf := func() *treeNode {
		t := &treeNode{aabb: nodeAABB, isLeaf: true, start: start, end: end}
		b.tmp = append(b.tmp, t)

		return t
	}

	if n <= b.cfg.binSize || depth >= b.cfg.maxDepth || centroidBounds.Extent().Len() == 0 {
		return leaf()
	}

	axis := centroidBounds.LongestAxis()
	lo, hi := centroidBounds.Min[axis], centroidBounds.Max[axis]

	splitAt, bestCost, found := b.bestSplit(start, end, axis, lo, hi, nodeAABB)

	leafCost := float32(n) * b.cfg.intersectionCost
	if !found || bestCost >= leafCost {
		return leaf()
	}

	mid := partition(b.order[start:end], func(idx uint32) bool {
		c := b.boxes[idx].Center()[axis]

		return c < splitAt
	}) + start

	if mid == start || mid == end {
		// Degenerate split (all centroids landed on one side); fall back to
		// a median split so recursion still makes progress.
		mid = start + n/2
	}

	t := &treeNode{aabb: nodeAABB, isLeaf: false}
	b.tmp = append(b.tmp, t)
	t.left = b.build(start, mid, depth+1)
	t.right = b.build(mid, end, depth+1)

	return t
}

// bestSplit bins primitive centroids along axis into cfg.binSize buckets and
// returns the bucket boundary minimizing the SAH cost:
//
//	SAH = cost_trav + intersectionCost*(Nl*Al + Nr*Ar)/A_parent
func (b *builder) bestSplit(start, end, axis int, lo, hi float32, parent vecmath.AABB) (splitAt float32, cost float32, found bool) {
	numBins := b.cfg.binSize
	if numBins < 2 {
		numBins = 2
	}
	extent := hi - lo
	if extent <= 0 {
		return 0, 0, false
	}

	type bin struct {
		count int
		box   vecmath.AABB
	}
	bins := make([]bin, numBins)
	for i := range bins {
		bins[i].box = vecmath.EmptyAABB()
	}

	binIndex := func(idx uint32) int {
		c := b.boxes[idx].Center()[axis]
		k := int(float32(numBins) * (c - lo) / extent)
		if k < 0 {
			k = 0
		}
		if k >= numBins {
			k = numBins - 1
		}

		return k
	}

	for i := start; i < end; i++ {
		idx := b.order[i]
		k := binIndex(idx)
		bins[k].count++
		bins[k].box = bins[k].box.Union(b.boxes[idx])
	}

	leftArea := make([]float64, numBins)
	rightArea := make([]float64, numBins)
	leftCount := make([]int, numBins)
	rightCount := make([]int, numBins)

	acc := vecmath.EmptyAABB()
	cnt := 0
	for i := 0; i < numBins; i++ {
		acc = acc.Union(bins[i].box)
		cnt += bins[i].count
		leftArea[i] = float64(acc.SurfaceArea())
		leftCount[i] = cnt
	}
	acc = vecmath.EmptyAABB()
	cnt = 0
	for i := numBins - 1; i >= 0; i-- {
		acc = acc.Union(bins[i].box)
		cnt += bins[i].count
		rightArea[i] = float64(acc.SurfaceArea())
		rightCount[i] = cnt
	}

	parentArea := float64(parent.SurfaceArea())
	if parentArea == 0 {
		return 0, 0, false
	}

	// Evaluate every boundary's SAH cost into a dense slice, then let gonum
	// pick the minimum — an empty-side boundary is penalized with +Inf
	// rather than skipped, so slice indices keep lining up with boundaries.
	costs := make([]float64, numBins-1)
	for i := range costs {
		nl, nr := leftCount[i], rightCount[i+1]
		if nl == 0 || nr == 0 {
			costs[i] = math.Inf(1)
			continue
		}
		costs[i] = float64(b.cfg.traversalCost) + float64(b.cfg.intersectionCost)*
			(float64(nl)*leftArea[i]+float64(nr)*rightArea[i+1])/parentArea
	}

	bestBoundary := floats.MinIdx(costs)
	if math.IsInf(costs[bestBoundary], 1) {
		return 0, 0, false
	}

	return lo + extent*float32(bestBoundary+1)/float32(numBins), float32(costs[bestBoundary]), true
}

// partition reorders s in place so that every element for which keep
// returns true precedes every element for which it returns false, and
// returns the index of the first "false" element (the split point).
func partition(s []uint32, keep func(uint32) bool) int {
	i := 0
	for j := 0; j < len(s); j++ {
		if keep(s[j]) {
			s[i], s[j] = s[j], s[i]
			i++
		}
	}

	return i
}

// flatten walks t in pre-order, appending Nodes to *out. Each internal
// node's HitNext is its left child (idx+1) and its MissNext temporarily holds
// its right-child index (the node appended right after the left subtree);
// threadLinks reads that stashed index and then overwrites MissNext. Leaves
// are marked with HitNext == MissNext == their own index.
func (b *builder) flatten(t *treeNode, out *[]Node) int {
	idx := len(*out)
	*out = append(*out, Node{AABBMin: t.aabb.Min, AABBMax: t.aabb.Max})

	if t.isLeaf {
		(*out)[idx].ContentStart = uint32(t.start)
		(*out)[idx].ContentEnd = uint32(t.end)
		(*out)[idx].HitNext = uint32(idx) // placeholder; fixed by threadLinks
		(*out)[idx].MissNext = uint32(idx)

		return idx
	}

	b.flatten(t.left, out)
	rightIdx := b.flatten(t.right, out)
	(*out)[idx].HitNext = uint32(idx + 1) // left child always follows immediately
	(*out)[idx].MissNext = uint32(rightIdx)

	return idx
}

// threadLinks rewrites the pre-order-flattened nodes' HitNext/MissNext into
// the threaded form: every leaf's HitNext/MissNext become
// the enclosing "miss" target, and every internal node's MissNext (currently
// its right child, from flatten) becomes the target to visit on a miss,
// while its HitNext (the left child) is walked with that same right-child
// index as its miss target.
func threadLinks(nodes []Node, sentinel uint32) {
	if len(nodes) == 0 {
		return
	}

	var visit func(idx int, missTarget uint32)
	visit = func(idx int, missTarget uint32) {
		n := &nodes[idx]
		if n.HitNext == uint32(idx) && n.MissNext == uint32(idx) {
			// Leaf, as marked by flatten.
			n.HitNext = missTarget
			n.MissNext = missTarget

			return
		}

		rightIdx := n.MissNext // stashed by flatten
		leftIdx := n.HitNext   // == idx+1
		n.MissNext = missTarget
		visit(int(leftIdx), rightIdx)
		visit(int(rightIdx), missTarget)
	}

	visit(0, sentinel)
}
