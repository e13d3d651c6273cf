package bvh

// Option configures Build via the functional-options pattern used throughout
// this module.
type Option func(*config)

// config holds the resolved build parameters.
type config struct {
	binSize          int
	maxDepth         int
	traversalCost    float32
	intersectionCost float32
}

// DefaultOptions returns the default build parameters:
//   - binSize: target primitives-per-leaf and SAH bin count.
//   - maxDepth: 50.
//   - intersectionCost: 4, the per-primitive intersection cost.
//   - traversalCost: 1, the conventional unit cost of descending one node,
//     against which intersectionCost is relative.
func DefaultOptions() config {
	return config{
		binSize:          4,
		maxDepth:         50,
		traversalCost:    1,
		intersectionCost: 4,
	}
}

// WithBinSize sets the number of SAH bins per split evaluation and the
// target primitive count per leaf. Must be >= 1.
func WithBinSize(n int) Option {
	return func(c *config) {
		if n >= 1 {
			c.binSize = n
		}
	}
}

// WithMaxDepth sets the maximum recursion depth before a node is forced to
// become a leaf regardless of SAH cost. Must be >= 1.
func WithMaxDepth(n int) Option {
	return func(c *config) {
		if n >= 1 {
			c.maxDepth = n
		}
	}
}

// WithIntersectionCost overrides the per-primitive intersection cost used in
// the SAH formula. Must be > 0.
func WithIntersectionCost(cost float32) Option {
	return func(c *config) {
		if cost > 0 {
			c.intersectionCost = cost
		}
	}
}

// WithTraversalCost overrides the per-node traversal cost used in the SAH
// formula. Must be > 0.
func WithTraversalCost(cost float32) Option {
	return func(c *config) {
		if cost > 0 {
			c.traversalCost = cost
		}
	}
}
