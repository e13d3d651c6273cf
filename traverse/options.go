package traverse

// Option configures a Trace call via functional arguments.
type Option func(*config)

type config struct {
	anyHit    AnyHitFunc
	intersect IntersectFunc
}

// DefaultOptions returns a config with no-op hooks: the any-hit callback
// accepts every candidate, the intersect callback reports nothing (so
// procedural geometry never contributes a hit unless WithIntersect is
// supplied).
func DefaultOptions() config {
	return config{
		anyHit:    func(HitContext, HitInfo) AnyHitResult { return AnyHitAccept },
		intersect: func(HitContext, IntersectionReporter) {},
	}
}

// WithAnyHit registers the callback invoked for every candidate triangle hit
// and for every procedural hit reported via IntersectionReporter.
func WithAnyHit(fn AnyHitFunc) Option {
	return func(c *config) {
		if fn != nil {
			c.anyHit = fn
		}
	}
}

// WithIntersect registers the callback invoked once per candidate
// procedural (AABB) geometry primitive.
func WithIntersect(fn IntersectFunc) Option {
	return func(c *config) {
		if fn != nil {
			c.intersect = fn
		}
	}
}
