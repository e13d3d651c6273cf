package taskgroup

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/rayforge/raygraph/bumpalloc"
	"github.com/rayforge/raygraph/taskpool"
)

// Group is one task type's executor: a pool of {is_finished, payload,
// state} records plus the alive/empty/removed index lists that drive its
// per-round lifecycle.
type Group[P any, S any] struct {
	capacity uint32
	wgSize   uint32
	pool     *taskpool.Pool[P, S]
	alive    *bumpalloc.Allocator[uint32]
	empty    *bumpalloc.Allocator[uint32]
	removed  *bumpalloc.Allocator[uint32]
	step     taskpool.PollFunc[P, S]
}

// New creates a Group with the given fixed capacity, polling workgroup
// size, and per-task poll step.
func New[P any, S any](capacity, wgSize uint32, step taskpool.PollFunc[P, S]) *Group[P, S] {
	g := &Group[P, S]{step: step}
	g.reset(capacity, wgSize)

	return g
}

// Resize rebuilds the group's pool and index lists at a new fixed capacity,
// re-seeding the empty-index pool with the identity permutation. Any tasks
// live before the resize are discarded.
func (g *Group[P, S]) Resize(capacity uint32) {
	g.reset(capacity, g.wgSize)
}

func (g *Group[P, S]) reset(capacity, wgSize uint32) {
	g.capacity = capacity
	g.wgSize = wgSize
	g.pool = taskpool.New[P, S](capacity)
	g.alive = bumpalloc.New[uint32](capacity, wgSize)
	g.empty = bumpalloc.New[uint32](capacity, wgSize)
	g.removed = bumpalloc.New[uint32](capacity, wgSize)

	for i := uint32(0); i < capacity; i++ {
		g.empty.Allocate(i)
	}
	g.empty.CommitSize(true)
}

// Spawn pops a free slot, initializes its payload/state, and schedules it
// for polling. Reports false if no slot is free.
func (g *Group[P, S]) Spawn(payload P, initState S) (uint32, bool) {
	idx, ok := g.empty.Deallocate()
	if !ok {
		return 0, false
	}
	g.pool.Spawn(idx, payload, initState)
	g.alive.Allocate(idx)

	return idx, true
}

// DispatchAllocateInitTask spawns dispatchSize fresh tasks in one shot,
// building each one's payload/state from spawner, then commits the alive
// list's size. Returns the number actually spawned, which is less than
// dispatchSize only if the
// group runs out of free slots.
func (g *Group[P, S]) DispatchAllocateInitTask(dispatchSize uint32, spawner func(i uint32) (P, S)) uint32 {
	var spawned uint32
	for i := uint32(0); i < dispatchSize; i++ {
		payload, state := spawner(i)
		if _, ok := g.Spawn(payload, state); ok {
			spawned++
		}
	}
	g.alive.CommitSize(true)

	return spawned
}

// AliveCount returns the number of tasks currently scheduled for polling.
func (g *Group[P, S]) AliveCount() uint32 { return g.alive.CurrentSize() }

// EmptyCount returns the number of free slots available for Spawn.
func (g *Group[P, S]) EmptyCount() uint32 { return g.empty.CurrentSize() }

// RWPayload and RWState expose a live slot's record for a spawning task
// elsewhere in the graph to link against (e.g. recording a child index in
// the parent's own state).
func (g *Group[P, S]) RWPayload(index uint32) *P { return g.pool.RWPayload(index) }
func (g *Group[P, S]) RWState(index uint32) *S   { return g.pool.RWState(index) }

// Tick runs one round's five-pass pipeline:
//  1. commit pass: flush alive's pending bump allocations.
//  2. compaction pass: drop finished indices from alive.
//  3. size-fixup pass: commit empty/removed's pending bump allocations.
//  4. recycle pass: drain removed into empty.
//  5. polling dispatch: poll every surviving alive index, fanned out across
//     goroutines capped at the group's workgroup size.
func (g *Group[P, S]) Tick(ctx context.Context) error {
	g.alive.CommitSize(true)

	live := g.alive.Slice()
	survivors := make([]uint32, 0, len(live))
	for _, idx := range live {
		if g.pool.Alive(idx) {
			survivors = append(survivors, idx)
		}
	}
	g.alive.SetCompacted(survivors)

	g.empty.CommitSize(true)
	g.removed.CommitSize(true)
	g.removed.DrainSelfIntoOther(g.empty)

	return g.pollAlive(ctx)
}

func (g *Group[P, S]) pollAlive(ctx context.Context) error {
	indices := g.alive.Slice()

	grp, gctx := errgroup.WithContext(ctx)
	grp.SetLimit(int(g.wgSize))

	for _, idx := range indices {
		idx := idx
		grp.Go(func() error {
			if g.pool.Poll(gctx, idx, g.step) {
				g.removed.Allocate(idx)
			}

			return nil
		})
	}

	return grp.Wait()
}
