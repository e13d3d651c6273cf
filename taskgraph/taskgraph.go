package taskgraph

import (
	"context"
	"fmt"
	"sync"
)

// Graph holds an ordered vector of task groups and the budget used to size
// them.
type Graph struct {
	mu                   sync.RWMutex
	groups               []TickableGroup
	maxRecursionDepth    uint32
	maxRequiredPollCount uint32
	executionSize        uint32
}

// New creates an empty Graph. maxRecursionDepth bounds how many rounds of
// cross-group spawning a task chain may trigger in one frame;
// maxRequiredPollCount bounds how many polls any single task needs to reach
// Ready.
func New(maxRecursionDepth, maxRequiredPollCount uint32) *Graph {
	return &Graph{
		maxRecursionDepth:    maxRecursionDepth,
		maxRequiredPollCount: maxRequiredPollCount,
	}
}

// DefineTask adds group to the graph and returns its TaskID, the group's
// position in the fixed declaration order used for round-robin ticking.
func (g *Graph) DefineTask(group TickableGroup) TaskID {
	g.mu.Lock()
	defer g.mu.Unlock()

	g.groups = append(g.groups, group)
	if g.executionSize > 0 {
		group.Resize(g.executionSize * g.maxRecursionDepth)
	}

	return TaskID(len(g.groups) - 1)
}

// GroupAt returns the group registered under id.
func (g *Graph) GroupAt(id TaskID) (TickableGroup, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	if id < 0 || int(id) >= len(g.groups) {
		return nil, ErrUnknownTask
	}

	return g.groups[id], nil
}

// SetExecutionSize resizes every defined group's pools to
// n * maxRecursionDepth.
func (g *Graph) SetExecutionSize(n uint32) {
	g.mu.Lock()
	defer g.mu.Unlock()

	g.executionSize = n
	capacity := n * g.maxRecursionDepth
	for _, grp := range g.groups {
		grp.Resize(capacity)
	}
}

// MakeSureExecutionSizeIsEnough grows every group's capacity if n exceeds
// the current execution size, and is a no-op otherwise.
func (g *Graph) MakeSureExecutionSizeIsEnough(n uint32) {
	g.mu.RLock()
	cur := g.executionSize
	g.mu.RUnlock()

	if n > cur {
		g.SetExecutionSize(n)
	}
}

// FrameRounds returns the number of rounds one frame executes:
// max_recursion_depth * max_required_poll_count + 1, the "+1" covering the
// one-round compaction lag after a task's final poll.
func (g *Graph) FrameRounds() uint32 {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.maxRecursionDepth*g.maxRequiredPollCount + 1
}

// Execute runs rounds rounds, each ticking every group once in declaration
// order.
func (g *Graph) Execute(ctx context.Context, rounds uint32) error {
	g.mu.RLock()
	groups := append([]TickableGroup(nil), g.groups...)
	g.mu.RUnlock()

	for r := uint32(0); r < rounds; r++ {
		for i, grp := range groups {
			if err := grp.Tick(ctx); err != nil {
				return fmt.Errorf("taskgraph: round %d, group %d: %w", r, i, err)
			}
		}
	}

	return nil
}

// ExecuteFrame runs exactly FrameRounds rounds.
func (g *Graph) ExecuteFrame(ctx context.Context) error {
	return g.Execute(ctx, g.FrameRounds())
}

// ReadBackExecutionStates reports each group's current alive-task count, in
// declaration order.
func (g *Graph) ReadBackExecutionStates() ExecutionState {
	g.mu.RLock()
	defer g.mu.RUnlock()

	counts := make([]uint32, len(g.groups))
	for i, grp := range g.groups {
		counts[i] = grp.AliveCount()
	}

	return ExecutionState{RemainTaskCounts: counts}
}
