package taskgraph

import "context"

// TickableGroup is the type-erased view of a taskgroup.Group[P, S] the
// graph orchestrates. Every *taskgroup.Group[P, S] satisfies this.
type TickableGroup interface {
	Tick(ctx context.Context) error
	Resize(capacity uint32)
	AliveCount() uint32
	EmptyCount() uint32
}

// TaskID identifies a group within a Graph, in declaration order.
type TaskID int

// ExecutionState is the readback of each group's remaining task count.
type ExecutionState struct {
	RemainTaskCounts []uint32
}
