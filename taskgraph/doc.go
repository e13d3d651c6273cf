// Package taskgraph orchestrates an ordered collection of task groups: it
// defines groups, sizes their pools to the execution budget, and drives
// them through fixed-size-workgroup rounds for a frame.
//
// A TaskGraph holds only TickableGroup, a type-erased view of a
// taskgroup.Group[P, S] — the graph itself never touches a payload or
// state type. Go's type system catches a mismatched payload type at
// task-group definition, not at runtime, since DefineTask only accepts an
// already-concrete *taskgroup.Group[P, S].
package taskgraph
