// Package taskpool implements the fixed-capacity typed slab of task
// records a task group polls: `{ is_finished, payload, state }` at index
// stride sizeof(TaskRecord).
//
// A slot's payload/state are exclusively written by the polling thread that
// owns that index, so RWPayload/RWState hand back plain pointers with no
// locking — callers (the taskgroup executor) already guarantee disjoint-index
// concurrent access, the same ownership model a GPU kernel's per-invocation
// memory gets.
package taskpool
