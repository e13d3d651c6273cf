// Package taskgroup implements the per-task-type executor: a task_pool plus
// three index lists (alive_task_idx, empty_index_pool, new_removed_task_idx)
// each backed by a bumpalloc.Allocator, driven through a five-pass round
// pipeline (commit, compact, size-fixup, recycle, poll).
//
// The polling pass fans a round's alive indices out across goroutines
// bounded by the group's workgroup size, via golang.org/x/sync/errgroup —
// the host-side analogue of parallel threads organized in fixed-size
// workgroups.
package taskgroup
