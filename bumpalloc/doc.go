// Package bumpalloc implements the GPU-atomic bump allocator that backs
// every index list a task group needs (alive_task_idx, empty_index_pool,
// new_removed_task_idx) as well as dispatch-size bookkeeping for indirect
// dispatch.
//
// bump_size is modeled as a signed delta rather than a literal atomic<u32>:
// bump_deallocate decrements it below zero to pop from the already-committed
// region, made explicit here with sync/atomic's signed Int32 instead of
// relying on wraparound unsigned arithmetic.
package bumpalloc
