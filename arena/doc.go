// Package arena implements a generational-handle slot arena: a slab of
// slots, each with a generation counter, a single-linked free list threaded
// through unoccupied slots' "next-free" field, and handles that are live iff
// their stored generation matches the slot's current generation.
//
// BLAS and TLAS handles are each backed by one Arena[T]. Delete bumps the
// slot's generation and returns it to the free list instead of reusing the
// raw index immediately, so a stale handle captured before a delete can
// never silently alias a newer value.
package arena
