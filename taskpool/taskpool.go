package taskpool

import "context"

// TaskRecord is the device-layout task record. IsFinished is written true
// on spawn and flipped to false when the task's state machine reaches
// Ready — despite the name, true means "alive, scheduled for polling" and
// false means "done, slot eligible for recycling".
type TaskRecord[P any, S any] struct {
	IsFinished bool
	Payload    P
	State      S
}

// PollFunc runs one step of a task's state machine, returning true when it
// reaches Ready.
type PollFunc[P any, S any] func(ctx context.Context, payload *P, state *S) bool

// Pool is the fixed-capacity slab of TaskRecord[P, S].
type Pool[P any, S any] struct {
	records []TaskRecord[P, S]
}

// New creates a Pool with the given fixed capacity.
func New[P any, S any](capacity uint32) *Pool[P, S] {
	return &Pool[P, S]{records: make([]TaskRecord[P, S], capacity)}
}

// Capacity returns the pool's fixed slot count.
func (p *Pool[P, S]) Capacity() uint32 {
	return uint32(len(p.records))
}

// Spawn writes is_finished=1 (alive), the payload, and the builder-declared
// initial state into slot index.
func (p *Pool[P, S]) Spawn(index uint32, payload P, initState S) {
	p.records[index] = TaskRecord[P, S]{IsFinished: true, Payload: payload, State: initState}
}

// Poll runs step against slot index's payload/state. If step reports Ready,
// the slot's IsFinished flag is cleared.
func (p *Pool[P, S]) Poll(ctx context.Context, index uint32, step PollFunc[P, S]) bool {
	rec := &p.records[index]
	ready := step(ctx, &rec.Payload, &rec.State)
	if ready {
		rec.IsFinished = false
	}

	return ready
}

// Alive reports whether slot index is currently scheduled for polling.
// Readers may only inspect this flag of a slot they don't own.
func (p *Pool[P, S]) Alive(index uint32) bool {
	return p.records[index].IsFinished
}

// RWPayload returns a typed pointer into slot index's payload.
func (p *Pool[P, S]) RWPayload(index uint32) *P {
	return &p.records[index].Payload
}

// RWState returns a typed pointer into slot index's state.
func (p *Pool[P, S]) RWState(index uint32) *S {
	return &p.records[index].State
}
