// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package workq

// Ring is a fixed-capacity FIFO ring buffer implementing [Backing].
//
// Based on Lamport's ring buffer with free-running head and tail counters.
// Capacity is exact (not rounded to a power of 2), so indices wrap by
// modulo. Ring is not safe for concurrent use.
//
// Memory: O(capacity), allocated once at construction or supplied by the
// caller via [NewRingOver].
type Ring[T any] struct {
	buffer   []T
	head     uint64 // Next slot to pop
	tail     uint64 // Next slot to push
	capacity uint64
}

// NewRing creates a ring holding at most capacity elements.
// Panics if capacity < 1.
func NewRing[T any](capacity int) *Ring[T] {
	if capacity < 1 {
		panic("workq: capacity must be >= 1")
	}
	return &Ring[T]{
		buffer:   make([]T, capacity),
		capacity: uint64(capacity),
	}
}

// NewRingOver creates a ring that stores elements in buf.
// The capacity is len(buf). No allocation beyond the Ring header occurs,
// so buf may be backed by a package-level array.
// Panics if len(buf) < 1.
//
// Example:
//
//	var storage [64]Event
//	r := workq.NewRingOver(storage[:])
func NewRingOver[T any](buf []T) *Ring[T] {
	if len(buf) < 1 {
		panic("workq: capacity must be >= 1")
	}
	clear(buf)
	return &Ring[T]{
		buffer:   buf,
		capacity: uint64(len(buf)),
	}
}

// Push copies *elem to the back of the ring.
// Returns ErrExhausted if the ring is full.
func (r *Ring[T]) Push(elem *T) error {
	if r.tail-r.head >= r.capacity {
		return ErrExhausted
	}
	r.buffer[r.tail%r.capacity] = *elem
	r.tail++
	return nil
}

// Front returns a pointer to the oldest element.
// Returns (nil, ErrExhausted) if the ring is empty.
func (r *Ring[T]) Front() (*T, error) {
	if r.head == r.tail {
		return nil, ErrExhausted
	}
	return &r.buffer[r.head%r.capacity], nil
}

// Pop removes and returns the oldest element.
// The slot is cleared to allow garbage collection of referenced objects.
// Returns (zero-value, ErrExhausted) if the ring is empty.
func (r *Ring[T]) Pop() (T, error) {
	var zero T
	if r.head == r.tail {
		return zero, ErrExhausted
	}
	i := r.head % r.capacity
	elem := r.buffer[i]
	r.buffer[i] = zero
	r.head++
	return elem, nil
}

// Empty reports whether the ring holds no elements.
func (r *Ring[T]) Empty() bool {
	return r.head == r.tail
}

// Full reports whether the ring holds Cap elements.
func (r *Ring[T]) Full() bool {
	return r.tail-r.head >= r.capacity
}

// Len returns the number of elements in the ring.
func (r *Ring[T]) Len() int {
	return int(r.tail - r.head)
}

// Cap returns the ring capacity.
func (r *Ring[T]) Cap() int {
	return int(r.capacity)
}
