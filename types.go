// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package workq

// Backing is the fixed-capacity FIFO storage a [Queue] drains.
//
// Backing is not safe for concurrent use; [Queue] guards every call with its
// [Locker]. All operations are O(1), non-blocking, and must not allocate.
// Capacity is fixed at construction and Len never exceeds Cap.
//
// [Ring] is the provided implementation.
type Backing[T any] interface {
	// Push copies *elem to the back of the queue.
	// Returns ErrExhausted if the queue is full.
	Push(elem *T) error

	// Front returns a pointer to the oldest element without removing it.
	// Returns (nil, ErrExhausted) if the queue is empty. The pointer is
	// valid until the next Pop.
	Front() (*T, error)

	// Pop removes and returns the oldest element.
	// Returns (zero-value, ErrExhausted) if the queue is empty.
	Pop() (T, error)

	Empty() bool
	Full() bool
	Len() int
	Cap() int
}

// Locker is a lock that may be taken from any context, including code that
// must not park: signal handlers, runtime callbacks, or hot paths that
// hand off work.
//
// [SpinLock] is the non-sleeping implementation. *sync.Mutex also satisfies
// Locker and is the right choice when the race detector is active.
type Locker interface {
	Lock()
	Unlock()
	TryLock() bool
}

// Notifier is a binary wake-up primitive.
//
// Release marks the notifier signaled and never blocks; releasing an
// already signaled notifier is a no-op. Acquire blocks until the notifier
// is signaled and consumes the signal.
//
// [Signal] is the provided implementation.
type Notifier interface {
	Acquire()
	Release()
}

// Gauge receives watermark updates.
//
// prometheus.Gauge satisfies Gauge, as does [Counter].
type Gauge interface {
	Set(v float64)
}

// State is the worker lifecycle state of a [Queue].
type State uint64

const (
	StateIdle     State = iota // Constructed, Run not yet called
	StateWaiting               // Blocked on the wake signal
	StateDraining              // Processing queued items
	StateStopped               // Run has returned
)

// String returns the state name.
func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateWaiting:
		return "waiting"
	case StateDraining:
		return "draining"
	case StateStopped:
		return "stopped"
	default:
		return "unknown"
	}
}
