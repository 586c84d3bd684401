// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package workq

import (
	"code.hybscloud.com/atomix"
	"go.uber.org/zap"
)

// Queue is a fixed-capacity deferred work queue drained by one worker.
//
// Any number of goroutines may call Push, MustPush, and RequestStop
// concurrently. Exactly one goroutine calls Run, which invokes the
// processing function for each item in the order the items were enqueued.
//
// The backing queue, stop flag, and watermarks are guarded by a single
// [Locker]. The wake signal is released only after the lock is dropped, and
// the processing function runs outside the lock, so it may push new work.
//
// A Queue cannot be restarted: once Run returns, construct a new one.
type Queue[T any] struct {
	_     pad
	state atomix.Uint64 // State, written by the worker
	_     pad

	lock    Locker
	backing Backing[T]
	stop    bool // Guarded by lock; never reset

	maxUsed      int // Guarded by lock
	minRemaining int // Guarded by lock

	signal   Notifier
	fn       func(item *T)
	gaugeMax Gauge
	gaugeMin Gauge
	logger   *zap.Logger
}

// New creates a Queue draining backing with fn, using default
// collaborators. Use [NewBuilder] to configure them.
// Panics if backing or fn is nil.
func New[T any](backing Backing[T], fn func(item *T)) *Queue[T] {
	return newQueue(backing, fn, Options{})
}

func newQueue[T any](backing Backing[T], fn func(item *T), opts Options) *Queue[T] {
	if backing == nil {
		panic("workq: nil backing queue")
	}
	if fn == nil {
		panic("workq: nil processing function")
	}
	opts = opts.withDefaults()
	opts.maxUsed.Set(0)
	opts.minRemaining.Set(float64(backing.Cap()))
	return &Queue[T]{
		lock:         opts.locker,
		backing:      backing,
		minRemaining: backing.Cap(),
		signal:       opts.notifier,
		fn:           fn,
		gaugeMax:     opts.maxUsed,
		gaugeMin:     opts.minRemaining,
		logger:       opts.logger,
	}
}

// Push enqueues a copy of item for the worker.
//
// Returns ErrStopped if RequestStop has been called, or ErrExhausted if the
// queue is full. In both cases nothing is enqueued. On success the worker
// is woken and will process item before Run returns.
func (q *Queue[T]) Push(item T) error {
	return q.push(&item)
}

// MustPush is like Push but treats any failure as fatal: it logs the
// error and panics. Use it where overflow and pushes after stop are
// programming errors.
func (q *Queue[T]) MustPush(item T) {
	q.mustPush(&item)
}

// MustPushPtr is like MustPush but copies the item from *item, leaving the
// caller's value intact for reuse.
func (q *Queue[T]) MustPushPtr(item *T) {
	q.mustPush(item)
}

func (q *Queue[T]) push(item *T) error {
	q.lock.Lock()
	if q.stop {
		q.lock.Unlock()
		return ErrStopped
	}
	if q.backing.Full() {
		q.lock.Unlock()
		return ErrExhausted
	}
	if err := q.backing.Push(item); err != nil {
		q.lock.Unlock()
		return err
	}
	q.updateWatermarks()
	q.lock.Unlock()

	q.signal.Release()
	return nil
}

// updateWatermarks must be called with q.lock held.
func (q *Queue[T]) updateWatermarks() {
	used := q.backing.Len()
	remaining := q.backing.Cap() - used
	if used > q.maxUsed {
		q.maxUsed = used
		q.gaugeMax.Set(float64(used))
	}
	if remaining < q.minRemaining {
		q.minRemaining = remaining
		q.gaugeMin.Set(float64(remaining))
	}
}

func (q *Queue[T]) mustPush(item *T) {
	err := q.push(item)
	if err == nil {
		return
	}
	q.lock.Lock()
	n, c := q.backing.Len(), q.backing.Cap()
	q.lock.Unlock()
	q.logger.Error("work queue push failed",
		zap.Error(err),
		zap.Int("len", n),
		zap.Int("cap", c),
	)
	panic("workq: push failed: " + err.Error())
}

// Run processes queued items until a stop is requested and every item
// enqueued before the stop has been processed.
//
// Run must be called from exactly one goroutine, once per Queue.
// Panics if Run has already been called. Panics raised by the processing
// function are not recovered.
func (q *Queue[T]) Run() {
	if !q.state.CompareAndSwapAcqRel(uint64(StateIdle), uint64(StateWaiting)) {
		panic("workq: Run called more than once")
	}
	q.logger.Debug("work queue started", zap.Int("cap", q.backing.Cap()))

	for {
		q.signal.Acquire()
		q.state.StoreRelease(uint64(StateDraining))
		if q.drain() {
			break
		}
		q.state.StoreRelease(uint64(StateWaiting))
	}

	q.state.StoreRelease(uint64(StateStopped))
	q.logger.Debug("work queue stopped",
		zap.Int("max_used", q.MaxUsed()),
		zap.Int("min_remaining", q.MinRemaining()),
	)
}

// drain processes items until the backing queue is observed empty and
// reports whether a stop had been requested at that point.
func (q *Queue[T]) drain() (stop bool) {
	for {
		q.lock.Lock()
		item, err := q.backing.Pop()
		more := !q.backing.Empty()
		stop = q.stop
		q.lock.Unlock()

		if err == nil {
			q.fn(&item)
		}
		if !more {
			return stop
		}
	}
}

// RequestStop asks the worker to exit once the queue is drained.
//
// After RequestStop returns, every push fails with ErrStopped. Items
// already enqueued are still processed. Calling RequestStop more than once
// is harmless.
func (q *Queue[T]) RequestStop() {
	q.lock.Lock()
	q.stop = true
	q.lock.Unlock()

	q.signal.Release()
}

// Stopped reports whether RequestStop has been called.
func (q *Queue[T]) Stopped() bool {
	q.lock.Lock()
	defer q.lock.Unlock()
	return q.stop
}

// State returns the worker lifecycle state.
func (q *Queue[T]) State() State {
	return State(q.state.LoadAcquire())
}

// Len returns the number of items waiting to be processed.
func (q *Queue[T]) Len() int {
	q.lock.Lock()
	defer q.lock.Unlock()
	return q.backing.Len()
}

// Cap returns the queue capacity.
func (q *Queue[T]) Cap() int {
	return q.backing.Cap()
}

// MaxUsed returns the highest queue occupancy observed after a push.
func (q *Queue[T]) MaxUsed() int {
	q.lock.Lock()
	defer q.lock.Unlock()
	return q.maxUsed
}

// MinRemaining returns the lowest free capacity observed after a push.
// It equals Cap until the first successful push.
func (q *Queue[T]) MinRemaining() int {
	q.lock.Lock()
	defer q.lock.Unlock()
	return q.minRemaining
}
