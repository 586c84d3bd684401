// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package workq

import "go.uber.org/zap"

// Options configures work queue creation.
type Options struct {
	// Capacity of the Ring allocated by Build and BuildFunc
	capacity int

	// Collaborators (nil selects the default)
	locker       Locker
	notifier     Notifier
	maxUsed      Gauge
	minRemaining Gauge
	logger       *zap.Logger
}

// Builder creates work queues with fluent configuration.
//
// Example:
//
//	// Closure queue with Prometheus watermarks and logging
//	wm := workq.NewWatermarkGauges(workq.WatermarkOpts{Name: "deferred"})
//	q := workq.NewBuilder(128).
//	    Gauges(wm.MaxUsed, wm.MinRemaining).
//	    Logger(logger).
//	    BuildFunc()
//
//	// Typed queue over static storage
//	var storage [32]Event
//	q := workq.BuildWith(workq.NewBuilder(32), workq.NewRingOver(storage[:]), handle)
//
// Locker and Notifier are instances, not factories: a Builder configured
// with either must build at most one queue.
type Builder struct {
	opts Options
}

// NewBuilder creates a work queue builder with the given capacity.
//
// Capacity is exact. Panics if capacity < 1.
func NewBuilder(capacity int) *Builder {
	if capacity < 1 {
		panic("workq: capacity must be >= 1")
	}
	return &Builder{opts: Options{capacity: capacity}}
}

// Locker sets the lock guarding the backing queue.
// Default: SpinLock (sync.Mutex under the race detector).
func (b *Builder) Locker(l Locker) *Builder {
	b.opts.locker = l
	return b
}

// Notifier sets the primitive that wakes the worker.
// Default: a new Signal.
func (b *Builder) Notifier(n Notifier) *Builder {
	b.opts.notifier = n
	return b
}

// Gauges sets where watermark updates are published.
// Either may be nil to discard that watermark.
func (b *Builder) Gauges(maxUsed, minRemaining Gauge) *Builder {
	b.opts.maxUsed = maxUsed
	b.opts.minRemaining = minRemaining
	return b
}

// Logger sets the structured logger.
// Default: zap.NewNop().
func (b *Builder) Logger(l *zap.Logger) *Builder {
	b.opts.logger = l
	return b
}

// Build creates a Queue[T] backed by a new Ring of the builder's capacity.
// Panics if fn is nil.
func Build[T any](b *Builder, fn func(item *T)) *Queue[T] {
	return newQueue(NewRing[T](b.opts.capacity), fn, b.opts)
}

// BuildWith creates a Queue[T] draining the given backing queue.
// The builder's capacity is ignored; backing.Cap() applies.
// Panics if backing or fn is nil.
func BuildWith[T any](b *Builder, backing Backing[T], fn func(item *T)) *Queue[T] {
	return newQueue(backing, fn, b.opts)
}

// BuildFunc creates a FuncQueue backed by a new Ring of the builder's
// capacity.
func (b *Builder) BuildFunc() *FuncQueue {
	return newFuncQueue(NewRing[func()](b.opts.capacity), b.opts)
}

// BuildFuncWith creates a FuncQueue draining the given backing queue.
// Panics if backing is nil.
func (b *Builder) BuildFuncWith(backing Backing[func()]) *FuncQueue {
	return newFuncQueue(backing, b.opts)
}

// withDefaults fills unset collaborators.
func (o Options) withDefaults() Options {
	if o.locker == nil {
		o.locker = defaultLocker()
	}
	if o.notifier == nil {
		o.notifier = NewSignal()
	}
	if o.maxUsed == nil {
		o.maxUsed = nopGauge{}
	}
	if o.minRemaining == nil {
		o.minRemaining = nopGauge{}
	}
	if o.logger == nil {
		o.logger = zap.NewNop()
	}
	return o
}

// pad is cache line padding to prevent false sharing.
type pad [64]byte
