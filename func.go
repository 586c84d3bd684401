// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package workq

import "go.uber.org/zap"

// FuncQueue is a [Queue] of deferred callbacks. The worker invokes each
// callback in enqueue order.
//
// Example:
//
//	q := workq.NewFuncQueueBuffered(64)
//	go q.Run()
//	q.MustPush(func() { flush(buf) })
//	q.RequestStop()
type FuncQueue struct {
	*Queue[func()]
}

// NewFuncQueue creates a FuncQueue draining backing.
// Panics if backing is nil.
func NewFuncQueue(backing Backing[func()]) *FuncQueue {
	return newFuncQueue(backing, Options{})
}

func newFuncQueue(backing Backing[func()], opts Options) *FuncQueue {
	return &FuncQueue{Queue: newQueue(backing, invoke, opts)}
}

func invoke(fn *func()) {
	if *fn != nil {
		(*fn)()
	}
}

// Push enqueues fn. Returns ErrNilFunc for a nil fn, otherwise as
// [Queue.Push].
func (q *FuncQueue) Push(fn func()) error {
	if fn == nil {
		return ErrNilFunc
	}
	return q.Queue.Push(fn)
}

// MustPush enqueues fn or panics, as [Queue.MustPush]. A nil fn is fatal.
func (q *FuncQueue) MustPush(fn func()) {
	if fn == nil {
		q.nilFunc()
	}
	q.Queue.MustPush(fn)
}

// MustPushPtr enqueues a copy of *fn or panics, as [Queue.MustPushPtr].
// A nil *fn is fatal.
func (q *FuncQueue) MustPushPtr(fn *func()) {
	if fn == nil || *fn == nil {
		q.nilFunc()
	}
	q.Queue.MustPushPtr(fn)
}

func (q *FuncQueue) nilFunc() {
	q.logger.Error("work queue push failed", zap.Error(ErrNilFunc))
	panic("workq: push failed: " + ErrNilFunc.Error())
}
