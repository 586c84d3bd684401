// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package workq provides a bounded deferred work queue drained by a single
// worker goroutine.
//
// Producers hand off work items from any goroutine, including code that must
// not park (signal handlers, runtime callbacks, hot I/O paths). One
// dedicated worker runs the queue and processes items in FIFO order. Memory
// is bounded: capacity is fixed at construction and pushes past it fail
// instead of growing the queue.
//
//   - Queue[T]: typed work items with a processing function
//   - FuncQueue: deferred callbacks, invoked in order
//   - Ring[T]: the fixed-capacity backing store
//
// # Quick Start
//
//	q := workq.NewBuffered(64, func(ev *Event) {
//	    handle(*ev)
//	})
//	go q.Run()
//
//	if err := q.Push(ev); err != nil {
//	    // ErrExhausted: full, retry or drop
//	    // ErrStopped: shutting down, stop producing
//	}
//
//	q.RequestStop() // Run returns after queued items are processed
//
// Callbacks:
//
//	q := workq.NewFuncQueueBuffered(32)
//	go q.Run()
//	q.MustPush(func() { log.Flush() })
//
// # Push Results
//
//	nil            → enqueued; the worker will process it before Run returns
//	ErrExhausted   → queue full (alias of iox.ErrWouldBlock); nothing enqueued
//	ErrStopped     → RequestStop was called; nothing enqueued
//
// [CodeOf] maps these to OK, RESOURCE_EXHAUSTED, and FAILED_PRECONDITION.
// MustPush treats any of the failures as a programming error: it logs and
// panics.
//
// # Worker Lifecycle
//
//	Idle ──Run──→ Waiting ──signal──→ Draining ──empty──→ Waiting
//	                                      │
//	                                      └──empty, stop requested──→ Stopped
//
// The worker parks only in Waiting. While Draining it takes the lock once per
// item, pops the oldest item, and invokes the processing function after
// releasing the lock, so slow handlers never block producers and a handler
// may push follow-up work.
//
// # Shutdown
//
// RequestStop is cooperative. Every push that returned nil before the worker
// observes the stop is processed before Run returns; a push racing with
// RequestStop either succeeds (and is processed) or fails with ErrStopped.
// A Queue cannot be restarted.
//
// # Collaborators
//
// A Queue is composed of four replaceable parts, configured with [Builder]:
//
//	Backing[T]  fixed-capacity FIFO (Ring, or Ring over static storage)
//	Locker      SpinLock by default; *sync.Mutex also fits
//	Notifier    Signal, a binary semaphore
//	Gauge       watermark sinks: Counter or Prometheus gauges
//
// Example:
//
//	wm := workq.NewWatermarkGauges(workq.WatermarkOpts{Namespace: "app", Name: "deferred"})
//	prometheus.MustRegister(wm)
//
//	q := workq.NewBuilder(256).
//	    Gauges(wm.MaxUsed, wm.MinRemaining).
//	    Logger(logger).
//	    BuildFunc()
//
// # Watermarks
//
// After each successful push the queue records the highest occupancy
// (MaxUsed) and the lowest free capacity (MinRemaining = Cap - Len). Both are
// monotonic for the life of the queue and are useful for sizing capacity.
//
// # Race Detection
//
// SpinLock synchronizes through atomix operations, which the race detector
// does not observe. Under -race the default Locker is a sync.Mutex; see
// [RaceEnabled].
package workq
