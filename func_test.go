// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package workq_test

import (
	"errors"
	"slices"
	"testing"

	"code.hybscloud.com/workq"
)

// TestFuncQueueOrder tests that callbacks run in push order on the worker.
func TestFuncQueueOrder(t *testing.T) {
	q := workq.NewFuncQueueBuffered(8)

	var got []int
	for i := range 5 {
		if err := q.Push(func() { got = append(got, i) }); err != nil {
			t.Fatalf("Push(%d): %v", i, err)
		}
	}
	q.RequestStop()
	q.Run()

	if !slices.Equal(got, []int{0, 1, 2, 3, 4}) {
		t.Fatalf("order: got %v, want [0 1 2 3 4]", got)
	}
}

// TestFuncQueueNil tests that nil callbacks are rejected without being
// enqueued.
func TestFuncQueueNil(t *testing.T) {
	q := workq.NewFuncQueueBuffered(2)

	if err := q.Push(nil); !errors.Is(err, workq.ErrNilFunc) {
		t.Fatalf("Push(nil): got %v, want ErrNilFunc", err)
	}
	if q.Len() != 0 {
		t.Fatalf("Len: got %d, want 0", q.Len())
	}
	mustPanic(t, "MustPush(nil)", func() { q.MustPush(nil) })
}

// TestFuncQueueCapacity tests the capacity bound and stop rejection.
func TestFuncQueueCapacity(t *testing.T) {
	q := workq.NewFuncQueue(workq.NewRing[func()](1))
	calls := 0
	fn := func() { calls++ }

	if err := q.Push(fn); err != nil {
		t.Fatalf("Push: %v", err)
	}
	if err := q.Push(fn); !errors.Is(err, workq.ErrExhausted) {
		t.Fatalf("Push on full: got %v, want ErrExhausted", err)
	}
	mustPanic(t, "MustPush on full", func() { q.MustPush(fn) })

	q.RequestStop()
	q.Run()
	if calls != 1 {
		t.Fatalf("calls: got %d, want 1", calls)
	}
	if err := q.Push(fn); !errors.Is(err, workq.ErrStopped) {
		t.Fatalf("Push after stop: got %v, want ErrStopped", err)
	}
}

// TestFuncQueueNilPtr tests that MustPushPtr rejects a nil func like
// MustPush does, without enqueueing it or moving the watermarks.
func TestFuncQueueNilPtr(t *testing.T) {
	q := workq.NewFuncQueueBuffered(2)

	var fn func()
	mustPanic(t, "MustPushPtr(&nil)", func() { q.MustPushPtr(&fn) })
	mustPanic(t, "MustPushPtr(nil)", func() { q.MustPushPtr(nil) })
	if q.Len() != 0 {
		t.Fatalf("Len: got %d, want 0", q.Len())
	}
	if q.MaxUsed() != 0 || q.MinRemaining() != 2 {
		t.Fatalf("MaxUsed=%d MinRemaining=%d, want 0, 2", q.MaxUsed(), q.MinRemaining())
	}

	calls := 0
	fn = func() { calls++ }
	q.MustPushPtr(&fn)
	q.RequestStop()
	q.Run()
	if calls != 1 {
		t.Fatalf("calls: got %d, want 1", calls)
	}
}
