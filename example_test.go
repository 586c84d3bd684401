// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package workq_test

import (
	"fmt"

	"code.hybscloud.com/workq"
)

// ExampleNewBuffered demonstrates a typed queue drained after a stop.
func ExampleNewBuffered() {
	type Event struct {
		ID   int
		Name string
	}

	q := workq.NewBuffered(4, func(ev *Event) {
		fmt.Printf("event %d: %s\n", ev.ID, ev.Name)
	})

	q.MustPush(Event{1, "rx"})
	q.MustPush(Event{2, "tx"})
	q.MustPush(Event{3, "timeout"})

	// Run returns once the queue is drained after a stop.
	q.RequestStop()
	q.Run()

	// Output:
	// event 1: rx
	// event 2: tx
	// event 3: timeout
}

// ExampleNewFuncQueueBuffered demonstrates deferred callbacks.
func ExampleNewFuncQueueBuffered() {
	q := workq.NewFuncQueueBuffered(8)

	for i := 1; i <= 3; i++ {
		q.MustPush(func() { fmt.Println("callback", i) })
	}

	q.RequestStop()
	q.Run()

	// Output:
	// callback 1
	// callback 2
	// callback 3
}

// ExampleQueue_Push demonstrates the push results.
func ExampleQueue_Push() {
	q := workq.NewBuffered(2, func(s *string) {})

	for _, s := range []string{"a", "b", "c"} {
		err := q.Push(s)
		fmt.Println(s, workq.CodeOf(err))
	}

	q.RequestStop()
	fmt.Println("d", workq.CodeOf(q.Push("d")))

	// Output:
	// a OK
	// b OK
	// c RESOURCE_EXHAUSTED
	// d FAILED_PRECONDITION
}

// ExampleNewRingOver demonstrates a queue over statically allocated storage.
func ExampleNewRingOver() {
	var storage [16]uint32
	q := workq.New(workq.NewRingOver(storage[:]), func(irq *uint32) {
		fmt.Printf("irq %d serviced\n", *irq)
	})

	fmt.Println("capacity:", q.Cap())
	q.MustPush(7)
	q.MustPush(11)
	q.RequestStop()
	q.Run()

	// Output:
	// capacity: 16
	// irq 7 serviced
	// irq 11 serviced
}

// Example_watermarks demonstrates reading watermarks for capacity tuning.
func Example_watermarks() {
	var maxUsed, minRemaining workq.Counter
	q := workq.Build(workq.NewBuilder(10).Gauges(&maxUsed, &minRemaining), func(*int) {})

	for i := range 6 {
		q.MustPush(i)
	}
	q.RequestStop()
	q.Run()

	fmt.Println("max used:", q.MaxUsed(), maxUsed.Value())
	fmt.Println("min remaining:", q.MinRemaining(), minRemaining.Value())

	// Output:
	// max used: 6 6
	// min remaining: 4 4
}
