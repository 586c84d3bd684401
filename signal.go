// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package workq

// Signal is a binary semaphore implementing [Notifier].
//
// Any number of Release calls made before the next Acquire collapse into a
// single wake-up. Release never blocks and may be called from any goroutine.
type Signal struct {
	ch chan struct{}
}

// NewSignal creates an unsignaled Signal.
func NewSignal() *Signal {
	return &Signal{ch: make(chan struct{}, 1)}
}

// Release signals s. A no-op if s is already signaled.
func (s *Signal) Release() {
	select {
	case s.ch <- struct{}{}:
	default:
	}
}

// Acquire blocks until s is signaled, then consumes the signal.
func (s *Signal) Acquire() {
	<-s.ch
}

// TryAcquire consumes a pending signal without blocking and reports
// whether one was pending.
func (s *Signal) TryAcquire() bool {
	select {
	case <-s.ch:
		return true
	default:
		return false
	}
}
