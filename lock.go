// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package workq

import (
	"code.hybscloud.com/atomix"
	"code.hybscloud.com/spin"
)

// SpinLock is a non-sleeping mutual exclusion lock.
//
// Lock spins with [spin.Wait] backoff instead of parking the goroutine, so
// it can be taken where blocking in the scheduler is not acceptable. Critical
// sections must be short: a Queue holds it only for O(1) ring operations.
//
// The zero value is an unlocked SpinLock. A SpinLock must not be copied
// after first use.
type SpinLock struct {
	state atomix.Uint64 // 0 = unlocked, 1 = locked
}

// Lock acquires the lock, spinning until it is available.
func (l *SpinLock) Lock() {
	sw := spin.Wait{}
	for {
		if l.state.LoadRelaxed() == 0 && l.state.CompareAndSwapAcqRel(0, 1) {
			return
		}
		sw.Once()
	}
}

// TryLock acquires the lock if it is free and reports whether it did.
func (l *SpinLock) TryLock() bool {
	return l.state.LoadRelaxed() == 0 && l.state.CompareAndSwapAcqRel(0, 1)
}

// Unlock releases the lock.
// Panics if the lock is not held.
func (l *SpinLock) Unlock() {
	if l.state.LoadAcquire() == 0 {
		panic("workq: unlock of unlocked SpinLock")
	}
	l.state.StoreRelease(0)
}
