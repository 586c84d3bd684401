// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

//go:build race

package workq

import "sync"

// RaceEnabled is true when the race detector is active.
// Used by tests to skip SpinLock stress tests, whose atomix-based
// synchronization is not visible to the detector.
const RaceEnabled = true

// defaultLocker returns a sync.Mutex so the detector can see the
// happens-before edges that guard the backing queue.
func defaultLocker() Locker {
	return &sync.Mutex{}
}
