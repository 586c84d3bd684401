// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package workq

// NewBuffered creates a Queue that owns a Ring of the given capacity.
// Panics if capacity < 1 or fn is nil.
func NewBuffered[T any](capacity int, fn func(item *T)) *Queue[T] {
	return newQueue(NewRing[T](capacity), fn, Options{})
}

// NewFuncQueueBuffered creates a FuncQueue that owns a Ring of the given
// capacity.
// Panics if capacity < 1.
func NewFuncQueueBuffered(capacity int) *FuncQueue {
	return newFuncQueue(NewRing[func()](capacity), Options{})
}
