// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package workq

import (
	"errors"

	"code.hybscloud.com/iox"
)

// ErrExhausted indicates the backing queue was full when Push was called.
// The item was not enqueued.
//
// ErrExhausted is a control flow signal, not a failure. The caller may retry
// later (with backoff or yield) or drop the item.
//
// This is an alias for [iox.ErrWouldBlock] for ecosystem consistency, so a
// full work queue and a full lfq queue report the same condition.
//
// Example:
//
//	backoff := iox.Backoff{}
//	for {
//	    err := q.Push(item)
//	    if err == nil {
//	        break
//	    }
//	    if workq.IsExhausted(err) {
//	        backoff.Wait()
//	        continue
//	    }
//	    return err // ErrStopped: stop producing
//	}
var ErrExhausted = iox.ErrWouldBlock

// ErrStopped indicates RequestStop has been called. The item was not
// enqueued and no later push will succeed.
var ErrStopped = errors.New("workq: stop requested")

// ErrNilFunc is returned by [FuncQueue.Push] for a nil callback.
var ErrNilFunc = errors.New("workq: nil func")

// IsExhausted reports whether err indicates the queue was full.
// Delegates to [iox.IsWouldBlock] for wrapped error support.
func IsExhausted(err error) bool {
	return iox.IsWouldBlock(err)
}

// IsStopped reports whether err indicates a stop has been requested.
func IsStopped(err error) bool {
	return errors.Is(err, ErrStopped)
}

// IsSemantic reports whether err is a control flow signal (not a failure).
// Delegates to [iox.IsSemantic].
func IsSemantic(err error) bool {
	return iox.IsSemantic(err)
}

// Code classifies the result of a push operation.
type Code uint8

const (
	CodeOK                 Code = iota // Item enqueued
	CodeFailedPrecondition             // Stop requested
	CodeResourceExhausted              // Queue full
	CodeInvalidArgument                // Nil callback
	CodeUnknown                        // Not produced by this package
)

// CodeOf maps an error returned by a push operation to its Code.
func CodeOf(err error) Code {
	switch {
	case err == nil:
		return CodeOK
	case errors.Is(err, ErrStopped):
		return CodeFailedPrecondition
	case IsExhausted(err):
		return CodeResourceExhausted
	case errors.Is(err, ErrNilFunc):
		return CodeInvalidArgument
	default:
		return CodeUnknown
	}
}

// String returns the canonical status name.
func (c Code) String() string {
	switch c {
	case CodeOK:
		return "OK"
	case CodeFailedPrecondition:
		return "FAILED_PRECONDITION"
	case CodeResourceExhausted:
		return "RESOURCE_EXHAUSTED"
	case CodeInvalidArgument:
		return "INVALID_ARGUMENT"
	default:
		return "UNKNOWN"
	}
}
