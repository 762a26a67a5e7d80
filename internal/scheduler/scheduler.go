// Package scheduler has the timer capabilities the demo widgets need from
// their host: one-shot timers, repeating timers and idempotent cancellation.
package scheduler

import (
	"context"
	"time"
)

// Scheduler schedules callbacks in the future.
//
// Implementations must run every callback serialized with the rest of the
// owner operations, and a callback must never run after its handle has been
// cancelled.
type Scheduler interface {
	// After runs fn once after d. A non positive d never fires.
	After(d time.Duration, fn func()) Handle
	// Every runs fn every d until cancelled. A non positive d never fires.
	Every(d time.Duration, fn func()) Handle
}

// Handle cancels a scheduled callback.
type Handle interface {
	// Cancel is idempotent, cancelling twice or after the callback fired is a no-op.
	Cancel()
}

// NoopHandle is a handle of a callback that will never fire.
const NoopHandle = noopHandle(0)

type noopHandle int

func (noopHandle) Cancel() {}

// Executor is a Scheduler that can also run arbitrary work serialized with
// its callbacks. scheduler.Loop implements it.
type Executor interface {
	Scheduler
	// Post enqueues fn, returns false if the executor is not accepting work.
	Post(fn func()) bool
	// Do runs fn and waits for it. Must not be called from the executor itself.
	Do(ctx context.Context, fn func()) error
}
