// Package fake has a manual clock scheduler, time only moves when Advance is called.
package fake

import (
	"sync"
	"time"

	"github.com/slok/checkmycrypto/internal/scheduler"
)

// Scheduler is a fake implementation of the scheduler.Scheduler interface.
//
// Callbacks run synchronously inside Advance, in due time order (creation
// order on ties).
type Scheduler struct {
	mu      sync.Mutex
	start   time.Time
	elapsed time.Duration
	timers  []*timer
	seq     int
}

// NewScheduler returns a new fake scheduler with its clock set at start.
func NewScheduler(start time.Time) *Scheduler {
	return &Scheduler{start: start}
}

type timer struct {
	s         *Scheduler
	seq       int
	due       time.Duration
	period    time.Duration
	fn        func()
	cancelled bool
}

func (t *timer) Cancel() {
	t.s.mu.Lock()
	defer t.s.mu.Unlock()

	if t.cancelled {
		return
	}
	t.cancelled = true
	t.s.remove(t)
}

// After satisfies scheduler.Scheduler interface.
func (s *Scheduler) After(d time.Duration, fn func()) scheduler.Handle {
	return s.add(d, 0, fn)
}

// Every satisfies scheduler.Scheduler interface.
func (s *Scheduler) Every(d time.Duration, fn func()) scheduler.Handle {
	return s.add(d, d, fn)
}

func (s *Scheduler) add(d, period time.Duration, fn func()) scheduler.Handle {
	if d <= 0 {
		return scheduler.NoopHandle
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.seq++
	t := &timer{
		s:      s,
		seq:    s.seq,
		due:    s.elapsed + d,
		period: period,
		fn:     fn,
	}
	s.timers = append(s.timers, t)

	return t
}

// Advance moves the clock forward d, firing every timer that becomes due.
func (s *Scheduler) Advance(d time.Duration) {
	s.mu.Lock()
	target := s.elapsed + d
	s.mu.Unlock()

	for {
		s.mu.Lock()
		t := s.next(target)
		if t == nil {
			s.elapsed = target
			s.mu.Unlock()
			return
		}

		s.elapsed = t.due
		if t.period > 0 {
			t.due += t.period
		} else {
			t.cancelled = true
			s.remove(t)
		}
		s.mu.Unlock()

		// Run outside the lock, callbacks can schedule or cancel timers.
		t.fn()
	}
}

// Now returns the current fake time.
func (s *Scheduler) Now() time.Time {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.start.Add(s.elapsed)
}

// Elapsed returns the time advanced since the scheduler was created.
func (s *Scheduler) Elapsed() time.Duration {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.elapsed
}

// Pending returns the number of timers that have not fired or been cancelled.
func (s *Scheduler) Pending() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.timers)
}

func (s *Scheduler) next(target time.Duration) *timer {
	var next *timer
	for _, t := range s.timers {
		if t.due > target {
			continue
		}
		if next == nil || t.due < next.due || (t.due == next.due && t.seq < next.seq) {
			next = t
		}
	}
	return next
}

func (s *Scheduler) remove(t *timer) {
	for i, tt := range s.timers {
		if tt == t {
			s.timers = append(s.timers[:i], s.timers[i+1:]...)
			return
		}
	}
}
