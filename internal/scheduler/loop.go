package scheduler

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/slok/checkmycrypto/internal/log"
)

// ErrLoopStopped is returned when work is sent to a loop that is not accepting it anymore.
var ErrLoopStopped = errors.New("loop stopped")

// LoopConfig is the configuration for the loop.
type LoopConfig struct {
	Logger log.Logger
}

func (c *LoopConfig) defaults() error {
	if c.Logger == nil {
		c.Logger = log.Noop
	}
	c.Logger = c.Logger.WithValues(log.Kv{"svc": "scheduler.Loop"})
	return nil
}

// Loop is a single goroutine event queue. Everything posted to the loop, timer
// callbacks included, runs on the goroutine that called Run, one at a time.
//
// State machines driven by a Loop don't need locks as long as all their
// operations are posted to the loop.
type Loop struct {
	mu      sync.Mutex
	queue   []func()
	wake    chan struct{}
	stopped chan struct{}
	closed  bool
	running atomic.Bool
	logger  log.Logger
}

// NewLoop returns a new loop, it will not run work until Run is called.
func NewLoop(cfg LoopConfig) (*Loop, error) {
	if err := cfg.defaults(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &Loop{
		wake:    make(chan struct{}, 1),
		stopped: make(chan struct{}),
		logger:  cfg.Logger,
	}, nil
}

// Run executes the posted work until the context is cancelled. Work posted
// before the loop stops still runs, new work is rejected once stopping.
func (l *Loop) Run(ctx context.Context) error {
	if !l.running.CompareAndSwap(false, true) {
		return fmt.Errorf("loop already running")
	}
	defer l.stop()

	l.logger.Debugf("Loop started")
	for {
		select {
		case <-ctx.Done():
			l.logger.Debugf("Loop stopped")
			return nil
		case <-l.wake:
		}

		for {
			fn := l.pop()
			if fn == nil {
				break
			}
			fn()

			// Don't keep running work once the loop has been asked to stop.
			if ctx.Err() != nil {
				break
			}
		}
	}
}

// Post enqueues fn to be run on the loop goroutine. Returns false if the loop
// has been stopped.
func (l *Loop) Post(fn func()) bool {
	l.mu.Lock()
	if l.closed {
		l.mu.Unlock()
		return false
	}
	l.queue = append(l.queue, fn)
	l.mu.Unlock()

	select {
	case l.wake <- struct{}{}:
	default:
	}

	return true
}

// Do runs fn on the loop goroutine and waits until it has been executed.
func (l *Loop) Do(ctx context.Context, fn func()) error {
	done := make(chan struct{})
	ok := l.Post(func() {
		fn()
		close(done)
	})
	if !ok {
		return ErrLoopStopped
	}

	select {
	case <-done:
		return nil
	case <-l.stopped:
		// The loop could have run it right before stopping.
		select {
		case <-done:
			return nil
		default:
		}
		return ErrLoopStopped
	case <-ctx.Done():
		return ctx.Err()
	}
}

// After satisfies Scheduler interface.
func (l *Loop) After(d time.Duration, fn func()) Handle {
	if d <= 0 {
		return NoopHandle
	}

	h := &loopHandle{}
	t := time.AfterFunc(d, func() {
		l.Post(func() {
			if h.cancelled.Load() {
				return
			}
			fn()
		})
	})
	h.stop = func() { t.Stop() }

	return h
}

// Every satisfies Scheduler interface.
func (l *Loop) Every(d time.Duration, fn func()) Handle {
	if d <= 0 {
		return NoopHandle
	}

	h := &loopHandle{}
	ticker := time.NewTicker(d)
	done := make(chan struct{})
	go func() {
		for {
			select {
			case <-done:
				return
			case <-l.stopped:
				ticker.Stop()
				return
			case <-ticker.C:
				l.Post(func() {
					if h.cancelled.Load() {
						return
					}
					fn()
				})
			}
		}
	}()
	h.stop = func() {
		ticker.Stop()
		close(done)
	}

	return h
}

func (l *Loop) pop() func() {
	l.mu.Lock()
	defer l.mu.Unlock()

	if len(l.queue) == 0 {
		return nil
	}
	fn := l.queue[0]
	l.queue[0] = nil
	l.queue = l.queue[1:]

	return fn
}

func (l *Loop) stop() {
	l.mu.Lock()
	if l.closed {
		l.mu.Unlock()
		return
	}
	l.closed = true
	pending := l.queue
	l.queue = nil
	l.mu.Unlock()

	// Drain the accepted work (e.g disposals posted right before stopping).
	for _, fn := range pending {
		fn()
	}
	if len(pending) > 0 {
		l.logger.Debugf("Drained %d pending tasks", len(pending))
	}

	close(l.stopped)
}

type loopHandle struct {
	cancelled atomic.Bool
	once      sync.Once
	stop      func()
}

func (h *loopHandle) Cancel() {
	h.once.Do(func() {
		h.cancelled.Store(true)
		h.stop()
	})
}
