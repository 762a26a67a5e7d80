package fake_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/slok/checkmycrypto/internal/scheduler/fake"
)

var t0 = time.Date(2026, 1, 30, 10, 0, 0, 0, time.UTC)

func TestSchedulerAfter(t *testing.T) {
	tests := map[string]struct {
		delay    time.Duration
		advances []time.Duration
		cancel   bool
		expFired int
	}{
		"Not reaching the delay should not fire.": {
			delay:    2 * time.Second,
			advances: []time.Duration{1999 * time.Millisecond},
			expFired: 0,
		},
		"Reaching the delay should fire once.": {
			delay:    2 * time.Second,
			advances: []time.Duration{2 * time.Second},
			expFired: 1,
		},
		"Reaching the delay in multiple steps should fire once.": {
			delay:    2 * time.Second,
			advances: []time.Duration{time.Second, time.Second, 10 * time.Second},
			expFired: 1,
		},
		"Cancelled timer should not fire.": {
			delay:    2 * time.Second,
			advances: []time.Duration{5 * time.Second},
			cancel:   true,
			expFired: 0,
		},
		"Non positive delay should never fire.": {
			delay:    0,
			advances: []time.Duration{5 * time.Second},
			expFired: 0,
		},
	}

	for name, test := range tests {
		t.Run(name, func(t *testing.T) {
			s := fake.NewScheduler(t0)

			fired := 0
			h := s.After(test.delay, func() { fired++ })
			if test.cancel {
				h.Cancel()
			}

			for _, d := range test.advances {
				s.Advance(d)
			}

			assert.Equal(t, test.expFired, fired)
		})
	}
}

func TestSchedulerEvery(t *testing.T) {
	s := fake.NewScheduler(t0)

	ticks := 0
	h := s.Every(2500*time.Millisecond, func() { ticks++ })

	s.Advance(2499 * time.Millisecond)
	assert.Equal(t, 0, ticks)

	s.Advance(1 * time.Millisecond)
	assert.Equal(t, 1, ticks)

	s.Advance(10 * time.Second)
	assert.Equal(t, 5, ticks)

	h.Cancel()
	s.Advance(10 * time.Second)
	assert.Equal(t, 5, ticks)
	assert.Equal(t, 0, s.Pending())
}

func TestSchedulerCancelIsIdempotent(t *testing.T) {
	s := fake.NewScheduler(t0)

	fired := 0
	h := s.After(time.Second, func() { fired++ })
	s.Advance(time.Second)

	// Cancel after firing and twice should be a no-op.
	h.Cancel()
	h.Cancel()

	assert.Equal(t, 1, fired)
	assert.Equal(t, 0, s.Pending())
}

func TestSchedulerOrdering(t *testing.T) {
	s := fake.NewScheduler(t0)

	var got []string
	s.After(3*time.Second, func() { got = append(got, "c") })
	s.After(1*time.Second, func() { got = append(got, "a") })
	s.After(3*time.Second, func() { got = append(got, "d") })
	s.Every(2*time.Second, func() { got = append(got, "tick") })

	s.Advance(4 * time.Second)

	assert.Equal(t, []string{"a", "tick", "c", "d", "tick"}, got)
	assert.Equal(t, t0.Add(4*time.Second), s.Now())
	assert.Equal(t, 4*time.Second, s.Elapsed())
}

func TestSchedulerCallbackCanSchedule(t *testing.T) {
	s := fake.NewScheduler(t0)

	var at []time.Duration
	s.After(time.Second, func() {
		at = append(at, s.Elapsed())
		s.After(time.Second, func() { at = append(at, s.Elapsed()) })
	})

	s.Advance(5 * time.Second)

	assert.Equal(t, []time.Duration{time.Second, 2 * time.Second}, at)
}
