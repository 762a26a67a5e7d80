// Package widget has the pieces shared by the demo widget state machines.
package widget

import (
	"crypto/rand"
	"time"

	"github.com/oklog/ulid/v2"
)

// NewID returns a new widget instance ID.
func NewID() string {
	return ulid.MustNew(ulid.Timestamp(time.Now()), rand.Reader).String()
}

// Notifier fans out state changes to subscribers in subscription order.
//
// It's not safe for concurrent use, it belongs to a single widget owner.
type Notifier[T any] struct {
	subs []*subscription[T]
}

type subscription[T any] struct {
	fn     func(T)
	active bool
}

// Subscribe registers fn and returns the function to unsubscribe it, calling
// it more than once is a no-op.
func (n *Notifier[T]) Subscribe(fn func(T)) (unsubscribe func()) {
	sub := &subscription[T]{fn: fn, active: true}
	n.subs = append(n.subs, sub)

	return func() {
		if !sub.active {
			return
		}
		sub.active = false
		for i, s := range n.subs {
			if s == sub {
				n.subs = append(n.subs[:i], n.subs[i+1:]...)
				return
			}
		}
	}
}

// Notify calls every subscriber with v. Subscribers removed while notifying
// are not called.
func (n *Notifier[T]) Notify(v T) {
	subs := make([]*subscription[T], len(n.subs))
	copy(subs, n.subs)

	for _, s := range subs {
		if s.active {
			s.fn(v)
		}
	}
}

// Clear removes all the subscribers.
func (n *Notifier[T]) Clear() {
	for _, s := range n.subs {
		s.active = false
	}
	n.subs = nil
}

// Len returns the number of subscribers.
func (n *Notifier[T]) Len() int { return len(n.subs) }
