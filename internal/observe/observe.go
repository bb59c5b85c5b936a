// Package observe provides synchronous change notification for preview state.
//
// Every reactive field in previewsync is held in a Value or guarded by a
// Notifier. Observers run in the same call as the mutation that triggered
// them, so anything derived from the new state is consistent before the next
// host event is processed.
//
// Key concepts:
//   - Notifier: ordered observer list with cancelable subscriptions
//   - Value: a single field that notifies its observers on every Set
package observe

import "sync"

// Notifier fans a change signal out to its observers in subscription order.
// The zero value is ready to use.
type Notifier struct {
	mu        sync.Mutex
	next      int
	observers []observer
}

type observer struct {
	id int
	fn func()
}

// Subscribe registers fn and returns a function that removes it again.
// Cancel is idempotent.
func (n *Notifier) Subscribe(fn func()) (cancel func()) {
	n.mu.Lock()
	defer n.mu.Unlock()

	n.next++
	id := n.next
	n.observers = append(n.observers, observer{id: id, fn: fn})

	return func() {
		n.mu.Lock()
		defer n.mu.Unlock()
		for i, o := range n.observers {
			if o.id == id {
				n.observers = append(n.observers[:i:i], n.observers[i+1:]...)
				return
			}
		}
	}
}

// Notify calls every observer synchronously. Observers may subscribe or
// cancel during notification; such changes apply from the next Notify.
func (n *Notifier) Notify() {
	n.mu.Lock()
	snapshot := make([]observer, len(n.observers))
	copy(snapshot, n.observers)
	n.mu.Unlock()

	for _, o := range snapshot {
		o.fn()
	}
}

// Len returns the number of active observers.
func (n *Notifier) Len() int {
	n.mu.Lock()
	defer n.mu.Unlock()
	return len(n.observers)
}

// Value holds a single reactive field.
type Value[T any] struct {
	mu       sync.RWMutex
	v        T
	notifier Notifier
}

// NewValue creates a Value holding initial.
func NewValue[T any](initial T) *Value[T] {
	return &Value[T]{v: initial}
}

// Get returns the current value without side effects.
func (v *Value[T]) Get() T {
	v.mu.RLock()
	defer v.mu.RUnlock()
	return v.v
}

// Set stores next and notifies observers before returning.
func (v *Value[T]) Set(next T) {
	v.mu.Lock()
	v.v = next
	v.mu.Unlock()

	v.notifier.Notify()
}

// Subscribe registers fn to run after every Set.
func (v *Value[T]) Subscribe(fn func()) (cancel func()) {
	return v.notifier.Subscribe(fn)
}
