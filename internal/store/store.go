// Package store implements the bounded, newest-first Signal buffer with
// subscription/notification and the high-strength toast fan-out, following
// a bounded drop-oldest buffer discipline paired with a subscription-handle
// pattern for broadcasting.
package store

import (
	"sync"
	"time"

	"github.com/chanwatch/core/internal/signal"
)

// DefaultCapacity is the default signal buffer capacity.
const DefaultCapacity = 500

// ToastCapacity is the maximum number of concurrently visible toasts.
const ToastCapacity = 5

// ToastLifetime is how long a toast stays before auto-expiry.
const ToastLifetime = 8 * time.Second

// ToastStrengthThreshold is the minimum strength for a signal to enter the
// toast set.
const ToastStrengthThreshold = 50.0

type subscription struct {
	id       uint64
	callback func(signals []signal.Signal)
}

// Subscription is a handle returned by Subscribe; call Release to stop
// receiving notifications.
type Subscription struct {
	id     uint64
	store  *Store
}

// Release removes the subscription. Safe to call more than once.
func (s *Subscription) Release() {
	s.store.unsubscribe(s.id)
}

type toastEntry struct {
	signal signal.Signal
	timer  *time.Timer
}

// Store holds the newest-first bounded signal buffer plus the transient
// toast set. Safe for concurrent use.
type Store struct {
	mu            sync.Mutex
	capacity      int
	signals       []signal.Signal // newest-first
	subs          []subscription
	nextSubID     uint64

	toastMu  sync.Mutex
	toasts   []toastEntry // newest-first
}

// New creates a Store with the given capacity. A non-positive capacity
// falls back to DefaultCapacity.
func New(capacity int) *Store {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	return &Store{capacity: capacity}
}

// AddBatch inserts signals atomically at the head (preserving the
// caller-provided order), truncates to capacity, notifies subscribers
// exactly once, and feeds any strength>=50 signal into the toast set.
func (s *Store) AddBatch(signals []signal.Signal) {
	if len(signals) == 0 {
		return
	}

	s.mu.Lock()
	s.signals = append(append([]signal.Signal{}, signals...), s.signals...)
	if len(s.signals) > s.capacity {
		s.signals = s.signals[:s.capacity]
	}
	snapshot := append([]signal.Signal{}, s.signals...)
	callbacks := make([]func([]signal.Signal), len(s.subs))
	for i, sub := range s.subs {
		callbacks[i] = sub.callback
	}
	s.mu.Unlock()

	for _, cb := range callbacks {
		cb(snapshot)
	}

	for _, sig := range signals {
		if sig.Strength >= ToastStrengthThreshold {
			s.addToast(sig)
		}
	}
}

// Clear empties the buffer and notifies subscribers of the now-empty state.
func (s *Store) Clear() {
	s.mu.Lock()
	s.signals = nil
	callbacks := make([]func([]signal.Signal), len(s.subs))
	for i, sub := range s.subs {
		callbacks[i] = sub.callback
	}
	s.mu.Unlock()

	for _, cb := range callbacks {
		cb(nil)
	}
}

// Snapshot returns a copy of the current newest-first signal buffer.
func (s *Store) Snapshot() []signal.Signal {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]signal.Signal{}, s.signals...)
}

// Acknowledge marks the buffered signal with the given id as acknowledged
// and dismisses any toast still showing for it. Reports whether a signal
// with that id was found in the buffer.
func (s *Store) Acknowledge(id string) bool {
	s.mu.Lock()
	found := false
	for i := range s.signals {
		if s.signals[i].ID == id {
			s.signals[i].Acknowledged = true
			found = true
			break
		}
	}
	s.mu.Unlock()

	s.DismissToast(id)
	return found
}

// Subscribe registers callback to be invoked, in FIFO subscribe order, with
// the full newest-first snapshot on every AddBatch and Clear. The returned
// Subscription must be released to stop receiving notifications.
func (s *Store) Subscribe(callback func(signals []signal.Signal)) *Subscription {
	s.mu.Lock()
	id := s.nextSubID
	s.nextSubID++
	s.subs = append(s.subs, subscription{id: id, callback: callback})
	s.mu.Unlock()

	return &Subscription{id: id, store: s}
}

func (s *Store) unsubscribe(id uint64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, sub := range s.subs {
		if sub.id == id {
			s.subs = append(s.subs[:i], s.subs[i+1:]...)
			return
		}
	}
}

// Toasts returns a copy of the current newest-first toast set.
func (s *Store) Toasts() []signal.Signal {
	s.toastMu.Lock()
	defer s.toastMu.Unlock()
	out := make([]signal.Signal, len(s.toasts))
	for i, t := range s.toasts {
		out[i] = t.signal
	}
	return out
}

// DismissToast removes a toast by signal id immediately and cancels its
// expiry timer. Reports whether a toast with that id was found.
func (s *Store) DismissToast(id string) bool {
	s.toastMu.Lock()
	defer s.toastMu.Unlock()
	for i, t := range s.toasts {
		if t.signal.ID == id {
			t.timer.Stop()
			s.toasts = append(s.toasts[:i], s.toasts[i+1:]...)
			return true
		}
	}
	return false
}

func (s *Store) addToast(sig signal.Signal) {
	s.addToastWithLifetime(sig, ToastLifetime)
}

// addToastWithLifetime is addToast with an overridable expiry, so tests
// don't need to wait out the full 8s default.
func (s *Store) addToastWithLifetime(sig signal.Signal, lifetime time.Duration) {
	s.toastMu.Lock()
	defer s.toastMu.Unlock()

	entry := toastEntry{signal: sig}
	entry.timer = time.AfterFunc(lifetime, func() {
		s.expireToast(sig.ID)
	})

	s.toasts = append([]toastEntry{entry}, s.toasts...)
	if len(s.toasts) > ToastCapacity {
		dropped := s.toasts[ToastCapacity:]
		s.toasts = s.toasts[:ToastCapacity]
		for _, d := range dropped {
			d.timer.Stop()
		}
	}
}

func (s *Store) expireToast(id string) {
	s.toastMu.Lock()
	defer s.toastMu.Unlock()
	for i, t := range s.toasts {
		if t.signal.ID == id {
			s.toasts = append(s.toasts[:i], s.toasts[i+1:]...)
			return
		}
	}
}
