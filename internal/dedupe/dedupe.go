// Package dedupe implements the signal deduplication cooldown window: a
// keyed cache of (symbol, timeframe, kind) to the wall time it last fired,
// guarded by a mutex.
package dedupe

import (
	"sync"
	"time"

	"github.com/chanwatch/core/internal/market"
	"github.com/chanwatch/core/internal/signal"
)

// DefaultCooldown is the default suppression window.
const DefaultCooldown = 5 * time.Minute

type key struct {
	symbol    string
	timeframe market.Timeframe
	kind      signal.Kind
}

// Deduper enforces a per-(symbol, timeframe, kind) cooldown. Its lifetime is
// the process; entries are never evicted, since the key space is bounded by
// the cardinality of symbols × timeframes × kinds actually seen.
type Deduper struct {
	mu       sync.Mutex
	cooldown time.Duration
	lastEmit map[key]time.Time

	// OnSuppressed, if set, is invoked (outside the lock) whenever a signal
	// is dropped for still being within its cooldown window.
	OnSuppressed func(symbol string, tf market.Timeframe, kind signal.Kind)
}

// New creates a Deduper with the given cooldown window. A non-positive
// cooldown falls back to DefaultCooldown.
func New(cooldown time.Duration) *Deduper {
	if cooldown <= 0 {
		cooldown = DefaultCooldown
	}
	return &Deduper{
		cooldown: cooldown,
		lastEmit: make(map[key]time.Time),
	}
}

// ShouldEmit reports whether a signal of this (symbol, timeframe, kind) may
// fire at now, and if so records now as its last emission time. Checking and
// recording are atomic under the same lock so concurrent callers for the
// same key cannot both observe "should emit".
func (d *Deduper) ShouldEmit(symbol string, tf market.Timeframe, kind signal.Kind, now time.Time) bool {
	k := key{symbol, tf, kind}

	d.mu.Lock()
	last, exists := d.lastEmit[k]
	allowed := !exists || now.Sub(last) >= d.cooldown
	if allowed {
		d.lastEmit[k] = now
	}
	d.mu.Unlock()

	if !allowed && d.OnSuppressed != nil {
		d.OnSuppressed(symbol, tf, kind)
	}
	return allowed
}

// Filter applies ShouldEmit to each signal in order, returning a new slice of
// only the ones that clear the cooldown (and recording their emission).
func (d *Deduper) Filter(signals []signal.Signal, now time.Time) []signal.Signal {
	out := make([]signal.Signal, 0, len(signals))
	for _, s := range signals {
		if d.ShouldEmit(s.Symbol, s.Timeframe, s.Kind, now) {
			out = append(out, s)
		}
	}
	return out
}
