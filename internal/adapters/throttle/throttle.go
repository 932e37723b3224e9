// Package throttle rate-limits update checks for the lifetime of the process.
package throttle

import (
	"sync"
	"time"

	"github.com/jonboulle/clockwork"
)

// DefaultInterval is the minimum time between two update checks.
const DefaultInterval = time.Hour

// Throttle implements ports.Throttle.
// The last check time lives in memory only and resets with the process.
type Throttle struct {
	mu          sync.Mutex
	clock       clockwork.Clock
	interval    time.Duration
	lastChecked time.Time
	checked     bool

	// Record replaced by the most recent TryAcquire.
	prevChecked time.Time
	hadPrev     bool
}

// New creates a Throttle with the given clock and interval.
func New(clock clockwork.Clock, interval time.Duration) *Throttle {
	return &Throttle{
		clock:    clock,
		interval: interval,
	}
}

// ShouldCheck reports whether enough time has passed since the last check.
func (t *Throttle) ShouldCheck() bool {
	t.mu.Lock()
	defer t.mu.Unlock()

	return t.due()
}

// TryAcquire records now as the last check if one is due.
func (t *Throttle) TryAcquire(now time.Time) bool {
	t.mu.Lock()
	defer t.mu.Unlock()

	if !t.due() {
		return false
	}
	t.prevChecked, t.hadPrev = t.lastChecked, t.checked
	t.lastChecked, t.checked = now, true
	return true
}

// Abandon rolls back the TryAcquire made at acquiredAt.
func (t *Throttle) Abandon(acquiredAt time.Time) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if !t.checked || !t.lastChecked.Equal(acquiredAt) {
		return
	}
	t.lastChecked, t.checked = t.prevChecked, t.hadPrev
}

func (t *Throttle) due() bool {
	if !t.checked {
		return true
	}
	return t.clock.Since(t.lastChecked) >= t.interval
}

// RecordChecked stores now as the time of the last check.
func (t *Throttle) RecordChecked(now time.Time) {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.lastChecked = now
	t.checked = true
}
