package events

import (
	"sync"
	"time"

	"github.com/BrandonKowalski/canter/pkg/canter/internal"
)

// Throttle rate-limits calls to a function. The first call in a quiet period
// runs immediately; calls arriving within the interval after it collapse into
// a single trailing call at the end of the interval.
//
// The interval is the process-wide value from canter.SetThrottleInterval,
// captured when the Throttle is created. It cannot be set per call site.
type Throttle struct {
	fn       func()
	interval time.Duration

	mu      sync.Mutex
	last    time.Time
	timer   *time.Timer
	stopped bool
}

// Throttled wraps fn in a Throttle using the global interval.
func Throttled(fn func()) *Throttle {
	return &Throttle{
		fn:       fn,
		interval: internal.ThrottleInterval(),
	}
}

// Interval returns the interval captured at construction.
func (t *Throttle) Interval() time.Duration {
	return t.interval
}

// Call requests an invocation of the wrapped function.
func (t *Throttle) Call() {
	t.mu.Lock()
	if t.stopped {
		t.mu.Unlock()
		return
	}

	now := time.Now()
	elapsed := now.Sub(t.last)
	if t.last.IsZero() || elapsed >= t.interval {
		t.last = now
		t.mu.Unlock()
		t.fn()
		return
	}

	if t.timer == nil {
		t.timer = time.AfterFunc(t.interval-elapsed, t.trailing)
	}
	t.mu.Unlock()
}

func (t *Throttle) trailing() {
	t.mu.Lock()
	t.timer = nil
	if t.stopped {
		t.mu.Unlock()
		return
	}
	t.last = time.Now()
	t.mu.Unlock()
	t.fn()
}

// Stop discards any pending trailing call and ignores future calls.
func (t *Throttle) Stop() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.stopped = true
	if t.timer != nil {
		t.timer.Stop()
		t.timer = nil
	}
}
