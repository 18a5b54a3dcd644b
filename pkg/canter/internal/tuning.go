package internal

import (
	"time"

	"github.com/BrandonKowalski/canter/pkg/canter/constants"
	"go.uber.org/atomic"
)

var throttleInterval = atomic.NewDuration(constants.DefaultThrottleInterval)

// ThrottleInterval returns the process-wide rate limit applied to scroll and
// resize listeners.
func ThrottleInterval() time.Duration {
	return throttleInterval.Load()
}

// SetThrottleInterval changes the process-wide throttle interval. Non-positive
// values restore the default. Listeners bound afterwards pick up the new value.
func SetThrottleInterval(d time.Duration) {
	if d <= 0 {
		d = constants.DefaultThrottleInterval
	}
	throttleInterval.Store(d)
}
