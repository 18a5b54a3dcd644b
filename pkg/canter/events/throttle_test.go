package events

import (
	"sync/atomic"
	"testing"
	"time"

	"github.com/BrandonKowalski/canter/pkg/canter/internal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func withInterval(t *testing.T, d time.Duration) {
	t.Helper()
	internal.SetThrottleInterval(d)
	t.Cleanup(func() { internal.SetThrottleInterval(0) })
}

func TestThrottle_LeadingAndTrailing(t *testing.T) {
	withInterval(t, 50*time.Millisecond)

	var calls atomic.Int32
	th := Throttled(func() { calls.Add(1) })
	defer th.Stop()
	assert.Equal(t, 50*time.Millisecond, th.Interval())

	th.Call()
	assert.Equal(t, int32(1), calls.Load())

	th.Call()
	th.Call()
	th.Call()
	assert.Equal(t, int32(1), calls.Load())

	require.Eventually(t, func() bool { return calls.Load() == 2 }, time.Second, 5*time.Millisecond)

	time.Sleep(100 * time.Millisecond)
	assert.Equal(t, int32(2), calls.Load())
}

func TestThrottle_IntervalCapturedAtCreation(t *testing.T) {
	withInterval(t, time.Hour)
	th := Throttled(func() {})

	internal.SetThrottleInterval(time.Millisecond)
	assert.Equal(t, time.Hour, th.Interval())
	assert.Equal(t, time.Millisecond, Throttled(func() {}).Interval())
}

func TestThrottle_StopDropsTrailing(t *testing.T) {
	withInterval(t, 20*time.Millisecond)

	var calls atomic.Int32
	th := Throttled(func() { calls.Add(1) })

	th.Call()
	th.Call()
	th.Stop()
	th.Call()

	time.Sleep(60 * time.Millisecond)
	assert.Equal(t, int32(1), calls.Load())
}
