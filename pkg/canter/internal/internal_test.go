package internal

import (
	"log/slog"
	"testing"
	"time"

	"github.com/BrandonKowalski/canter/pkg/canter/constants"
	"github.com/stretchr/testify/assert"
)

func TestParseLevel(t *testing.T) {
	tests := map[string]slog.Level{
		"debug":   slog.LevelDebug,
		" INFO ":  slog.LevelInfo,
		"warn":    slog.LevelWarn,
		"Warning": slog.LevelWarn,
		"error":   slog.LevelError,
		"verbose": slog.LevelInfo,
		"":        slog.LevelInfo,
	}
	for raw, want := range tests {
		assert.Equal(t, want, ParseLevel(raw), raw)
	}
}

func TestSetThrottleInterval(t *testing.T) {
	t.Cleanup(func() { SetThrottleInterval(0) })

	SetThrottleInterval(250 * time.Millisecond)
	assert.Equal(t, 250*time.Millisecond, ThrottleInterval())

	SetThrottleInterval(-1)
	assert.Equal(t, constants.DefaultThrottleInterval, ThrottleInterval())
}

func TestNewLocalizer_InvalidLocaleFallsBack(t *testing.T) {
	loc, err := NewLocalizer("not a locale!!")
	assert.NoError(t, err)
	assert.NotNil(t, loc)
}
