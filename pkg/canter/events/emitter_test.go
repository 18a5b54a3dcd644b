package events

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEmitter_OnEmit(t *testing.T) {
	e := NewEmitter()

	var got [][]any
	e.On("document:resize", func(args ...any) { got = append(got, args) })
	e.On("document:resize", func(args ...any) { got = append(got, []any{"second"}) })

	e.Emit("document:resize", 800, 600)
	e.Emit("document:scroll")

	require.Len(t, got, 2)
	assert.Equal(t, []any{800, 600}, got[0])
	assert.Equal(t, []any{"second"}, got[1])
}

func TestEmitter_Off(t *testing.T) {
	e := NewEmitter()
	calls := 0
	off := e.On("document:scroll", func(...any) { calls++ })
	assert.Equal(t, 1, e.ListenerCount("document:scroll"))

	off()
	off()
	e.Emit("document:scroll")

	assert.Zero(t, calls)
	assert.Zero(t, e.ListenerCount("document:scroll"))
}

func TestEmitter_HandlerMayUnsubscribeDuringEmit(t *testing.T) {
	e := NewEmitter()
	calls := 0
	var off func()
	off = e.On("document:scroll", func(...any) {
		calls++
		off()
	})
	e.On("document:scroll", func(...any) { calls++ })

	e.Emit("document:scroll")
	e.Emit("document:scroll")

	assert.Equal(t, 3, calls)
}

func TestEmitter_MaxListeners(t *testing.T) {
	e := NewEmitter()
	assert.Equal(t, 30, e.MaxListeners())

	e.SetMaxListeners(2)
	for i := 0; i < 5; i++ {
		e.On("document:scroll", func(...any) {})
	}
	// Exceeding the limit only warns
	assert.Equal(t, 5, e.ListenerCount("document:scroll"))

	e.SetMaxListeners(-1)
	assert.Zero(t, e.MaxListeners())
}

func TestEmitter_NilSafe(t *testing.T) {
	var e *Emitter
	assert.NotPanics(t, func() {
		e.On("x", func(...any) {})()
		e.Emit("x")
	})
}
