// Package events provides the event emitter canter publishes document events
// on, and the throttle used to rate-limit noisy browser listeners.
package events

import (
	"log/slog"
	"sync"

	"github.com/BrandonKowalski/canter/pkg/canter/constants"
	"github.com/BrandonKowalski/canter/pkg/canter/internal"
)

// Handler receives the arguments passed to Emit.
type Handler func(args ...any)

// Emitter is a named-event publisher. Registering more listeners on one event
// than the configured maximum is allowed but logged, since it usually means
// a listener is being added on every render without being removed.
type Emitter struct {
	mu           sync.RWMutex
	handlers     map[string][]*entry
	maxListeners int
	warned       map[string]bool
	logger       *slog.Logger
}

type entry struct {
	fn Handler
}

// NewEmitter creates an emitter with the default listener limit.
func NewEmitter() *Emitter {
	return &Emitter{
		handlers:     make(map[string][]*entry),
		maxListeners: constants.DefaultMaxListeners,
		warned:       make(map[string]bool),
		logger:       internal.GetInternalLogger(),
	}
}

// SetMaxListeners sets the per-event listener count above which a warning is
// logged. Zero disables the warning.
func (e *Emitter) SetMaxListeners(n int) {
	if n < 0 {
		n = 0
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	e.maxListeners = n
}

// MaxListeners returns the current listener limit.
func (e *Emitter) MaxListeners() int {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.maxListeners
}

// On registers fn for event and returns a function that removes it.
func (e *Emitter) On(event string, fn Handler) (off func()) {
	if e == nil || fn == nil {
		return func() {}
	}
	ent := &entry{fn: fn}

	e.mu.Lock()
	e.handlers[event] = append(e.handlers[event], ent)
	count := len(e.handlers[event])
	if e.maxListeners > 0 && count > e.maxListeners && !e.warned[event] {
		e.warned[event] = true
		e.logger.Warn("Possible listener leak", "event", event, "listeners", count, "max", e.maxListeners)
	}
	e.mu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() { e.off(event, ent) })
	}
}

func (e *Emitter) off(event string, ent *entry) {
	e.mu.Lock()
	defer e.mu.Unlock()
	list := e.handlers[event]
	for i, v := range list {
		if v == ent {
			e.handlers[event] = append(list[:i:i], list[i+1:]...)
			break
		}
	}
	if len(e.handlers[event]) == 0 {
		delete(e.handlers, event)
	}
}

// Emit calls every handler registered for event, in registration order.
// Handlers run without the emitter lock held and may register or remove
// listeners.
func (e *Emitter) Emit(event string, args ...any) {
	if e == nil {
		return
	}
	e.mu.RLock()
	list := e.handlers[event]
	snapshot := make([]*entry, len(list))
	copy(snapshot, list)
	e.mu.RUnlock()

	for _, ent := range snapshot {
		ent.fn(args...)
	}
}

// ListenerCount returns the number of handlers registered for event.
func (e *Emitter) ListenerCount(event string) int {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return len(e.handlers[event])
}
