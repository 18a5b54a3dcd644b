package canter

import (
	"context"
	"sync"
)

// NavigationState is the App's view of where the user is.
type NavigationState struct {
	CurrentPath string // Full path of the view most recently navigated to
	InitialPath string // Full path the page was loaded at
}

// Trigger names what started a navigation.
type Trigger string

const (
	TriggerInitial  Trigger = "initial"
	TriggerClick    Trigger = "click"
	TriggerPopState Trigger = "popstate"
	TriggerRedirect Trigger = "redirect"
	TriggerRender   Trigger = "render"
)

// Navigation tracks one render call. Entry points return it immediately;
// the render itself completes on another goroutine.
type Navigation struct {
	Path    string
	Initial bool
	Trigger Trigger

	token uint64
	done  chan struct{}

	mu      sync.Mutex
	props   Props
	err     error
	applied bool
}

func newNavigation(trigger Trigger, path string, token uint64) *Navigation {
	return &Navigation{
		Path:    path,
		Initial: trigger == TriggerInitial,
		Trigger: trigger,
		token:   token,
		done:    make(chan struct{}),
	}
}

// failedNavigation returns a Navigation that has already settled with err.
func failedNavigation(trigger Trigger, path string, err error) *Navigation {
	n := newNavigation(trigger, path, 0)
	n.settle(nil, err, false)
	return n
}

func (n *Navigation) settle(props Props, err error, applied bool) {
	n.mu.Lock()
	n.props, n.err, n.applied = props, err, applied
	n.mu.Unlock()
	close(n.done)
}

// Done is closed once the render has settled and any side effects have run.
func (n *Navigation) Done() <-chan struct{} {
	return n.done
}

// Wait blocks until the navigation settles or ctx is done.
func (n *Navigation) Wait(ctx context.Context) (Props, error) {
	select {
	case <-n.done:
		return n.Result()
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

// Result returns the rendered props and error. Valid after Done is closed.
func (n *Navigation) Result() (Props, error) {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.props, n.err
}

// Applied reports whether the navigation's title and scroll side effects ran.
// A navigation that rendered successfully but was overtaken by a newer one
// settles with Applied false.
func (n *Navigation) Applied() bool {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.applied
}

// Superseded reports whether the navigation rendered without error but its
// side effects were discarded because a newer navigation had started.
func (n *Navigation) Superseded() bool {
	select {
	case <-n.done:
	default:
		return false
	}
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.err == nil && !n.applied
}
