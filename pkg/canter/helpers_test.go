package canter_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/BrandonKowalski/canter/pkg/canter"
	"github.com/BrandonKowalski/canter/pkg/canter/browser"
	"github.com/stretchr/testify/require"
)

const testTimeout = 2 * time.Second

type renderReply struct {
	props canter.Props
	err   error
}

// renderCall is one invocation of fakeRenderer.Render.
type renderCall struct {
	path    string
	initial bool
	ctx     canter.RenderContext
	reply   chan renderReply
}

func (c *renderCall) resolve(props canter.Props) {
	c.reply <- renderReply{props: props}
}

func (c *renderCall) reject(err error) {
	c.reply <- renderReply{err: err}
}

// fakeRenderer answers immediately from titles unless gated, in which case
// every call blocks until the test resolves or rejects it.
type fakeRenderer struct {
	gated  bool
	titles map[string]string

	mu      sync.Mutex
	calls   []*renderCall
	started chan *renderCall
}

func newFakeRenderer(titles map[string]string) *fakeRenderer {
	return &fakeRenderer{
		titles:  titles,
		started: make(chan *renderCall, 64),
	}
}

func newGatedRenderer() *fakeRenderer {
	r := newFakeRenderer(nil)
	r.gated = true
	return r
}

func (f *fakeRenderer) Render(ctx context.Context, path string, initial bool, modify canter.ContextModifier) (canter.Props, error) {
	call := &renderCall{
		path:    path,
		initial: initial,
		ctx:     modify(canter.RenderContext{"baseline": true}),
		reply:   make(chan renderReply, 1),
	}

	f.mu.Lock()
	f.calls = append(f.calls, call)
	f.mu.Unlock()

	select {
	case f.started <- call:
	default:
	}

	if !f.gated {
		return canter.Props{canter.TitleKey: f.titles[path]}, nil
	}

	select {
	case r := <-call.reply:
		return r.props, r.err
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

func (f *fakeRenderer) paths() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]string, 0, len(f.calls))
	for _, c := range f.calls {
		out = append(out, c.path)
	}
	return out
}

// next returns the next render call, failing the test if none starts.
func (f *fakeRenderer) next(t *testing.T) *renderCall {
	t.Helper()
	select {
	case call := <-f.started:
		return call
	case <-time.After(testTimeout):
		t.Fatal("timed out waiting for a render call")
		return nil
	}
}

func wait(t *testing.T, nav *canter.Navigation) (canter.Props, error) {
	t.Helper()
	require.NotNil(t, nav)
	ctx, cancel := context.WithTimeout(context.Background(), testTimeout)
	defer cancel()
	select {
	case <-nav.Done():
	case <-ctx.Done():
		t.Fatalf("timed out waiting for navigation to %s", nav.Path)
	}
	return nav.Result()
}

// startApp creates an App and completes its initial render.
func startApp(t *testing.T, win *browser.Memory, r canter.Renderer, opts canter.Options) *canter.App {
	t.Helper()
	app, err := canter.New(win, r, opts)
	require.NoError(t, err)
	t.Cleanup(app.Close)

	nav := app.Initialize()
	if fr, ok := r.(*fakeRenderer); ok && fr.gated {
		fr.next(t).resolve(canter.Props{})
	}
	_, err = wait(t, nav)
	require.NoError(t, err)
	require.True(t, app.Bound())
	return app
}
