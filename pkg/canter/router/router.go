package router

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"sync"

	"github.com/BrandonKowalski/canter/pkg/canter"
)

// ErrNotFound is returned by Render when no view is registered for a path
// and no fallback view is set.
var ErrNotFound = errors.New("router: no view registered")

// Request is what a view receives when it is rendered.
type Request struct {
	FullPath string               // Path, query and fragment as navigated to
	Path     string               // Path component only, used for lookup
	Query    url.Values           // Parsed query string
	Fragment string               // Fragment without the leading "#"
	Initial  bool                 // First render after page load
	Context  canter.RenderContext // Baseline context after the App's modifier
}

// ViewFunc renders one view and returns its props.
// Set canter.TitleKey in the props to change the document title.
type ViewFunc func(ctx context.Context, req Request) (canter.Props, error)

// Router maps exact paths to views. It implements canter.Renderer.
// Paths are compared literally after stripping query and fragment; there are
// no patterns or parameters.
type Router struct {
	mu       sync.RWMutex
	views    map[string]ViewFunc
	notFound ViewFunc
}

var _ canter.Renderer = (*Router)(nil)

// New creates a new Router.
func New() *Router {
	return &Router{
		views: make(map[string]ViewFunc),
	}
}

// Register adds a view for path.
// The view function will be called when navigating to this path.
func (r *Router) Register(path string, fn ViewFunc) *Router {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.views[path] = fn
	return r
}

// NotFound sets the view rendered for unregistered paths.
func (r *Router) NotFound(fn ViewFunc) *Router {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.notFound = fn
	return r
}

// Render looks up the view for fullPath and runs it with a context built by
// modify from the router's baseline context.
func (r *Router) Render(ctx context.Context, fullPath string, initial bool, modify canter.ContextModifier) (canter.Props, error) {
	u, err := url.Parse(fullPath)
	if err != nil {
		return nil, fmt.Errorf("router: parse %q: %w", fullPath, err)
	}

	path := u.Path
	if path == "" {
		path = "/"
	}

	r.mu.RLock()
	fn, ok := r.views[path]
	if !ok {
		fn = r.notFound
	}
	r.mu.RUnlock()

	if fn == nil {
		return nil, fmt.Errorf("%w for %q", ErrNotFound, path)
	}

	base := canter.RenderContext{
		"path":    path,
		"initial": initial,
	}
	rc := base
	if modify != nil {
		rc = modify(base)
	}

	props, err := fn(ctx, Request{
		FullPath: fullPath,
		Path:     path,
		Query:    u.Query(),
		Fragment: u.Fragment,
		Initial:  initial,
		Context:  rc,
	})
	if err != nil {
		return nil, fmt.Errorf("router: view %q error: %w", path, err)
	}
	return props, nil
}

// Static returns a view that always renders props.
func Static(props canter.Props) ViewFunc {
	return func(context.Context, Request) (canter.Props, error) {
		return props, nil
	}
}
