package canter

import (
	"errors"
	"fmt"
)

// Sentinel errors for common conditions.
var (
	// ErrAlreadyInitialized is returned when Initialize is called more than once.
	ErrAlreadyInitialized = errors.New("canter: app already initialized")

	// ErrClosed indicates the app was closed before or during a navigation.
	ErrClosed = errors.New("canter: app closed")
)

// RenderError wraps a failure reported by the Renderer for one path.
// canter never retries or recovers from these; the view for Path was not
// rendered and no title or scroll side effects were applied.
type RenderError struct {
	Path string // Full path that failed to render
	Err  error  // Error returned by the Renderer
}

func (e *RenderError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("canter: render %s: %v", e.Path, e.Err)
	}
	return fmt.Sprintf("canter: render %s", e.Path)
}

func (e *RenderError) Unwrap() error {
	return e.Err
}

// NewRenderError creates a new render error.
func NewRenderError(path string, err error) *RenderError {
	return &RenderError{Path: path, Err: err}
}

// IsRenderError checks if an error is a render error.
func IsRenderError(err error) bool {
	var renderErr *RenderError
	return errors.As(err, &renderErr)
}
