package canter

import (
	"context"
	"maps"
)

// RenderContext is the per-navigation context handed to the view pipeline.
type RenderContext map[string]any

// ContextModifier merges a baseline render context with per-navigation
// overrides and returns the context the view should render with.
type ContextModifier func(ctx RenderContext) RenderContext

// MergeContext returns a new context holding base overlaid with override.
// Neither argument is modified.
func MergeContext(base, override RenderContext) RenderContext {
	out := make(RenderContext, len(base)+len(override))
	maps.Copy(out, base)
	maps.Copy(out, override)
	return out
}

// BootstrapModifier returns the default ContextModifier: the bootstrap
// context with the renderer's baseline layered on top.
func BootstrapModifier(bootstrap RenderContext) ContextModifier {
	return func(ctx RenderContext) RenderContext {
		return MergeContext(bootstrap, ctx)
	}
}

// Props is the result of rendering a view. canter only reads the title;
// everything else belongs to the application.
type Props map[string]any

// TitleKey is the Props key holding the document title.
const TitleKey = "title"

// Title returns the rendered view's title, or "" when it has none.
func (p Props) Title() string {
	if p == nil {
		return ""
	}
	title, _ := p[TitleKey].(string)
	return title
}

// Renderer renders the view for a full path. It is the application's view
// pipeline; canter calls it once per navigation and never cancels a call
// because a newer navigation started. ctx is only cancelled when the App is
// closed.
//
// initial is true for the first render after page load, so the pipeline can
// hydrate instead of transitioning. modify must be applied to whatever
// baseline context the pipeline builds.
type Renderer interface {
	Render(ctx context.Context, path string, initial bool, modify ContextModifier) (Props, error)
}

// RendererFunc adapts a function to the Renderer interface.
type RendererFunc func(ctx context.Context, path string, initial bool, modify ContextModifier) (Props, error)

func (f RendererFunc) Render(ctx context.Context, path string, initial bool, modify ContextModifier) (Props, error) {
	return f(ctx, path, initial, modify)
}

// Emitter receives the document events canter publishes.
// events.Emitter satisfies it.
type Emitter interface {
	Emit(event string, args ...any)
	SetMaxListeners(n int)
}
