// Package router provides a ready-made canter.Renderer that maps exact paths
// to view functions.
//
// It is deliberately simple: paths are matched literally, with the query
// string and fragment handed to the view instead of taking part in the
// lookup. Applications that need patterns or parameters can implement
// canter.Renderer themselves.
//
// # Basic Usage
//
//	r := router.New()
//
//	r.Register("/", func(ctx context.Context, req router.Request) (canter.Props, error) {
//	    return canter.Props{"title": "Home"}, renderHome(req)
//	})
//
//	r.Register("/about", router.Static(canter.Props{"title": "About"}))
//
//	r.NotFound(func(ctx context.Context, req router.Request) (canter.Props, error) {
//	    return canter.Props{"title": "Not found"}, nil
//	})
//
//	app, err := canter.New(dom.New(), r, canter.Options{})
//	if err != nil {
//	    return err
//	}
//	app.Initialize()
//
// # Render Context
//
// Each view receives a context built from a baseline of {"path", "initial"}
// passed through the App's ContextModifier, so process-wide bootstrap values
// configured in canter.Options are visible to every view.
package router
