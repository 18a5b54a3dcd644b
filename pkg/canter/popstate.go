package canter

// HandlePopState reacts to back/forward navigation. The scroll offset of the
// page being left is recorded under the previous current path, the new path
// becomes current immediately, and once its render completes the cached
// offset for it (if any) is restored before the title is applied.
func (a *App) HandlePopState() *Navigation {
	a.mu.Lock()
	path := a.paths.FullPath()
	if a.closed {
		a.mu.Unlock()
		return failedNavigation(TriggerPopState, path, ErrClosed)
	}

	a.scroll.Record(a.state.CurrentPath, a.win.ScrollY())
	nav := a.beginLocked(TriggerPopState, path)
	a.mu.Unlock()

	a.run(nav, a.modify, func(props Props) {
		if offset, ok := a.scroll.Get(path); ok {
			a.win.SetScrollTop(offset)
		}
		a.applyTitle(props)
	}, nil)
	return nav
}
