package canter

import "github.com/BrandonKowalski/canter/pkg/canter/browser"

// PathResolver derives the full path (path, query and fragment) of the
// browsing context's current location.
type PathResolver struct {
	Location browser.Location
}

// FullPath concatenates the location's path, search and hash exactly as the
// browser exposes them.
func (r PathResolver) FullPath() string {
	if r.Location == nil {
		return ""
	}
	return r.Location.Pathname() + r.Location.Search() + r.Location.Hash()
}
