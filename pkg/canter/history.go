package canter

import "github.com/BrandonKowalski/canter/pkg/canter/browser"

// HistoryController guards push-state calls behind the history capability
// check. When history is unsupported pushes are dropped silently; falling
// back to full page loads is up to the caller.
type HistoryController struct {
	History browser.History
}

// Supported reports whether the browsing context can record history entries.
func (h HistoryController) Supported() bool {
	return h.History != nil && h.History.HistorySupported()
}

// Push records a new history entry for url.
func (h HistoryController) Push(data any, title, url string) {
	if !h.Supported() {
		return
	}
	h.History.PushState(data, title, url)
}
