// Package browser describes the slice of a browsing context that the canter
// navigation core reads and drives: location, session history, document
// title, viewport scroll and the events that trigger navigation.
//
// Two implementations ship with canter. Memory is a headless browsing context
// used by tests and the navsim tool. The dom sub-package binds the same
// interfaces to a real page through syscall/js when built for js/wasm.
package browser

// Location exposes the client-visible parts of the current URL.
type Location interface {
	Pathname() string
	Search() string // includes the leading "?" when present
	Hash() string   // includes the leading "#" when present
}

// History is the push-state surface of the session history.
type History interface {
	// HistorySupported reports whether PushState can record entries.
	HistorySupported() bool
	PushState(data any, title, url string)
}

// Element is a node in the document tree, as far as link interception needs it.
type Element interface {
	TagName() string
	Attribute(name string) (string, bool)
	Parent() Element // nil at the top of the tree
	IsSameNode(other Element) bool
}

// TitleElement is the document's <title> node. Browsers expose its text
// through two surfaces that are not always both populated.
type TitleElement interface {
	TextContent() string
	SetTextContent(string)
	InnerText() string
	SetInnerText(string)
}

// Document exposes document-level state.
type Document interface {
	ReadyState() string
	Referrer() string
	Body() Element
	ElementByID(id string) (Element, bool)
	// Title returns the document's title element, if it has one.
	Title() (TitleElement, bool)
}

// Viewport exposes the scroll position and dimensions of the window.
type Viewport interface {
	ScrollY() float64
	SetScrollTop(offset float64)
	InnerWidth() int
	InnerHeight() int
}

// ClickEvent is a click dispatched to the document body.
type ClickEvent interface {
	Target() Element
	PreventDefault()
	DefaultPrevented() bool
}

// Events binds listeners on the browsing context. Every binding returns a
// function that removes the listener again.
type Events interface {
	OnClick(fn func(ClickEvent)) (unbind func())
	OnPopState(fn func()) (unbind func())
	OnScroll(fn func()) (unbind func())
	OnResize(fn func()) (unbind func())
	OnDOMContentLoaded(fn func()) (unbind func())
}

// Loader is the part of a browsing context needed to defer work until the
// document has been parsed.
type Loader interface {
	ReadyState() string
	OnDOMContentLoaded(fn func()) (unbind func())
}

// Window is a complete browsing context.
type Window interface {
	Location
	History
	Document
	Viewport
	Events
}
