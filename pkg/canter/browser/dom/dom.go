//go:build js && wasm

// Package dom binds the browser interfaces to a real page through syscall/js.
// It is only available when compiling with GOOS=js GOARCH=wasm.
package dom

import (
	"syscall/js"

	"github.com/BrandonKowalski/canter/pkg/canter/browser"
)

// Window is the browser.Window of the page the program runs in.
type Window struct {
	window   js.Value
	document js.Value
}

var _ browser.Window = (*Window)(nil)

// New returns the browsing context of the current page.
func New() *Window {
	w := js.Global()
	return &Window{
		window:   w,
		document: w.Get("document"),
	}
}

func present(v js.Value) bool {
	return !v.IsUndefined() && !v.IsNull()
}

func str(v js.Value) string {
	if v.Type() != js.TypeString {
		return ""
	}
	return v.String()
}

func (w *Window) location() js.Value {
	return w.window.Get("location")
}

func (w *Window) Pathname() string { return str(w.location().Get("pathname")) }
func (w *Window) Search() string { return str(w.location().Get("search")) }
func (w *Window) Hash() string { return str(w.location().Get("hash")) }

func (w *Window) history() js.Value {
	h := w.window.Get("history")
	if !present(h) {
		h = w.location().Get("history")
	}
	return h
}

func (w *Window) HistorySupported() bool {
	h := w.history()
	return present(h) && h.Get("pushState").Type() == js.TypeFunction
}

func (w *Window) PushState(data any, title, url string) {
	if !w.HistorySupported() {
		return
	}
	var jsTitle any
	if title != "" {
		jsTitle = title
	}
	w.history().Call("pushState", toJS(data), jsTitle, url)
}

// toJS converts data for pushState; values js.ValueOf cannot represent are
// stored as null.
func toJS(v any) (out js.Value) {
	if v == nil {
		return js.Null()
	}
	defer func() {
		if recover() != nil {
			out = js.Null()
		}
	}()
	return js.ValueOf(v)
}

func (w *Window) ReadyState() string { return str(w.document.Get("readyState")) }
func (w *Window) Referrer() string { return str(w.document.Get("referrer")) }

func (w *Window) Body() browser.Element {
	return wrap(w.document.Get("body"))
}

func (w *Window) ElementByID(id string) (browser.Element, bool) {
	el := wrap(w.document.Call("getElementById", id))
	return el, el != nil
}

func (w *Window) Title() (browser.TitleElement, bool) {
	t := w.document.Call("querySelector", "title")
	if !present(t) {
		return nil, false
	}
	return titleElement{v: t}, true
}

func (w *Window) ScrollY() float64 {
	y := w.window.Get("scrollY")
	if y.Type() != js.TypeNumber {
		return 0
	}
	return y.Float()
}

// SetScrollTop writes both scrolling roots; which one moves the viewport
// depends on the document's rendering mode.
func (w *Window) SetScrollTop(offset float64) {
	if body := w.document.Get("body"); present(body) {
		body.Set("scrollTop", offset)
	}
	if root := w.document.Get("documentElement"); present(root) {
		root.Set("scrollTop", offset)
	}
}

func (w *Window) InnerWidth() int { return w.window.Get("innerWidth").Int() }
func (w *Window) InnerHeight() int { return w.window.Get("innerHeight").Int() }

func (w *Window) OnClick(fn func(browser.ClickEvent)) func() {
	return listen(w.document.Get("body"), "click", func(ev js.Value) {
		fn(clickEvent{v: ev})
	})
}

func (w *Window) OnPopState(fn func()) func() {
	return listen(w.window, "popstate", func(js.Value) { fn() })
}

func (w *Window) OnScroll(fn func()) func() {
	return listen(w.window, "scroll", func(js.Value) { fn() })
}

func (w *Window) OnResize(fn func()) func() {
	return listen(w.window, "resize", func(js.Value) { fn() })
}

func (w *Window) OnDOMContentLoaded(fn func()) func() {
	return listen(w.window, "DOMContentLoaded", func(js.Value) { fn() })
}

func listen(target js.Value, event string, fn func(js.Value)) func() {
	if !present(target) {
		return func() {}
	}
	cb := js.FuncOf(func(this js.Value, args []js.Value) any {
		ev := js.Undefined()
		if len(args) > 0 {
			ev = args[0]
		}
		fn(ev)
		return nil
	})
	target.Call("addEventListener", event, cb)

	released := false
	return func() {
		if released {
			return
		}
		released = true
		target.Call("removeEventListener", event, cb)
		cb.Release()
	}
}

type element struct {
	v js.Value
}

func wrap(v js.Value) browser.Element {
	if !present(v) {
		return nil
	}
	return element{v: v}
}

func (e element) TagName() string {
	return str(e.v.Get("tagName"))
}

func (e element) Attribute(name string) (string, bool) {
	if e.v.Get("hasAttribute").Type() != js.TypeFunction {
		return "", false
	}
	if !e.v.Call("hasAttribute", name).Bool() {
		return "", false
	}
	return str(e.v.Call("getAttribute", name)), true
}

func (e element) Parent() browser.Element {
	return wrap(e.v.Get("parentNode"))
}

func (e element) IsSameNode(other browser.Element) bool {
	o, ok := other.(element)
	return ok && e.v.Equal(o.v)
}

type titleElement struct {
	v js.Value
}

func (t titleElement) TextContent() string { return str(t.v.Get("textContent")) }
func (t titleElement) SetTextContent(s string) { t.v.Set("textContent", s) }
func (t titleElement) InnerText() string { return str(t.v.Get("innerText")) }
func (t titleElement) SetInnerText(s string) { t.v.Set("innerText", s) }

type clickEvent struct {
	v js.Value
}

func (c clickEvent) Target() browser.Element {
	return wrap(c.v.Get("target"))
}

func (c clickEvent) PreventDefault() {
	c.v.Call("preventDefault")
}

func (c clickEvent) DefaultPrevented() bool {
	return c.v.Get("defaultPrevented").Bool()
}
