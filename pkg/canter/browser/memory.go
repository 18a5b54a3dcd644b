package browser

import (
	"net/url"
	"sync"

	"github.com/BrandonKowalski/canter/pkg/canter/constants"
)

// MemoryOptions configures a headless browsing context.
type MemoryOptions struct {
	URL            string // Landing URL; relative URLs are resolved against http://localhost/
	DisableHistory bool   // Simulate a browser without pushState support
	ReadyState     string // Defaults to "complete"
	Referrer       string
	Width          int    // Defaults to 1024
	Height         int    // Defaults to 768
	Title          string // Initial content text of the <title> element
	TitleRendered  string // Initial rendered text of the <title> element
	NoTitle        bool   // Omit the <title> element entirely
}

// Memory is a headless, in-memory Window. Listeners are invoked
// synchronously on the goroutine that triggers the event, without any
// internal lock held, so handlers may call back into the Memory.
type Memory struct {
	mu sync.Mutex

	location   *url.URL
	history    *HistoryStack
	noHistory  bool
	readyState string
	referrer   string
	body       *Node
	title      *MemoryTitle
	scrollY    float64
	width      int
	height     int

	click      listeners[func(ClickEvent)]
	popState   listeners[func()]
	scroll     listeners[func()]
	resize     listeners[func()]
	domContent listeners[func()]
}

var _ Window = (*Memory)(nil)

var defaultOrigin = &url.URL{Scheme: "http", Host: "localhost", Path: "/"}

// NewMemory creates a headless browsing context.
func NewMemory(opts MemoryOptions) *Memory {
	loc := defaultOrigin
	if opts.URL != "" {
		if ref, err := url.Parse(opts.URL); err == nil {
			loc = defaultOrigin.ResolveReference(ref)
		}
	}

	m := &Memory{
		location:   loc,
		noHistory:  opts.DisableHistory,
		readyState: opts.ReadyState,
		referrer:   opts.Referrer,
		body:       NewNode("body"),
		width:      opts.Width,
		height:     opts.Height,
	}
	if m.readyState == "" {
		m.readyState = constants.ReadyStateComplete
	}
	if m.width == 0 {
		m.width = 1024
	}
	if m.height == 0 {
		m.height = 768
	}
	if !opts.NoTitle {
		m.title = &MemoryTitle{content: opts.Title, rendered: opts.TitleRendered}
	}
	m.history = NewHistoryStack(fullPath(loc))
	return m
}

func fullPath(u *url.URL) string {
	s := u.EscapedPath()
	if u.RawQuery != "" {
		s += "?" + u.RawQuery
	}
	if u.Fragment != "" {
		s += "#" + u.EscapedFragment()
	}
	return s
}

// URL returns the full path of the current location.
func (m *Memory) URL() string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return fullPath(m.location)
}

// HistoryEntries returns a copy of the session history, oldest first.
func (m *Memory) HistoryEntries() []HistoryEntry {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.history.Entries()
}

// DocumentTitle returns the title as document.title would report it.
func (m *Memory) DocumentTitle() string {
	m.mu.Lock()
	t := m.title
	m.mu.Unlock()
	if t == nil {
		return ""
	}
	if c := t.TextContent(); c != "" {
		return c
	}
	return t.InnerText()
}

// Location

func (m *Memory) Pathname() string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.location.EscapedPath()
}

func (m *Memory) Search() string {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.location.RawQuery == "" {
		return ""
	}
	return "?" + m.location.RawQuery
}

func (m *Memory) Hash() string {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.location.Fragment == "" {
		return ""
	}
	return "#" + m.location.EscapedFragment()
}

// History

func (m *Memory) HistorySupported() bool {
	return !m.noHistory
}

// PushState resolves rawURL against the current location, makes it current
// and records a history entry. Like the real API it does not fire popstate.
func (m *Memory) PushState(data any, title, rawURL string) {
	if m.noHistory {
		return
	}
	ref, err := url.Parse(rawURL)
	if err != nil {
		return
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	m.location = m.location.ResolveReference(ref)
	m.history.Push(HistoryEntry{URL: fullPath(m.location), State: data, Title: title})
}

// Back moves one entry back in history and fires popstate.
// Returns false when there is nothing to go back to.
func (m *Memory) Back() bool {
	m.mu.Lock()
	entry := m.history.Back()
	m.mu.Unlock()
	return m.traverse(entry)
}

// Forward moves one entry forward in history and fires popstate.
func (m *Memory) Forward() bool {
	m.mu.Lock()
	entry := m.history.Forward()
	m.mu.Unlock()
	return m.traverse(entry)
}

func (m *Memory) traverse(entry *HistoryEntry) bool {
	if entry == nil {
		return false
	}
	ref, err := url.Parse(entry.URL)
	if err != nil {
		return false
	}

	m.mu.Lock()
	m.location = m.location.ResolveReference(ref)
	fns := m.popState.snapshot()
	m.mu.Unlock()

	for _, fn := range fns {
		fn()
	}
	return true
}

// Document

func (m *Memory) ReadyState() string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.readyState
}

func (m *Memory) Referrer() string {
	return m.referrer
}

func (m *Memory) Body() Element {
	return m.body
}

// BodyNode returns the body as a *Node so tests can build a document under it.
func (m *Memory) BodyNode() *Node {
	return m.body
}

func (m *Memory) ElementByID(id string) (Element, bool) {
	if n := m.body.find(id); n != nil {
		return n, true
	}
	return nil, false
}

func (m *Memory) Title() (TitleElement, bool) {
	if m.title == nil {
		return nil, false
	}
	return m.title, true
}

// FinishLoading moves the document to the "interactive" state and fires
// DOMContentLoaded listeners.
func (m *Memory) FinishLoading() {
	m.mu.Lock()
	m.readyState = constants.ReadyStateInteractive
	fns := m.domContent.snapshot()
	m.mu.Unlock()

	for _, fn := range fns {
		fn()
	}
}

// Viewport

func (m *Memory) ScrollY() float64 {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.scrollY
}

// SetScrollTop moves the viewport without firing scroll listeners. Use
// ScrollTo to simulate the user scrolling.
func (m *Memory) SetScrollTop(offset float64) {
	if offset < 0 {
		offset = 0
	}
	m.mu.Lock()
	m.scrollY = offset
	m.mu.Unlock()
}

// ScrollTo moves the viewport and fires scroll listeners.
func (m *Memory) ScrollTo(offset float64) {
	if offset < 0 {
		offset = 0
	}
	m.mu.Lock()
	m.scrollY = offset
	fns := m.scroll.snapshot()
	m.mu.Unlock()

	for _, fn := range fns {
		fn()
	}
}

func (m *Memory) InnerWidth() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.width
}

func (m *Memory) InnerHeight() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.height
}

// Resize changes the viewport size and fires resize listeners.
func (m *Memory) Resize(width, height int) {
	m.mu.Lock()
	m.width, m.height = width, height
	fns := m.resize.snapshot()
	m.mu.Unlock()

	for _, fn := range fns {
		fn()
	}
}

// Click dispatches a click on target to every click listener and returns the
// event so callers can inspect whether default navigation was prevented.
func (m *Memory) Click(target Element) *MemoryClick {
	ev := &MemoryClick{target: target}

	m.mu.Lock()
	fns := m.click.snapshot()
	m.mu.Unlock()

	for _, fn := range fns {
		fn(ev)
	}
	return ev
}

// Events

func (m *Memory) OnClick(fn func(ClickEvent)) func() {
	return bind(&m.mu, &m.click, fn)
}

func (m *Memory) OnPopState(fn func()) func() {
	return bind(&m.mu, &m.popState, fn)
}

func (m *Memory) OnScroll(fn func()) func() {
	return bind(&m.mu, &m.scroll, fn)
}

func (m *Memory) OnResize(fn func()) func() {
	return bind(&m.mu, &m.resize, fn)
}

func (m *Memory) OnDOMContentLoaded(fn func()) func() {
	return bind(&m.mu, &m.domContent, fn)
}

// ListenerCount reports how many listeners are bound, across all event kinds.
func (m *Memory) ListenerCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.click.ids) + len(m.popState.ids) + len(m.scroll.ids) +
		len(m.resize.ids) + len(m.domContent.ids)
}

// MemoryClick is the ClickEvent produced by Memory.Click.
type MemoryClick struct {
	mu        sync.Mutex
	target    Element
	prevented bool
}

func (e *MemoryClick) Target() Element {
	return e.target
}

func (e *MemoryClick) PreventDefault() {
	e.mu.Lock()
	e.prevented = true
	e.mu.Unlock()
}

func (e *MemoryClick) DefaultPrevented() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.prevented
}

// MemoryTitle is the <title> element of a Memory document.
type MemoryTitle struct {
	mu       sync.Mutex
	content  string
	rendered string
}

func (t *MemoryTitle) TextContent() string {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.content
}

func (t *MemoryTitle) SetTextContent(s string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.content = s
}

func (t *MemoryTitle) InnerText() string {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.rendered
}

func (t *MemoryTitle) SetInnerText(s string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.rendered = s
}

type listeners[F any] struct {
	nextID int
	ids    []int
	fns    map[int]F
}

func (l *listeners[F]) add(fn F) int {
	if l.fns == nil {
		l.fns = make(map[int]F)
	}
	l.nextID++
	l.ids = append(l.ids, l.nextID)
	l.fns[l.nextID] = fn
	return l.nextID
}

func (l *listeners[F]) remove(id int) {
	if _, ok := l.fns[id]; !ok {
		return
	}
	delete(l.fns, id)
	for i, v := range l.ids {
		if v == id {
			l.ids = append(l.ids[:i], l.ids[i+1:]...)
			return
		}
	}
}

func (l *listeners[F]) snapshot() []F {
	out := make([]F, 0, len(l.ids))
	for _, id := range l.ids {
		out = append(out, l.fns[id])
	}
	return out
}

func bind[F any](mu *sync.Mutex, l *listeners[F], fn F) func() {
	mu.Lock()
	id := l.add(fn)
	mu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() {
			mu.Lock()
			l.remove(id)
			mu.Unlock()
		})
	}
}
