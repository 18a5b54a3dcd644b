package browser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemory_Location(t *testing.T) {
	m := NewMemory(MemoryOptions{URL: "/shop/item?id=4#reviews"})

	assert.Equal(t, "/shop/item", m.Pathname())
	assert.Equal(t, "?id=4", m.Search())
	assert.Equal(t, "#reviews", m.Hash())
	assert.Equal(t, "/shop/item?id=4#reviews", m.URL())

	empty := NewMemory(MemoryOptions{})
	assert.Equal(t, "/", empty.Pathname())
	assert.Empty(t, empty.Search())
	assert.Empty(t, empty.Hash())
}

func TestMemory_PushStateResolvesRelative(t *testing.T) {
	m := NewMemory(MemoryOptions{URL: "/shop/item"})
	popped := 0
	m.OnPopState(func() { popped++ })

	m.PushState(nil, "", "other?x=1")
	assert.Equal(t, "/shop/other?x=1", m.URL())
	assert.Zero(t, popped)

	require.True(t, m.Back())
	assert.Equal(t, "/shop/item", m.URL())
	assert.Equal(t, 1, popped)

	require.True(t, m.Forward())
	assert.Equal(t, "/shop/other?x=1", m.URL())
	assert.False(t, m.Forward())
	assert.Equal(t, 2, popped)
}

func TestMemory_DisableHistory(t *testing.T) {
	m := NewMemory(MemoryOptions{URL: "/", DisableHistory: true})
	assert.False(t, m.HistorySupported())

	m.PushState(nil, "", "/a")
	assert.Equal(t, "/", m.URL())
	assert.Len(t, m.HistoryEntries(), 1)
}

func TestMemory_Scroll(t *testing.T) {
	m := NewMemory(MemoryOptions{})
	fired := 0
	m.OnScroll(func() { fired++ })

	m.SetScrollTop(40)
	assert.Equal(t, 40.0, m.ScrollY())
	assert.Zero(t, fired)

	m.ScrollTo(-10)
	assert.Zero(t, m.ScrollY())
	assert.Equal(t, 1, fired)
}

func TestMemory_Resize(t *testing.T) {
	m := NewMemory(MemoryOptions{})
	assert.Equal(t, 1024, m.InnerWidth())
	assert.Equal(t, 768, m.InnerHeight())

	fired := 0
	m.OnResize(func() { fired++ })
	m.Resize(640, 480)

	assert.Equal(t, 640, m.InnerWidth())
	assert.Equal(t, 480, m.InnerHeight())
	assert.Equal(t, 1, fired)
}

func TestMemory_ClickAndUnbind(t *testing.T) {
	m := NewMemory(MemoryOptions{})
	link := m.BodyNode().Append(NewAnchor("/a"))

	var seen Element
	unbind := m.OnClick(func(ev ClickEvent) {
		seen = ev.Target()
		ev.PreventDefault()
	})
	assert.Equal(t, 1, m.ListenerCount())

	ev := m.Click(link)
	assert.True(t, ev.DefaultPrevented())
	assert.Same(t, link, seen)

	unbind()
	unbind()
	assert.Zero(t, m.ListenerCount())
	assert.False(t, m.Click(link).DefaultPrevented())
}

func TestMemory_ListenerMayUnbindItself(t *testing.T) {
	m := NewMemory(MemoryOptions{ReadyState: "loading"})
	calls := 0
	var unbind func()
	unbind = m.OnDOMContentLoaded(func() {
		calls++
		unbind()
	})

	m.FinishLoading()
	m.FinishLoading()

	assert.Equal(t, 1, calls)
	assert.Equal(t, "interactive", m.ReadyState())
}

func TestMemory_Document(t *testing.T) {
	m := NewMemory(MemoryOptions{Referrer: "https://search.example/", Title: "Home"})
	app := m.BodyNode().Append(NewNode("div", "id", "app"))
	app.Append(NewNode("section", "id", "main"))

	assert.Equal(t, "https://search.example/", m.Referrer())
	assert.Equal(t, "complete", m.ReadyState())
	assert.Equal(t, "Home", m.DocumentTitle())

	el, ok := m.ElementByID("main")
	require.True(t, ok)
	assert.Equal(t, "SECTION", el.TagName())
	assert.True(t, el.Parent().IsSameNode(app))

	_, ok = m.ElementByID("missing")
	assert.False(t, ok)

	noTitle := NewMemory(MemoryOptions{NoTitle: true})
	_, ok = noTitle.Title()
	assert.False(t, ok)
}

func TestNode(t *testing.T) {
	root := NewNode("body")
	a := root.Append(NewAnchor("/x", "target", "_blank", "dangling"))
	assert.Equal(t, "A", a.TagName())

	v, ok := a.Attribute("target")
	require.True(t, ok)
	assert.Equal(t, "_blank", v)
	_, ok = a.Attribute("dangling")
	assert.False(t, ok)

	a.SetAttribute("data-no-route", "true")
	a.RemoveAttribute("target")
	_, ok = a.Attribute("target")
	assert.False(t, ok)

	other := NewNode("div")
	other.Append(a)
	assert.Empty(t, root.Children())
	assert.True(t, a.Parent().IsSameNode(other))
	assert.Nil(t, root.Parent())
}
