package canter

import (
	"strings"

	"github.com/BrandonKowalski/canter/pkg/canter/browser"
	"github.com/BrandonKowalski/canter/pkg/canter/constants"
)

// LinkDecision classifies a click for routing purposes.
type LinkDecision int

const (
	LinkNone     LinkDecision = iota // Click did not land inside an anchor
	LinkInternal                     // In-app navigation, rendered by canter
	LinkExternal                     // href looks absolute; left to the browser
	LinkFragment                     // In-page "#..." link
	LinkExcluded                     // Opted out: target=_blank, no-route marker or no href
)

func (d LinkDecision) String() string {
	switch d {
	case LinkNone:
		return "none"
	case LinkInternal:
		return "internal"
	case LinkExternal:
		return "external"
	case LinkFragment:
		return "fragment"
	case LinkExcluded:
		return "excluded"
	default:
		return "unknown"
	}
}

// Navigable reports whether canter takes over the click (prevents default).
func (d LinkDecision) Navigable() bool {
	return d == LinkInternal || d == LinkFragment
}

// LinkInterceptor decides which clicks are in-app navigation.
type LinkInterceptor struct {
	Root             browser.Element // The walk for an enclosing anchor stops here
	NoRouteAttribute string          // Marker attribute; "true" opts a link out
	MaxDepth         int             // Ancestor hops to examine; defaults to constants.MaxAncestorDepth
}

// FindAnchor returns target if it is an anchor, otherwise its nearest
// anchor ancestor below Root. It returns nil when there is none.
func (l LinkInterceptor) FindAnchor(target browser.Element) browser.Element {
	maxDepth := l.MaxDepth
	if maxDepth <= 0 {
		maxDepth = constants.MaxAncestorDepth
	}

	el := target
	for depth := 0; el != nil && depth <= maxDepth; depth++ {
		if strings.EqualFold(el.TagName(), constants.AnchorTag) {
			return el
		}
		if l.Root != nil && el.IsSameNode(l.Root) {
			return nil
		}
		el = el.Parent()
	}
	return nil
}

// Classify finds the anchor enclosing target and decides how its click is
// handled. href is the anchor's raw href attribute.
//
// Any href containing "//" is treated as external. This also catches
// same-origin paths with "//" in them; it is kept as is because changing it
// would change which links route.
func (l LinkInterceptor) Classify(target browser.Element) (href string, decision LinkDecision) {
	anchor := l.FindAnchor(target)
	if anchor == nil {
		return "", LinkNone
	}

	href, ok := anchor.Attribute(constants.HrefAttribute)
	if !ok {
		return "", LinkExcluded
	}

	noRoute := l.NoRouteAttribute
	if noRoute == "" {
		noRoute = constants.DefaultNoRouteAttribute
	}

	if t, _ := anchor.Attribute(constants.TargetAttribute); t == constants.TargetBlank {
		return href, LinkExcluded
	}
	if v, _ := anchor.Attribute(noRoute); v == "true" {
		return href, LinkExcluded
	}
	if strings.Contains(href, "//") {
		return href, LinkExternal
	}
	if strings.HasPrefix(href, "#") {
		return href, LinkFragment
	}
	return href, LinkInternal
}

// HandleClick routes a click on an in-app link. Clicks outside anchors,
// on opted-out or external links, or while history is unsupported are left
// to the browser and return nil.
//
// For routed links default navigation is prevented and the scroll offset of
// the current page is recorded. Fragment links stop there and return nil:
// the browser does not jump to the fragment either. Any other link pushes
// history, becomes the current path and is rendered; its title is applied
// when the render completes.
func (a *App) HandleClick(ev browser.ClickEvent) *Navigation {
	if ev == nil {
		return nil
	}

	href, decision := a.links.Classify(ev.Target())
	if !decision.Navigable() {
		if decision != LinkNone {
			a.logger.Debug("Link left to browser", "href", href, "decision", decision.String())
		}
		return nil
	}
	if !a.history.Supported() {
		return nil
	}

	a.mu.Lock()
	if a.closed {
		a.mu.Unlock()
		return nil
	}

	ev.PreventDefault()
	a.scroll.Record(a.paths.FullPath(), a.win.ScrollY())

	if decision == LinkFragment {
		a.mu.Unlock()
		return nil
	}

	a.history.Push(nil, "", href)
	nav := a.beginLocked(TriggerClick, a.paths.FullPath())
	a.mu.Unlock()

	a.run(nav, a.modify, a.applyTitle, nil)
	return nav
}
