package canter

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/BrandonKowalski/canter/pkg/canter/browser"
	"github.com/BrandonKowalski/canter/pkg/canter/constants"
	"github.com/BrandonKowalski/canter/pkg/canter/events"
	"github.com/BrandonKowalski/canter/pkg/canter/internal"
	"github.com/nicksnyder/go-i18n/v2/i18n"
	"go.uber.org/atomic"
	"golang.org/x/text/language"
)

// App coordinates every navigation of a single-page application: the first
// render at page load, link clicks, back/forward and programmatic redirects
// all funnel through it.
//
// Entry points never block on rendering. Each one updates the navigation
// state and history synchronously, starts the render on its own goroutine
// and returns a Navigation to observe it. When renders finish out of order,
// only the most recently started navigation applies its title and scroll
// position; older completions are discarded.
type App struct {
	win      browser.Window
	renderer Renderer
	emitter  Emitter
	modify   ContextModifier
	referrer string

	paths   PathResolver
	history HistoryController
	scroll  *ScrollCache
	titles  *TitleManager
	links   LinkInterceptor

	logger *slog.Logger
	ctx    context.Context
	cancel context.CancelFunc

	// seq is the token of the latest navigation with side effects.
	seq *atomic.Uint64

	mu          sync.Mutex
	state       NavigationState
	latest      *Navigation
	initialized bool
	bound       bool
	closed      bool
	unbind      []func()
	throttles   []*events.Throttle
}

// New creates an App for the browsing context win. Nothing is rendered and
// no listeners are bound until Initialize is called.
func New(win browser.Window, renderer Renderer, opts Options) (*App, error) {
	if win == nil {
		return nil, fmt.Errorf("canter: nil browsing context")
	}
	if renderer == nil {
		return nil, fmt.Errorf("canter: nil renderer")
	}

	opts = opts.withDefaults()
	configure(opts)

	emitter := opts.Emitter
	if emitter == nil {
		emitter = events.NewEmitter()
	}
	emitter.SetMaxListeners(opts.MaxListeners)

	localizer, err := titleLocalizer(opts)
	if err != nil {
		return nil, fmt.Errorf("canter: %w", err)
	}

	modify := opts.ModifyContext
	if modify == nil {
		modify = BootstrapModifier(opts.Bootstrap)
	}

	root := win.Body()
	if opts.MountPoint != "" {
		if el, ok := win.ElementByID(opts.MountPoint); ok {
			root = el
		} else {
			internal.GetInternalLogger().Warn("Mount point not found; using document body", "mount_point", opts.MountPoint)
		}
	}

	ctx, cancel := context.WithCancel(context.Background())

	a := &App{
		win:      win,
		renderer: renderer,
		emitter:  emitter,
		modify:   modify,
		referrer: win.Referrer(),
		paths:    PathResolver{Location: win},
		history:  HistoryController{History: win},
		scroll:   NewScrollCache(),
		titles: &TitleManager{
			Document:  win,
			Localizer: localizer,
			MessageID: opts.TitleMessageID,
		},
		links: LinkInterceptor{
			Root:             root,
			NoRouteAttribute: opts.NoRouteAttribute,
		},
		logger: internal.GetInternalLogger(),
		ctx:    ctx,
		cancel: cancel,
		seq:    atomic.NewUint64(0),
	}

	landing := a.paths.FullPath()
	a.state = NavigationState{CurrentPath: landing, InitialPath: landing}
	return a, nil
}

func titleLocalizer(opts Options) (*i18n.Localizer, error) {
	switch {
	case opts.Localizer != nil:
		return opts.Localizer, nil
	case opts.TitleMessageID == "":
		return nil, nil
	case opts.TitleFormat != "" && len(opts.MessageFiles) == 0:
		tag := language.English
		if opts.Locale != "" {
			if parsed, err := language.Parse(opts.Locale); err == nil {
				tag = parsed
			}
		}
		return internal.NewLocalizerFromMessages(tag, &i18n.Message{
			ID:    opts.TitleMessageID,
			Other: opts.TitleFormat,
		})
	default:
		return internal.NewLocalizer(opts.Locale, opts.MessageFiles...)
	}
}

// Initialize renders the page the browser landed on, then arms the scroll,
// resize, click and back/forward bindings once that render has settled,
// whether it succeeded or not. Click and back/forward are only armed when
// the browser supports history; otherwise links fall back to full loads.
func (a *App) Initialize() *Navigation {
	a.mu.Lock()
	path := a.state.InitialPath
	switch {
	case a.closed:
		a.mu.Unlock()
		return failedNavigation(TriggerInitial, path, ErrClosed)
	case a.initialized:
		a.mu.Unlock()
		return failedNavigation(TriggerInitial, path, ErrAlreadyInitialized)
	}
	a.initialized = true
	nav := newNavigation(TriggerInitial, path, 0)
	a.latest = nav
	a.mu.Unlock()

	a.logger.Debug("Initial render", "path", path)
	a.run(nav, a.modify, nil, a.bind)
	return nav
}

// Render asks the Renderer for path without touching history, title or
// scroll state. A nil modify uses the App's context modifier.
func (a *App) Render(path string, initial bool, modify ContextModifier) *Navigation {
	nav := newNavigation(TriggerRender, path, 0)
	nav.Initial = initial
	if modify == nil {
		modify = a.modify
	}
	a.run(nav, modify, nil, nil)
	return nav
}

// Redirect navigates programmatically: it pushes url onto history, renders
// the resulting path and applies its title. Unlike a link click it does not
// record the scroll offset of the page being left.
func (a *App) Redirect(url string) *Navigation {
	a.mu.Lock()
	if a.closed {
		a.mu.Unlock()
		return failedNavigation(TriggerRedirect, url, ErrClosed)
	}
	a.history.Push(nil, "", url)
	nav := a.beginLocked(TriggerRedirect, a.paths.FullPath())
	a.mu.Unlock()

	a.run(nav, a.modify, a.applyTitle, nil)
	return nav
}

// beginLocked makes path current and issues the token for a new navigation.
// Callers must hold a.mu.
func (a *App) beginLocked(trigger Trigger, path string) *Navigation {
	a.state.CurrentPath = path
	nav := newNavigation(trigger, path, a.seq.Inc())
	a.latest = nav
	a.logger.Debug("Navigation started", "trigger", string(trigger), "path", path, "token", nav.token)
	return nav
}

func (a *App) applyTitle(props Props) {
	a.titles.SetTitle(props.Title())
}

// run renders nav.Path on a new goroutine. On success apply runs under the
// App lock, but only if nav is still the latest navigation. settled runs
// after the render finishes either way, before nav is marked done.
func (a *App) run(nav *Navigation, modify ContextModifier, apply func(Props), settled func()) {
	go func() {
		props, err := a.renderer.Render(a.ctx, nav.Path, nav.Initial, modify)
		if err != nil {
			err = NewRenderError(nav.Path, err)
			a.mu.Lock()
			if a.closed {
				err = fmt.Errorf("%w: %w", ErrClosed, err)
			}
			a.mu.Unlock()
			level := slog.LevelDebug
			if nav.Trigger == TriggerClick || nav.Trigger == TriggerPopState {
				level = slog.LevelWarn
			}
			a.logger.Log(context.Background(), level, "Render failed", "trigger", string(nav.Trigger), "path", nav.Path, "error", err)
			if settled != nil {
				settled()
			}
			nav.settle(nil, err, false)
			return
		}

		applied := true
		if apply != nil {
			a.mu.Lock()
			switch {
			case a.closed:
				applied = false
				err = ErrClosed
			case nav.token != a.seq.Load():
				applied = false
				a.logger.Debug("Discarding stale render", "path", nav.Path, "token", nav.token, "latest", a.seq.Load())
			default:
				apply(props)
			}
			a.mu.Unlock()
		}

		if settled != nil {
			settled()
		}
		nav.settle(props, err, applied)
	}()
}

// bind arms the document listeners. It runs once, after the initial render.
func (a *App) bind() {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.closed || a.bound {
		return
	}
	a.bound = true

	a.bindScrolling()
	a.bindResize()

	if a.history.Supported() {
		a.bindHistory()
	} else {
		a.logger.Info("History unsupported; links will load natively")
	}
}

func (a *App) bindScrolling() {
	t := events.Throttled(func() {
		a.emitter.Emit(constants.EventScroll)
	})
	a.throttles = append(a.throttles, t)
	a.unbind = append(a.unbind, a.win.OnScroll(t.Call))
}

func (a *App) bindResize() {
	startWidth, startHeight := a.win.InnerWidth(), a.win.InnerHeight()

	t := events.Throttled(func() {
		a.emitter.Emit(constants.EventResize)

		if a.win.InnerWidth() != startWidth {
			a.emitter.Emit(constants.EventResizeWidth)
		}

		if a.win.InnerHeight() != startHeight {
			a.emitter.Emit(constants.EventResizeHeight)
		}
	})
	a.throttles = append(a.throttles, t)
	a.unbind = append(a.unbind, a.win.OnResize(t.Call))
}

func (a *App) bindHistory() {
	a.unbind = append(a.unbind,
		a.win.OnClick(func(ev browser.ClickEvent) { a.HandleClick(ev) }),
		a.win.OnPopState(func() { a.HandlePopState() }),
	)
}

// Bound reports whether the document listeners have been armed.
func (a *App) Bound() bool {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.bound
}

// Latest returns the most recently started navigation that updates the
// page: the initial render, a click, back/forward or a redirect. It is nil
// before Initialize.
func (a *App) Latest() *Navigation {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.latest
}

// State returns a snapshot of the navigation state.
func (a *App) State() NavigationState {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.state
}

// Referrer returns the document referrer captured when the App was created.
func (a *App) Referrer() string {
	return a.referrer
}

// ScrollCache returns the App's scroll offset cache.
func (a *App) ScrollCache() *ScrollCache {
	return a.scroll
}

// Emitter returns the emitter document events are published on.
func (a *App) Emitter() Emitter {
	return a.emitter
}

// MountRoutes hands the App to a route setup function.
func (a *App) MountRoutes(routes func(*App)) {
	routes(a)
}

// Close removes every listener the App bound and cancels the context passed
// to renderers. Renders still in flight finish but apply nothing.
func (a *App) Close() {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.closed {
		return
	}
	a.closed = true

	for _, unbind := range a.unbind {
		unbind()
	}
	a.unbind = nil

	for _, t := range a.throttles {
		t.Stop()
	}
	a.throttles = nil

	a.cancel()
}
