package main

import (
	"context"
	"errors"
	"fmt"
	"maps"
	"strconv"
	"sync"
	"time"

	"github.com/BrandonKowalski/canter/pkg/canter"
	"github.com/BrandonKowalski/canter/pkg/canter/browser"
	"github.com/BrandonKowalski/canter/pkg/canter/constants"
	"github.com/BrandonKowalski/canter/pkg/canter/events"
	"github.com/BrandonKowalski/canter/pkg/canter/router"
	"github.com/BurntSushi/toml"
)

// Script is a scripted browsing session.
type Script struct {
	Start   string         `toml:"start"`   // Landing URL
	Title   string         `toml:"title"`   // Landing document title
	Options canter.Options `toml:"options"` // Passed to canter.New
	Views   []View         `toml:"views"`
	Steps   []Step         `toml:"steps"`
}

// View is a page the simulated application can render.
type View struct {
	Path  string `toml:"path"`
	Title string `toml:"title"`
	Error string `toml:"error"` // When set, rendering the view fails with this message
}

// Step is one user or application action.
type Step struct {
	Action  string `toml:"action"` // click, back, forward, redirect, scroll or resize
	Href    string `toml:"href"`
	Target  string `toml:"target"`
	NoRoute bool   `toml:"no_route"`
	URL     string `toml:"url"`
	Y       float64 `toml:"y"`
	Width   int     `toml:"width"`
	Height  int     `toml:"height"`
}

// Row is the page state after a step.
type Row struct {
	Step    string
	Action  string
	URL     string
	Title   string
	ScrollY float64
	Outcome string
}

// LoadScript reads a script from a TOML file.
func LoadScript(path string) (Script, error) {
	var s Script
	if _, err := toml.DecodeFile(path, &s); err != nil {
		return Script{}, fmt.Errorf("load script %s: %w", path, err)
	}
	if s.Start == "" {
		s.Start = "/"
	}
	return s, nil
}

// Result is the outcome of replaying a script.
type Result struct {
	Rows    []Row
	Emitted map[string]int // Document events published by the App
}

// Run replays s. Each navigation is awaited for at most timeout.
func Run(s Script, timeout time.Duration) (Result, error) {
	win := browser.NewMemory(browser.MemoryOptions{URL: s.Start, Title: s.Title})

	// Trailing throttled emits arrive on timer goroutines.
	var mu sync.Mutex
	emitted := make(map[string]int)
	emitter := events.NewEmitter()
	for _, name := range []string{constants.EventScroll, constants.EventResize, constants.EventResizeWidth, constants.EventResizeHeight} {
		emitter.On(name, func(...any) {
			mu.Lock()
			emitted[name]++
			mu.Unlock()
		})
	}

	var res Result

	opts := s.Options
	opts.Emitter = emitter

	r := router.New()
	app, err := canter.New(win, r, opts)
	if err != nil {
		return Result{}, err
	}
	defer app.Close()

	app.MountRoutes(func(*canter.App) {
		for _, v := range s.Views {
			r.Register(v.Path, view(v))
		}
	})

	await := func(nav *canter.Navigation) string {
		if nav == nil {
			return "left to browser"
		}
		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()
		_, err := nav.Wait(ctx)
		switch {
		case err != nil:
			return "error: " + err.Error()
		case nav.Superseded():
			return "superseded"
		default:
			return string(nav.Trigger)
		}
	}

	record := func(step, action, outcome string) {
		res.Rows = append(res.Rows, Row{
			Step:    step,
			Action:  action,
			URL:     win.URL(),
			Title:   win.DocumentTitle(),
			ScrollY: win.ScrollY(),
			Outcome: outcome,
		})
	}

	var initial *canter.Navigation
	canter.OnLoad(win, func() { initial = app.Initialize() })
	record("0", "load", await(initial))

	for i, step := range s.Steps {
		outcome, err := perform(win, app, step, await)
		if err != nil {
			return res, fmt.Errorf("step %d: %w", i+1, err)
		}
		record(strconv.Itoa(i+1), describe(step), outcome)
	}

	app.Close()
	mu.Lock()
	res.Emitted = maps.Clone(emitted)
	mu.Unlock()
	return res, nil
}

func perform(win *browser.Memory, app *canter.App, step Step, await func(*canter.Navigation) string) (string, error) {
	switch step.Action {
	case "click":
		link := browser.NewAnchor(step.Href)
		if step.Target != "" {
			link.SetAttribute(constants.TargetAttribute, step.Target)
		}
		if step.NoRoute {
			link.SetAttribute(constants.DefaultNoRouteAttribute, "true")
		}
		win.BodyNode().Append(link)

		before := app.Latest()
		ev := win.Click(link)
		if !ev.DefaultPrevented() {
			return "left to browser", nil
		}
		if after := app.Latest(); after != before {
			return await(after), nil
		}
		return "in-page", nil
	case "back", "forward":
		before := app.Latest()
		moved := win.Back
		if step.Action == "forward" {
			moved = win.Forward
		}
		if !moved() {
			return "no history", nil
		}
		if after := app.Latest(); after != before {
			return await(after), nil
		}
		return "not routed", nil
	case "redirect":
		return await(app.Redirect(step.URL)), nil
	case "scroll":
		win.ScrollTo(step.Y)
		return "scrolled", nil
	case "resize":
		win.Resize(step.Width, step.Height)
		return "resized", nil
	default:
		return "", fmt.Errorf("unknown action %q", step.Action)
	}
}

func describe(step Step) string {
	switch step.Action {
	case "click":
		return "click " + step.Href
	case "redirect":
		return "redirect " + step.URL
	case "scroll":
		return "scroll " + strconv.FormatFloat(step.Y, 'f', -1, 64)
	case "resize":
		return fmt.Sprintf("resize %dx%d", step.Width, step.Height)
	default:
		return step.Action
	}
}

func view(v View) router.ViewFunc {
	if v.Error != "" {
		msg := v.Error
		return func(context.Context, router.Request) (canter.Props, error) {
			return nil, errors.New(msg)
		}
	}
	return router.Static(canter.Props{canter.TitleKey: v.Title})
}
