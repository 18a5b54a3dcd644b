package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sessionScript = `
start = "/"
title = "Home"

[options]
throttle_interval = "1h"

[[views]]
path = "/"
title = "Home"

[[views]]
path = "/about"
title = "About"

[[views]]
path = "/broken"
error = "boom"

[[steps]]
action = "click"
href = "/about"

[[steps]]
action = "scroll"
y = 200

[[steps]]
action = "click"
href = "#team"

[[steps]]
action = "back"

[[steps]]
action = "forward"

[[steps]]
action = "click"
href = "https://example.com/"

[[steps]]
action = "click"
href = "/broken"

[[steps]]
action = "redirect"
url = "/?from=sim"

[[steps]]
action = "resize"
width = 800
height = 768
`

func writeScript(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "session.toml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestRun_Session(t *testing.T) {
	script, err := LoadScript(writeScript(t, sessionScript))
	require.NoError(t, err)
	assert.Equal(t, time.Hour, script.Options.ThrottleInterval)

	res, err := Run(script, 2*time.Second)
	require.NoError(t, err)
	require.Len(t, res.Rows, 10)

	type want struct {
		url, title string
		scroll     float64
		outcome    string
	}
	expected := []want{
		{"/", "Home", 0, "initial"},
		{"/about", "About", 0, "click"},
		{"/about", "About", 200, "scrolled"},
		{"/about", "About", 200, "in-page"},
		{"/", "Home", 0, "popstate"},
		{"/about", "About", 200, "popstate"},
		{"/about", "About", 200, "left to browser"},
		{"/broken", "About", 200, ""},
		{"/?from=sim", "Home", 200, "redirect"},
		{"/?from=sim", "Home", 200, "resized"},
	}
	for i, w := range expected {
		row := res.Rows[i]
		assert.Equal(t, w.url, row.URL, "row %d url", i)
		assert.Equal(t, w.title, row.Title, "row %d title", i)
		assert.Equal(t, w.scroll, row.ScrollY, "row %d scroll", i)
		if w.outcome != "" {
			assert.Equal(t, w.outcome, row.Outcome, "row %d outcome", i)
		}
	}
	assert.Contains(t, res.Rows[7].Outcome, "boom")

	// The first scroll and resize pass the throttle; nothing else does within an hour.
	assert.Equal(t, 1, res.Emitted["document:scroll"])
	assert.Equal(t, 1, res.Emitted["document:resize"])
	assert.Equal(t, 1, res.Emitted["document:resize:width"])
	assert.Zero(t, res.Emitted["document:resize:height"])
}

func TestRun_UnknownAction(t *testing.T) {
	script, err := LoadScript(writeScript(t, `
[[steps]]
action = "teleport"
`))
	require.NoError(t, err)
	assert.Equal(t, "/", script.Start)

	_, err = Run(script, time.Second)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "step 1")
}

func TestRootCmd_PrintsTable(t *testing.T) {
	var out bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{"--events", writeScript(t, sessionScript)})

	require.NoError(t, cmd.Execute())

	got := out.String()
	assert.Contains(t, got, "OUTCOME")
	assert.Contains(t, got, "click /about")
	assert.Contains(t, got, "popstate")
	assert.Contains(t, got, "document:scroll")
	assert.Contains(t, got, "TOTAL")
}

func TestRootCmd_RequiresScript(t *testing.T) {
	cmd := newRootCmd()
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{})

	require.Error(t, cmd.Execute())
}

func TestRootCmd_MissingScript(t *testing.T) {
	cmd := newRootCmd()
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{filepath.Join(t.TempDir(), "nope.toml")})

	require.Error(t, cmd.Execute())
}
