// Package canter is the navigation core of a single-page client application.
//
// It intercepts in-app link clicks and back/forward events, renders the
// matching view through an application-supplied Renderer without a full page
// load, and restores scroll position and document title the way native
// browser navigation would.
//
// The browsing context is reached only through the interfaces in the browser
// package, so the whole core runs against browser.Memory in tests and against
// a real page through browser/dom when compiled for js/wasm.
package canter

import (
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/BrandonKowalski/canter/pkg/canter/constants"
	"github.com/BrandonKowalski/canter/pkg/canter/internal"
	"github.com/BurntSushi/toml"
	"github.com/nicksnyder/go-i18n/v2/i18n"
)

// Options configures an App.
type Options struct {
	MountPoint       string          `toml:"mount_point"`        // Id of the element that bounds link interception; defaults to <body>
	NoRouteAttribute string          `toml:"no_route_attribute"` // Anchor attribute that opts a link out of routing when "true"
	MaxListeners     int             `toml:"max_listeners"`      // Emitter listener warning threshold (default 30)
	ThrottleInterval time.Duration   `toml:"throttle_interval"`  // Global scroll/resize throttle; zero keeps the current value
	LogPath          string          `toml:"log_path"`           // Full path for log file including filename
	LogLevel         string          `toml:"log_level"`          // Application log level name
	Locale           string          `toml:"locale"`             // BCP 47 tag used to localize document titles
	MessageFiles     []string        `toml:"message_files"`      // go-i18n TOML message files
	TitleMessageID   string          `toml:"title_message_id"`   // Message applied to every title; data: {{.Title}}
	TitleFormat      string          `toml:"title_format"`       // Inline template for TitleMessageID when no message files are given
	Bootstrap        RenderContext   `toml:"bootstrap"`          // Process-wide context merged into every render
	ModifyContext    ContextModifier `toml:"-"`                  // Replaces the default bootstrap merge
	Emitter          Emitter         `toml:"-"`                  // Receives document events; defaults to events.NewEmitter()
	Localizer        *i18n.Localizer `toml:"-"`                  // Overrides Locale/MessageFiles when set
}

// LoadOptions reads Options from a TOML file.
func LoadOptions(path string) (Options, error) {
	var opts Options
	md, err := toml.DecodeFile(path, &opts)
	if err != nil {
		return Options{}, fmt.Errorf("load options %s: %w", path, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		internal.GetInternalLogger().Warn("Ignoring unknown option keys", "path", path, "keys", fmt.Sprint(undecoded))
	}
	return opts, nil
}

func (o Options) withDefaults() Options {
	if o.NoRouteAttribute == "" {
		o.NoRouteAttribute = constants.DefaultNoRouteAttribute
	}
	if o.MaxListeners == 0 {
		o.MaxListeners = constants.DefaultMaxListeners
	}
	return o
}

// configure applies the process-wide parts of opts: logging and throttling.
func configure(opts Options) {
	if opts.LogPath != "" {
		internal.SetLogPath(opts.LogPath)
	}

	if os.Getenv(constants.DebugEnvVar) != "" || constants.IsDevMode() {
		internal.SetInternalLogLevel(slog.LevelDebug)
	} else {
		internal.SetInternalLogLevel(slog.LevelError)
	}

	if level := os.Getenv(constants.LogLevelEnvVar); level != "" {
		internal.SetRawLogLevel(level)
	} else if opts.LogLevel != "" {
		internal.SetRawLogLevel(opts.LogLevel)
	}

	if opts.ThrottleInterval > 0 {
		internal.SetThrottleInterval(opts.ThrottleInterval)
	}
}

// SetLogPath sets the full path for the log file, including filename.
// Creates all necessary parent directories.
// Call before the first App is created to take effect.
func SetLogPath(path string) {
	internal.SetLogPath(path)
}

// GetLogger returns the application logger for structured logging.
func GetLogger() *slog.Logger {
	return internal.GetLogger()
}

// SetLogLevel sets the minimum log level for the application logger.
func SetLogLevel(level slog.Level) {
	internal.SetLogLevel(level)
}

// SetRawLogLevel parses and sets the log level from a string (e.g., "debug", "info", "error").
func SetRawLogLevel(level string) {
	internal.SetRawLogLevel(level)
}

// SetThrottleInterval sets the rate limit shared by every scroll and resize
// listener in the process. Listeners already bound keep their interval.
func SetThrottleInterval(d time.Duration) {
	internal.SetThrottleInterval(d)
}

// ThrottleInterval returns the current global throttle interval.
func ThrottleInterval() time.Duration {
	return internal.ThrottleInterval()
}

// CloseLog flushes and closes the log file, if one was opened.
func CloseLog() {
	internal.CloseLogger()
}
