// Package constants defines shared constants and configuration values
// used throughout the canter navigation core.
package constants

import (
	"os"
	"time"
)

// Development is the environment variable value for development mode.
const Development = "DEV"

// DebugEnvVar enables debug-level internal logging when set to any value.
const DebugEnvVar = "CANTER_DEBUG"

// LogLevelEnvVar overrides the application log level ("debug", "info", "warn", "error").
const LogLevelEnvVar = "CANTER_LOG_LEVEL"

// IsDevMode returns true if running in development mode (ENVIRONMENT=DEV).
func IsDevMode() bool {
	return os.Getenv("ENVIRONMENT") == Development
}

// Semantic events emitted on the application emitter.
const (
	EventScroll       = "document:scroll"
	EventResize       = "document:resize"
	EventResizeWidth  = "document:resize:width"
	EventResizeHeight = "document:resize:height"
)

// Anchor attributes inspected by the link interceptor.
const (
	AnchorTag               = "A"
	HrefAttribute           = "href"
	TargetAttribute         = "target"
	TargetBlank             = "_blank"
	DefaultNoRouteAttribute = "data-no-route"
)

// Document ready states that allow onload callbacks to fire immediately.
const (
	ReadyStateLoading     = "loading"
	ReadyStateInteractive = "interactive"
	ReadyStateComplete    = "complete"
)

// Default tuning values.
const (
	DefaultThrottleInterval = 60 * time.Millisecond // Rate limit for scroll and resize emits
	DefaultMaxListeners     = 30                    // Emitter listener warning threshold
	MaxAncestorDepth        = 64                    // Hops walked from a click target looking for an anchor
)
