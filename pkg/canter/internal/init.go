// Package internal contains the core infrastructure for the canter navigation core.
// This includes logging, locale loading and global tuning knobs.
// Types and functions in this package are not part of the public API.
package internal
