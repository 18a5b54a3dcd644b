// Command navsim replays a scripted browsing session against the canter
// navigation core running on a headless browser, and prints each transition.
package main

import (
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
