package canter

import (
	"sync"

	"github.com/BrandonKowalski/canter/pkg/canter/browser"
	"github.com/BrandonKowalski/canter/pkg/canter/constants"
)

// OnLoad runs fns once the document has been parsed: immediately when it is
// already interactive or complete, otherwise on DOMContentLoaded.
func OnLoad(loader browser.Loader, fns ...func()) {
	if len(fns) == 0 {
		return
	}

	switch loader.ReadyState() {
	case constants.ReadyStateInteractive, constants.ReadyStateComplete:
		for _, fn := range fns {
			fn()
		}
		return
	}

	var (
		once   sync.Once
		mu     sync.Mutex
		unbind func()
	)
	mu.Lock()
	unbind = loader.OnDOMContentLoaded(func() {
		once.Do(func() {
			mu.Lock()
			if unbind != nil {
				unbind()
			}
			mu.Unlock()
			for _, fn := range fns {
				fn()
			}
		})
	})
	mu.Unlock()
}
