// SPDX-License-Identifier: EPL-2.0

package trigger

import "sync"

// Handle controls a running spotting session.
type Handle interface {
	// Abort stops the session. It may be called from any goroutine, any
	// number of times, including after the session ended.
	Abort()
}

// HandleFunc adapts a function to the Handle interface.
type HandleFunc func()

func (f HandleFunc) Abort() { f() }

// Once returns a Handle that forwards only the first Abort to h.
func Once(h Handle) Handle {
	var once sync.Once
	return HandleFunc(func() {
		once.Do(h.Abort)
	})
}
