// SPDX-License-Identifier: EPL-2.0

package trigger

import "context"

// DetectFunc is the body of an engine's detection goroutine. It should
// return soon after ctx is done. emit forwards events to the listener.
type DetectFunc func(ctx context.Context, emit func(Event))

// Start runs detect on a new goroutine and returns its Handle. Abort
// cancels the context passed to detect without waiting for it to return;
// events emitted after Abort, or after detect returned, are dropped.
func Start(ctx context.Context, l Listener, detect DetectFunc) Handle {
	ctx, cancel := context.WithCancel(ctx)
	sess := NewSession(l)
	sess.Start()

	go func() {
		defer cancel()
		defer sess.Close()
		detect(ctx, sess.OnEvent)
	}()

	return Once(HandleFunc(func() {
		sess.Close()
		cancel()
	}))
}
