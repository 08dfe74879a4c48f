// SPDX-License-Identifier: EPL-2.0

package trigger

import (
	"sync/atomic"

	"github.com/google/uuid"
)

// State is the lifecycle position of a spotting session.
type State int32

const (
	StateIdle State = iota
	StateSpotting
	StateTriggered
	StateError
	StateClosed
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateSpotting:
		return "spotting"
	case StateTriggered:
		return "triggered"
	case StateError:
		return "error"
	case StateClosed:
		return "closed"
	default:
		return "unknown"
	}
}

// Session guards a Listener for the lifetime of one spotting session.
// Events emitted before Start or after Close are dropped.
//
// The state check and the delivery are not atomic together: an event that
// passed the check just before Close still reaches the listener, possibly
// after Close has returned. Nothing emitted after Close returns is
// delivered.
//
// Session is itself a Listener and is safe for concurrent use. Its state
// is a single atomic word, so the wrapped listener may call back into the
// session, or abort the session's handle, from inside OnEvent.
type Session struct {
	id       string
	listener Listener
	state    atomic.Int32
}

// NewSession returns an idle session delivering to l.
func NewSession(l Listener) *Session {
	return &Session{id: uuid.NewString(), listener: l}
}

// ID is a random identifier used to correlate log lines.
func (s *Session) ID() string { return s.id }

func (s *Session) State() State { return State(s.state.Load()) }

// Start moves an idle session to Spotting. It reports false when the
// session was already started or closed.
func (s *Session) Start() bool {
	return s.state.CompareAndSwap(int32(StateIdle), int32(StateSpotting))
}

// Close moves the session to Closed. It reports whether this call did it.
func (s *Session) Close() bool {
	return State(s.state.Swap(int32(StateClosed))) != StateClosed
}

func (s *Session) Closed() bool { return s.State() == StateClosed }

// OnEvent records the event in the session state and forwards it.
func (s *Session) OnEvent(e Event) {
	next := StateTriggered
	if _, ok := e.(ErrorEvent); ok {
		next = StateError
	}

	for {
		cur := State(s.state.Load())
		if cur == StateIdle || cur == StateClosed {
			return
		}
		if s.state.CompareAndSwap(int32(cur), int32(next)) {
			break
		}
	}

	s.listener.OnEvent(e)
}
