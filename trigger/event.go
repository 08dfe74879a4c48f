// SPDX-License-Identifier: EPL-2.0

package trigger

// Event is emitted by an engine during a spotting session. It is either
// a TriggeredEvent or an ErrorEvent.
type Event interface {
	isEvent()
}

// TriggeredEvent reports that the keyword was spotted.
type TriggeredEvent struct{}

// ErrorEvent reports a failure inside a running session.
type ErrorEvent struct {
	Message string
}

func (TriggeredEvent) isEvent() {}
func (ErrorEvent) isEvent()     {}

func (TriggeredEvent) String() string { return "triggered" }
func (e ErrorEvent) String() string   { return "error: " + e.Message }
