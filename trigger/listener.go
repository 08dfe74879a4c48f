// SPDX-License-Identifier: EPL-2.0

package trigger

import "sync/atomic"

// Listener receives session events. OnEvent is called from the engine's
// goroutine, never from the goroutine that started the session, so
// implementations must be safe for concurrent use.
type Listener interface {
	OnEvent(e Event)
}

// ListenerFunc adapts a function to the Listener interface.
type ListenerFunc func(e Event)

func (f ListenerFunc) OnEvent(e Event) { f(e) }

// ChannelListener hands events over to a channel. Delivery never blocks
// the engine: events that do not fit in the buffer are dropped and
// counted.
//
// The channel is never closed, since engines may still deliver after a
// session has ended.
type ChannelListener struct {
	ch      chan Event
	dropped atomic.Uint64
}

func NewChannelListener(size int) *ChannelListener {
	return &ChannelListener{ch: make(chan Event, size)}
}

func (c *ChannelListener) OnEvent(e Event) {
	select {
	case c.ch <- e:
	default:
		c.dropped.Add(1)
	}
}

// Events returns the receiving side of the handoff.
func (c *ChannelListener) Events() <-chan Event { return c.ch }

// Dropped returns the number of events lost to a full buffer.
func (c *ChannelListener) Dropped() uint64 { return c.dropped.Load() }
