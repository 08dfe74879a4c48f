// SPDX-License-Identifier: EPL-2.0

package trigger

import (
	"sync"
	"testing"
)

type recorder struct {
	mtx    sync.Mutex
	events []Event
}

func (r *recorder) OnEvent(e Event) {
	r.mtx.Lock()
	defer r.mtx.Unlock()
	r.events = append(r.events, e)
}

func (r *recorder) Events() []Event {
	r.mtx.Lock()
	defer r.mtx.Unlock()
	return append([]Event(nil), r.events...)
}

func TestSession_Lifecycle(t *testing.T) {
	t.Parallel()

	rec := &recorder{}
	s := NewSession(rec)

	if s.State() != StateIdle {
		t.Fatalf("new session state = %v", s.State())
	}
	if s.ID() == "" {
		t.Error("session has no id")
	}

	s.OnEvent(TriggeredEvent{})
	if len(rec.Events()) != 0 {
		t.Error("idle session delivered an event")
	}

	if !s.Start() {
		t.Fatal("Start() = false")
	}
	if s.Start() {
		t.Error("second Start() = true")
	}

	s.OnEvent(TriggeredEvent{})
	if s.State() != StateTriggered {
		t.Errorf("state = %v, want %v", s.State(), StateTriggered)
	}
	s.OnEvent(ErrorEvent{Message: "boom"})
	if s.State() != StateError {
		t.Errorf("state = %v, want %v", s.State(), StateError)
	}

	if !s.Close() {
		t.Error("Close() = false")
	}
	if s.Close() {
		t.Error("second Close() = true")
	}
	if s.Start() {
		t.Error("Start() after Close() = true")
	}

	s.OnEvent(TriggeredEvent{})

	got := rec.Events()
	if len(got) != 2 {
		t.Fatalf("delivered %d events, want 2", len(got))
	}
	if _, ok := got[0].(TriggeredEvent); !ok {
		t.Errorf("events[0] = %v", got[0])
	}
	if e, ok := got[1].(ErrorEvent); !ok || e.Message != "boom" {
		t.Errorf("events[1] = %v", got[1])
	}
}

func TestSession_CloseFromListener(t *testing.T) {
	t.Parallel()

	var s *Session
	calls := 0
	s = NewSession(ListenerFunc(func(Event) {
		calls++
		s.Close()
	}))
	s.Start()

	s.OnEvent(TriggeredEvent{})
	s.OnEvent(TriggeredEvent{})

	if calls != 1 {
		t.Errorf("listener called %d times, want 1", calls)
	}
	if !s.Closed() {
		t.Error("session not closed")
	}
}

func TestSession_ConcurrentCloseAndEvents(t *testing.T) {
	t.Parallel()

	rec := &recorder{}
	s := NewSession(rec)
	s.Start()

	var wg sync.WaitGroup
	for range 8 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for range 100 {
				s.OnEvent(TriggeredEvent{})
			}
		}()
	}
	s.Close()
	wg.Wait()

	n := len(rec.Events())
	s.OnEvent(TriggeredEvent{})
	if len(rec.Events()) != n {
		t.Error("event delivered after close")
	}
}
