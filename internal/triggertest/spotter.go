// SPDX-License-Identifier: EPL-2.0

package triggertest

import (
	"errors"
	"sync"

	"golang.org/x/text/language"

	"github.com/ik5/kstrigger/audio"
	"github.com/ik5/kstrigger/trigger"
)

const (
	SpotterID    = "stub-spotter"
	SpotterLabel = "Stub keyword spotter"

	// ErrorMessage is carried by the ErrorEvent of ModeError.
	ErrorMessage = "keyword spotting failed"
)

var (
	// ErrStart is returned by SpotStream in ModeFailStart.
	ErrStart = errors.New("keyword spotter refused to start")

	// ErrAbort is the panic value of a panicking inner abort.
	ErrAbort = errors.New("keyword spotter abort failed")
)

// Mode selects how the stub Spotter behaves once a session starts.
type Mode int

const (
	// ModeTrigger delivers a TriggeredEvent before SpotStream returns.
	ModeTrigger Mode = iota

	// ModeError delivers an ErrorEvent before SpotStream returns.
	ModeError

	// ModeFailStart makes SpotStream return ErrStart.
	ModeFailStart

	// ModeSilent starts a session that never emits.
	ModeSilent

	// ModeLate delivers a TriggeredEvent from a goroutine once Release is
	// called, whether or not the session was aborted.
	ModeLate
)

// Spotter is a scriptable trigger.KeywordSpotter. Its handle is not
// idempotent: every Abort call is counted.
type Spotter struct {
	mode       Mode
	formats    audio.FormatSet
	locales    []language.Tag
	check      bool
	abortPanic bool

	release chan struct{}
	done    chan struct{}

	mtx     sync.Mutex
	calls   int
	aborts  int
	stream  audio.Stream
	keyword string
	locale  language.Tag
}

// SpotterOption configures a Spotter.
type SpotterOption func(*Spotter)

func WithMode(m Mode) SpotterOption { return func(s *Spotter) { s.mode = m } }

func WithFormats(f ...audio.Format) SpotterOption {
	return func(s *Spotter) { s.formats = audio.NewFormatSet(f...) }
}

func WithLocales(t ...language.Tag) SpotterOption {
	return func(s *Spotter) { s.locales = t }
}

// WithCheck makes SpotStream run trigger.CheckSpot first.
func WithCheck() SpotterOption { return func(s *Spotter) { s.check = true } }

// WithAbortPanic makes the inner abort panic with ErrAbort.
func WithAbortPanic() SpotterOption { return func(s *Spotter) { s.abortPanic = true } }

// NewSpotter returns a spotter supporting WAV and English by default.
func NewSpotter(opts ...SpotterOption) *Spotter {
	s := &Spotter{
		formats: audio.FormatSet{audio.WAV},
		locales: []language.Tag{language.English},
		release: make(chan struct{}),
		done:    make(chan struct{}),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *Spotter) ID() string                        { return SpotterID }
func (s *Spotter) Label(language.Tag) string         { return SpotterLabel }
func (s *Spotter) SupportedLocales() []language.Tag  { return s.locales }
func (s *Spotter) SupportedFormats() audio.FormatSet { return s.formats }

func (s *Spotter) SpotStream(l trigger.Listener, st audio.Stream, locale language.Tag, keyword string) (trigger.Handle, error) {
	s.mtx.Lock()
	s.calls++
	s.stream, s.locale, s.keyword = st, locale, keyword
	s.mtx.Unlock()

	if s.check {
		if err := trigger.CheckSpot(s, st, locale, keyword); err != nil {
			return nil, err
		}
	}

	switch s.mode {
	case ModeFailStart:
		return nil, ErrStart
	case ModeTrigger:
		l.OnEvent(trigger.TriggeredEvent{})
	case ModeError:
		l.OnEvent(trigger.ErrorEvent{Message: ErrorMessage})
	case ModeLate:
		go func() {
			<-s.release
			l.OnEvent(trigger.TriggeredEvent{})
			close(s.done)
		}()
	}

	return trigger.HandleFunc(s.abort), nil
}

func (s *Spotter) abort() {
	s.mtx.Lock()
	s.aborts++
	s.mtx.Unlock()

	if s.abortPanic {
		panic(ErrAbort)
	}
}

// Release lets a ModeLate session emit, and waits for the emit to finish.
func (s *Spotter) Release() {
	close(s.release)
	<-s.done
}

// Calls returns how many times SpotStream was called.
func (s *Spotter) Calls() int {
	s.mtx.Lock()
	defer s.mtx.Unlock()
	return s.calls
}

// Aborts returns how many times the inner handle was aborted.
func (s *Spotter) Aborts() int {
	s.mtx.Lock()
	defer s.mtx.Unlock()
	return s.aborts
}

// Last returns the arguments of the latest SpotStream call.
func (s *Spotter) Last() (audio.Stream, language.Tag, string) {
	s.mtx.Lock()
	defer s.mtx.Unlock()
	return s.stream, s.locale, s.keyword
}
