// SPDX-License-Identifier: EPL-2.0

package trigger

import (
	"errors"
	"fmt"
	"sync"

	"github.com/rs/zerolog"

	"github.com/ik5/kstrigger/audio"
)

// Option configures SpotContext and Adapt.
type Option func(*options)

type options struct {
	log zerolog.Logger
}

// WithLogger sets the logger for session lifecycle messages. The default
// discards everything.
func WithLogger(l zerolog.Logger) Option {
	return func(o *options) { o.log = l }
}

func newOptions(opts []Option) options {
	o := options{log: zerolog.Nop()}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// SpotContext starts a session on ks reading from dc.Source. The source is
// asked for the best format both sides support; the opened stream belongs
// to the returned Handle and is closed on Abort.
//
// No stream is opened when the format negotiation or the keyword check
// fails. When the engine refuses to start, the stream is closed before
// returning.
func SpotContext(ks KeywordSpotter, l Listener, dc DialogContext, opts ...Option) (Handle, error) {
	o := newOptions(opts)

	if ks == nil {
		return nil, NewError(KindInvalidParameters, "dialog trigger service cannot be nil")
	}
	if l == nil {
		return nil, NewError(KindInvalidParameters, "listener cannot be nil")
	}
	if dc.Source == nil {
		return nil, NewError(KindInvalidParameters, "audio source cannot be nil")
	}

	format, ok := audio.BestMatch(dc.Source.SupportedFormats(), ks.SupportedFormats())
	if !ok {
		return nil, NewError(KindIncompatibleFormat, fmt.Sprintf(
			"no compatible audio format found for dialog trigger service '%s' and source '%s'",
			ks.ID(), dc.Source.ID()))
	}

	if err := checkKeyword(dc.Keyword); err != nil {
		return nil, err
	}

	stream, err := dc.Source.InputStream(format)
	if err != nil {
		return nil, WrapError(KindStreamUnavailable,
			fmt.Sprintf("unable to get audio stream from source '%s'", dc.Source.ID()), err)
	}

	sess := NewSession(l)
	log := o.log.With().
		Str("session", sess.ID()).
		Str("engine", ks.ID()).
		Str("source", dc.Source.ID()).
		Logger()
	sess.Start()

	inner, err := ks.SpotStream(sess, stream, dc.Locale, dc.Keyword)
	if err != nil {
		sess.Close()
		closeStream(log, stream)
		log.Debug().Err(err).Msg("engine refused to start")

		var te *Error
		if errors.As(err, &te) {
			return nil, err
		}
		return nil, WrapError(KindEngine,
			fmt.Sprintf("dialog trigger service '%s' failed to start", ks.ID()), err)
	}
	if inner == nil {
		inner = HandleFunc(func() {})
	}

	log.Debug().Stringer("format", format).Str("keyword", dc.Keyword).Msg("spotting started")

	return &streamHandle{inner: inner, stream: stream, session: sess, log: log}, nil
}

// streamHandle aborts the engine and releases the stream SpotContext opened.
type streamHandle struct {
	once    sync.Once
	inner   Handle
	stream  audio.Stream
	session *Session
	log     zerolog.Logger
}

func (h *streamHandle) Abort() {
	h.once.Do(func() {
		h.session.Close()
		defer closeStream(h.log, h.stream)

		h.log.Debug().Msg("aborting spotting")
		h.inner.Abort()
	})
}

func closeStream(log zerolog.Logger, s audio.Stream) {
	if err := s.Close(); err != nil {
		log.Warn().Err(err).Msg("unable to close audio stream")
	}
}

// Adapter turns a KeywordSpotter into a Service.
type Adapter struct {
	KeywordSpotter

	opts []Option
}

var _ Service = (*Adapter)(nil)

func Adapt(ks KeywordSpotter, opts ...Option) *Adapter {
	return &Adapter{KeywordSpotter: ks, opts: opts}
}

// Spot is SpotContext on the wrapped engine.
func (a *Adapter) Spot(l Listener, dc DialogContext) (Handle, error) {
	return SpotContext(a.KeywordSpotter, l, dc, a.opts...)
}
