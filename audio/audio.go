// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"fmt"
	"io"
	"strings"
	"sync"
)

// Stream is an open audio byte stream in a known format.
type Stream interface {
	io.ReadCloser
	// Format of the bytes returned by Read.
	Format() Format
}

// Source produces audio streams, e.g. a microphone or a file.
type Source interface {
	// ID uniquely identifies the source.
	ID() string
	// SupportedFormats lists the formats InputStream can produce.
	SupportedFormats() FormatSet
	// InputStream opens a new stream in format f.
	InputStream(f Format) (Stream, error)
}

// Prober recovers the format of a stream from its leading bytes without
// consuming them.
type Prober interface {
	Probe(l *Lookahead) (Format, error)
}

// ProberFunc adapts a function to the Prober interface.
type ProberFunc func(l *Lookahead) (Format, error)

func (f ProberFunc) Probe(l *Lookahead) (Format, error) { return f(l) }

// Registry for probers by key (e.g., "wav", "mp3", "ogg").
// Keys are case insensitive.
type Registry struct {
	probers map[string]Prober

	mtx *sync.Mutex
}

func NewRegistry() *Registry {
	return &Registry{
		probers: make(map[string]Prober),
		mtx:     &sync.Mutex{},
	}
}

func (r *Registry) Register(key string, p Prober) {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	r.probers[strings.ToLower(key)] = p
}

func (r *Registry) Get(key string) (Prober, bool) {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	p, ok := r.probers[strings.ToLower(key)]
	return p, ok
}

// Probe looks up the prober for key and runs it on l.
func (r *Registry) Probe(key string, l *Lookahead) (Format, error) {
	p, ok := r.Get(key)
	if !ok {
		return Format{}, fmt.Errorf("%q: %w", key, ErrNoProber)
	}

	return p.Probe(l)
}

// readStream is a Stream over a reader with an optional closer.
type readStream struct {
	r      io.Reader
	c      io.Closer
	format Format

	mtx    sync.Mutex
	closed bool
}

// NewStream returns a Stream reading from r in format f. Closing the
// stream closes c when it is not nil. Reads after Close fail with
// ErrStreamClosed and further Close calls return nil.
func NewStream(r io.Reader, c io.Closer, f Format) Stream {
	return &readStream{r: r, c: c, format: f}
}

func (s *readStream) Format() Format { return s.format }

func (s *readStream) Read(p []byte) (int, error) {
	s.mtx.Lock()
	closed := s.closed
	s.mtx.Unlock()

	if closed {
		return 0, ErrStreamClosed
	}

	return s.r.Read(p)
}

func (s *readStream) Close() error {
	s.mtx.Lock()
	if s.closed {
		s.mtx.Unlock()
		return nil
	}
	s.closed = true
	s.mtx.Unlock()

	if s.c == nil {
		return nil
	}
	if err := s.c.Close(); err != nil {
		return fmt.Errorf("%w", err)
	}

	return nil
}
