// SPDX-License-Identifier: EPL-2.0

package triggertest

import (
	"bytes"
	"encoding/binary"
	"math"
	"sync"

	"github.com/ik5/kstrigger/audio"
)

// Stream is an in-memory audio.Stream that records Close calls.
type Stream struct {
	mtx      sync.Mutex
	r        *bytes.Reader
	format   audio.Format
	closeErr error
	closes   int
}

// NewStream returns a stream over data described by f.
func NewStream(data []byte, f audio.Format) *Stream {
	return &Stream{r: bytes.NewReader(data), format: f}
}

func (s *Stream) Format() audio.Format { return s.format }

func (s *Stream) Read(p []byte) (int, error) {
	s.mtx.Lock()
	defer s.mtx.Unlock()

	if s.closes > 0 {
		return 0, audio.ErrStreamClosed
	}
	return s.r.Read(p)
}

// Close always records the call and returns the configured error, if any.
func (s *Stream) Close() error {
	s.mtx.Lock()
	defer s.mtx.Unlock()

	s.closes++
	return s.closeErr
}

// Closes returns how many times Close was called.
func (s *Stream) Closes() int {
	s.mtx.Lock()
	defer s.mtx.Unlock()
	return s.closes
}

// Source is an in-memory audio.Source. Every InputStream call returns a
// new Stream over the same data, formatted as requested.
type Source struct {
	id      string
	formats audio.FormatSet
	data    []byte

	openErr  error
	closeErr error

	mtx     sync.Mutex
	streams []*Stream
}

// NewSource returns a source supporting formats.
func NewSource(id string, formats ...audio.Format) *Source {
	return &Source{id: id, formats: audio.NewFormatSet(formats...)}
}

// WithData sets the bytes served by new streams.
func (s *Source) WithData(b []byte) *Source {
	s.data = b
	return s
}

// FailOpen makes InputStream return err.
func (s *Source) FailOpen(err error) *Source {
	s.openErr = err
	return s
}

// FailClose makes Close on new streams return err.
func (s *Source) FailClose(err error) *Source {
	s.closeErr = err
	return s
}

func (s *Source) ID() string                        { return s.id }
func (s *Source) SupportedFormats() audio.FormatSet { return s.formats }

func (s *Source) InputStream(f audio.Format) (audio.Stream, error) {
	if s.openErr != nil {
		return nil, s.openErr
	}

	st := NewStream(s.data, f)
	st.closeErr = s.closeErr

	s.mtx.Lock()
	s.streams = append(s.streams, st)
	s.mtx.Unlock()

	return st, nil
}

// Streams returns every stream handed out so far.
func (s *Source) Streams() []*Stream {
	s.mtx.Lock()
	defer s.mtx.Unlock()
	return append([]*Stream(nil), s.streams...)
}

// Sine returns n samples of a 16-bit little endian mono sine wave.
func Sine(sampleRate, n int, frequency float64) []byte {
	b := make([]byte, 2*n)
	for i := range n {
		t := float64(i) / float64(sampleRate)
		v := int16(math.Sin(2*math.Pi*frequency*t) * math.MaxInt16)
		binary.LittleEndian.PutUint16(b[2*i:], uint16(v))
	}
	return b
}
