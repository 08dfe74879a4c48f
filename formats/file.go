// SPDX-License-Identifier: EPL-2.0

package formats

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/ik5/kstrigger/audio"
	"github.com/ik5/kstrigger/formats/aiff"
	"github.com/ik5/kstrigger/formats/mp3"
	"github.com/ik5/kstrigger/formats/vorbis"
	"github.com/ik5/kstrigger/formats/wav"
)

// PeekSize is the default lookahead window used to probe files.
const PeekSize = 64 << 10

// DefaultRegistry returns a registry with the built-in probers keyed by
// file extension.
func DefaultRegistry() *audio.Registry {
	r := audio.NewRegistry()
	r.Register("wav", wav.Prober{})
	r.Register("wave", wav.Prober{})
	r.Register("aif", aiff.Prober{})
	r.Register("aiff", aiff.Prober{})
	r.Register("mp3", mp3.Prober{})
	r.Register("ogg", vorbis.Prober{})
	r.Register("oga", vorbis.Prober{})
	return r
}

// FileSource is an audio.Source reading from a file on disk.
type FileSource struct {
	path     string
	registry *audio.Registry
	peek     int

	once   sync.Once
	format audio.Format
	err    error
}

// Option configures a FileSource.
type Option func(*FileSource)

// WithRegistry selects the probers used for the file.
func WithRegistry(r *audio.Registry) Option {
	return func(s *FileSource) { s.registry = r }
}

// WithPeekSize sets the lookahead window used for probing and for the
// streams returned by InputStream.
func WithPeekSize(n int) Option {
	return func(s *FileSource) { s.peek = n }
}

func NewFileSource(path string, opts ...Option) *FileSource {
	s := &FileSource{path: path, peek: PeekSize}
	for _, opt := range opts {
		opt(s)
	}
	if s.registry == nil {
		s.registry = DefaultRegistry()
	}
	return s
}

// ID returns the file path.
func (s *FileSource) ID() string { return s.path }

// Format probes the file on first use and returns the cached result.
func (s *FileSource) Format() (audio.Format, error) {
	s.once.Do(func() {
		s.format, s.err = s.probe()
	})
	return s.format, s.err
}

func (s *FileSource) probe() (audio.Format, error) {
	ext := strings.TrimPrefix(filepath.Ext(s.path), ".")

	file, err := os.Open(s.path)
	if err != nil {
		return audio.Format{}, fmt.Errorf("%w", err)
	}
	defer file.Close()

	f, err := s.registry.Probe(ext, audio.NewLookahead(file, s.peek))
	if err != nil {
		return audio.Format{}, fmt.Errorf("probe %s: %w", s.path, err)
	}

	return f, nil
}

// SupportedFormats returns the probed format, or an empty set when the
// file could not be probed.
func (s *FileSource) SupportedFormats() audio.FormatSet {
	f, err := s.Format()
	if err != nil {
		return nil
	}
	return audio.NewFormatSet(f)
}

// InputStream opens the file. f must be compatible with the probed
// format; the returned stream reports the probed format.
func (s *FileSource) InputStream(f audio.Format) (audio.Stream, error) {
	probed, err := s.Format()
	if err != nil {
		return nil, err
	}
	if !probed.Compatible(f) {
		return nil, fmt.Errorf("%s cannot produce %v: %w", s.path, f, audio.ErrUnsupportedFormat)
	}

	file, err := os.Open(s.path)
	if err != nil {
		return nil, fmt.Errorf("%w", err)
	}

	return audio.NewStream(audio.NewLookahead(file, s.peek), file, probed), nil
}
