// SPDX-License-Identifier: EPL-2.0

package formats

import (
	"bytes"
	"errors"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/ik5/kstrigger/audio"
	"github.com/ik5/kstrigger/formats/wav"
)

func writeWAVFile(t *testing.T, name string, f audio.Format, data []byte) string {
	t.Helper()

	buf := new(bytes.Buffer)
	if err := wav.WriteHeader(buf, f, uint32(len(data))); err != nil {
		t.Fatalf("WriteHeader() error = %v", err)
	}
	buf.Write(data)

	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, buf.Bytes(), 0o600); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}
	return path
}

func TestFileSource_ProbesWAV(t *testing.T) {
	t.Parallel()

	path := writeWAVFile(t, "hello.wav", audio.PCMSigned16Mono44k, make([]byte, 64))
	src := NewFileSource(path)

	if src.ID() != path {
		t.Errorf("ID() = %q, want %q", src.ID(), path)
	}

	set := src.SupportedFormats()
	if len(set) != 1 || set[0] != audio.PCMSigned16Mono44k {
		t.Fatalf("SupportedFormats() = %v, want [%v]", set, audio.PCMSigned16Mono44k)
	}

	f, ok := audio.BestMatch(set, audio.NewFormatSet(audio.MP3, audio.WAV))
	if !ok || f != audio.WAV {
		t.Fatalf("BestMatch() = %v, %v; want %v", f, ok, audio.WAV)
	}

	stream, err := src.InputStream(f)
	if err != nil {
		t.Fatalf("InputStream() error = %v", err)
	}
	defer stream.Close()

	if stream.Format() != audio.PCMSigned16Mono44k {
		t.Errorf("stream Format() = %v, want probed format", stream.Format())
	}

	b, err := io.ReadAll(stream)
	if err != nil {
		t.Fatalf("ReadAll() error = %v", err)
	}
	if len(b) != 44+64 || string(b[:4]) != "RIFF" {
		t.Errorf("stream did not start at the file header (len %d)", len(b))
	}
}

func TestFileSource_StreamCloses(t *testing.T) {
	t.Parallel()

	path := writeWAVFile(t, "a.wav", audio.PCMSigned16Mono44k, nil)
	stream, err := NewFileSource(path).InputStream(audio.WAV)
	if err != nil {
		t.Fatalf("InputStream() error = %v", err)
	}

	if err := stream.Close(); err != nil {
		t.Fatalf("Close() error = %v", err)
	}
	if _, err := stream.Read(make([]byte, 4)); !errors.Is(err, audio.ErrStreamClosed) {
		t.Errorf("Read() after Close error = %v, want ErrStreamClosed", err)
	}
}

func TestFileSource_IncompatibleFormat(t *testing.T) {
	t.Parallel()

	path := writeWAVFile(t, "a.wav", audio.PCMSigned16Mono44k, nil)
	_, err := NewFileSource(path).InputStream(audio.MP3)
	if !errors.Is(err, audio.ErrUnsupportedFormat) {
		t.Errorf("InputStream() error = %v, want ErrUnsupportedFormat", err)
	}
}

func TestFileSource_MalformedWAVFallsBack(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "broken.wav")
	if err := os.WriteFile(path, []byte("definitely not riff"), 0o600); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}

	f, err := NewFileSource(path).Format()
	if err != nil {
		t.Fatalf("Format() error = %v", err)
	}
	if f != wav.DefaultFormat {
		t.Errorf("Format() = %v, want wav.DefaultFormat", f)
	}
}

func TestFileSource_Missing(t *testing.T) {
	t.Parallel()

	src := NewFileSource(filepath.Join(t.TempDir(), "missing.wav"))
	if _, err := src.Format(); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("Format() error = %v, want os.ErrNotExist", err)
	}
	if set := src.SupportedFormats(); len(set) != 0 {
		t.Errorf("SupportedFormats() = %v, want empty", set)
	}
	if _, err := src.InputStream(audio.WAV); err == nil {
		t.Error("InputStream() error = nil, want error")
	}
}

func TestFileSource_UnknownExtension(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "clip.flac")
	if err := os.WriteFile(path, []byte("fLaC"), 0o600); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}

	if _, err := NewFileSource(path).Format(); !errors.Is(err, audio.ErrNoProber) {
		t.Errorf("Format() error = %v, want ErrNoProber", err)
	}
}

func TestFileSource_CustomRegistry(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "clip.raw")
	if err := os.WriteFile(path, []byte{0, 0}, 0o600); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}

	r := audio.NewRegistry()
	r.Register("raw", audio.ProberFunc(func(*audio.Lookahead) (audio.Format, error) {
		return audio.PCMSigned16Mono44k, nil
	}))

	f, err := NewFileSource(path, WithRegistry(r), WithPeekSize(512)).Format()
	if err != nil {
		t.Fatalf("Format() error = %v", err)
	}
	if f != audio.PCMSigned16Mono44k {
		t.Errorf("Format() = %v, want %v", f, audio.PCMSigned16Mono44k)
	}
}

func TestDefaultRegistry(t *testing.T) {
	t.Parallel()

	r := DefaultRegistry()
	for _, ext := range []string{"wav", "WAV", "aiff", "aif", "mp3", "ogg", "oga", "wave"} {
		if _, ok := r.Get(ext); !ok {
			t.Errorf("DefaultRegistry() has no prober for %q", ext)
		}
	}
}
