// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"bytes"
	"errors"
	"io"
	"testing"
)

// failingReader returns data once, then a fixed error.
type failingReader struct {
	data []byte
	err  error
}

func (r *failingReader) Read(p []byte) (int, error) {
	if len(r.data) == 0 {
		return 0, r.err
	}
	n := copy(p, r.data)
	r.data = r.data[n:]
	return n, nil
}

func TestLookahead_PeekDoesNotConsume(t *testing.T) {
	t.Parallel()

	data := []byte("RIFF....WAVEfmt ")
	l := NewLookahead(bytes.NewReader(data), 0)

	b, err := l.Peek(4)
	if err != nil {
		t.Fatalf("Peek() error = %v", err)
	}
	if string(b) != "RIFF" {
		t.Errorf("Peek() = %q, want %q", b, "RIFF")
	}

	all, err := io.ReadAll(l)
	if err != nil {
		t.Fatalf("ReadAll() error = %v", err)
	}
	if !bytes.Equal(all, data) {
		t.Errorf("ReadAll() = %q, want %q", all, data)
	}
}

func TestLookahead_MinimumWindow(t *testing.T) {
	t.Parallel()

	l := NewLookahead(bytes.NewReader(nil), 10)
	if l.Max() != MinLookahead {
		t.Errorf("Max() = %d, want %d", l.Max(), MinLookahead)
	}
}

func TestLookahead_ShortSource(t *testing.T) {
	t.Parallel()

	l := NewLookahead(bytes.NewReader([]byte("abc")), 0)

	b, err := l.Peek(100)
	if err != nil {
		t.Fatalf("Peek() error = %v, want nil for short source", err)
	}
	if string(b) != "abc" {
		t.Errorf("Peek() = %q, want %q", b, "abc")
	}
}

func TestLookahead_BeyondWindow(t *testing.T) {
	t.Parallel()

	l := NewLookahead(bytes.NewReader(make([]byte, 1024)), 256)

	_, err := l.Peek(257)
	if !errors.Is(err, ErrRewindUnsupported) {
		t.Errorf("Peek() error = %v, want ErrRewindUnsupported", err)
	}

	if _, err := l.Peek(-1); err == nil {
		t.Error("Peek(-1) error = nil, want error")
	}
}

func TestLookahead_ReadErrorPropagates(t *testing.T) {
	t.Parallel()

	boom := errors.New("device unplugged")
	l := NewLookahead(&failingReader{data: []byte("RI"), err: boom}, 0)

	_, err := l.Peek(12)
	if !errors.Is(err, boom) {
		t.Errorf("Peek() error = %v, want %v", err, boom)
	}
}

func TestLookahead_InspectRestoresPosition(t *testing.T) {
	t.Parallel()

	data := []byte("0123456789")
	l := NewLookahead(bytes.NewReader(data), 0)

	first := make([]byte, 2)
	if _, err := io.ReadFull(l, first); err != nil {
		t.Fatalf("ReadFull() error = %v", err)
	}

	fnErr := errors.New("parse failed")
	err := l.Inspect(5, func(r io.ReadSeeker) error {
		b, _ := io.ReadAll(r)
		if string(b) != "23456" {
			t.Errorf("inspected %q, want %q", b, "23456")
		}
		return fnErr
	})
	if !errors.Is(err, fnErr) {
		t.Errorf("Inspect() error = %v, want %v", err, fnErr)
	}

	rest, _ := io.ReadAll(l)
	if string(rest) != "23456789" {
		t.Errorf("after Inspect() read %q, want %q", rest, "23456789")
	}
}

func TestLookahead_InspectPeekError(t *testing.T) {
	t.Parallel()

	l := NewLookahead(bytes.NewReader(nil), 0)
	called := false
	err := l.Inspect(MinLookahead+1, func(io.ReadSeeker) error {
		called = true
		return nil
	})

	if !errors.Is(err, ErrRewindUnsupported) {
		t.Errorf("Inspect() error = %v, want ErrRewindUnsupported", err)
	}
	if called {
		t.Error("Inspect() called fn after a failed peek")
	}
}
