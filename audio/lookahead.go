// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io"
)

// MinLookahead is the smallest capacity NewLookahead will allocate.
const MinLookahead = 200

// Lookahead wraps a byte source with a bounded rewind window. Callers can
// inspect up to Max bytes ahead of the read position without consuming them.
//
// A Lookahead is not safe for concurrent use.
type Lookahead struct {
	br  *bufio.Reader
	max int
}

// NewLookahead wraps r so that up to max bytes can be peeked. max values
// below MinLookahead are raised to MinLookahead.
func NewLookahead(r io.Reader, max int) *Lookahead {
	if max < MinLookahead {
		max = MinLookahead
	}
	return &Lookahead{br: bufio.NewReaderSize(r, max), max: max}
}

// Max returns the size of the rewind window.
func (l *Lookahead) Max() int { return l.max }

// Peek returns up to n bytes ahead of the read position without advancing
// it. Fewer bytes are returned, with a nil error, when the source ends
// first. The returned slice is only valid until the next Read.
func (l *Lookahead) Peek(n int) ([]byte, error) {
	if n < 0 {
		return nil, fmt.Errorf("peek %d bytes: negative count", n)
	}
	if n > l.max {
		return nil, fmt.Errorf("peek %d bytes beyond %d byte window: %w", n, l.max, ErrRewindUnsupported)
	}

	b, err := l.br.Peek(n)
	if err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("peek %d bytes: %w", n, err)
	}

	return b, nil
}

// Inspect peeks up to n bytes and hands fn a reader over them. The read
// position of l is the same after Inspect returns as before, whatever fn
// does. fn must not read from l itself.
func (l *Lookahead) Inspect(n int, fn func(r io.ReadSeeker) error) error {
	b, err := l.Peek(n)
	if err != nil {
		return err
	}

	return fn(bytes.NewReader(b))
}

// Read consumes buffered bytes first, then reads from the wrapped source.
func (l *Lookahead) Read(p []byte) (int, error) {
	return l.br.Read(p)
}
