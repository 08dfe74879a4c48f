package audio

import (
	"errors"
	"fmt"
	"testing"
)

func TestErrors_Messages(t *testing.T) {
	t.Parallel()

	tests := []struct {
		err  error
		want string
	}{
		{ErrRewindUnsupported, "source does not support the required rewind"},
		{ErrStreamClosed, "audio stream is closed"},
		{ErrUnsupportedFormat, "unsupported audio format"},
		{ErrNoProber, "no prober registered"},
	}

	for _, tt := range tests {
		if tt.err.Error() != tt.want {
			t.Errorf("Error() = %q, want %q", tt.err.Error(), tt.want)
		}
	}
}

func TestErrors_Wrapping(t *testing.T) {
	t.Parallel()

	wrapped := fmt.Errorf("peek: %w", ErrRewindUnsupported)
	if !errors.Is(wrapped, ErrRewindUnsupported) {
		t.Error("errors.Is() failed for wrapped ErrRewindUnsupported")
	}

	if errors.Is(wrapped, ErrStreamClosed) {
		t.Error("errors.Is() should return false for a different sentinel")
	}
}
