// SPDX-License-Identifier: EPL-2.0

package trigger

import (
	"errors"
	"fmt"
	"io"
	"testing"
)

func TestError_Message(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		err  *Error
		want string
	}{
		{"message only", NewError(KindEngine, "engine down"), "engine down"},
		{"message and cause", WrapError(KindStreamUnavailable, "no stream", io.EOF), "no stream: EOF"},
		{"cause only", WrapError(KindEngine, "", io.ErrUnexpectedEOF), "unexpected EOF"},
		{"neither", NewError(KindInvalidParameters, ""), "invalid parameters"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := tt.err.Error(); got != tt.want {
				t.Errorf("Error() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestError_IsKind(t *testing.T) {
	t.Parallel()

	err := fmt.Errorf("outer: %w", WrapError(KindStreamUnavailable, "no stream", io.EOF))

	if !errors.Is(err, ErrStreamUnavailable) {
		t.Error("errors.Is(err, ErrStreamUnavailable) = false")
	}
	if errors.Is(err, ErrEngine) {
		t.Error("errors.Is(err, ErrEngine) = true")
	}
	if !errors.Is(err, io.EOF) {
		t.Error("cause is not reachable through errors.Is")
	}

	var te *Error
	if !errors.As(err, &te) {
		t.Fatal("errors.As() failed")
	}
	if te.Kind() != KindStreamUnavailable || te.Message() != "no stream" {
		t.Errorf("As() = (%v, %q)", te.Kind(), te.Message())
	}
}

func TestError_SameKindDifferentMessage(t *testing.T) {
	t.Parallel()

	a := NewError(KindEngine, "a")
	b := NewError(KindEngine, "b")
	if errors.Is(a, b) {
		t.Error("errors with messages must only match the kind sentinels")
	}
}

func TestKindOf(t *testing.T) {
	t.Parallel()

	if got := KindOf(nil); got != KindUnknown {
		t.Errorf("KindOf(nil) = %v", got)
	}
	if got := KindOf(io.EOF); got != KindUnknown {
		t.Errorf("KindOf(io.EOF) = %v", got)
	}
	if got := KindOf(fmt.Errorf("x: %w", NewError(KindIncompatibleFormat, ""))); got != KindIncompatibleFormat {
		t.Errorf("KindOf() = %v, want %v", got, KindIncompatibleFormat)
	}
}
