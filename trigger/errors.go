// SPDX-License-Identifier: EPL-2.0

package trigger

import "errors"

// Kind classifies trigger failures so callers can handle every session
// start failure through one path.
type Kind uint8

const (
	// KindUnknown is for unclassified errors
	KindUnknown Kind = iota

	// KindIncompatibleFormat is for sources and engines without a common format
	KindIncompatibleFormat

	// KindInvalidParameters is for a missing keyword, listener, source or an unsupported locale
	KindInvalidParameters

	// KindStreamUnavailable is for failures opening the negotiated stream
	KindStreamUnavailable

	// KindEngine is for engines refusing to start a session
	KindEngine
)

func (k Kind) String() string {
	switch k {
	case KindIncompatibleFormat:
		return "incompatible audio format"
	case KindInvalidParameters:
		return "invalid parameters"
	case KindStreamUnavailable:
		return "audio stream unavailable"
	case KindEngine:
		return "dialog trigger engine failure"
	default:
		return "dialog trigger failure"
	}
}

// Sentinels for errors.Is; any *Error of the same kind matches.
var (
	ErrIncompatibleFormat = &Error{kind: KindIncompatibleFormat}
	ErrInvalidParameters  = &Error{kind: KindInvalidParameters}
	ErrStreamUnavailable  = &Error{kind: KindStreamUnavailable}
	ErrEngine             = &Error{kind: KindEngine}
)

// Error is the failure type returned when a session cannot start.
// Message and cause are both optional.
type Error struct {
	kind  Kind
	msg   string
	cause error
}

// NewError returns an error of the given kind. msg may be empty.
func NewError(kind Kind, msg string) *Error {
	return &Error{kind: kind, msg: msg}
}

// WrapError returns an error of the given kind wrapping cause. Either msg
// or cause may be empty.
func WrapError(kind Kind, msg string, cause error) *Error {
	return &Error{kind: kind, msg: msg, cause: cause}
}

func (e *Error) Error() string {
	if e == nil {
		return "<nil>"
	}
	switch {
	case e.msg != "" && e.cause != nil:
		return e.msg + ": " + e.cause.Error()
	case e.msg != "":
		return e.msg
	case e.cause != nil:
		return e.cause.Error()
	default:
		return e.kind.String()
	}
}

// Unwrap returns the wrapped cause, if any
func (e *Error) Unwrap() error { return e.cause }

// Kind returns the failure kind
func (e *Error) Kind() Kind { return e.kind }

// Message returns the message without the cause
func (e *Error) Message() string { return e.msg }

// Is matches the kind sentinels.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok || t.msg != "" || t.cause != nil {
		return false
	}
	return t.kind == e.kind
}

// KindOf extracts the Kind from any error, defaulting to KindUnknown
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.kind
	}
	return KindUnknown
}
