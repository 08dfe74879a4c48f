// SPDX-License-Identifier: EPL-2.0

package audio

import "errors"

var (
	ErrRewindUnsupported = errors.New("source does not support the required rewind")
	ErrStreamClosed      = errors.New("audio stream is closed")
	ErrUnsupportedFormat = errors.New("unsupported audio format")
	ErrNoProber          = errors.New("no prober registered")
)
