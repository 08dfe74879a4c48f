// SPDX-License-Identifier: EPL-2.0

package aiff

import "errors"

var (
	// ErrNotAiffFile indicates the header is not a valid AIFF header
	ErrNotAiffFile = errors.New("not an AIFF file")
)
