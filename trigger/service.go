// SPDX-License-Identifier: EPL-2.0

package trigger

import (
	"golang.org/x/text/language"

	"github.com/ik5/kstrigger/audio"
)

// KeywordSpotter is a keyword spotting engine operating on an already
// opened stream.
type KeywordSpotter interface {
	ID() string
	Label(locale language.Tag) string

	SupportedLocales() []language.Tag
	SupportedFormats() audio.FormatSet

	// SpotStream starts a session on s and returns without waiting for
	// detection. Engines call CheckSpot before starting. l may be
	// invoked from any goroutine until the handle is aborted.
	SpotStream(l Listener, s audio.Stream, locale language.Tag, keyword string) (Handle, error)
}

// DialogContext carries what a source-driven session needs.
type DialogContext struct {
	Source  audio.Source
	Locale  language.Tag
	Keyword string
}

// Service is a dialog trigger started from a DialogContext. The stream is
// opened on the caller's behalf and released when the session is aborted.
type Service interface {
	ID() string
	Label(locale language.Tag) string

	Spot(l Listener, dc DialogContext) (Handle, error)
}
