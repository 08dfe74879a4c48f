// SPDX-License-Identifier: EPL-2.0

package kstrigger

import (
	"golang.org/x/text/language"

	"github.com/ik5/kstrigger/formats"
	"github.com/ik5/kstrigger/trigger"
)

// SpotFile starts a keyword spotting session on the audio file at path.
//
// The file is probed by extension, a format is negotiated with ks and the
// stream is handed to the engine; see trigger.SpotContext for the failure
// kinds. A file that cannot be probed fails with
// trigger.KindStreamUnavailable.
func SpotFile(ks trigger.KeywordSpotter, path string, l trigger.Listener, locale language.Tag, keyword string, opts ...trigger.Option) (trigger.Handle, error) {
	src := formats.NewFileSource(path)
	if _, err := src.Format(); err != nil {
		return nil, trigger.WrapError(trigger.KindStreamUnavailable, "unable to probe audio file", err)
	}

	return trigger.SpotContext(ks, l, trigger.DialogContext{
		Source:  src,
		Locale:  locale,
		Keyword: keyword,
	}, opts...)
}
