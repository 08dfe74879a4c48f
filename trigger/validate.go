// SPDX-License-Identifier: EPL-2.0

package trigger

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"golang.org/x/text/language"

	"github.com/ik5/kstrigger/audio"
)

var validate = validator.New()

// CheckSpot verifies the inputs of a SpotStream call: the stream format is
// supported by ks, a keyword is given and the locale matches one ks
// supports. Engines call it before entering Spotting.
func CheckSpot(ks KeywordSpotter, s audio.Stream, locale language.Tag, keyword string) error {
	if s == nil {
		return NewError(KindInvalidParameters, "audio stream cannot be nil")
	}

	if !ks.SupportedFormats().Compatible(s.Format()) {
		return NewError(KindIncompatibleFormat,
			fmt.Sprintf("audio format %s is not supported by dialog trigger service '%s'", s.Format(), ks.ID()))
	}

	if err := checkKeyword(keyword); err != nil {
		return err
	}

	if !localeSupported(ks.SupportedLocales(), locale) {
		return NewError(KindInvalidParameters,
			fmt.Sprintf("locale %s is not supported by dialog trigger service '%s'", locale, ks.ID()))
	}

	return nil
}

func checkKeyword(keyword string) error {
	if err := validate.Var(strings.TrimSpace(keyword), "required"); err != nil {
		return WrapError(KindInvalidParameters, "keyword cannot be empty", err)
	}
	return nil
}

func localeSupported(supported []language.Tag, t language.Tag) bool {
	if len(supported) == 0 {
		return false
	}

	_, _, conf := language.NewMatcher(supported).Match(t)
	return conf != language.No
}
