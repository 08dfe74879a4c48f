// SPDX-License-Identifier: EPL-2.0

package audio

// BestMatch selects the format a consumer (sink or spotting engine) should
// use to read from a source.
//
// Every source/consumer pair is tried in order. Among compatible pairs the
// one with the most concrete attributes agreeing exactly wins; ties keep
// the first pair found, source order first then consumer order. The
// consumer side of the winning pair is returned, since that is the format
// the consumer will actually operate with.
//
// ok is false when no pair is compatible, including when either set is empty.
func BestMatch(source, consumer FormatSet) (f Format, ok bool) {
	best := -1
	for _, s := range source {
		for _, c := range consumer {
			if !s.Compatible(c) {
				continue
			}
			if score := s.agreement(c); score > best {
				best = score
				f = c
			}
		}
	}

	return f, best >= 0
}
