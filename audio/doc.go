// SPDX-License-Identifier: EPL-2.0

// Package audio describes audio streams and negotiates a common format
// between a producer and a consumer.
//
// This package contains the building blocks shared by the format probers
// and the trigger protocol:
//   - Format, the value description of a stream
//   - FormatSet and BestMatch for format negotiation
//   - Lookahead, a bounded peek-and-rewind reader
//   - Source and Stream contracts
//   - Prober registry
//
// # Formats
//
// A Format carries a container, a codec, the byte order and four numeric
// attributes. A numeric attribute is either concrete or a wildcard:
//
//	f := audio.Format{
//	    Container:  audio.ContainerWave,
//	    Codec:      audio.CodecPCMSigned,
//	    SampleRate: audio.Exactly(16000),
//	    // BitDepth, BitRate and Channels are audio.Any
//	}
//
// Two formats are compatible when container, codec and byte order are
// equal and no concrete attribute on one side contradicts a concrete
// attribute on the other.
//
// # Negotiation
//
// BestMatch picks the consumer format to use with a source:
//
//	f, ok := audio.BestMatch(src.SupportedFormats(), engine.SupportedFormats())
//	if !ok {
//	    // nothing in common
//	}
//
// Pairs agreeing on more concrete attributes are preferred. Ties are broken by
// the order of the two sets, so the result is reproducible.
//
// # Lookahead
//
// Header probing must not consume the stream. Lookahead buffers a bounded
// prefix and lets a prober inspect it:
//
//	l := audio.NewLookahead(file, 4096)
//	err := l.Inspect(200, func(r io.ReadSeeker) error {
//	    // parse the header from r
//	    return nil
//	})
//	// l still reads from the first byte
package audio
