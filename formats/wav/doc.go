// SPDX-License-Identifier: EPL-2.0

// Package wav recovers stream formats from WAV headers.
//
// ParseFormat inspects at most HeaderSize bytes through an audio.Lookahead
// and never consumes them, so the same reader can be handed on to a sink
// or a spotting engine afterwards:
//
//	l := audio.NewLookahead(file, wav.HeaderSize)
//	f, err := wav.ParseFormat(l)
//	if err != nil {
//	    // the source itself failed
//	}
//	stream := audio.NewStream(l, file, f)
//
// # Fallback
//
// A stream that does not carry a well formed RIFF/WAVE header is not
// rejected. ParseFormat returns DefaultFormat (PCM signed, 16-bit,
// 44.1 kHz, mono) so playback can still be attempted. Use DecodeHeader
// to learn why a header was rejected.
//
// # Encodings
//
// The fmt chunk tag maps to a codec as follows:
//   - 1 (PCM): PCM_UNSIGNED up to 8 bits, PCM_SIGNED above
//   - 6: PCM_ALAW
//   - 7: PCM_ULAW
//   - 3 (IEEE float): unknown codec
//   - 0xFFFE (extensible): the tag embedded in the SubFormat GUID, mapped
//     by the rules above; float and unrecognised GUIDs give an unknown codec
//
// Any other tag is treated as an unsupported header.
//
// # Writing headers
//
// WriteHeader emits the canonical 44-byte header for a concrete format.
package wav
