// SPDX-License-Identifier: EPL-2.0

// Package mp3 probes the format of MP3 streams.
//
// Probe decodes the first frame header with github.com/hajimehoshi/go-mp3
// to learn the sample rate. No samples are decoded beyond that frame and
// nothing is consumed from the stream.
//
//	l := audio.NewLookahead(file, mp3.ProbeSize)
//	f, err := mp3.Probe(l)
//	// f.Codec == audio.CodecMP3
//
// # Probe window
//
// ProbeSize bytes are peeked. Large ID3v2 tags with embedded artwork can
// push the first frame past the window; such files report audio.MP3.
//
// # Fallback
//
// Errors are only returned when the underlying source fails. A prefix
// that does not decode yields audio.MP3, which is compatible with every
// MP3 consumer.
package mp3
