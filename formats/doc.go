// SPDX-License-Identifier: EPL-2.0

// Package formats provides file-backed audio sources.
//
// A FileSource probes its file once, choosing a prober by file extension,
// and reports the result as its only supported format:
//
//	src := formats.NewFileSource("greeting.wav")
//	f, ok := audio.BestMatch(src.SupportedFormats(), engine.SupportedFormats())
//	stream, err := src.InputStream(f)
//
// Streams start at the first byte of the file. Headers are inspected
// through an audio.Lookahead and never consumed.
//
// Subpackages hold the per-container probers:
//   - formats/wav
//   - formats/aiff
//   - formats/mp3
//   - formats/vorbis
package formats
