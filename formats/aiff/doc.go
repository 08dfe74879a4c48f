// SPDX-License-Identifier: EPL-2.0

// Package aiff probes the format of AIFF streams.
//
// It uses the github.com/go-audio/aiff library to read the FORM and COMM
// chunks from a bounded prefix of the stream:
//
//	l := audio.NewLookahead(file, aiff.ProbeSize)
//	f, err := aiff.Probe(l)
//
// # Reported format
//
// AIFF sample data is big-endian signed PCM, so every probed format has
// container AIFF, codec PCM_SIGNED and the big-endian flag set. Bit depth,
// sample rate and channel count come from the COMM chunk and the bit rate
// is derived from them.
//
// # Fallback
//
// A header that cannot be decoded yields audio.AIFF with wildcard
// parameters. Only read failures of the source are returned as errors.
package aiff
