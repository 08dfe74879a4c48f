// SPDX-License-Identifier: EPL-2.0

// Package vorbis probes the format of Ogg Vorbis streams.
//
// Probe uses github.com/jfreymuth/oggvorbis to read the identification
// and setup headers, reporting sample rate and channel count:
//
//	l := audio.NewLookahead(file, vorbis.ProbeSize)
//	f, err := vorbis.Probe(l)
//
// # Fallback
//
// When the headers cannot be read the result is audio.OGG with wildcard
// parameters. Only read failures of the source are returned as errors.
package vorbis
