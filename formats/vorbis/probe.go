// SPDX-License-Identifier: EPL-2.0

package vorbis

import (
	"bytes"
	"fmt"

	"github.com/jfreymuth/oggvorbis"

	"github.com/ik5/kstrigger/audio"
)

// ProbeSize is the largest prefix Probe inspects. The Vorbis setup
// header must fit into it.
const ProbeSize = 64 << 10

// oggInfo is the part of oggvorbis.Reader used by Probe, to allow testing
type oggInfo interface {
	SampleRate() int
	Channels() int
}

func formatOf(info oggInfo) audio.Format {
	f := audio.OGG
	if rate := info.SampleRate(); rate > 0 {
		f.SampleRate = audio.Exactly(rate)
	}
	if ch := info.Channels(); ch > 0 {
		f.Channels = audio.Exactly(ch)
	}
	return f
}

// Probe reads the Vorbis identification headers at the read position of
// l without consuming them. An undecodable prefix yields audio.OGG with
// wildcard parameters.
func Probe(l *audio.Lookahead) (audio.Format, error) {
	b, err := l.Peek(min(ProbeSize, l.Max()))
	if err != nil {
		return audio.Format{}, fmt.Errorf("vorbis header: %w", err)
	}

	dec, err := oggvorbis.NewReader(bytes.NewReader(b))
	if err != nil {
		return audio.OGG, nil
	}

	return formatOf(dec), nil
}

// Prober adapts Probe to audio.Prober.
type Prober struct{}

func (Prober) Probe(l *audio.Lookahead) (audio.Format, error) { return Probe(l) }
