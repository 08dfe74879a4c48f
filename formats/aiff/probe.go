// SPDX-License-Identifier: EPL-2.0

package aiff

import (
	"bytes"
	"fmt"

	"github.com/go-audio/aiff"
	goaudio "github.com/go-audio/audio"

	"github.com/ik5/kstrigger/audio"
)

// ProbeSize is the largest header prefix Probe inspects.
const ProbeSize = 64 << 10

// aiffInfo is the part of aiff.Decoder used by Probe, to allow testing
type aiffInfo interface {
	Format() *goaudio.Format
}

// formatOf maps decoded AIFF header values to a Format. AIFF sample data
// is always big-endian signed PCM.
func formatOf(info aiffInfo, bitDepth int) (audio.Format, error) {
	gf := info.Format()
	if gf == nil || gf.NumChannels < 1 || gf.SampleRate < 1 || bitDepth < 1 {
		return audio.Format{}, ErrNotAiffFile
	}

	return audio.FromGoAudio(audio.ContainerAIFF, audio.CodecPCMSigned, true, gf, bitDepth), nil
}

// Probe reads the FORM/COMM header at the read position of l without
// consuming it. An undecodable header yields audio.AIFF with wildcard
// parameters.
func Probe(l *audio.Lookahead) (audio.Format, error) {
	b, err := l.Peek(min(ProbeSize, l.Max()))
	if err != nil {
		return audio.Format{}, fmt.Errorf("aiff header: %w", err)
	}

	dec := aiff.NewDecoder(bytes.NewReader(b))
	if !dec.IsValidFile() {
		return audio.AIFF, nil
	}
	dec.ReadInfo()

	f, err := formatOf(dec, int(dec.BitDepth))
	if err != nil {
		return audio.AIFF, nil
	}

	return f, nil
}

// Prober adapts Probe to audio.Prober.
type Prober struct{}

func (Prober) Probe(l *audio.Lookahead) (audio.Format, error) { return Probe(l) }
