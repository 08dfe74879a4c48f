// SPDX-License-Identifier: EPL-2.0

package mp3

import (
	"bytes"
	"fmt"
	"io"

	gomp3 "github.com/hajimehoshi/go-mp3"

	"github.com/ik5/kstrigger/audio"
)

// ProbeSize is the largest prefix Probe inspects. It has to cover leading
// ID3 tags as well as the first frame.
const ProbeSize = 64 << 10

// mp3Info is the part of gomp3.Decoder used by Probe, to allow testing
type mp3Info interface {
	SampleRate() int
}

func formatOf(info mp3Info) audio.Format {
	f := audio.MP3
	if rate := info.SampleRate(); rate > 0 {
		f.SampleRate = audio.Exactly(rate)
	}
	return f
}

// Probe decodes the first MP3 frame at the read position of l without
// consuming it. An undecodable prefix yields audio.MP3 with wildcard
// parameters.
func Probe(l *audio.Lookahead) (audio.Format, error) {
	b, err := l.Peek(min(ProbeSize, l.Max()))
	if err != nil {
		return audio.Format{}, fmt.Errorf("mp3 header: %w", err)
	}

	// hide io.Seeker so the decoder does not scan for the stream length
	dec, err := gomp3.NewDecoder(io.MultiReader(bytes.NewReader(b)))
	if err != nil {
		return audio.MP3, nil
	}

	return formatOf(dec), nil
}

// Prober adapts Probe to audio.Prober.
type Prober struct{}

func (Prober) Probe(l *audio.Lookahead) (audio.Format, error) { return Probe(l) }
