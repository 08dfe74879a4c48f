// SPDX-License-Identifier: EPL-2.0

package vorbis

import (
	"bytes"
	"testing"

	"github.com/ik5/kstrigger/audio"
)

// mockOggInfo simulates the oggvorbis.Reader for testing
type mockOggInfo struct {
	sampleRate int
	channels   int
}

func (m mockOggInfo) SampleRate() int { return m.sampleRate }
func (m mockOggInfo) Channels() int   { return m.channels }

func TestFormatOf(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		info mockOggInfo
		want audio.Format
	}{
		{
			name: "stereo 48k",
			info: mockOggInfo{48000, 2},
			want: audio.Format{
				Container:  audio.ContainerOgg,
				Codec:      audio.CodecVorbis,
				SampleRate: audio.Exactly(48000),
				Channels:   audio.Exactly(2),
			},
		},
		{
			name: "unknown parameters",
			info: mockOggInfo{},
			want: audio.OGG,
		},
	}

	for _, tt := range tests {
		if got := formatOf(tt.info); got != tt.want {
			t.Errorf("%s: formatOf() = %v, want %v", tt.name, got, tt.want)
		}
	}
}

func TestProbe_InvalidInput(t *testing.T) {
	t.Parallel()

	f, err := Probe(audio.NewLookahead(bytes.NewReader([]byte("This is not Ogg Vorbis data")), 0))
	if err != nil {
		t.Fatalf("Probe() error = %v", err)
	}
	if f != audio.OGG {
		t.Errorf("Probe() = %v, want %v", f, audio.OGG)
	}
}

func TestProbe_EmptyInput(t *testing.T) {
	t.Parallel()

	f, err := Prober{}.Probe(audio.NewLookahead(bytes.NewReader(nil), 0))
	if err != nil {
		t.Fatalf("Probe() error = %v", err)
	}
	if f != audio.OGG {
		t.Errorf("Probe() = %v, want %v", f, audio.OGG)
	}
}
