// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"io"
	"math"
	"time"

	"github.com/go-audio/riff"
	gowav "github.com/go-audio/wav"

	"github.com/ik5/kstrigger/audio"
)

// HeaderSize is the number of leading bytes ParseFormat inspects.
const HeaderSize = 200

// WAVE format tags found in the fmt chunk.
const (
	tagPCM        uint16 = 0x0001
	tagIEEEFloat  uint16 = 0x0003
	tagALaw       uint16 = 0x0006
	tagULaw       uint16 = 0x0007
	tagExtensible uint16 = 0xFFFE
)

// WAVE_FORMAT_EXTENSIBLE layout inside the fmt chunk.
const (
	extensibleSize  = 40
	subFormatOffset = 24
)

// subtypeSuffix is the on-disk tail of the KSDATAFORMAT_SUBTYPE GUIDs
// {0000xxxx-0000-0010-8000-00aa00389b71}; the first two bytes hold the tag.
var subtypeSuffix = [14]byte{0x00, 0x00, 0x00, 0x00, 0x10, 0x00, 0x80, 0x00, 0x00, 0xaa, 0x00, 0x38, 0x9b, 0x71}

// DefaultFormat is assumed when a stream claims to be WAV but its header
// cannot be decoded.
var DefaultFormat = audio.Format{
	Container:  audio.ContainerWave,
	Codec:      audio.CodecPCMSigned,
	BigEndian:  false,
	BitDepth:   audio.Exactly(16),
	BitRate:    audio.Exactly(705600),
	SampleRate: audio.Exactly(44100),
	Channels:   audio.Exactly(1),
}

// ParseFormat recovers the format of the WAV stream at the read position
// of l without consuming it.
//
// A header that is missing, truncated or not supported yields
// DefaultFormat and a nil error, so a mislabeled stream can still be
// played on a best-effort basis. Read failures of the underlying source,
// and a Lookahead too small to hold HeaderSize bytes, are returned as
// errors.
func ParseFormat(l *audio.Lookahead) (audio.Format, error) {
	if l == nil || l.Max() < HeaderSize {
		return audio.Format{}, fmt.Errorf("wav header: %w", audio.ErrRewindUnsupported)
	}

	var (
		f      audio.Format
		decErr error
	)
	err := l.Inspect(HeaderSize, func(r io.ReadSeeker) error {
		f, decErr = DecodeHeader(r)
		return nil
	})
	if err != nil {
		return audio.Format{}, fmt.Errorf("wav header: %w", err)
	}

	if decErr != nil {
		return DefaultFormat, nil
	}

	return f, nil
}

// DecodeHeader decodes the RIFF/WAVE header and fmt chunk from r. Unlike
// ParseFormat it reports why a header was rejected.
func DecodeHeader(r io.ReadSeeker) (audio.Format, error) {
	p := riff.New(r)
	if err := p.ParseHeaders(); err != nil {
		return audio.Format{}, fmt.Errorf("%w: %v", ErrNotWavFile, err)
	}
	if p.ID != riff.RiffID || p.Format != riff.WavFormatID {
		return audio.Format{}, ErrNotWavFile
	}

	for {
		ch, err := p.NextChunk()
		if err != nil {
			return audio.Format{}, fmt.Errorf("%w: no fmt chunk: %v", ErrUnsupportedWavLayout, err)
		}

		if ch.ID != riff.FmtID {
			// chunks are padded to an even size
			skip := int64(ch.Size) + int64(ch.Size&1)
			if _, err := r.Seek(skip, io.SeekCurrent); err != nil {
				return audio.Format{}, fmt.Errorf("%w: %v", ErrUnsupportedWavLayout, err)
			}
			continue
		}

		if ch.Size < 16 || ch.Size > HeaderSize {
			return audio.Format{}, fmt.Errorf("%w: fmt chunk of %d bytes", ErrUnsupportedWavLayout, ch.Size)
		}
		start, err := r.Seek(0, io.SeekCurrent)
		if err != nil {
			return audio.Format{}, fmt.Errorf("%w: %v", ErrUnsupportedWavLayout, err)
		}
		if err := ch.DecodeWavHeader(p); err != nil {
			return audio.Format{}, fmt.Errorf("%w: %v", ErrUnsupportedWavLayout, err)
		}

		tag := p.WavAudioFormat
		if tag == tagExtensible && ch.Size >= extensibleSize {
			tag = subFormat(r, start)
		}

		return formatOf(p, tag)
	}
}

// subFormat reads the SubFormat GUID of a WAVE_FORMAT_EXTENSIBLE fmt chunk
// starting at offset start and returns the format tag it embeds. Unknown
// GUIDs yield tagExtensible.
//
// riff's DecodeWavHeader skips the extension, so it is read here.
func subFormat(r io.ReadSeeker, start int64) uint16 {
	if _, err := r.Seek(start+subFormatOffset, io.SeekStart); err != nil {
		return tagExtensible
	}

	var guid [16]byte
	if _, err := io.ReadFull(r, guid[:]); err != nil {
		return tagExtensible
	}
	if !bytes.Equal(guid[2:], subtypeSuffix[:]) {
		return tagExtensible
	}

	switch t := binary.LittleEndian.Uint16(guid[:2]); t {
	case tagPCM, tagIEEEFloat, tagALaw, tagULaw:
		return t
	default:
		return tagExtensible
	}
}

func formatOf(p *riff.Parser, tag uint16) (audio.Format, error) {
	channels := int(p.NumChannels)
	rate := int(p.SampleRate)
	align := int(p.BlockAlign)
	bits := int(p.BitsPerSample)

	if channels == 0 || rate == 0 || align == 0 || bits == 0 {
		return audio.Format{}, fmt.Errorf("%w: channels=%d rate=%d align=%d bits=%d",
			ErrUnsupportedWavLayout, channels, rate, align, bits)
	}

	codec, err := codecOf(tag, bits)
	if err != nil {
		return audio.Format{}, err
	}

	// bits occupied by one channel inside a frame
	slot := float64(align*8) / float64(channels)
	bitRate := int(math.Round(float64(rate)*slot)) * channels

	return audio.Format{
		Container:  audio.ContainerWave,
		Codec:      codec,
		BigEndian:  false,
		BitDepth:   audio.Exactly(bits),
		BitRate:    audio.Exactly(bitRate),
		SampleRate: audio.Exactly(rate),
		Channels:   audio.Exactly(channels),
	}, nil
}

func codecOf(tag uint16, bits int) (audio.Codec, error) {
	switch tag {
	case tagPCM:
		if bits <= 8 {
			return audio.CodecPCMUnsigned, nil
		}
		return audio.CodecPCMSigned, nil
	case tagALaw:
		return audio.CodecPCMALaw, nil
	case tagULaw:
		return audio.CodecPCMULaw, nil
	case tagIEEEFloat, tagExtensible:
		return audio.CodecUnknown, nil
	default:
		return audio.CodecUnknown, fmt.Errorf("%w: tag 0x%04x", ErrUnsupportedEncoding, tag)
	}
}

// Prober adapts ParseFormat to audio.Prober.
type Prober struct{}

func (Prober) Probe(l *audio.Lookahead) (audio.Format, error) { return ParseFormat(l) }

// Duration estimates the play time of a complete WAV file from its RIFF
// size and average byte rate. rs is left at an unspecified offset.
func Duration(rs io.ReadSeeker) (time.Duration, error) {
	d := gowav.NewDecoder(rs)
	if !d.IsValidFile() {
		return 0, ErrNotWavFile
	}

	dur, err := d.Duration()
	if err != nil {
		return 0, fmt.Errorf("%w", err)
	}

	return dur, nil
}
