// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"strconv"
	"strings"

	goaudio "github.com/go-audio/audio"
)

// Container identifies the stream container.
type Container string

const (
	ContainerNone Container = "NONE"
	ContainerWave Container = "WAVE"
	ContainerAIFF Container = "AIFF"
	ContainerOgg  Container = "OGG"
)

// Codec identifies the stream encoding. CodecUnknown is used when the
// encoding could not be determined.
type Codec string

const (
	CodecUnknown     Codec = ""
	CodecPCMSigned   Codec = "PCM_SIGNED"
	CodecPCMUnsigned Codec = "PCM_UNSIGNED"
	CodecPCMULaw     Codec = "PCM_ULAW"
	CodecPCMALaw     Codec = "PCM_ALAW"
	CodecMP3         Codec = "MP3"
	CodecVorbis      Codec = "VORBIS"
)

// Attr is an optional numeric format attribute.
// The zero value is Any and matches every concrete value.
type Attr struct {
	v  int
	ok bool
}

// Any is the wildcard attribute.
var Any = Attr{}

// Exactly returns a concrete attribute.
func Exactly(v int) Attr { return Attr{v: v, ok: true} }

// Get returns the value and whether it is concrete.
func (a Attr) Get() (int, bool) { return a.v, a.ok }

// IsAny reports whether a is a wildcard.
func (a Attr) IsAny() bool { return !a.ok }

// Value returns the concrete value, or 0 for a wildcard.
func (a Attr) Value() int { return a.v }

func (a Attr) String() string {
	if !a.ok {
		return "*"
	}
	return strconv.Itoa(a.v)
}

// accepts reports whether a and b do not contradict each other.
func (a Attr) accepts(b Attr) bool {
	return !a.ok || !b.ok || a.v == b.v
}

// agrees reports whether both sides are concrete and equal.
func (a Attr) agrees(b Attr) bool {
	return a.ok && b.ok && a.v == b.v
}

// Format describes the characteristics of an audio stream. It is a
// comparable value; two formats are equal when every attribute is equal.
type Format struct {
	Container  Container
	Codec      Codec
	BigEndian  bool
	BitDepth   Attr
	BitRate    Attr // bits per second
	SampleRate Attr // Hz
	Channels   Attr
}

// Standard formats with wildcard parameters.
var (
	WAV = Format{Container: ContainerWave, Codec: CodecPCMSigned}
	MP3 = Format{Container: ContainerNone, Codec: CodecMP3}
	OGG = Format{Container: ContainerOgg, Codec: CodecVorbis}

	AIFF = Format{Container: ContainerAIFF, Codec: CodecPCMSigned, BigEndian: true}

	// PCMSigned16Mono44k is CD rate, 16-bit, single channel WAVE.
	PCMSigned16Mono44k = Format{
		Container:  ContainerWave,
		Codec:      CodecPCMSigned,
		BitDepth:   Exactly(16),
		BitRate:    Exactly(705600),
		SampleRate: Exactly(44100),
		Channels:   Exactly(1),
	}
)

// Compatible reports whether f and other can describe the same stream:
// container, codec and endianness are equal and no concrete numeric
// attribute contradicts the other side.
func (f Format) Compatible(other Format) bool {
	if f.Container != other.Container || f.Codec != other.Codec || f.BigEndian != other.BigEndian {
		return false
	}

	return f.BitDepth.accepts(other.BitDepth) &&
		f.BitRate.accepts(other.BitRate) &&
		f.SampleRate.accepts(other.SampleRate) &&
		f.Channels.accepts(other.Channels)
}

// agreement counts the numeric attributes that are concrete and equal on both sides.
func (f Format) agreement(other Format) int {
	n := 0
	for _, ok := range [...]bool{
		f.BitDepth.agrees(other.BitDepth),
		f.BitRate.agrees(other.BitRate),
		f.SampleRate.agrees(other.SampleRate),
		f.Channels.agrees(other.Channels),
	} {
		if ok {
			n++
		}
	}
	return n
}

// Concrete reports whether no numeric attribute is a wildcard.
func (f Format) Concrete() bool {
	return f.BitDepth.ok && f.BitRate.ok && f.SampleRate.ok && f.Channels.ok
}

func (f Format) String() string {
	var b strings.Builder
	b.WriteString(string(f.Container))
	b.WriteByte('/')
	if f.Codec == CodecUnknown {
		b.WriteString("?")
	} else {
		b.WriteString(string(f.Codec))
	}
	if f.BigEndian {
		b.WriteString(" be")
	} else {
		b.WriteString(" le")
	}
	b.WriteString(" bits=" + f.BitDepth.String())
	b.WriteString(" bps=" + f.BitRate.String())
	b.WriteString(" hz=" + f.SampleRate.String())
	b.WriteString(" ch=" + f.Channels.String())
	return b.String()
}

// FromGoAudio builds a Format from a go-audio format description.
// Zero values in gf are treated as unknown and become wildcards.
func FromGoAudio(c Container, codec Codec, bigEndian bool, gf *goaudio.Format, bitDepth int) Format {
	f := Format{Container: c, Codec: codec, BigEndian: bigEndian}
	if bitDepth > 0 {
		f.BitDepth = Exactly(bitDepth)
	}
	if gf == nil {
		return f
	}
	if gf.SampleRate > 0 {
		f.SampleRate = Exactly(gf.SampleRate)
	}
	if gf.NumChannels > 0 {
		f.Channels = Exactly(gf.NumChannels)
	}
	if gf.SampleRate > 0 && gf.NumChannels > 0 && bitDepth > 0 {
		f.BitRate = Exactly(gf.SampleRate * bitDepth * gf.NumChannels)
	}
	return f
}

// FormatSet is an ordered set of formats. Order is significant for
// BestMatch tie breaking.
type FormatSet []Format

// NewFormatSet returns the formats with duplicates removed, keeping the
// first occurrence of each.
func NewFormatSet(formats ...Format) FormatSet {
	set := make(FormatSet, 0, len(formats))
	seen := make(map[Format]struct{}, len(formats))
	for _, f := range formats {
		if _, ok := seen[f]; ok {
			continue
		}
		seen[f] = struct{}{}
		set = append(set, f)
	}
	return set
}

// Contains reports whether f is a member of s by value equality.
func (s FormatSet) Contains(f Format) bool {
	for _, m := range s {
		if m == f {
			return true
		}
	}
	return false
}

// Compatible reports whether any member of s is compatible with f.
func (s FormatSet) Compatible(f Format) bool {
	for _, m := range s {
		if m.Compatible(f) {
			return true
		}
	}
	return false
}
