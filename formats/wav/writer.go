// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"encoding/binary"
	"fmt"
	"io"

	"github.com/ik5/kstrigger/audio"
)

// WriteHeader writes a canonical 44-byte WAV header for f followed by a
// data chunk header announcing dataSize bytes. f must be a WAVE format
// with concrete bit depth, sample rate and channel count.
func WriteHeader(w io.Writer, f audio.Format, dataSize uint32) error {
	if f.Container != audio.ContainerWave || f.BigEndian {
		return fmt.Errorf("%w: %v", ErrUnsupportedEncoding, f)
	}

	var tag uint16
	switch f.Codec {
	case audio.CodecPCMSigned, audio.CodecPCMUnsigned:
		tag = tagPCM
	case audio.CodecPCMALaw:
		tag = tagALaw
	case audio.CodecPCMULaw:
		tag = tagULaw
	default:
		return fmt.Errorf("%w: codec %q", ErrUnsupportedEncoding, f.Codec)
	}

	bits, okBits := f.BitDepth.Get()
	rate, okRate := f.SampleRate.Get()
	channels, okChannels := f.Channels.Get()
	if !okBits || !okRate || !okChannels {
		return fmt.Errorf("%w: %v", ErrIncompleteFormat, f)
	}

	numChannels := uint16(channels)
	bitsPerSample := uint16(bits)
	blockAlign := numChannels * ((bitsPerSample + 7) / 8)
	byteRate := uint32(rate) * uint32(blockAlign)
	riffSize := 36 + dataSize

	header := make([]byte, 44)

	// RIFF header (12 bytes)
	copy(header[0:4], "RIFF")
	binary.LittleEndian.PutUint32(header[4:8], riffSize)
	copy(header[8:12], "WAVE")

	// fmt chunk (24 bytes)
	copy(header[12:16], "fmt ")
	binary.LittleEndian.PutUint32(header[16:20], 16)
	binary.LittleEndian.PutUint16(header[20:22], tag)
	binary.LittleEndian.PutUint16(header[22:24], numChannels)
	binary.LittleEndian.PutUint32(header[24:28], uint32(rate))
	binary.LittleEndian.PutUint32(header[28:32], byteRate)
	binary.LittleEndian.PutUint16(header[32:34], blockAlign)
	binary.LittleEndian.PutUint16(header[34:36], bitsPerSample)

	// data chunk header (8 bytes)
	copy(header[36:40], "data")
	binary.LittleEndian.PutUint32(header[40:44], dataSize)

	if _, err := w.Write(header); err != nil {
		return fmt.Errorf("%w", err)
	}

	return nil
}
