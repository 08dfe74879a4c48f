// SPDX-License-Identifier: EPL-2.0

package main

import (
	"bufio"
	"errors"
	"flag"
	"fmt"
	"io"
	"math"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"

	"github.com/ik5/kstrigger/audio"
	"github.com/ik5/kstrigger/formats"
	"github.com/ik5/kstrigger/formats/wav"
	"github.com/ik5/kstrigger/internal/config"
)

var (
	errUsage    = errors.New("usage: audfmt probe|match|emit [flags] args")
	errTooLarge = errors.New("data chunk too large")
)

// maxDataSize is the largest data chunk whose RIFF size still fits 32 bits.
const maxDataSize = math.MaxUint32 - 36

// engineFormats are the format sets the match command negotiates against.
var engineFormats = map[string]audio.Format{
	"wav":   audio.WAV,
	"mp3":   audio.MP3,
	"ogg":   audio.OGG,
	"aiff":  audio.AIFF,
	"pcm16": audio.PCMSigned16Mono44k,
}

var validate = validator.New()

type probeOptions struct {
	Peek  int      `validate:"gte=200,lte=16777216"`
	Files []string `validate:"min=1,dive,required"`
}

type matchOptions struct {
	Peek    int      `validate:"gte=200,lte=16777216"`
	Engines []string `validate:"min=1,dive,oneof=wav mp3 ogg aiff pcm16"`
	Files   []string `validate:"min=1,dive,required"`
}

type emitOptions struct {
	Codec    string  `validate:"oneof=pcm ulaw alaw"`
	Rate     int     `validate:"gt=0,lte=384000"`
	Bits     int     `validate:"oneof=8 16 24 32"`
	Channels int     `validate:"gte=1,lte=8"`
	Seconds  float64 `validate:"gte=0,lte=3600"`
	Out      string  `validate:"required"`
}

func run(args []string, out io.Writer, conf config.Conf, log zerolog.Logger) error {
	if len(args) == 0 {
		return errUsage
	}

	switch args[0] {
	case "probe":
		return probe(args[1:], out, conf, log)
	case "match":
		return match(args[1:], out, conf, log)
	case "emit":
		return emit(args[1:], out, log)
	default:
		return fmt.Errorf("unknown command %q: %w", args[0], errUsage)
	}
}

func check(cmd string, opts any) error {
	if err := validate.Struct(opts); err != nil {
		return fmt.Errorf("%s: invalid options: %w", cmd, err)
	}
	return nil
}

func probe(args []string, out io.Writer, conf config.Conf, log zerolog.Logger) error {
	opts := probeOptions{}
	fs := flag.NewFlagSet("probe", flag.ContinueOnError)
	fs.IntVar(&opts.Peek, "peek", conf.GetInt("PEEK", formats.PeekSize), "lookahead window in bytes")
	fs.SetOutput(io.Discard)
	if err := fs.Parse(args); err != nil {
		return fmt.Errorf("probe: %w", err)
	}
	opts.Files = fs.Args()
	if err := check("probe", &opts); err != nil {
		return err
	}

	for _, path := range opts.Files {
		src := formats.NewFileSource(path, formats.WithPeekSize(opts.Peek))
		f, err := src.Format()
		if err != nil {
			return err
		}
		log.Debug().Str("file", path).Stringer("format", f).Msg("probed")

		line := fmt.Sprintf("%s: %s", path, f)
		if f.Container == audio.ContainerWave {
			if d, err := wavDuration(path); err == nil {
				line += " duration=" + d
			} else {
				log.Debug().Err(err).Str("file", path).Msg("no duration")
			}
		}
		fmt.Fprintln(out, line)
	}

	return nil
}

func wavDuration(path string) (string, error) {
	file, err := os.Open(path)
	if err != nil {
		return "", err
	}
	defer file.Close()

	d, err := wav.Duration(file)
	if err != nil {
		return "", err
	}
	return d.String(), nil
}

func match(args []string, out io.Writer, conf config.Conf, log zerolog.Logger) error {
	opts := matchOptions{}
	var engines string
	fs := flag.NewFlagSet("match", flag.ContinueOnError)
	fs.IntVar(&opts.Peek, "peek", conf.GetInt("PEEK", formats.PeekSize), "lookahead window in bytes")
	fs.StringVar(&engines, "engine", conf.Get("ENGINE", "wav,mp3,ogg,pcm16"), "comma separated engine formats")
	fs.SetOutput(io.Discard)
	if err := fs.Parse(args); err != nil {
		return fmt.Errorf("match: %w", err)
	}
	for _, e := range strings.Split(engines, ",") {
		if e = strings.ToLower(strings.TrimSpace(e)); e != "" {
			opts.Engines = append(opts.Engines, e)
		}
	}
	opts.Files = fs.Args()
	if err := check("match", &opts); err != nil {
		return err
	}

	consumer := make([]audio.Format, 0, len(opts.Engines))
	for _, e := range opts.Engines {
		consumer = append(consumer, engineFormats[e])
	}
	set := audio.NewFormatSet(consumer...)

	for _, path := range opts.Files {
		src := formats.NewFileSource(path, formats.WithPeekSize(opts.Peek))
		if _, err := src.Format(); err != nil {
			return err
		}

		f, ok := audio.BestMatch(src.SupportedFormats(), set)
		if !ok {
			fmt.Fprintf(out, "%s: no compatible format\n", path)
			continue
		}
		log.Debug().Str("file", path).Stringer("format", f).Msg("negotiated")
		fmt.Fprintf(out, "%s: %s\n", path, f)
	}

	return nil
}

func emit(args []string, out io.Writer, log zerolog.Logger) error {
	opts := emitOptions{}
	fs := flag.NewFlagSet("emit", flag.ContinueOnError)
	fs.StringVar(&opts.Codec, "codec", "pcm", "pcm, ulaw or alaw")
	fs.IntVar(&opts.Rate, "rate", 16000, "sample rate in Hz")
	fs.IntVar(&opts.Bits, "bits", 16, "bits per sample")
	fs.IntVar(&opts.Channels, "channels", 1, "channel count")
	fs.Float64Var(&opts.Seconds, "seconds", 1, "length of silence")
	fs.SetOutput(io.Discard)
	if err := fs.Parse(args); err != nil {
		return fmt.Errorf("emit: %w", err)
	}
	if fs.NArg() == 1 {
		opts.Out = fs.Arg(0)
	}
	if err := check("emit", &opts); err != nil {
		return err
	}

	f, silence, err := emitFormat(opts)
	if err != nil {
		return err
	}

	frames := int64(opts.Seconds * float64(opts.Rate))
	size := frames * int64(opts.Channels*(opts.Bits/8))
	if size > maxDataSize {
		return fmt.Errorf("emit: %d bytes of audio do not fit a WAV file: %w", size, errTooLarge)
	}

	file, err := os.Create(filepath.Clean(opts.Out))
	if err != nil {
		return fmt.Errorf("emit: %w", err)
	}
	defer file.Close()

	w := bufio.NewWriter(file)
	if err := wav.WriteHeader(w, f, uint32(size)); err != nil {
		return fmt.Errorf("emit: %w", err)
	}
	for range size {
		if err := w.WriteByte(silence); err != nil {
			return fmt.Errorf("emit: %w", err)
		}
	}
	if err := w.Flush(); err != nil {
		return fmt.Errorf("emit: %w", err)
	}

	log.Debug().Str("file", opts.Out).Stringer("format", f).Int64("bytes", size).Msg("emitted")
	fmt.Fprintf(out, "%s: %s\n", opts.Out, f)

	return file.Close()
}

// emitFormat returns the format to write and its silence byte.
func emitFormat(opts emitOptions) (audio.Format, byte, error) {
	f := audio.Format{
		Container:  audio.ContainerWave,
		BitDepth:   audio.Exactly(opts.Bits),
		BitRate:    audio.Exactly(opts.Rate * opts.Bits * opts.Channels),
		SampleRate: audio.Exactly(opts.Rate),
		Channels:   audio.Exactly(opts.Channels),
	}

	var silence byte
	switch opts.Codec {
	case "pcm":
		f.Codec = audio.CodecPCMSigned
		if opts.Bits == 8 {
			f.Codec = audio.CodecPCMUnsigned
			silence = 0x80
		}
	case "ulaw":
		f.Codec, silence = audio.CodecPCMULaw, 0xFF
	case "alaw":
		f.Codec, silence = audio.CodecPCMALaw, 0xD5
	}

	if f.Codec != audio.CodecPCMSigned && f.Codec != audio.CodecPCMUnsigned && opts.Bits != 8 {
		return audio.Format{}, 0, fmt.Errorf("emit: %s requires 8 bits, got %d", opts.Codec, opts.Bits)
	}

	return f, silence, nil
}
