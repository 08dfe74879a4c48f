// SPDX-License-Identifier: EPL-2.0

// Command audfmt inspects audio files and negotiates formats the way a
// keyword spotting session would.
//
//	audfmt probe greeting.wav music.mp3
//	audfmt match -engine wav,pcm16 greeting.wav
//	audfmt emit -rate 16000 -seconds 2 silence.wav
//
// Defaults come from AUDFMT_ENGINE and AUDFMT_PEEK; logging is configured
// by LOG_LEVEL, LOG_FORMAT and LOG_CALLER.
package main

import (
	"os"

	"github.com/ik5/kstrigger/internal/config"
	"github.com/ik5/kstrigger/internal/logger"
)

func main() {
	opt := logger.FromEnv()
	opt.Component = "audfmt"
	log := logger.New(opt)

	if err := run(os.Args[1:], os.Stdout, config.New().Prefix("AUDFMT_"), log); err != nil {
		log.Error().Err(err).Msg("audfmt failed")
		os.Exit(1)
	}
}
