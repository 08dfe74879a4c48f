// SPDX-License-Identifier: EPL-2.0

// Package kstrigger connects audio sources to keyword spotting engines.
//
// The work is split across subpackages:
//   - audio: format model, negotiation and the Source/Stream contracts
//   - formats: file-backed sources and per-container header probers
//   - trigger: the start/notify/abort protocol between callers and engines
//
// # Quick Start
//
// SpotFile negotiates a format between a file and an engine, opens the
// file and starts a session:
//
//	l := trigger.NewChannelListener(4)
//	h, err := kstrigger.SpotFile(engine, "greeting.wav", l, language.English, "computer")
//	if err != nil {
//	    return err
//	}
//	defer h.Abort()
//
//	switch e := (<-l.Events()).(type) {
//	case trigger.TriggeredEvent:
//	    // keyword spotted
//	case trigger.ErrorEvent:
//	    // e.Message
//	}
//
// # Header Probing
//
// Formats are recovered from headers only; samples are never decoded:
//   - WAV via formats/wav (go-audio/riff)
//   - AIFF via formats/aiff (go-audio/aiff)
//   - MP3 via formats/mp3 (hajimehoshi/go-mp3)
//   - Ogg Vorbis via formats/vorbis (jfreymuth/oggvorbis)
//
// A malformed WAV header is reported as wav.DefaultFormat rather than an
// error, so a session can still be negotiated.
//
// # Thread Safety
//
// Listeners are called from engine goroutines. Handles may be aborted from
// any goroutine, including from inside a listener.
package kstrigger
