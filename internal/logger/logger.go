// SPDX-License-Identifier: EPL-2.0

// Package logger builds zerolog loggers from environment settings.
package logger

import (
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/ik5/kstrigger/internal/config"
)

// Options configures New.
type Options struct {
	Level      string // trace, debug, info, warn, error; default info
	Format     string // console or json
	Component  string
	Writer     io.Writer // defaults to os.Stderr
	WithCaller bool
}

// FromEnv reads LOG_LEVEL, LOG_FORMAT, LOG_COMPONENT and LOG_CALLER
func FromEnv() Options {
	c := config.New().Prefix("LOG_")
	return Options{
		Level:      strings.ToLower(c.Get("LEVEL", "info")),
		Format:     strings.ToLower(c.Get("FORMAT", "console")),
		Component:  c.Get("COMPONENT", ""),
		WithCaller: c.GetBool("CALLER", false),
	}
}

// New returns a logger configured by opt.
func New(opt Options) zerolog.Logger {
	var w io.Writer = os.Stderr
	if opt.Writer != nil {
		w = opt.Writer
	}
	if opt.Format == "console" {
		w = zerolog.ConsoleWriter{Out: w, TimeFormat: time.RFC3339}
	}

	ctx := zerolog.New(w).Level(ParseLevel(opt.Level)).With().Timestamp()
	if opt.Component != "" {
		ctx = ctx.Str("component", opt.Component)
	}
	if opt.WithCaller {
		ctx = ctx.Caller()
	}

	return ctx.Logger()
}

// ParseLevel maps a level name to a zerolog level. Unknown names are info.
func ParseLevel(s string) zerolog.Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "trace":
		return zerolog.TraceLevel
	case "debug":
		return zerolog.DebugLevel
	case "warn", "warning":
		return zerolog.WarnLevel
	case "error":
		return zerolog.ErrorLevel
	case "disabled", "off":
		return zerolog.Disabled
	default:
		return zerolog.InfoLevel
	}
}
