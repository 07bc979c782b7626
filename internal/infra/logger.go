package infra

import (
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
)

// Logger aliases zerolog.Logger so packages can accept a logger without
// importing zerolog themselves.
type Logger = zerolog.Logger

// NewLogger constructs the service logger writing to stdout.
func NewLogger(appEnv string) Logger {
	return NewLoggerTo(appEnv, os.Stdout)
}

// NewLoggerTo constructs the service logger on top of w. Development builds
// log at debug level through a console writer; everything else emits JSON at
// info level.
func NewLoggerTo(appEnv string, w io.Writer) Logger {
	level := zerolog.InfoLevel
	if appEnv == "development" {
		level = zerolog.DebugLevel
		w = zerolog.ConsoleWriter{Out: w, TimeFormat: time.RFC3339}
	}

	return zerolog.New(w).
		Level(level).
		With().
		Timestamp().
		Str("service", "fundraiser").
		Logger()
}
