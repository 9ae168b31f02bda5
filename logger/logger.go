// Package logger is a thin zerolog wrapper. The numeric kernel never logs
// on its hot paths; this package serves the demo and on-demand pool
// diagnostics.
package logger

import (
	"os"
	"time"

	"github.com/rs/zerolog"
)

var log = zerolog.New(os.Stderr).With().Timestamp().Logger()

// Log returns the package logger.
func Log() *zerolog.Logger {
	return &log
}

// SetLevel sets the minimum level emitted.
func SetLevel(level zerolog.Level) {
	log = log.Level(level)
}

// Debug starts a debug event.
func Debug() *zerolog.Event {
	return log.Debug()
}

// Info starts an info event.
func Info() *zerolog.Event {
	return log.Info()
}

// Warn starts a warn event.
func Warn() *zerolog.Event {
	return log.Warn()
}

// Error logs err with an optional message.
func Error(err error, msg string) {
	log.Error().Err(err).Msg(msg)
}

// Fatal logs err and exits.
func Fatal(err error) {
	log.Fatal().Err(err).Msg("")
}

// Elapsed attaches a duration field measured from start.
func Elapsed(e *zerolog.Event, start time.Time) *zerolog.Event {
	return e.Dur("dur", time.Since(start))
}
