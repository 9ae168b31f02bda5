package logger

import (
	"os"

	"github.com/rs/zerolog"
)

// SetConsoleWriter switches to a human-readable console format on stderr.
func SetConsoleWriter() {
	log = zerolog.New(zerolog.NewConsoleWriter(func(w *zerolog.ConsoleWriter) {
		w.Out = os.Stderr
		w.TimeFormat = "15:04:05.000"
	})).With().Timestamp().Logger()
}

// SetJSONWriter switches to structured JSON on stderr. The default.
func SetJSONWriter() {
	log = zerolog.New(os.Stderr).With().Timestamp().Logger()
}
