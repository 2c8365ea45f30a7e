package logging

import (
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
)

// Setup initializes a zerolog.Logger on stderr based on the requested format.
// format can be "text" (human-friendly console) or "json" (structured).
func Setup(format string) zerolog.Logger {
	return New(os.Stderr, format)
}

// New is Setup with an explicit destination.
func New(w io.Writer, format string) zerolog.Logger {
	if format == "text" {
		return zerolog.New(zerolog.ConsoleWriter{
			Out:        w,
			TimeFormat: time.RFC3339,
		}).With().Timestamp().Logger()
	}
	return zerolog.New(w).With().Timestamp().Logger()
}

// LoadWarnings logs each warning at warn level with its own fields, then a
// one-line total.
func LoadWarnings[W zerolog.LogObjectMarshaler](log zerolog.Logger, source string, warnings []W) {
	for _, w := range warnings {
		log.Warn().Str("source", source).EmbedObject(w).Msg("load warning")
	}
	if len(warnings) > 0 {
		log.Warn().Str("source", source).Int("warnings", len(warnings)).Msg("dataset loaded with warnings")
	}
}
