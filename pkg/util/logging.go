package util

import (
	"io"
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

var Logger zerolog.Logger

func init() {
	Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr}).Level(zerolog.InfoLevel)
}

// RedirectLogger sends all further log output to w, keeping the current level.
func RedirectLogger(w io.Writer) {
	Logger = zerolog.New(zerolog.ConsoleWriter{Out: w, NoColor: true}).
		With().Timestamp().Logger().
		Level(Logger.GetLevel())
}

func SetLogLevel(level zerolog.Level) {
	Logger = Logger.Level(level)
}

// Tracing reports whether trace output would be written. Tree dumps are
// expensive, so callers check this first.
func Tracing() bool {
	return Logger.GetLevel() <= zerolog.TraceLevel
}
