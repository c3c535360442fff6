package logger

import (
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// L is the process-wide logger. Init replaces it with a console writer;
// the zero value still works for tests that never call Init.
var L = log.Logger

func Init() zerolog.Logger {
	L = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	return L
}
