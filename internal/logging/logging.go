// Package logging builds the zerolog logger used for warnings and debug output.
// Everything goes to stderr; stdout is left for --dry-run and subcommand output.
package logging

import (
	"io"
	"os"

	"github.com/rs/zerolog"
	"golang.org/x/term"
)

const consoleTimeFormat = "15:04:05.000"

// New returns a console logger writing to w.
// The level is warn, or debug when debug is set. Colour is only used when w is a terminal.
func New(w io.Writer, debug bool) zerolog.Logger {
	level := zerolog.WarnLevel
	if debug {
		level = zerolog.DebugLevel
	}

	cw := zerolog.ConsoleWriter{
		Out:        w,
		NoColor:    !isTerminal(w),
		TimeFormat: consoleTimeFormat,
		PartsExclude: []string{
			zerolog.TimestampFieldName,
		},
	}
	if debug {
		cw.PartsExclude = nil
	}

	return zerolog.New(cw).Level(level).With().Timestamp().Logger()
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return term.IsTerminal(int(f.Fd()))
}
