// Package logging builds the console logger used by the command-line tools.
package logging

import (
	"io"
	"os"

	"github.com/rs/zerolog"
	"golang.org/x/term"
)

// TimeFormat is the timestamp layout of console log lines.
const TimeFormat = "15:04:05"

// New returns a console logger writing to w. Debug messages are shown only
// when verbose is set.
func New(w io.Writer, verbose bool) zerolog.Logger {
	if w == nil {
		w = os.Stderr
	}

	level := zerolog.InfoLevel
	if verbose {
		level = zerolog.DebugLevel
	}

	return zerolog.New(zerolog.ConsoleWriter{
		Out:        w,
		TimeFormat: TimeFormat,
		NoColor:    !isTerminal(w),
	}).
		Level(level).
		With().
		Timestamp().
		Logger()
}

// NewCLILogger returns the default logger of the command-line tools, on
// stderr so stdout stays free for command output.
func NewCLILogger(verbose bool) zerolog.Logger {
	return New(os.Stderr, verbose)
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}
