// SPDX-License-Identifier: GPL-3.0-or-later

package logger

import (
	"io"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog"
)

// Logger our wrapper around zerolog. Copies share the same underlying
// zerolog instance so changing the level on one changes it for all
type Logger struct {
	zl *zerolog.Logger
}

// New returns a Logger writing human friendly console output to out
func New(out io.Writer) Logger {
	consoleWriter := zerolog.ConsoleWriter{Out: out, NoColor: !isTerminal(out)}

	zl := zerolog.New(consoleWriter).
		Level(zerolog.InfoLevel).
		With().
		Timestamp().
		Logger()

	return Logger{zl: &zl}
}

// NewNop returns a Logger that discards everything
func NewNop() Logger {
	zl := zerolog.Nop()
	return Logger{zl: &zl}
}

func isTerminal(out io.Writer) bool {
	f, ok := out.(*os.File)

	if !ok {
		return false
	}

	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// SetLevel sets the level for this logger and all of its copies
func (l Logger) SetLevel(level zerolog.Level) {
	*l.zl = l.zl.Level(level)
}

// SetVerbose toggles debug output
func (l Logger) SetVerbose(verbose bool) {
	if verbose {
		l.SetLevel(zerolog.DebugLevel)
		return
	}

	l.SetLevel(zerolog.InfoLevel)
}

// Info wrapper around zerolog Info
func (l Logger) Info() *zerolog.Event {
	return l.zl.Info()
}

// Debug wrapper around zerolog Debug
func (l Logger) Debug() *zerolog.Event {
	return l.zl.Debug()
}

// Warn wrapper around zerolog Warn
func (l Logger) Warn() *zerolog.Event {
	return l.zl.Warn()
}

// Error wrapper around zerolog Error
func (l Logger) Error() *zerolog.Event {
	return l.zl.Error()
}

// Fatal wrapper around zerolog Fatal
func (l Logger) Fatal() *zerolog.Event {
	return l.zl.Fatal()
}
