// Package logging builds the leveled console logger shared by the store and
// the command line.
package logging

import (
	"io"
	"strings"

	"github.com/charmbracelet/log"
)

// Prefix is printed before every line.
const Prefix = "taskboard"

// New returns a text logger writing to w at the named level. Unknown levels
// fall back to warn.
func New(w io.Writer, level string) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		Level:           ParseLevel(level),
		Prefix:          Prefix,
		ReportTimestamp: false,
		Formatter:       log.TextFormatter,
	})
}

// Discard returns a logger that drops everything.
func Discard() *log.Logger {
	return log.NewWithOptions(io.Discard, log.Options{Level: log.FatalLevel})
}

// ParseLevel maps a config string to a log level, warn when it is not one.
func ParseLevel(level string) log.Level {
	l, err := log.ParseLevel(strings.TrimSpace(level))
	if err != nil {
		return log.WarnLevel
	}
	return l
}
