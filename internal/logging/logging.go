// Package logging builds the charm logger pd writes diagnostics with.
package logging

import (
	"io"
	"strings"

	"github.com/charmbracelet/log"
)

// Disabled is above every level charm log emits.
const Disabled = log.FatalLevel + 1

// New returns the pd logger writing to w. Unknown level names fall back to warn.
func New(w io.Writer, level string) *log.Logger {
	lvl, ok := ParseLevel(level)
	if !ok {
		lvl = log.WarnLevel
	}
	return log.NewWithOptions(w, log.Options{
		Prefix:          "pd",
		Level:           lvl,
		ReportTimestamp: false,
	})
}

// ParseLevel maps a level name to a charm log level. It accepts trace as
// debug, warning as warn, and off, none or disabled as Disabled. The bool is
// false for empty or unknown names, which map to warn.
func ParseLevel(raw string) (log.Level, bool) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "":
		return log.WarnLevel, false
	case "debug", "trace":
		return log.DebugLevel, true
	case "info":
		return log.InfoLevel, true
	case "warn", "warning":
		return log.WarnLevel, true
	case "error":
		return log.ErrorLevel, true
	case "fatal":
		return log.FatalLevel, true
	case "disabled", "disable", "off", "none":
		return Disabled, true
	default:
		return log.WarnLevel, false
	}
}
