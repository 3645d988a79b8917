package cmd

import (
	"io"

	"github.com/charmbracelet/log"
)

// newLogger creates a timestamped logger that writes to w at the given level.
func newLogger(w io.Writer, verbose bool) *log.Logger {
	level := log.WarnLevel
	if verbose {
		level = log.DebugLevel
	}
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05.00",
		Level:           level,
	})
}
