package shared

import (
	"os"

	"github.com/charmbracelet/log"
)

// SetupLogger configures a structured logger on stderr. Debug wins over
// the configured level string.
func SetupLogger(debug bool, level string) *log.Logger {
	logLevel := log.InfoLevel
	if parsed, err := log.ParseLevel(level); err == nil && level != "" {
		logLevel = parsed
	}
	if debug {
		logLevel = log.DebugLevel
	}

	return log.NewWithOptions(os.Stderr, log.Options{
		Level:           logLevel,
		ReportTimestamp: true,
	})
}
