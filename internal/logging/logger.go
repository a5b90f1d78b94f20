// Package logging wraps charmbracelet/log with the small surface printlint
// needs: a lazily built process-wide logger and string level parsing.
package logging

import (
	"os"
	"strings"
	"sync"

	"github.com/charmbracelet/log"
)

//nolint:gochecknoglobals // One process-wide default logger.
var (
	defaultLogger *log.Logger
	defaultOnce   sync.Once
)

// New builds a stderr logger at the given level. Levels are "debug",
// "info", "warn"/"warning", and "error"; anything else means info.
func New(level string) *log.Logger {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: false,
		ReportCaller:    false,
	})
	logger.SetLevel(parseLevel(level))
	return logger
}

func parseLevel(level string) log.Level {
	switch strings.ToLower(level) {
	case "debug":
		return log.DebugLevel
	case "warn", "warning":
		return log.WarnLevel
	case "error":
		return log.ErrorLevel
	default:
		return log.InfoLevel
	}
}

// Default returns the shared logger, creating it at info level on first use.
func Default() *log.Logger {
	defaultOnce.Do(func() {
		defaultLogger = New("info")
	})
	return defaultLogger
}

// SetLevel reparses level onto the default logger. The --debug flag goes
// through here.
func SetLevel(level string) {
	Default().SetLevel(parseLevel(level))
}
