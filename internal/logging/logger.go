// Package logging provides a small logging abstraction so the rest of the
// application does not depend on a concrete logging framework.
package logging

import (
	"sync"

	"github.com/sirupsen/logrus"
)

// Field is a single structured logging key/value pair.
type Field struct {
	Key   string
	Value interface{}
}

// Logger is the structured logging interface used throughout the application.
type Logger interface {
	// Debug logs a debug-level message with optional fields
	Debug(msg string, fields ...Field)

	// Info logs an info-level message with optional fields
	Info(msg string, fields ...Field)

	// Warn logs a warning-level message with optional fields
	Warn(msg string, fields ...Field)

	// Error logs an error-level message with optional fields
	Error(msg string, fields ...Field)

	// WithError returns a new logger with an error field attached
	WithError(err error) Logger

	// WithField returns a new logger with a single field attached
	WithField(key string, value interface{}) Logger

	// Fatal logs a fatal-level message and exits the program
	Fatal(msg string, fields ...Field)

	// Fatalf logs a formatted fatal-level message and exits the program
	Fatalf(format string, args ...interface{})
}

var (
	defaultLogger *logrus.Logger
	defaultOnce   sync.Once
)

// GetLogger returns the shared logrus instance used by packages that keep a
// package-level logger. The instance is created lazily on first use.
func GetLogger() *logrus.Logger {
	defaultOnce.Do(func() {
		defaultLogger = logrus.New()
	})
	return defaultLogger
}

// SetAllLogLevels applies the given level to the shared logger and to the
// global logrus standard logger so loggers created later inherit it.
func SetAllLogLevels(level logrus.Level) {
	logrus.SetLevel(level)
	GetLogger().SetLevel(level)
}
