package logger

import corelogger "github.com/kilianp07/renewables/core/logger"

// Logger mirrors the core logger interface.
type Logger = corelogger.Logger

// NopLogger discards every message.
type NopLogger = corelogger.NopLogger

// New returns a Logger tagged with component, using the options set by
// Setup.
func New(component string) Logger {
	return NewZerologLogger(component)
}
