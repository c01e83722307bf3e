package logger

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/rs/zerolog"
)

// Options controls the output of loggers created by New.
type Options struct {
	// Level is a zerolog level name; empty means info.
	Level string
	// Console enables the human readable writer. APP_ENV=dev also enables it.
	Console bool
	Out     io.Writer
}

var (
	optsMu  sync.RWMutex
	current = Options{Level: "info"}
)

// Setup sets the options for loggers created afterwards.
func Setup(o Options) error {
	if o.Level == "" {
		o.Level = "info"
	}
	if _, err := zerolog.ParseLevel(strings.ToLower(o.Level)); err != nil {
		return fmt.Errorf("log level: %w", err)
	}
	optsMu.Lock()
	current = o
	optsMu.Unlock()
	return nil
}

// ZerologLogger implements Logger using rs/zerolog.
type ZerologLogger struct {
	log zerolog.Logger
}

// NewZerologLogger creates a logger with the component field set.
func NewZerologLogger(component string) Logger {
	optsMu.RLock()
	o := current
	optsMu.RUnlock()
	return newZerolog(component, o)
}

func newZerolog(component string, o Options) *ZerologLogger {
	out := o.Out
	if out == nil {
		out = os.Stdout
	}
	if o.Console || strings.ToLower(os.Getenv("APP_ENV")) == "dev" {
		out = zerolog.ConsoleWriter{Out: out, TimeFormat: time.RFC3339}
	}
	lvl, err := zerolog.ParseLevel(strings.ToLower(o.Level))
	if err != nil || o.Level == "" {
		lvl = zerolog.InfoLevel
	}
	z := zerolog.New(out).Level(lvl).With().Timestamp().Str("component", component).Logger()
	return &ZerologLogger{log: z}
}

func (l *ZerologLogger) Debugf(format string, args ...any) {
	l.log.Debug().Msgf(format, args...)
}

func (l *ZerologLogger) Debugw(msg string, fields map[string]any) {
	l.log.Debug().Fields(fields).Msg(msg)
}

func (l *ZerologLogger) Infof(format string, args ...any) {
	l.log.Info().Msgf(format, args...)
}

func (l *ZerologLogger) Warnf(format string, args ...any) {
	l.log.Warn().Msgf(format, args...)
}

func (l *ZerologLogger) Errorf(format string, args ...any) {
	l.log.Error().Msgf(format, args...)
}
