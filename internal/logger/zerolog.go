// SPDX-License-Identifier: MIT

package logger

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/rs/zerolog"
)

// ZerologAdapter implements Logger on top of zerolog.
type ZerologAdapter struct {
	logger zerolog.Logger
}

// NewZerolog writes JSON lines at or above level to writer.
func NewZerolog(writer io.Writer, level zerolog.Level) *ZerologAdapter {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	zerolog.DurationFieldInteger = true

	logger := zerolog.New(writer).
		Level(level).
		With().
		Timestamp().
		Logger()

	return &ZerologAdapter{logger: logger}
}

// NewConsoleLogger writes human-readable lines to stderr, keeping stdout
// free for reports.
func NewConsoleLogger(level zerolog.Level) *ZerologAdapter {
	consoleWriter := zerolog.ConsoleWriter{
		Out:        os.Stderr,
		TimeFormat: "15:04:05",
	}

	return NewZerolog(consoleWriter, level)
}

// ParseLevel accepts zerolog level names plus "warning".
func ParseLevel(s string) (zerolog.Level, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "warning" {
		s = "warn"
	}
	if s == "" {
		return zerolog.InfoLevel, nil
	}
	lvl, err := zerolog.ParseLevel(s)
	if err != nil {
		return zerolog.NoLevel, fmt.Errorf("logger: level %q: %w", s, err)
	}

	return lvl, nil
}

func (z *ZerologAdapter) emit(event *zerolog.Event, component, message string, fields Fields) {
	event = event.Str("component", component)
	for k, v := range fields {
		event = event.Interface(k, v)
	}
	event.Msg(message)
}

func (z *ZerologAdapter) Info(component, message string, fields Fields) {
	if e := z.logger.Info(); e != nil {
		z.emit(e, component, message, fields)
	}
}

func (z *ZerologAdapter) Error(component string, err error, fields Fields) {
	if e := z.logger.Error(); e != nil {
		z.emit(e.Err(err), component, "operation failed", fields)
	}
}

func (z *ZerologAdapter) Warning(component, message string, fields Fields) {
	if e := z.logger.Warn(); e != nil {
		z.emit(e, component, message, fields)
	}
}

func (z *ZerologAdapter) Debug(component, message string, fields Fields) {
	if e := z.logger.Debug(); e != nil {
		z.emit(e, component, message, fields)
	}
}
