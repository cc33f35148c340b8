// SPDX-License-Identifier: MIT

// Package logger is the structured logging seam of kfe. Library packages
// accept a Logger through options and default to Nop; the CLI wires the
// zerolog adapter.
package logger

// Fields carries structured key/value context for one log line.
type Fields = map[string]any

// Logger provides structured, component-tagged logging.
type Logger interface {
	Info(component, message string, fields Fields)
	Error(component string, err error, fields Fields)
	Warning(component, message string, fields Fields)
	Debug(component, message string, fields Fields)
}

type nop struct{}

func (nop) Info(string, string, Fields) {}
func (nop) Error(string, error, Fields) {}
func (nop) Warning(string, string, Fields) {}
func (nop) Debug(string, string, Fields) {}

// Nop returns a Logger that discards everything.
func Nop() Logger { return nop{} }

// OrNop returns l, or Nop when l is nil.
func OrNop(l Logger) Logger {
	if l == nil {
		return Nop()
	}

	return l
}
