// Package logx provides the structured, leveled logging surface used by
// the CLI and, opt-in, by the engine packages for diagnostics: a minimal
// Logger interface over log/slog with a process-wide default swappable
// via SetLogger, so library code never needs slog threaded through every
// call, only the ambient logx.L().
package logx

import (
	"log/slog"
	"sync/atomic"
)

// Logger is the leveled logging surface the rest of jdx depends on,
// instead of slog.Logger directly, so a host embedding the engine can
// substitute its own sink.
type Logger interface {
	Debug(msg string, args ...any)
	Info(msg string, args ...any)
	Warn(msg string, args ...any)
	Error(msg string, args ...any)
}

type nop struct{}

func (nop) Debug(string, ...any) {}
func (nop) Info(string, ...any)  {}
func (nop) Warn(string, ...any)  {}
func (nop) Error(string, ...any) {}

// Nop is a Logger that discards everything; SetLogger(nil) installs it.
var Nop Logger = nop{}

var current atomic.Value

func init() {
	current.Store(Logger(slog.Default()))
}

// L returns the process-wide default Logger: slog.Default() until
// SetLogger installs another.
func L() Logger {
	return current.Load().(Logger)
}

// SetLogger installs l as the process-wide default. A nil l installs Nop.
func SetLogger(l Logger) {
	if l == nil {
		l = nop{}
	}
	current.Store(l)
}
