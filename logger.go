package automaton

import (
	u "github.com/araddon/gou"
)

// Logger records progress of the algorithms. It never influences their results.
type Logger interface {
	Logf(format string, args ...any)
}

type nopLogger struct{}

func (nopLogger) Logf(string, ...any) {}

// GouLogger sends progress messages to gou's leveled logger. Messages are emitted at info level
// when Info is set and at debug level otherwise.
type GouLogger struct {
	Info bool
}

func (l GouLogger) Logf(format string, args ...any) {
	if l.Info {
		u.Infof(format, args...)
		return
	}
	u.Debugf(format, args...)
}

// LoggerFunc adapts a plain function (fmt.Printf style) to Logger.
type LoggerFunc func(format string, args ...any)

func (f LoggerFunc) Logf(format string, args ...any) {
	f(format, args...)
}
