package logx

import (
	"fmt"
	"io"
	"log"
	"os"
)

// Level selects which messages a Logger emits.
type Level int

const (
	// LevelInfo emits info and error messages.
	LevelInfo Level = iota
	// LevelDebug emits debug, info and error messages.
	LevelDebug
)

// Logger is a minimal leveled wrapper around the standard log package.
type Logger struct {
	level Level
	l     *log.Logger
}

// New returns a Logger writing to w at the given level.
func New(w io.Writer, level Level) *Logger {
	return &Logger{level: level, l: log.New(w, "", log.LstdFlags)}
}

// Default returns a Logger writing to stderr at LevelInfo.
func Default() *Logger {
	return New(os.Stderr, LevelInfo)
}

// Debugf logs a formatted debug message, only when the logger's level is
// LevelDebug or more verbose.
func (lg *Logger) Debugf(format string, args ...any) {
	if lg.level < LevelDebug {
		return
	}
	lg.l.Output(2, "DEBUG "+fmt.Sprintf(format, args...))
}

// Infof logs a formatted info message.
func (lg *Logger) Infof(format string, args ...any) {
	lg.l.Output(2, "INFO  "+fmt.Sprintf(format, args...))
}

// Errorf logs a formatted error message.
func (lg *Logger) Errorf(format string, args ...any) {
	lg.l.Output(2, "ERROR "+fmt.Sprintf(format, args...))
}
