package logger

import (
	"io"
	"log"
)

// Logger is the logging interface used by the server and the command line
// tool.
type Logger interface {
	Infof(format string, v ...any)
	Errorf(format string, v ...any)
}

type stdLogger struct {
	l *log.Logger
}

// New returns a Logger writing through the standard log package.
func New() Logger { return &stdLogger{l: log.Default()} }

// NewWriter returns a Logger writing to w with the given prefix.
func NewWriter(w io.Writer, prefix string) Logger {
	return &stdLogger{l: log.New(w, prefix, 0)}
}

// Discard returns a Logger that drops everything.
func Discard() Logger { return NewWriter(io.Discard, "") }

func (s *stdLogger) Infof(format string, v ...any)  { s.l.Printf("[INFO] "+format, v...) }
func (s *stdLogger) Errorf(format string, v ...any) { s.l.Printf("[ERROR] "+format, v...) }
