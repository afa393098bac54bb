// Package log provides the diagnostic observer the browser components are
// constructed with. Components never reach for a process-wide logger; they
// receive an Observer and tests pass Nop() to keep output silent.
package log

import (
	"io"
	"os"

	"github.com/sirupsen/logrus"
)

// Observer receives diagnostic events from the component it was injected
// into. *logrus.Logger satisfies it directly.
type Observer interface {
	Debugf(format string, args ...interface{})
	Infof(format string, args ...interface{})
	Warnf(format string, args ...interface{})
	Errorf(format string, args ...interface{})
}

// New returns an observer writing human-readable lines to w. With debug set,
// Debugf lines are emitted as well.
func New(w io.Writer, debug bool) *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(w)
	logger.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: "2006-01-02 15:04:05",
	})
	if debug {
		logger.SetLevel(logrus.DebugLevel)
	} else {
		logger.SetLevel(logrus.InfoLevel)
	}
	return logger
}

// NewFile returns an observer appending to the named file, creating it if
// needed. The caller is responsible for invoking the returned close function
// when the program shuts down. A terminal UI must never log to stdout, so
// file output is the only runtime destination.
func NewFile(path string, debug bool) (*logrus.Logger, func() error, error) {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return nil, nil, err
	}
	return New(f, debug), f.Close, nil
}

// Nop returns an observer that discards everything.
func Nop() *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	logger.SetLevel(logrus.PanicLevel)
	return logger
}
