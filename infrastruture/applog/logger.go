// Package applog provides component-tagged loggers backed by logrus.
package applog

import (
	"errors"
	"io"

	"github.com/sirupsen/logrus"
)

// AppLogger tags every entry with the component that emitted it.
type AppLogger struct {
	entry *logrus.Entry
}

// New creates a logger for the named component writing to out.
func New(component string, out io.Writer) (*AppLogger, error) {
	if component == "" {
		return nil, errors.New("logger component name is required")
	}

	base := logrus.New()
	base.SetOutput(out)
	base.SetFormatter(&logrus.TextFormatter{
		FullTimestamp: true,
	})

	return &AppLogger{
		entry: base.WithField("component", component),
	}, nil
}

// Info logs an informational message.
func (l *AppLogger) Info(msg string) {
	l.entry.Info(msg)
}

// Warning logs a warning message.
func (l *AppLogger) Warning(msg string) {
	l.entry.Warning(msg)
}

// Error logs an error message.
func (l *AppLogger) Error(msg string) {
	l.entry.Error(msg)
}
