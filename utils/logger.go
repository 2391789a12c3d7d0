package utils

import (
	"fmt"
	"io"
	"strings"

	"github.com/sirupsen/logrus"
)

// Logger provides structured, leveled logging throughout the application.
type Logger struct {
	entry *logrus.Entry
}

// NewLoggerWith creates a Logger with the given level ("debug", "info", ...),
// format ("text" or "json") and output.
func NewLoggerWith(level, format string, out io.Writer) (*Logger, error) {
	base := logrus.New()
	base.SetOutput(out)

	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		base.SetLevel(logrus.InfoLevel)
		err = fmt.Errorf("invalid log level %q: %w", level, err)
	} else {
		base.SetLevel(lvl)
	}

	switch strings.ToLower(format) {
	case "json":
		base.SetFormatter(&logrus.JSONFormatter{
			TimestampFormat: "2006-01-02 15:04:05",
			FieldMap: logrus.FieldMap{
				logrus.FieldKeyTime: "timestamp",
				logrus.FieldKeyMsg:  "message",
			},
		})
	default:
		base.SetFormatter(&logrus.TextFormatter{
			TimestampFormat: "2006-01-02 15:04:05",
			FullTimestamp:   true,
		})
	}

	return &Logger{entry: logrus.NewEntry(base)}, err
}

// WithField returns a child Logger that attaches key=value to every line.
func (l *Logger) WithField(key string, value any) *Logger {
	return &Logger{entry: l.entry.WithField(key, value)}
}

func (l *Logger) Info(format string, args ...any) {
	l.entry.Infof(format, args...)
}

func (l *Logger) Warn(format string, args ...any) {
	l.entry.Warnf(format, args...)
}

func (l *Logger) Error(format string, args ...any) {
	l.entry.Errorf(format, args...)
}

func (l *Logger) Debug(format string, args ...any) {
	l.entry.Debugf(format, args...)
}
