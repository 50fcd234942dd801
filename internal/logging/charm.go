package logging

import (
	"context"
	"os"

	"github.com/charmbracelet/log"
)

// CharmLogger adapts charmbracelet/log to the Logger interface.
type CharmLogger struct {
	l *log.Logger
}

func NewCharmLogger(l *log.Logger) *CharmLogger {
	return &CharmLogger{l: l}
}

// NewDefault returns a CharmLogger writing to stderr with timestamps.
func NewDefault() *CharmLogger {
	l := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "2006-01-02 15:04:05",
	})
	return &CharmLogger{l: l}
}

func (c *CharmLogger) Info(_ context.Context, msg string, args ...any) {
	c.l.Info(msg, args...)
}

func (c *CharmLogger) Warn(_ context.Context, msg string, args ...any) {
	c.l.Warn(msg, args...)
}

func (c *CharmLogger) Error(_ context.Context, msg string, args ...any) {
	c.l.Error(msg, args...)
}

func (c *CharmLogger) With(args ...any) Logger {
	return &CharmLogger{l: c.l.With(args...)}
}
