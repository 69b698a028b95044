// Package logging configures the logrus logger shared by chlog commands.
package logging

import (
	"context"
	"io"

	"github.com/sirupsen/logrus"
)

// DefaultLevel is used when the configured level cannot be parsed.
const DefaultLevel = logrus.WarnLevel

type contextKey struct{}

// New returns a text logger writing to w at the named level.
// An unparseable level falls back to DefaultLevel.
func New(level string, w io.Writer) *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(w)
	logger.SetFormatter(&logrus.TextFormatter{
		FullTimestamp: true,
	})

	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		lvl = DefaultLevel
	}
	logger.SetLevel(lvl)

	return logger
}

// WithLogger returns a copy of ctx carrying logger.
func WithLogger(ctx context.Context, logger *logrus.Logger) context.Context {
	return context.WithValue(ctx, contextKey{}, logger)
}

// FromContext returns the logger stored in ctx, or a logger that discards
// everything when none is set.
func FromContext(ctx context.Context) *logrus.Logger {
	if ctx != nil {
		if logger, ok := ctx.Value(contextKey{}).(*logrus.Logger); ok {
			return logger
		}
	}
	return New(DefaultLevel.String(), io.Discard)
}
