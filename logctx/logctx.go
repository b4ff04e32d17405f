package logctx

import (
	"context"

	"github.com/sirupsen/logrus"
)

// EngineTarget is the target field value used by consensus engine components.
const EngineTarget = "engine"

var logEntryKey = struct{ logEntryKey string }{}

// GetLogEntry gets the log entry from the context or returns a default entry.
func GetLogEntry(ctx context.Context) *logrus.Entry {
	if ctx != nil {
		if le, ok := ctx.Value(&logEntryKey).(*logrus.Entry); ok && le != nil {
			return le
		}
	}

	log := logrus.New()
	log.SetLevel(logrus.InfoLevel)
	return logrus.NewEntry(log)
}

// WithLogEntry builds a context with a log entry.
func WithLogEntry(ctx context.Context, le *logrus.Entry) context.Context {
	return context.WithValue(ctx, &logEntryKey, le)
}

// Engine returns the entry tagged with the engine target.
// A nil entry falls back to the default logger.
func Engine(le *logrus.Entry) *logrus.Entry {
	if le == nil {
		le = GetLogEntry(context.Background())
	}
	return le.WithField("target", EngineTarget)
}
