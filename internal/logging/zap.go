// Package logging adapts go.uber.org/zap to the narrow Logger
// interfaces the rest of this repository depends on, so that only
// this package and cmd/hexengine ever import zap directly.
package logging

import (
	"go.uber.org/zap"

	"github.com/hexmind/hexengine/internal/engine"
)

// EngineLogger adapts a *zap.Logger to engine.Logger.
type EngineLogger struct {
	z *zap.Logger
}

// NewEngineLogger wraps z for use as an engine.Logger.
func NewEngineLogger(z *zap.Logger) *EngineLogger {
	return &EngineLogger{z: z}
}

func toZapFields(fields []engine.Field) []zap.Field {
	out := make([]zap.Field, len(fields))
	for i, f := range fields {
		out[i] = zap.Any(f.Key, f.Value)
	}
	return out
}

func (l *EngineLogger) Info(msg string, fields ...engine.Field) {
	l.z.Info(msg, toZapFields(fields)...)
}

func (l *EngineLogger) Warn(msg string, fields ...engine.Field) {
	l.z.Warn(msg, toZapFields(fields)...)
}

func (l *EngineLogger) Error(msg string, fields ...engine.Field) {
	l.z.Error(msg, toZapFields(fields)...)
}

// New builds a zap logger matching the requested mode: "development"
// gets human-readable console output, anything else gets the
// production JSON encoder.
func New(mode string) (*zap.Logger, error) {
	if mode == "development" {
		return zap.NewDevelopment()
	}
	return zap.NewProduction()
}
