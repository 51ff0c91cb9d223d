package logging

import (
	"testing"

	"github.com/hexmind/hexengine/internal/engine"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

func TestEngineLoggerSatisfiesInterface(t *testing.T) {
	z := zaptest.NewLogger(t)
	var l engine.Logger = NewEngineLogger(z)
	require.NotNil(t, l)

	l.Info("hello", engine.String("id", "abc"), engine.Int("n", 3))
	l.Warn("careful")
	l.Error("broke", engine.Float("elapsed", 1.5))
}

func TestToZapFieldsPreservesKeys(t *testing.T) {
	fields := toZapFields([]engine.Field{engine.String("a", "b"), engine.Int("c", 1)})
	assert.Len(t, fields, 2)
	assert.Equal(t, "a", fields[0].Key)
	assert.Equal(t, "c", fields[1].Key)
}
