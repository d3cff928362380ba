package logger

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func TestEncoderFieldNames(t *testing.T) {
	enc := zapcore.NewJSONEncoder(encoderConfig())
	buf, err := enc.EncodeEntry(zapcore.Entry{
		Level:   zapcore.InfoLevel,
		Time:    time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC),
		Message: "request",
	}, []zapcore.Field{zap.String("instance", "lumen-1")})
	require.NoError(t, err)

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))

	assert.Equal(t, "info", entry["level"])
	assert.Equal(t, "request", entry["message"])
	assert.Equal(t, "lumen-1", entry["instance"])
	assert.Equal(t, "2025-03-01T12:00:00Z", entry["timestamp"])
}

func TestNewLevelHandling(t *testing.T) {
	log, err := New("debug", "lumen-1")
	require.NoError(t, err)
	assert.True(t, log.Core().Enabled(zapcore.DebugLevel))

	log, err = New("not-a-level", "lumen-1")
	require.NoError(t, err)
	assert.False(t, log.Core().Enabled(zapcore.DebugLevel))
	assert.True(t, log.Core().Enabled(zapcore.InfoLevel))
}
