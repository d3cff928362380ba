// Package logger builds the site's structured JSON logger. Every entry carries
// the instance name so logs from multiple replicas can be told apart.
package logger

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// New returns a production JSON logger at the given level. Unknown levels fall
// back to info rather than failing startup.
func New(level, instance string) (*zap.Logger, error) {
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		lvl = zapcore.InfoLevel
	}

	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(lvl)
	cfg.EncoderConfig = encoderConfig()

	log, err := cfg.Build()
	if err != nil {
		return nil, err
	}
	return log.With(zap.String("instance", instance)), nil
}

// encoderConfig is the production encoder config with the site's field names:
// timestamp, level and message, with RFC3339 timestamps.
func encoderConfig() zapcore.EncoderConfig {
	cfg := zap.NewProductionEncoderConfig()
	cfg.TimeKey = "timestamp"
	cfg.MessageKey = "message"
	cfg.EncodeTime = zapcore.RFC3339TimeEncoder
	return cfg
}
