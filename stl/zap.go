package stl

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// newDevLogger builds the logger used for verbose runs when the caller
// did not supply one.
func newDevLogger() *zap.Logger {
	cfg := zap.NewDevelopmentConfig()

	cfg.EncoderConfig.TimeKey = "ts"
	cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	cfg.DisableCaller = true

	logger, err := cfg.Build()
	if err != nil {
		return zap.NewNop()
	}
	return logger
}
