// Package logging builds the process-wide structured logger. User-facing
// output goes through printers; the logger only carries best-effort failures
// and diagnostics to stderr.
package logging

import (
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// New returns a sugared logger writing to stderr. Level defaults to warn so
// normal CLI runs stay quiet; PA_DEBUG=1 lowers it to debug.
func New() *zap.SugaredLogger {
	level := zapcore.WarnLevel
	if os.Getenv("PA_DEBUG") != "" {
		level = zapcore.DebugLevel
	}

	cfg := zap.NewDevelopmentConfig()
	cfg.Level = zap.NewAtomicLevelAt(level)
	cfg.OutputPaths = []string{"stderr"}
	cfg.ErrorOutputPaths = []string{"stderr"}
	cfg.DisableStacktrace = true

	logger, err := cfg.Build()
	if err != nil {
		return zap.NewNop().Sugar()
	}
	return logger.Sugar()
}
