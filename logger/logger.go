// Package logger provides the process wide structured logger of the fifo tool.
package logger

import (
	"sync"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	sugar *zap.SugaredLogger
	once  sync.Once
)

// Init initializes the global logger.
// A verbose logger writes debug entries to stderr with a human-readable
// console encoder, otherwise only warnings and errors are written.
func Init(verbose bool) {
	once.Do(func() {
		cfg := zap.NewDevelopmentConfig()
		cfg.DisableStacktrace = true
		if !verbose {
			cfg.Level = zap.NewAtomicLevelAt(zapcore.WarnLevel)
			cfg.DisableCaller = true
		}
		base, err := cfg.Build()
		if err != nil {
			// Fallback to nop logger if initialization fails.
			base = zap.NewNop()
		}
		sugar = base.Sugar()
	})
}

// Set replaces the global logger, it is meant for tests.
func Set(l *zap.Logger) {
	once.Do(func() {})
	sugar = l.Sugar()
}

// Get returns the global sugared logger.
// If Init has not been called, it initializes a quiet logger.
func Get() *zap.SugaredLogger {
	if sugar == nil {
		Init(false)
	}
	return sugar
}

// Sync flushes any buffered log entries. Call this before application exit.
func Sync() {
	if sugar != nil {
		_ = sugar.Sync()
	}
}
