package main

import (
	"fmt"

	"agenda/internal/config"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// newLogger builds a development logger for APP_ENV=development and a JSON
// production logger otherwise, at LOG_LEVEL.
func newLogger(cfg *config.Config) (*zap.Logger, error) {
	level, err := zapcore.ParseLevel(cfg.LogLevel)
	if err != nil {
		return nil, fmt.Errorf("invalid LOG_LEVEL %q: %w", cfg.LogLevel, err)
	}

	zapCfg := zap.NewProductionConfig()
	if cfg.IsDevelopment() {
		zapCfg = zap.NewDevelopmentConfig()
	}
	zapCfg.Level = zap.NewAtomicLevelAt(level)

	return zapCfg.Build()
}

// setupLogger installs the logger globally for packages that log through
// zap.L(). The returned func flushes it.
func setupLogger(cfg *config.Config) (*zap.Logger, func(), error) {
	logger, err := newLogger(cfg)
	if err != nil {
		return nil, nil, err
	}

	restore := zap.ReplaceGlobals(logger)
	return logger, func() {
		_ = logger.Sync()
		restore()
	}, nil
}
