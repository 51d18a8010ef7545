package bootstrap

import (
	"fmt"
	"strings"

	"go-hrms/internal/config"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// NewLogger membangun zap logger dari konfigurasi. Format "console" memakai
// encoder development, selain itu json.
func NewLogger(cfg config.LoggerConfig) (*zap.Logger, error) {
	level, err := zapcore.ParseLevel(strings.ToLower(strings.TrimSpace(cfg.Level)))
	if err != nil {
		return nil, fmt.Errorf("invalid logger level %q: %w", cfg.Level, err)
	}

	var zc zap.Config
	switch strings.ToLower(cfg.Format) {
	case "console":
		zc = zap.NewDevelopmentConfig()
	case "", "json":
		zc = zap.NewProductionConfig()
		zc.EncoderConfig.TimeKey = "timestamp"
		zc.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	default:
		return nil, fmt.Errorf("invalid logger format %q", cfg.Format)
	}

	zc.Level = zap.NewAtomicLevelAt(level)
	if cfg.OutputPath != "" {
		zc.OutputPaths = []string{cfg.OutputPath}
	}

	return zc.Build()
}

// Setup memasang logger sebagai global; kembalikan fungsi sync untuk defer.
func Setup(cfg config.LoggerConfig) (*zap.Logger, func(), error) {
	logger, err := NewLogger(cfg)
	if err != nil {
		return nil, nil, err
	}
	zap.ReplaceGlobals(logger)
	return logger, func() { _ = logger.Sync() }, nil
}
