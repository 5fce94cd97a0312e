// Package logging builds the zap loggers used by the CLI.
package logging

import (
	"fmt"
	"io"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"aoc2023/internal/config"
)

// New creates a logger writing to w at the given level and format.
func New(w io.Writer, level string, format config.LogFormat) (*zap.Logger, error) {
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("parse log level: %w", err)
	}

	encCfg := zap.NewProductionEncoderConfig()
	encCfg.EncodeTime = zapcore.ISO8601TimeEncoder

	var enc zapcore.Encoder
	switch format {
	case config.LogFormatJSON:
		enc = zapcore.NewJSONEncoder(encCfg)
	case config.LogFormatConsole, "":
		encCfg.EncodeLevel = zapcore.CapitalLevelEncoder
		enc = zapcore.NewConsoleEncoder(encCfg)
	default:
		return nil, fmt.Errorf("unknown log format %q", format)
	}

	core := zapcore.NewCore(enc, zapcore.Lock(zapcore.AddSync(w)), zap.NewAtomicLevelAt(lvl))

	return zap.New(core), nil
}

// FromConfig creates a logger for cfg writing to w.
func FromConfig(w io.Writer, cfg config.Config) (*zap.Logger, error) {
	return New(w, cfg.LogLevel, cfg.LogFormat)
}
