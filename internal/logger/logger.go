package logger

import (
	"fmt"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"employee-tracker/internal/config"
)

// New builds a zap.Logger. Output is a zap sink path ("stderr", "stdout" or a file).
func New(level, format, output string) (*zap.Logger, error) {
	cfg := zap.NewProductionConfig()
	cfg.Encoding = format
	if cfg.Encoding == "" {
		cfg.Encoding = "console"
	}
	cfg.EncoderConfig.TimeKey = "ts"
	cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	cfg.Sampling = nil

	if output == "" {
		output = "stderr"
	}
	cfg.OutputPaths = []string{output}
	cfg.ErrorOutputPaths = []string{"stderr"}

	if level == "" {
		level = "warn"
	}
	if err := cfg.Level.UnmarshalText([]byte(level)); err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", level, err)
	}

	return cfg.Build()
}

func NewFromConfig(cfg config.LogConfig) (*zap.Logger, error) {
	return New(cfg.Level, cfg.Format, cfg.Output)
}
