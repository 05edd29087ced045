// Package adslog builds the zap logger used across the tool.
package adslog

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Options selects where logs go. The terminal UI owns stdout, so in UI mode
// logs either go to a file or nowhere.
type Options struct {
	File     string
	Level    string
	ToStderr bool
}

// New returns a no-op logger when there is no destination.
func New(o Options) (*zap.Logger, error) {
	var outputs []string
	if o.File != "" {
		outputs = append(outputs, o.File)
	}
	if o.ToStderr {
		outputs = append(outputs, "stderr")
	}
	if len(outputs) == 0 {
		return zap.NewNop(), nil
	}

	level := zapcore.InfoLevel
	if o.Level != "" {
		var err error
		if level, err = zapcore.ParseLevel(o.Level); err != nil {
			return nil, err
		}
	}

	encoding := "json"
	if o.File == "" {
		encoding = "console"
	}

	cfg := zap.Config{
		Level:            zap.NewAtomicLevelAt(level),
		Encoding:         encoding,
		EncoderConfig:    zap.NewProductionEncoderConfig(),
		OutputPaths:      outputs,
		ErrorOutputPaths: outputs,
	}
	cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	return cfg.Build()
}
