// Package log builds the zap loggers used by the synchealth commands.
package log

import (
	"fmt"
	"io"
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const (
	// ConsoleEncoder represents logging with plain text.
	ConsoleEncoder = "console"
	// JSONEncoder represents logging with JSON.
	JSONEncoder = "json"
)

// Config configures logging.
type Config struct {
	Level   string `mapstructure:"level"`
	Encoder string `mapstructure:"encoder"`
}

// DefaultConfig returns the default Config.
func DefaultConfig() Config {
	return Config{
		Level:   zapcore.InfoLevel.String(),
		Encoder: ConsoleEncoder,
	}
}

// where logs go by default.
var logWriter io.Writer = os.Stderr

// New creates a logger from the config.
func New(cfg Config) (*zap.Logger, error) {
	return NewWithWriter(cfg, logWriter)
}

// NewWithWriter creates a logger that writes to w.
func NewWithWriter(cfg Config, w io.Writer) (*zap.Logger, error) {
	level, err := zap.ParseAtomicLevel(cfg.Level)
	if err != nil {
		return nil, fmt.Errorf("parse log level: %w", err)
	}
	encoder, err := NewEncoder(cfg.Encoder)
	if err != nil {
		return nil, err
	}
	return NewWithLevel(level, encoder, w), nil
}

// NewWithLevel creates a logger with a fixed level.
func NewWithLevel(level zap.AtomicLevel, encoder zapcore.Encoder, w io.Writer) *zap.Logger {
	core := zapcore.NewCore(encoder, zapcore.AddSync(w), level)
	return zap.New(core)
}

// NewEncoder returns the encoder of the given kind.
func NewEncoder(kind string) (zapcore.Encoder, error) {
	switch kind {
	case ConsoleEncoder, "":
		return zapcore.NewConsoleEncoder(zap.NewDevelopmentEncoderConfig()), nil
	case JSONEncoder:
		return zapcore.NewJSONEncoder(zap.NewProductionEncoderConfig()), nil
	}
	return nil, fmt.Errorf("unknown log encoder %q", kind)
}
