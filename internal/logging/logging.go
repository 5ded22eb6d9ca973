// Package logging builds the zap logger used by cubewalk.
package logging

import (
	"errors"
	"fmt"
	"io"
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Supported encoder formats.
const (
	FormatConsole = "console"
	FormatJSON    = "json"
)

var (
	// ErrLevel indicates an unknown level name.
	ErrLevel = errors.New("logging: unknown level")
	// ErrFormat indicates an unknown encoder format.
	ErrFormat = errors.New("logging: unknown format")
)

// ParseLevel parses a zap level name such as "debug" or "warn".
func ParseLevel(level string) (zapcore.Level, error) {
	var l zapcore.Level
	if err := l.UnmarshalText([]byte(level)); err != nil {
		return zapcore.InfoLevel, fmt.Errorf("%w: %q", ErrLevel, level)
	}
	return l, nil
}

// New returns a logger writing to stderr.
func New(level, format string) (*zap.Logger, error) {
	return NewWriter(os.Stderr, level, format)
}

// NewWriter returns a logger writing to w.
func NewWriter(w io.Writer, level, format string) (*zap.Logger, error) {
	lvl, err := ParseLevel(level)
	if err != nil {
		return nil, err
	}
	enc, err := newEncoder(format)
	if err != nil {
		return nil, err
	}
	core := zapcore.NewCore(enc, zapcore.AddSync(w), lvl)
	return zap.New(core), nil
}

func newEncoder(format string) (zapcore.Encoder, error) {
	cfg := zap.NewProductionEncoderConfig()
	cfg.TimeKey = "ts"
	cfg.EncodeTime = zapcore.ISO8601TimeEncoder

	switch format {
	case FormatConsole:
		return zapcore.NewConsoleEncoder(cfg), nil
	case FormatJSON:
		return zapcore.NewJSONEncoder(cfg), nil
	}
	return nil, fmt.Errorf("%w: %q", ErrFormat, format)
}
