// Package config loads cubewalk settings.
//
// Precedence (highest to lowest):
//  1. Command-line flags (applied by the caller after Load)
//  2. Environment variables (CUBEWALK_MODE, CUBEWALK_FACE_SIZE, ...)
//  3. YAML config file
//  4. Defaults
//
// Environment variables map to keys by dropping the prefix and
// lowercasing; the LOG_ section becomes a nested key:
//
//	CUBEWALK_FACE_SIZE -> face_size
//	CUBEWALK_LOG_LEVEL -> log.level
package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/rawbytes"
	"github.com/knadh/koanf/v2"

	"github.com/katalvlaran/cubefold/internal/logging"
)

// EnvPrefix prefixes every environment variable read by Load.
const EnvPrefix = "CUBEWALK_"

const maxFileSize = 1 << 20

// Walk modes.
const (
	ModeCube = "cube"
	ModeFlat = "flat"
	ModeBoth = "both"
)

// ErrInvalid indicates a setting failed validation.
var ErrInvalid = errors.New("config: invalid setting")

// Config holds every cubewalk setting.
type Config struct {
	// Mode selects the warp strategy: cube, flat or both.
	Mode string `koanf:"mode"`

	// FaceSize forces the face side length; 0 uses the gcd heuristic.
	FaceSize int `koanf:"face_size"`

	Log Log `koanf:"log"`
}

// Log configures the logger.
type Log struct {
	Level  string `koanf:"level"`
	Format string `koanf:"format"`
}

// Default returns the built-in settings.
func Default() Config {
	return Config{
		Mode: ModeBoth,
		Log:  Log{Level: "warn", Format: logging.FormatConsole},
	}
}

// Load reads the YAML file at path, if path is not empty, then
// environment overrides, and validates the result.
func Load(path string) (*Config, error) {
	var content []byte
	if path != "" {
		f, err := os.Open(path)
		if err != nil {
			return nil, fmt.Errorf("config: open: %w", err)
		}
		defer f.Close()
		content, err = io.ReadAll(io.LimitReader(f, maxFileSize+1))
		if err != nil {
			return nil, fmt.Errorf("config: read %s: %w", path, err)
		}
		if len(content) > maxFileSize {
			return nil, fmt.Errorf("%w: %s is larger than %d bytes", ErrInvalid, path, maxFileSize)
		}
	}
	return load(content)
}

func load(content []byte) (*Config, error) {
	k := koanf.New(".")

	if len(content) > 0 {
		if err := k.Load(rawbytes.Provider(content), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("config: parse yaml: %w", err)
		}
	}
	if err := k.Load(env.Provider(EnvPrefix, ".", envKey), nil); err != nil {
		return nil, fmt.Errorf("config: environment: %w", err)
	}

	cfg := Default()
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("config: unmarshal: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// envKey maps CUBEWALK_LOG_LEVEL to log.level and CUBEWALK_FACE_SIZE to face_size.
func envKey(s string) string {
	key := strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
	if rest, ok := strings.CutPrefix(key, "log_"); ok {
		return "log." + rest
	}
	return key
}

// Validate checks every field.
func (c *Config) Validate() error {
	switch c.Mode {
	case ModeCube, ModeFlat, ModeBoth:
	default:
		return fmt.Errorf("%w: mode %q (want cube, flat or both)", ErrInvalid, c.Mode)
	}
	if c.FaceSize < 0 {
		return fmt.Errorf("%w: face_size %d must not be negative", ErrInvalid, c.FaceSize)
	}
	if _, err := logging.ParseLevel(c.Log.Level); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalid, err)
	}
	switch c.Log.Format {
	case logging.FormatConsole, logging.FormatJSON:
	default:
		return fmt.Errorf("%w: log format %q", ErrInvalid, c.Log.Format)
	}
	return nil
}
