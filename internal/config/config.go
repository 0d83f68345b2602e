// Package config holds Swatch runtime configuration, loaded from defaults,
// an optional .env file and SWATCH_* environment variables.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/hashicorp/go-hclog"
	"github.com/joho/godotenv"

	"github.com/jmylchreest/swatch/internal/cluster"
	"github.com/jmylchreest/swatch/internal/gradient"
	"github.com/jmylchreest/swatch/internal/security"
)

// Environment variable names.
const (
	EnvThreshold    = "SWATCH_THRESHOLD"
	EnvAlphaCutoff  = "SWATCH_ALPHA_CUTOFF"
	EnvSeparation   = "SWATCH_SEPARATION"
	EnvPaletteSize  = "SWATCH_PALETTE_SIZE"
	EnvDominant     = "SWATCH_DOMINANT"
	EnvMaxGradients = "SWATCH_MAX_GRADIENTS"
	EnvVariations   = "SWATCH_VARIATIONS"
	EnvMaxFileSize  = "SWATCH_MAX_FILE_SIZE"
	EnvMaxDimension = "SWATCH_MAX_DIMENSION"
	EnvLogLevel     = "SWATCH_LOG_LEVEL"
)

// Config holds every tunable used by the analysis pipeline and CLI.
type Config struct {
	Threshold    float64
	AlphaCutoff  int
	Separation   float64
	PaletteSize  int
	Dominant     int
	MaxGradients int
	Variations   bool
	MaxFileSize  int64
	MaxDimension int
	LogLevel     string
}

// Default returns the default configuration.
func Default() Config {
	return Config{
		Threshold:    cluster.DefaultThreshold,
		AlphaCutoff:  cluster.DefaultAlphaCutoff,
		Separation:   cluster.DefaultSeparation,
		PaletteSize:  cluster.DefaultPaletteSize,
		Dominant:     5,
		MaxGradients: gradient.DefaultMaxCount,
		Variations:   true,
		MaxFileSize:  security.DefaultMaxImageSize,
		MaxDimension: 0,
		LogLevel:     "info",
	}
}

// Load returns the default configuration overridden by a .env file in the
// working directory (if present) and then by SWATCH_* environment variables.
func Load() (Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return Config{}, fmt.Errorf("failed to load .env: %w", err)
	}
	cfg := Default()
	if err := cfg.ApplyEnv(os.LookupEnv); err != nil {
		return Config{}, err
	}
	return cfg, cfg.Validate()
}

// ApplyEnv overrides fields from environment variables using lookup.
func (c *Config) ApplyEnv(lookup func(string) (string, bool)) error {
	var errs []error
	get := func(key string) (string, bool) {
		v, ok := lookup(key)
		return strings.TrimSpace(v), ok && strings.TrimSpace(v) != ""
	}
	float := func(key string, dst *float64) {
		if v, ok := get(key); ok {
			f, err := strconv.ParseFloat(v, 64)
			if err != nil {
				errs = append(errs, fmt.Errorf("%s: %w", key, err))
				return
			}
			*dst = f
		}
	}
	integer := func(key string, dst *int) {
		if v, ok := get(key); ok {
			n, err := strconv.Atoi(v)
			if err != nil {
				errs = append(errs, fmt.Errorf("%s: %w", key, err))
				return
			}
			*dst = n
		}
	}

	float(EnvThreshold, &c.Threshold)
	integer(EnvAlphaCutoff, &c.AlphaCutoff)
	float(EnvSeparation, &c.Separation)
	integer(EnvPaletteSize, &c.PaletteSize)
	integer(EnvDominant, &c.Dominant)
	integer(EnvMaxGradients, &c.MaxGradients)
	integer(EnvMaxDimension, &c.MaxDimension)

	if v, ok := get(EnvVariations); ok {
		b, err := strconv.ParseBool(v)
		if err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", EnvVariations, err))
		} else {
			c.Variations = b
		}
	}
	if v, ok := get(EnvMaxFileSize); ok {
		n, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", EnvMaxFileSize, err))
		} else {
			c.MaxFileSize = n
		}
	}
	if v, ok := get(EnvLogLevel); ok {
		c.LogLevel = v
	}

	return errors.Join(errs...)
}

// Validate validates the configuration.
func (c Config) Validate() error {
	if c.Threshold < 0 || c.Threshold > 442 {
		return fmt.Errorf("threshold must be between 0 and 442, got %g", c.Threshold)
	}
	if c.AlphaCutoff < 0 || c.AlphaCutoff > 255 {
		return fmt.Errorf("alpha cutoff must be between 0 and 255, got %d", c.AlphaCutoff)
	}
	if c.Separation < c.Threshold {
		return fmt.Errorf("separation (%g) must not be smaller than the merge threshold (%g)", c.Separation, c.Threshold)
	}
	if c.PaletteSize < 1 {
		return fmt.Errorf("palette size must be at least 1, got %d", c.PaletteSize)
	}
	if c.Dominant < 1 {
		return fmt.Errorf("dominant colour count must be at least 1, got %d", c.Dominant)
	}
	if c.MaxGradients < 1 {
		return fmt.Errorf("max gradients must be at least 1, got %d", c.MaxGradients)
	}
	if c.MaxFileSize < 1 {
		return fmt.Errorf("max file size must be positive, got %d", c.MaxFileSize)
	}
	if c.MaxDimension < 0 {
		return fmt.Errorf("max dimension must not be negative, got %d", c.MaxDimension)
	}
	if hclog.LevelFromString(c.LogLevel) == hclog.NoLevel {
		return fmt.Errorf("invalid log level: %s (valid: trace, debug, info, warn, error, off)", c.LogLevel)
	}
	return nil
}

// ClusterOptions returns the clustering options.
func (c Config) ClusterOptions() cluster.Options {
	return cluster.Options{Threshold: c.Threshold, AlphaCutoff: uint8(c.AlphaCutoff)}
}

// GradientOptions returns the gradient generation options for a collection name.
func (c Config) GradientOptions(name string) gradient.Options {
	return gradient.Options{IncludeVariations: c.Variations, MaxCount: c.MaxGradients, Name: name}
}
