// Package config loads host options from the environment.
package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

// Config holds the showcase's host options. Motion and audio constants are
// fixed in their packages and are not configurable.
type Config struct {
	FPS          int    `env:"HIDDENLEAF_FPS"           envDefault:"60"`
	Sound        bool   `env:"HIDDENLEAF_SOUND"         envDefault:"false"`
	Title        string `env:"HIDDENLEAF_TITLE"         envDefault:"Enter the Hidden Leaf"`
	LogFile      string `env:"HIDDENLEAF_LOG_FILE"`
	ReducedTrail bool   `env:"HIDDENLEAF_REDUCED_TRAIL" envDefault:"false"`
}

var errInvalid = errors.New("invalid configuration")

// Load parses the environment and validates the result.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks option ranges.
func (c Config) Validate() error {
	if c.FPS <= 0 || c.FPS > 240 {
		return fmt.Errorf("%w: HIDDENLEAF_FPS must be in 1..240, got %d", errInvalid, c.FPS)
	}
	if c.Title == "" {
		return fmt.Errorf("%w: HIDDENLEAF_TITLE must not be empty", errInvalid)
	}
	return nil
}

// FrameInterval returns the time between frame ticks.
func (c Config) FrameInterval() time.Duration {
	return time.Second / time.Duration(c.FPS)
}
