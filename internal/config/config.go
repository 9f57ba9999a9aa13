// Package config loads optional run settings from a YAML or TOML file.
package config

import (
	"errors"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"hydropathy/internal/hydropathy"
	"hydropathy/internal/region"
)

// Config holds every setting a run needs. Keys absent from a file keep their
// defaults; a key that is present always wins, zero included.
type Config struct {
	WindowSize int     `yaml:"window_size" toml:"window_size"`
	Threshold  float64 `yaml:"threshold" toml:"threshold"`
	Format     string  `yaml:"format" toml:"format"`
	Output     string  `yaml:"output" toml:"output"`
	Strict     bool    `yaml:"strict" toml:"strict"`
	Threads    int     `yaml:"threads" toml:"threads"`
	LogLevel   string  `yaml:"log_level" toml:"log_level"`

	// Chart size: terminal columns/rows or image pixels. 0 = renderer default
	// (the terminal width follows the TTY when Width is 0).
	Width  int `yaml:"width" toml:"width"`
	Height int `yaml:"height" toml:"height"`
}

// Default returns the built-in settings.
func Default() Config {
	return Config{
		WindowSize: hydropathy.DefaultWindow,
		Threshold:  region.DefaultThreshold,
		Format:     "terminal",
		LogLevel:   "info",
	}
}

// Load reads path over the defaults. ".toml" files are TOML; anything else
// is YAML. An empty path returns the defaults.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read config: %w", err)
	}

	if strings.EqualFold(filepath.Ext(path), ".toml") {
		err = toml.Unmarshal(data, &cfg)
	} else {
		err = yaml.Unmarshal(data, &cfg)
	}
	if err != nil {
		return Default(), fmt.Errorf("parse config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate rejects settings no run can use. Format names are checked by the
// writers registry.
func (c Config) Validate() error {
	var errs []error
	if c.WindowSize < 1 {
		errs = append(errs, fmt.Errorf("window size: %w: got %d", hydropathy.ErrInvalidWindowSize, c.WindowSize))
	}
	if math.IsNaN(c.Threshold) || math.IsInf(c.Threshold, 0) {
		errs = append(errs, fmt.Errorf("threshold must be finite: got %v", c.Threshold))
	}
	if c.Threads < 0 {
		errs = append(errs, errors.New("threads must be ≥ 0"))
	}
	if c.Width < 0 || c.Height < 0 {
		errs = append(errs, fmt.Errorf("chart size must be ≥ 0: got %dx%d", c.Width, c.Height))
	}
	if c.Format == "" {
		errs = append(errs, errors.New("format must not be empty"))
	}
	return errors.Join(errs...)
}
