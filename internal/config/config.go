// Package config holds the configuration of the path smoothing CLI.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/npillmayer/pathsmooth"
	"github.com/npillmayer/pathsmooth/polygon"
	"gopkg.in/yaml.v3"
)

// DefaultStep is the default target distance between samples.
const DefaultStep = 0.1

// DefaultFrame is the name of the frame exported poses refer to.
const DefaultFrame = "odom"

// ErrInvalidConfig is returned for configurations failing validation.
var ErrInvalidConfig = errors.New("invalid configuration")

// Config is the root configuration. Fields omitted from a config file
// keep their defaults.
type Config struct {
	Step   float64     `yaml:"step"`
	Frame  FrameConfig `yaml:"frame"`
	Plot   PlotConfig  `yaml:"plot"`
	Bounds []float64   `yaml:"bounds,omitempty"` // [minx, miny, maxx, maxy]
}

// FrameConfig places the smoothed path into a parent frame.
type FrameConfig struct {
	Name   string     `yaml:"name"`
	Origin [2]float64 `yaml:"origin"`
	YawDeg float64    `yaml:"yaw_deg"`
}

// PlotConfig controls the PNG rendering. An empty File disables it.
type PlotConfig struct {
	File     string  `yaml:"file"`
	WidthIn  float64 `yaml:"width_in"`
	HeightIn float64 `yaml:"height_in"`
}

// Default returns a configuration with all defaults set.
func Default() *Config {
	return &Config{
		Step:  DefaultStep,
		Frame: FrameConfig{Name: DefaultFrame},
		Plot:  PlotConfig{WidthIn: 8, HeightIn: 6},
	}
}

// Load reads a YAML configuration file on top of the defaults and
// validates it.
func Load(path string) (*Config, error) {
	cleanPath := filepath.Clean(path)
	if ext := filepath.Ext(cleanPath); ext != ".yaml" && ext != ".yml" {
		return nil, fmt.Errorf("config file must have .yaml extension, got %q", ext)
	}
	data, err := os.ReadFile(cleanPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}
	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file %s: %w", cleanPath, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks value ranges.
func (c *Config) Validate() error {
	if !(c.Step > 0) || !pathsmooth.IsFinite(c.Step) {
		return fmt.Errorf("%w: step must be positive, got %g", ErrInvalidConfig, c.Step)
	}
	if c.Plot.WidthIn <= 0 || c.Plot.HeightIn <= 0 {
		return fmt.Errorf("%w: plot size must be positive, got %gx%g", ErrInvalidConfig,
			c.Plot.WidthIn, c.Plot.HeightIn)
	}
	if len(c.Bounds) != 0 {
		if len(c.Bounds) != 4 {
			return fmt.Errorf("%w: bounds need 4 values, got %d", ErrInvalidConfig, len(c.Bounds))
		}
		if c.Bounds[0] >= c.Bounds[2] || c.Bounds[1] >= c.Bounds[3] {
			return fmt.Errorf("%w: bounds are inverted or empty: %v", ErrInvalidConfig, c.Bounds)
		}
	}
	return nil
}

// Transform returns the transform from path coordinates into the
// configured frame.
func (c *Config) Transform() pathsmooth.AT {
	origin := pathsmooth.P(c.Frame.Origin[0], c.Frame.Origin[1])
	return pathsmooth.Frame(origin, c.Frame.YawDeg*pathsmooth.Deg2Rad)
}

// Region returns the configured bounds as a closed polygon, or nil if no
// bounds are configured.
func (c *Config) Region() *polygon.Polygon {
	if len(c.Bounds) != 4 {
		return nil
	}
	return polygon.Box(pathsmooth.P(c.Bounds[0], c.Bounds[1]), pathsmooth.P(c.Bounds[2], c.Bounds[3]))
}
