// Package config handles trailkit configuration loading and management.
package config

import (
	"errors"
	"fmt"

	"github.com/Faultbox/trailkit/internal/logger"
	"github.com/Faultbox/trailkit/pkg/trail"
)

// Emitter path kinds.
const (
	PathCircle    = "circle"
	PathLine      = "line"
	PathLissajous = "lissajous"
	PathFigure8   = "figure8"
)

// Footprint shape kinds.
const (
	ShapeCircle    = "circle"
	ShapeRectangle = "rectangle"
	ShapeCapsule   = "capsule"
)

// Config holds all settings.
type Config struct {
	Tube    trail.TubeConfig `yaml:"tube" toml:"tube"`
	Line    trail.LineConfig `yaml:"line" toml:"line"`
	Emitter EmitterConfig    `yaml:"emitter" toml:"emitter"`
	Sim     SimConfig        `yaml:"sim" toml:"sim"`
	Window  WindowConfig     `yaml:"window" toml:"window"`
	Light   LightConfig      `yaml:"light" toml:"light"`
	Debug   DebugConfig      `yaml:"debug" toml:"debug"`
	Logging LoggingConfig    `yaml:"logging" toml:"logging"`
}

// EmitterConfig describes the motion of the simulated emitter.
type EmitterConfig struct {
	Path   string  `yaml:"path" toml:"path"`     // circle, line, lissajous or figure8
	Radius float32 `yaml:"radius" toml:"radius"` // Size of the path
	Speed  float32 `yaml:"speed" toml:"speed"`   // Angular speed (rad/s) or linear speed for line
	Height float32 `yaml:"height" toml:"height"` // Base height above the ground plane
}

// SimConfig holds tick settings.
type SimConfig struct {
	Ticks    int     `yaml:"ticks" toml:"ticks"`         // Ticks to run in headless mode
	TickRate float32 `yaml:"tick_rate" toml:"tick_rate"` // Ticks per second
}

// WindowConfig holds display settings.
type WindowConfig struct {
	Width      int  `yaml:"width" toml:"width"`
	Height     int  `yaml:"height" toml:"height"`
	Fullscreen bool `yaml:"fullscreen" toml:"fullscreen"`
	VSync      bool `yaml:"vsync" toml:"vsync"`
}

// LightConfig places the viewer's sun, in degrees.
type LightConfig struct {
	Longitude float32 `yaml:"longitude" toml:"longitude"`
	Latitude  float32 `yaml:"latitude" toml:"latitude"`
}

// DebugConfig holds debug overlay settings.
type DebugConfig struct {
	ShowBounds     bool    `yaml:"show_bounds" toml:"show_bounds"`
	ShowGrid       bool    `yaml:"show_grid" toml:"show_grid"`
	ShowFootprint  bool    `yaml:"show_footprint" toml:"show_footprint"`
	FootprintShape string  `yaml:"footprint_shape" toml:"footprint_shape"` // circle, rectangle or capsule
	FootprintSize  float32 `yaml:"footprint_size" toml:"footprint_size"`
	ScreenshotDir  string  `yaml:"screenshot_dir" toml:"screenshot_dir"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level" toml:"level"`
	LogFile string `yaml:"log_file" toml:"log_file"`
}

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		Tube: trail.DefaultTubeConfig(),
		Line: trail.DefaultLineConfig(),
		Emitter: EmitterConfig{
			Path:   PathLissajous,
			Radius: 6,
			Speed:  1.2,
			Height: 2,
		},
		Sim: SimConfig{
			Ticks:    300,
			TickRate: 60,
		},
		Window: WindowConfig{
			Width:      1280,
			Height:     720,
			Fullscreen: false,
			VSync:      true,
		},
		Light: LightConfig{
			Longitude: 215,
			Latitude:  55,
		},
		Debug: DebugConfig{
			ShowBounds:     false,
			ShowGrid:       true,
			ShowFootprint:  true,
			FootprintShape: ShapeCircle,
			FootprintSize:  0.5,
			ScreenshotDir:  "screenshots",
		},
		Logging: LoggingConfig{
			Level:   "info",
			LogFile: "",
		},
	}
}

// Validate reports settings that clamping cannot repair.
func (c *Config) Validate() error {
	var errs []error

	switch c.Emitter.Path {
	case PathCircle, PathLine, PathLissajous, PathFigure8:
	default:
		errs = append(errs, fmt.Errorf("emitter.path: unknown path %q", c.Emitter.Path))
	}
	switch c.Debug.FootprintShape {
	case ShapeCircle, ShapeRectangle, ShapeCapsule:
	default:
		errs = append(errs, fmt.Errorf("debug.footprint_shape: unknown shape %q", c.Debug.FootprintShape))
	}
	if c.Sim.TickRate <= 0 {
		errs = append(errs, fmt.Errorf("sim.tick_rate: must be positive, got %v", c.Sim.TickRate))
	}
	if c.Sim.Ticks < 0 {
		errs = append(errs, fmt.Errorf("sim.ticks: must not be negative, got %d", c.Sim.Ticks))
	}
	if c.Light.Latitude < -90 || c.Light.Latitude > 90 {
		errs = append(errs, fmt.Errorf("light.latitude: must be within [-90, 90], got %v", c.Light.Latitude))
	}
	if _, err := logger.ParseLevel(c.Logging.Level); err != nil {
		errs = append(errs, fmt.Errorf("logging.level: %w", err))
	}
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		errs = append(errs, fmt.Errorf("window: invalid size %dx%d", c.Window.Width, c.Window.Height))
	}

	return errors.Join(errs...)
}
