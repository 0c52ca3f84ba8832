// Package config handles renderer configuration loading and management.
package config

import (
	"fmt"
	"image/color"
	"math"
	"strings"
)

// Config holds all renderer settings.
type Config struct {
	Shader  ShaderConfig  `yaml:"shader"`
	Render  RenderConfig  `yaml:"render"`
	Sweep   SweepConfig   `yaml:"sweep"`
	Logging LoggingConfig `yaml:"logging"`
}

// ShaderConfig holds the per-quad shading parameters.
type ShaderConfig struct {
	AngleX         float32 `yaml:"angle_x"` // Rotation around X in degrees
	AngleY         float32 `yaml:"angle_y"` // Rotation around Y in degrees
	AngleZ         float32 `yaml:"angle_z"` // Rotation around Z in degrees
	PivotX         float32 `yaml:"pivot_x"` // Pivot offset, -1..1 across the quad
	PivotY         float32 `yaml:"pivot_y"`
	PivotZ         float32 `yaml:"pivot_z"` // Pivot depth in normalized units
	FOV            float32 `yaml:"fov"`     // Field of view in degrees
	CullBack       bool    `yaml:"cull_back"`
	OverrideWidth  float32 `yaml:"override_width"`  // Surface size override, 0 disables
	OverrideHeight float32 `yaml:"override_height"`
}

// RenderConfig holds output and rasterization settings.
type RenderConfig struct {
	Width      int    `yaml:"width"`
	Height     int    `yaml:"height"`
	Background string `yaml:"background"` // Hex color, e.g. "#1e1e2e"
	Filter     string `yaml:"filter"`     // "nearest" or "bilinear"
	Texture    string `yaml:"texture"`    // Path to a PNG or TGA file, empty for checker
	Output     string `yaml:"output"`     // Output PNG path
	Workers    int    `yaml:"workers"`    // Row-parallel workers, <2 renders serially
	ShowLabel  bool   `yaml:"show_label"` // Draw the angle/FOV overlay
}

// SweepConfig renders a sequence of frames stepping one angle.
type SweepConfig struct {
	Frames int     `yaml:"frames"` // 0 or 1 renders a single frame
	Axis   string  `yaml:"axis"`   // "x", "y" or "z"
	From   float32 `yaml:"from"`   // Start angle in degrees
	To     float32 `yaml:"to"`     // End angle in degrees
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		Shader: ShaderConfig{
			FOV:      90,
			CullBack: true,
		},
		Render: RenderConfig{
			Width:      512,
			Height:     512,
			Background: "#1e1e2e",
			Filter:     "nearest",
			Output:     "out.png",
			Workers:    1,
		},
		Sweep: SweepConfig{
			Frames: 1,
			Axis:   "y",
			From:   0,
			To:     360,
		},
		Logging: LoggingConfig{
			Level:   "info",
			LogFile: "",
		},
	}
}

// Validate checks hard constraints and clamps soft ones. The field of view is
// clamped to (1, 179] and angles are wrapped into [-180, 180].
func (c *Config) Validate() error {
	if c.Render.Width <= 0 || c.Render.Height <= 0 {
		return fmt.Errorf("render size %dx%d must be positive", c.Render.Width, c.Render.Height)
	}
	switch strings.ToLower(c.Render.Filter) {
	case "", "nearest", "bilinear":
	default:
		return fmt.Errorf("unknown filter %q", c.Render.Filter)
	}
	switch strings.ToLower(c.Sweep.Axis) {
	case "", "x", "y", "z":
	default:
		return fmt.Errorf("unknown sweep axis %q", c.Sweep.Axis)
	}
	if _, err := ParseHexColor(c.Render.Background); err != nil {
		return fmt.Errorf("background: %w", err)
	}
	if !isFinite(c.Shader.AngleX) || !isFinite(c.Shader.AngleY) || !isFinite(c.Shader.AngleZ) {
		return fmt.Errorf("rotation angles must be finite")
	}
	if !isFinite(c.Shader.FOV) {
		return fmt.Errorf("fov must be finite")
	}

	c.Shader.FOV = clampFOV(c.Shader.FOV)
	c.Shader.AngleX = wrapAngle(c.Shader.AngleX)
	c.Shader.AngleY = wrapAngle(c.Shader.AngleY)
	c.Shader.AngleZ = wrapAngle(c.Shader.AngleZ)
	if c.Render.Workers < 0 {
		c.Render.Workers = 0
	}
	if c.Sweep.Frames < 1 {
		c.Sweep.Frames = 1
	}
	return nil
}

func clampFOV(fov float32) float32 {
	if fov <= 1 {
		return 1.0001
	}
	if fov > 179 {
		return 179
	}
	return fov
}

// wrapAngle brings an angle in degrees into [-180, 180].
func wrapAngle(deg float32) float32 {
	m := math.Mod(float64(deg)+180, 360)
	if m < 0 {
		m += 360
	}
	return float32(m - 180)
}

func isFinite(v float32) bool {
	f := float64(v)
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}

// ParseHexColor parses "#rgb" or "#rrggbb" into an opaque RGBA color.
func ParseHexColor(s string) (color.RGBA, error) {
	s = strings.TrimPrefix(s, "#")
	var r, g, b uint8
	switch len(s) {
	case 3:
		_, err := fmt.Sscanf(s, "%1x%1x%1x", &r, &g, &b)
		if err != nil {
			return color.RGBA{}, fmt.Errorf("invalid hex color %q", s)
		}
		r, g, b = r*17, g*17, b*17
	case 6:
		_, err := fmt.Sscanf(s, "%2x%2x%2x", &r, &g, &b)
		if err != nil {
			return color.RGBA{}, fmt.Errorf("invalid hex color %q", s)
		}
	default:
		return color.RGBA{}, fmt.Errorf("invalid hex color %q", s)
	}
	return color.RGBA{R: r, G: g, B: b, A: 255}, nil
}
