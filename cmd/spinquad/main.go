// Package main renders rotated quads to PNG files.
package main

import (
	"fmt"
	"image/color"
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/zap"

	"github.com/Faultbox/spinquad/internal/config"
	"github.com/Faultbox/spinquad/internal/logger"
	"github.com/Faultbox/spinquad/internal/raster"
	"github.com/Faultbox/spinquad/pkg/math"
	"github.com/Faultbox/spinquad/pkg/shader"
)

var (
	colorWhite   = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	checkerLight = color.RGBA{R: 220, G: 220, B: 220, A: 255}
	checkerDark  = color.RGBA{R: 90, G: 90, B: 120, A: 255}
)

func main() {
	// Parse CLI flags first
	config.ParseFlags()

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Config error: %v\n", err)
		os.Exit(1)
	}

	if path := config.SavePath(); path != "" {
		if err := cfg.SaveTo(path); err != nil {
			fmt.Fprintf(os.Stderr, "Saving config: %v\n", err)
			os.Exit(1)
		}
		fmt.Println("Config written to", path)
		return
	}

	// Initialize logger
	if err := logger.Init(cfg.Logging.Level, cfg.Logging.LogFile); err != nil {
		fmt.Fprintf(os.Stderr, "Logger error: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	logger.Sugar.Debugf("Config: %+v", cfg)

	if err := run(cfg); err != nil {
		logger.Error("render failed", zap.Error(err))
		os.Exit(1)
	}
}

func run(cfg *config.Config) error {
	tex, err := loadTexture(cfg)
	if err != nil {
		return err
	}

	bg, err := config.ParseHexColor(cfg.Render.Background)
	if err != nil {
		return err
	}

	fb := raster.NewFramebuffer(cfg.Render.Width, cfg.Render.Height)
	r := raster.NewRasterizer(fb)
	r.Workers = cfg.Render.Workers

	center := math.Vec2{
		X: float32(cfg.Render.Width) / 2,
		Y: float32(cfg.Render.Height) / 2,
	}

	frames := cfg.Sweep.Frames
	for i := 0; i < frames; i++ {
		sc := shaderConfig(cfg)
		if frames > 1 {
			applySweep(&sc, cfg.Sweep, i)
		}

		fb.Clear(bg)
		r.DrawQuad(sc, tex, center, shader.White)

		if cfg.Render.ShowLabel {
			label := fmt.Sprintf("x%.0f y%.0f z%.0f fov%.0f",
				sc.Angles.X, sc.Angles.Y, sc.Angles.Z, sc.FOV)
			fb.DrawLabel(4, 14, label, colorWhite)
		}

		path := framePath(cfg.Render.Output, i, frames)
		if err := fb.SavePNG(path); err != nil {
			return fmt.Errorf("writing %s: %w", path, err)
		}
		logger.Info("frame written",
			zap.String("path", path),
			zap.Float32("angle_x", sc.Angles.X),
			zap.Float32("angle_y", sc.Angles.Y),
			zap.Float32("angle_z", sc.Angles.Z),
		)
	}

	return nil
}

// loadTexture reads the configured texture, falling back to a checkerboard
// when none is set.
func loadTexture(cfg *config.Config) (*raster.Texture, error) {
	filter := raster.ParseFilter(cfg.Render.Filter)
	if cfg.Render.Texture == "" {
		return raster.NewCheckerTexture(64, 8, checkerLight, checkerDark), nil
	}
	tex, err := raster.LoadTexture(cfg.Render.Texture, filter)
	if err != nil {
		return nil, err
	}
	logger.Info("texture loaded",
		zap.String("path", cfg.Render.Texture),
		zap.Int("width", tex.Width),
		zap.Int("height", tex.Height),
	)
	return tex, nil
}

// shaderConfig maps the file/flag configuration onto shading parameters.
func shaderConfig(cfg *config.Config) shader.Config {
	return shader.Config{
		Angles:   math.Vec3{X: cfg.Shader.AngleX, Y: cfg.Shader.AngleY, Z: cfg.Shader.AngleZ},
		Pivot:    math.Vec3{X: cfg.Shader.PivotX, Y: cfg.Shader.PivotY, Z: cfg.Shader.PivotZ},
		FOV:      cfg.Shader.FOV,
		CullBack: cfg.Shader.CullBack,
		OverrideSize: math.Vec2{
			X: cfg.Shader.OverrideWidth,
			Y: cfg.Shader.OverrideHeight,
		},
	}
}

// applySweep replaces one rotation axis with the i-th step of the sweep.
func applySweep(sc *shader.Config, sweep config.SweepConfig, i int) {
	t := float32(i) / float32(sweep.Frames-1)
	angle := sweep.From + (sweep.To-sweep.From)*t
	switch strings.ToLower(sweep.Axis) {
	case "x":
		sc.Angles.X = angle
	case "z":
		sc.Angles.Z = angle
	default:
		sc.Angles.Y = angle
	}
}

// framePath numbers the output file when rendering a sweep.
func framePath(output string, i, frames int) string {
	if frames <= 1 {
		return output
	}
	ext := filepath.Ext(output)
	base := strings.TrimSuffix(output, ext)
	if ext == "" {
		ext = ".png"
	}
	return fmt.Sprintf("%s_%03d%s", base, i, ext)
}
