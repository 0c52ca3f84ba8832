package main

import (
	"image/color"

	"go.uber.org/zap"

	"github.com/Faultbox/spinquad/internal/config"
	"github.com/Faultbox/spinquad/internal/logger"
	"github.com/Faultbox/spinquad/internal/raster"
	"github.com/Faultbox/spinquad/pkg/math"
	"github.com/Faultbox/spinquad/pkg/shader"
)

var (
	colorWhite   = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	colorBlack   = color.RGBA{A: 255}
	checkerLight = color.RGBA{R: 220, G: 220, B: 220, A: 255}
	checkerDark  = color.RGBA{R: 90, G: 90, B: 120, A: 255}
)

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
