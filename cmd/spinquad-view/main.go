// Package main is an interactive viewer for the quad renderer.
package main

import (
	"fmt"
	"os"
	"time"

	"github.com/veandco/go-sdl2/sdl"
	"go.uber.org/zap"

	"github.com/Faultbox/spinquad/internal/config"
	"github.com/Faultbox/spinquad/internal/display"
	"github.com/Faultbox/spinquad/internal/logger"
	"github.com/Faultbox/spinquad/internal/raster"
	"github.com/Faultbox/spinquad/pkg/math"
	"github.com/Faultbox/spinquad/pkg/shader"
)

const angleStep = 5
const fovStep = 5

func main() {
	config.ParseFlags()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Config error: %v\n", err)
		os.Exit(1)
	}

	if err := logger.Init(cfg.Logging.Level, cfg.Logging.LogFile); err != nil {
		fmt.Fprintf(os.Stderr, "Logger error: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	v, err := newViewer(cfg)
	if err != nil {
		logger.Error("failed to start viewer", zap.Error(err))
		os.Exit(1)
	}
	defer v.Close()

	v.Run()
	logger.Info("viewer closed")
}

// viewer owns the window, the software rasterizer and the current shading
// parameters. Rendering happens on the CPU; the GL side only presents frames.
type viewer struct {
	cfg     *config.Config
	window  *display.Window
	blitter *display.Blitter
	fb      *raster.Framebuffer
	r       *raster.Rasterizer
	tex     *raster.Texture
	sc      shader.Config
	dirty   bool
}

func newViewer(cfg *config.Config) (*viewer, error) {
	window, err := display.NewWindow(display.Config{
		Title:  "spinquad",
		Width:  cfg.Render.Width,
		Height: cfg.Render.Height,
		VSync:  true,
	})
	if err != nil {
		return nil, err
	}

	blitter, err := display.NewBlitter(cfg.Render.Width, cfg.Render.Height)
	if err != nil {
		window.Close()
		return nil, err
	}

	tex, err := loadTexture(cfg)
	if err != nil {
		blitter.Destroy()
		window.Close()
		return nil, err
	}

	fb := raster.NewFramebuffer(cfg.Render.Width, cfg.Render.Height)
	r := raster.NewRasterizer(fb)
	r.Workers = cfg.Render.Workers

	return &viewer{
		cfg:     cfg,
		window:  window,
		blitter: blitter,
		fb:      fb,
		r:       r,
		tex:     tex,
		sc:      shaderConfig(cfg),
		dirty:   true,
	}, nil
}

// Run drives the event loop until the window is closed.
func (v *viewer) Run() {
	running := true
	for running {
		for event := sdl.PollEvent(); event != nil; event = sdl.PollEvent() {
			switch e := event.(type) {
			case *sdl.QuitEvent:
				running = false
			case *sdl.KeyboardEvent:
				if e.Type == sdl.KEYDOWN {
					if !v.handleKey(e.Keysym.Sym) {
						running = false
					}
				}
			}
		}

		if v.dirty {
			v.render()
			v.blitter.Upload(v.fb.Image())
			v.dirty = false
		}

		w, h := v.window.Size()
		v.blitter.Draw(w, h)
		v.window.SwapBuffers()

		sdl.Delay(16)
	}
}

// handleKey updates shading parameters. Returns false to quit.
func (v *viewer) handleKey(key sdl.Keycode) bool {
	switch key {
	case sdl.K_ESCAPE:
		return false
	case sdl.K_LEFT:
		v.sc.Angles.Y -= angleStep
	case sdl.K_RIGHT:
		v.sc.Angles.Y += angleStep
	case sdl.K_UP:
		v.sc.Angles.X += angleStep
	case sdl.K_DOWN:
		v.sc.Angles.X -= angleStep
	case sdl.K_q:
		v.sc.Angles.Z -= angleStep
	case sdl.K_e:
		v.sc.Angles.Z += angleStep
	case sdl.K_EQUALS, sdl.K_PLUS:
		v.sc.FOV += fovStep
		if v.sc.FOV > 179 {
			v.sc.FOV = 179
		}
	case sdl.K_MINUS:
		v.sc.FOV -= fovStep
		if v.sc.FOV < 5 {
			v.sc.FOV = 5
		}
	case sdl.K_c:
		v.sc.CullBack = !v.sc.CullBack
	case sdl.K_r:
		v.sc = shaderConfig(v.cfg)
	case sdl.K_s:
		v.screenshot()
		return true
	default:
		return true
	}
	v.dirty = true
	return true
}

func (v *viewer) render() {
	bg, err := config.ParseHexColor(v.cfg.Render.Background)
	if err != nil {
		bg = colorBlack
	}

	center := math.Vec2{
		X: float32(v.cfg.Render.Width) / 2,
		Y: float32(v.cfg.Render.Height) / 2,
	}

	v.fb.Clear(bg)
	v.r.DrawQuad(v.sc, v.tex, center, shader.White)

	label := fmt.Sprintf("x%.0f y%.0f z%.0f fov%.0f cull:%v",
		v.sc.Angles.X, v.sc.Angles.Y, v.sc.Angles.Z, v.sc.FOV, v.sc.CullBack)
	v.fb.DrawLabel(4, 14, label, colorWhite)
}

func (v *viewer) screenshot() {
	path := fmt.Sprintf("screenshot_%s.png", time.Now().Format("20060102_150405"))
	if err := v.fb.SavePNG(path); err != nil {
		logger.Error("screenshot failed", zap.Error(err))
		return
	}
	logger.Info("screenshot saved", zap.String("path", path))
}

// Close releases the GL pipeline and the window.
func (v *viewer) Close() {
	if v.blitter != nil {
		v.blitter.Destroy()
	}
	if v.window != nil {
		v.window.Close()
	}
}
