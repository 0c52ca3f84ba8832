package config

import "flag"

var (
	flagConfig  = flag.String("config", "", "Path to config file")
	flagDebug   = flag.Bool("debug", false, "Enable debug logging")
	flagTexture = flag.String("texture", "", "Path to a PNG or TGA texture")
	flagOutput  = flag.String("out", "", "Output PNG path")
	flagFOV     = flag.Float64("fov", 0, "Field of view in degrees")
	flagWidth   = flag.Int("width", 0, "Output width")
	flagHeight  = flag.Int("height", 0, "Output height")
	flagNoCull  = flag.Bool("no-cull", false, "Render back faces")
	flagWorkers = flag.Int("workers", 0, "Row-parallel rasterizer workers")

	flagSaveConfig = flag.String("save-config", "", "Write the effective config to a file and exit")
)

// ParseFlags parses command-line flags. Call this early in main().
func ParseFlags() {
	flag.Parse()
}

// ConfigPath returns the explicit config path if provided via --config flag.
func ConfigPath() string {
	return *flagConfig
}

// SavePath returns the path given via --save-config, or empty.
func SavePath() string {
	return *flagSaveConfig
}

// applyFlags applies CLI flag overrides to the config.
func applyFlags(cfg *Config) {
	if *flagDebug {
		cfg.Logging.Level = "debug"
	}
	if *flagTexture != "" {
		cfg.Render.Texture = *flagTexture
	}
	if *flagOutput != "" {
		cfg.Render.Output = *flagOutput
	}
	if *flagFOV > 0 {
		cfg.Shader.FOV = float32(*flagFOV)
	}
	if *flagWidth > 0 {
		cfg.Render.Width = *flagWidth
	}
	if *flagHeight > 0 {
		cfg.Render.Height = *flagHeight
	}
	if *flagNoCull {
		cfg.Shader.CullBack = false
	}
	if *flagWorkers > 0 {
		cfg.Render.Workers = *flagWorkers
	}
}
