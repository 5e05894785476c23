package config

import "flag"

var (
	flagConfig  = flag.String("config", "", "Path to config file")
	flagDebug   = flag.Bool("debug", false, "Enable debug logging")
	flagBackend = flag.String("backend", "", "Preview backend (gl or soft)")
	flagMesh    = flag.String("mesh", "", "Preview mesh (quad or cube)")
	flagTexture = flag.String("texture", "", "Texture file to preview")
	flagAtlas   = flag.String("atlas", "", "Aseprite atlas JSON file")
	flagWidth   = flag.Int("width", 0, "Window width")
	flagHeight  = flag.Int("height", 0, "Window height")
)

// ParseFlags parses command-line flags. Call this early in main().
func ParseFlags() {
	flag.Parse()
}

// ConfigPath returns the explicit config path if provided via --config flag.
func ConfigPath() string {
	return *flagConfig
}

// applyFlags applies CLI flag overrides to the config.
func applyFlags(cfg *Config) {
	if *flagDebug {
		cfg.Logging.Level = "debug"
	}
	if *flagBackend != "" {
		cfg.Preview.Backend = *flagBackend
	}
	if *flagMesh != "" {
		cfg.Preview.Mesh = *flagMesh
	}
	if *flagTexture != "" {
		cfg.Preview.Texture = *flagTexture
	}
	if *flagAtlas != "" {
		cfg.Preview.Atlas = *flagAtlas
	}
	if *flagWidth > 0 {
		cfg.Graphics.Width = *flagWidth
	}
	if *flagHeight > 0 {
		cfg.Graphics.Height = *flagHeight
	}
}
