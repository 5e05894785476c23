// Package config handles configuration loading and management.
package config

import "fmt"

// Config holds all settings.
type Config struct {
	Graphics GraphicsConfig `yaml:"graphics"`
	Shading  ShadingConfig  `yaml:"shading"`
	Preview  PreviewConfig  `yaml:"preview"`
	Logging  LoggingConfig  `yaml:"logging"`
}

// GraphicsConfig holds display settings.
type GraphicsConfig struct {
	Width  int  `yaml:"width"`
	Height int  `yaml:"height"`
	VSync  bool `yaml:"vsync"`
}

// ShadingConfig holds sampling and atlas settings.
type ShadingConfig struct {
	// Inset is the normalized margin pulled in from atlas cell edges.
	// Zero selects the engine default.
	Inset  float32 `yaml:"inset"`
	Filter string  `yaml:"filter"`
	Edge   string  `yaml:"edge"`
}

// PreviewConfig holds preview scene settings.
type PreviewConfig struct {
	Backend       string  `yaml:"backend"`
	Mesh          string  `yaml:"mesh"`
	Texture       string  `yaml:"texture"`
	Atlas         string  `yaml:"atlas"`
	Sprite        string  `yaml:"sprite"`
	Windowing     string  `yaml:"windowing"`
	Cutout        bool    `yaml:"cutout"`
	FrameRate     float64 `yaml:"frame_rate"`
	ScreenshotDir string  `yaml:"screenshot_dir"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		Graphics: GraphicsConfig{
			Width:  1280,
			Height: 720,
			VSync:  true,
		},
		Shading: ShadingConfig{
			Inset:  0,
			Filter: "nearest",
			Edge:   "clamp",
		},
		Preview: PreviewConfig{
			Backend:       "gl",
			Mesh:          "quad",
			Windowing:     "plain",
			FrameRate:     8,
			ScreenshotDir: "screenshots",
		},
		Logging: LoggingConfig{
			Level:   "info",
			LogFile: "",
		},
	}
}

// Validate checks settings that have a closed set of legal values.
func (c *Config) Validate() error {
	switch c.Preview.Backend {
	case "gl", "soft":
	default:
		return fmt.Errorf("unknown preview backend %q", c.Preview.Backend)
	}
	switch c.Preview.Mesh {
	case "quad", "cube":
	default:
		return fmt.Errorf("unknown preview mesh %q", c.Preview.Mesh)
	}
	switch c.Preview.Windowing {
	case "none", "plain", "inset":
	default:
		return fmt.Errorf("unknown windowing mode %q", c.Preview.Windowing)
	}
	switch c.Shading.Filter {
	case "nearest", "bilinear":
	default:
		return fmt.Errorf("unknown filter %q", c.Shading.Filter)
	}
	switch c.Shading.Edge {
	case "clamp", "repeat", "mirror":
	default:
		return fmt.Errorf("unknown edge mode %q", c.Shading.Edge)
	}
	if c.Shading.Inset < 0 {
		return fmt.Errorf("inset must not be negative, got %v", c.Shading.Inset)
	}
	if c.Graphics.Width < 1 || c.Graphics.Height < 1 {
		return fmt.Errorf("window size %dx%d invalid", c.Graphics.Width, c.Graphics.Height)
	}
	return nil
}
