package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	if cfg.Graphics.Width != 1280 || cfg.Graphics.Height != 720 {
		t.Errorf("default window = %dx%d", cfg.Graphics.Width, cfg.Graphics.Height)
	}
	if cfg.Preview.Backend != "gl" {
		t.Errorf("default backend = %q", cfg.Preview.Backend)
	}
	if cfg.Shading.Filter != "nearest" || cfg.Shading.Edge != "clamp" {
		t.Errorf("default sampling = %q/%q", cfg.Shading.Filter, cfg.Shading.Edge)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("defaults should validate: %v", err)
	}
}

func TestLoadFromFileMergesOverDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	body := `
graphics:
  width: 640
shading:
  inset: 0.02
  filter: bilinear
preview:
  backend: soft
`
	if err := os.WriteFile(path, []byte(body), 0644); err != nil {
		t.Fatal(err)
	}

	cfg := Default()
	if err := loadFromFile(cfg, path); err != nil {
		t.Fatalf("loadFromFile: %v", err)
	}

	if cfg.Graphics.Width != 640 {
		t.Errorf("width = %d, want 640", cfg.Graphics.Width)
	}
	// Fields the file omits keep their defaults.
	if cfg.Graphics.Height != 720 {
		t.Errorf("height = %d, want default 720", cfg.Graphics.Height)
	}
	if cfg.Shading.Inset != 0.02 {
		t.Errorf("inset = %v, want 0.02", cfg.Shading.Inset)
	}
	if cfg.Shading.Filter != "bilinear" {
		t.Errorf("filter = %q", cfg.Shading.Filter)
	}
	if cfg.Preview.Backend != "soft" {
		t.Errorf("backend = %q", cfg.Preview.Backend)
	}
}

func TestSaveToRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.yaml")

	cfg := Default()
	cfg.Graphics.Width = 1920
	cfg.Preview.Mesh = "cube"
	cfg.Preview.Cutout = true

	if err := cfg.SaveTo(path); err != nil {
		t.Fatalf("SaveTo: %v", err)
	}

	loaded := Default()
	if err := loadFromFile(loaded, path); err != nil {
		t.Fatalf("loadFromFile: %v", err)
	}

	if loaded.Graphics.Width != 1920 {
		t.Errorf("width = %d, want 1920", loaded.Graphics.Width)
	}
	if loaded.Preview.Mesh != "cube" {
		t.Errorf("mesh = %q, want cube", loaded.Preview.Mesh)
	}
	if !loaded.Preview.Cutout {
		t.Error("cutout flag lost")
	}
}

func TestValidateRejectsBadValues(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*Config)
	}{
		{"backend", func(c *Config) { c.Preview.Backend = "vulkan" }},
		{"mesh", func(c *Config) { c.Preview.Mesh = "sphere" }},
		{"windowing", func(c *Config) { c.Preview.Windowing = "tight" }},
		{"filter", func(c *Config) { c.Shading.Filter = "trilinear" }},
		{"edge", func(c *Config) { c.Shading.Edge = "border" }},
		{"inset", func(c *Config) { c.Shading.Inset = -0.1 }},
		{"size", func(c *Config) { c.Graphics.Width = 0 }},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := Default()
			tc.mutate(cfg)
			if err := cfg.Validate(); err == nil {
				t.Errorf("%s: expected validation error", tc.name)
			}
		})
	}
}

func TestLoadFromFileMissing(t *testing.T) {
	cfg := Default()
	if err := loadFromFile(cfg, filepath.Join(t.TempDir(), "absent.yaml")); err == nil {
		t.Fatal("expected error for missing file")
	}
}
