package preview

import (
	"image"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/Faultbox/spriteforge/internal/config"
	"github.com/Faultbox/spriteforge/internal/engine/shading"
	"github.com/Faultbox/spriteforge/pkg/math"
)

func writeTestPNG(t *testing.T, dir, name string, w, h int) string {
	t.Helper()
	path := filepath.Join(dir, name)
	file, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}
	defer file.Close()
	if err := png.Encode(file, image.NewRGBA(image.Rect(0, 0, w, h))); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestNewSceneDefaults(t *testing.T) {
	cfg := config.Default()
	scene, err := NewScene(cfg)
	if err != nil {
		t.Fatalf("NewScene: %v", err)
	}

	v := scene.Variant()
	if v.Textured {
		t.Error("no texture configured, variant should be untextured")
	}
	if v.Windowing != shading.WindowingPlain {
		t.Errorf("windowing = %v, want plain default", v.Windowing)
	}
	if got := scene.Window(0); got != shading.FullWindow {
		t.Errorf("window = %v, want full", got)
	}
	if len(scene.Mesh.Vertices) != 4 {
		t.Errorf("default mesh has %d vertices, want quad", len(scene.Mesh.Vertices))
	}
}

func TestNewSceneWithAtlas(t *testing.T) {
	dir := t.TempDir()
	texPath := writeTestPNG(t, dir, "sheet.png", 64, 32)

	atlasPath := filepath.Join(dir, "sheet.json")
	doc := `{
		"frames": [
			{"frame": {"x": 0, "y": 0, "w": 32, "h": 32}},
			{"frame": {"x": 32, "y": 0, "w": 32, "h": 32}}
		],
		"meta": {
			"image": "sheet.png",
			"size": {"w": 64, "h": 32},
			"frameTags": [{"name": "run", "from": 0, "to": 1}]
		}
	}`
	if err := os.WriteFile(atlasPath, []byte(doc), 0644); err != nil {
		t.Fatal(err)
	}

	cfg := config.Default()
	cfg.Preview.Texture = texPath
	cfg.Preview.Atlas = atlasPath
	cfg.Preview.Sprite = "run"
	cfg.Preview.Windowing = "inset"
	cfg.Preview.FrameRate = 2

	scene, err := NewScene(cfg)
	if err != nil {
		t.Fatalf("NewScene: %v", err)
	}

	v := scene.Variant()
	if !v.Textured || v.Windowing != shading.WindowingInset {
		t.Errorf("variant = %v", v)
	}

	// At t=0 the window covers the first frame.
	if got := scene.Window(0); got != (math.Vec4{X: 0, Y: 0, Z: 0.5, W: 1}) {
		t.Errorf("frame 0 window = %v", got)
	}
	// Half a second at 2 fps advances to the second frame.
	if got := scene.Window(0.5); got != (math.Vec4{X: 0.5, Y: 0, Z: 0.5, W: 1}) {
		t.Errorf("frame 1 window = %v", got)
	}
}

func TestOperationsPerVariantRow(t *testing.T) {
	cfg := config.Default()
	scene, err := NewScene(cfg)
	if err != nil {
		t.Fatal(err)
	}

	// Untextured scenes render a single debug instance.
	ops := scene.Operations(0)
	if len(ops) != 1 {
		t.Fatalf("untextured ops = %d, want 1", len(ops))
	}
	if ops[0].Variant.Textured {
		t.Error("untextured scene produced a textured op")
	}

	dir := t.TempDir()
	cfg.Preview.Texture = writeTestPNG(t, dir, "tex.png", 8, 8)
	scene, err = NewScene(cfg)
	if err != nil {
		t.Fatal(err)
	}

	// Textured scenes show every windowing mode through its own variant.
	ops = scene.Operations(0)
	if len(ops) != 3 {
		t.Fatalf("textured ops = %d, want 3", len(ops))
	}
	seen := map[shading.Windowing]bool{}
	for _, op := range ops {
		if !op.Variant.Textured {
			t.Errorf("op %v not textured", op.Variant)
		}
		seen[op.Variant.Windowing] = true
	}
	if len(seen) != 3 {
		t.Errorf("windowing modes covered = %v, want all three", seen)
	}
}

func TestNewSceneErrors(t *testing.T) {
	t.Run("atlas without texture", func(t *testing.T) {
		cfg := config.Default()
		cfg.Preview.Atlas = "sheet.json"
		if _, err := NewScene(cfg); err == nil {
			t.Fatal("expected error")
		}
	})

	t.Run("missing sprite", func(t *testing.T) {
		dir := t.TempDir()
		texPath := writeTestPNG(t, dir, "sheet.png", 16, 16)
		atlasPath := filepath.Join(dir, "sheet.json")
		doc := `{
			"frames": [{"frame": {"x": 0, "y": 0, "w": 16, "h": 16}}],
			"meta": {"image": "sheet.png", "size": {"w": 16, "h": 16}, "frameTags": []}
		}`
		if err := os.WriteFile(atlasPath, []byte(doc), 0644); err != nil {
			t.Fatal(err)
		}

		cfg := config.Default()
		cfg.Preview.Texture = texPath
		cfg.Preview.Atlas = atlasPath
		cfg.Preview.Sprite = "absent"
		if _, err := NewScene(cfg); err == nil {
			t.Fatal("expected error")
		}
	})

	t.Run("cutout without texture", func(t *testing.T) {
		cfg := config.Default()
		cfg.Preview.Cutout = true
		if _, err := NewScene(cfg); err == nil {
			t.Fatal("expected error")
		}
	})
}
