package preview

import (
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/Faultbox/spriteforge/internal/config"
)

func TestSnapshotWritesPNG(t *testing.T) {
	cfg := config.Default()
	cfg.Graphics.Width = 32
	cfg.Graphics.Height = 32

	out := filepath.Join(t.TempDir(), "frames", "debug.png")
	if err := Snapshot(cfg, out); err != nil {
		t.Fatalf("Snapshot: %v", err)
	}

	file, err := os.Open(out)
	if err != nil {
		t.Fatalf("opening output: %v", err)
	}
	defer file.Close()

	img, err := png.Decode(file)
	if err != nil {
		t.Fatalf("decoding output: %v", err)
	}
	if img.Bounds().Dx() != 32 || img.Bounds().Dy() != 32 {
		t.Errorf("bounds = %v, want 32x32", img.Bounds())
	}

	// The centered debug quad covers the middle, so the center pixel is
	// the gradient, not the clear color.
	r, g, b, _ := img.At(16, 16).RGBA()
	if r < 0x4000 || g < 0x4000 || b < 0x4000 {
		t.Errorf("center pixel = (%#x, %#x, %#x), want debug gradient", r, g, b)
	}
}
