package texture

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/Faultbox/spriteforge/pkg/math"
)

func TestSolid(t *testing.T) {
	tex := Solid(4, 4, math.Vec4{X: 1, Y: 0, Z: 0, W: 1})
	if tex.Width != 4 || tex.Height != 4 {
		t.Fatalf("Solid size = %dx%d, want 4x4", tex.Width, tex.Height)
	}

	got := tex.Texel(2, 2)
	want := math.Vec4{X: 1, W: 1}
	if got != want {
		t.Errorf("Texel(2,2) = %v, want %v", got, want)
	}
}

func TestSetTexelOutOfRangeIgnored(t *testing.T) {
	tex := Solid(2, 2, math.Vec4{W: 1})
	tex.SetTexel(-1, 0, math.Vec4{X: 1})
	tex.SetTexel(5, 5, math.Vec4{X: 1})

	for y := 0; y < 2; y++ {
		for x := 0; x < 2; x++ {
			if got := tex.Texel(x, y); got != (math.Vec4{W: 1}) {
				t.Errorf("Texel(%d,%d) changed to %v", x, y, got)
			}
		}
	}
}

func TestNewFromImage(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 2, 1))
	img.SetRGBA(0, 0, color.RGBA{R: 255, A: 255})
	img.SetRGBA(1, 0, color.RGBA{G: 255, A: 255})

	tex := NewFromImage(img)
	if tex.Texel(0, 0) != (math.Vec4{X: 1, W: 1}) {
		t.Errorf("texel 0 = %v, want red", tex.Texel(0, 0))
	}
	if tex.Texel(1, 0) != (math.Vec4{Y: 1, W: 1}) {
		t.Errorf("texel 1 = %v, want green", tex.Texel(1, 0))
	}
}

func TestLoadPNG(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 2, 2))
	img.SetRGBA(0, 0, color.RGBA{B: 255, A: 255})

	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatalf("encoding test PNG: %v", err)
	}

	path := filepath.Join(t.TempDir(), "test.png")
	if err := os.WriteFile(path, buf.Bytes(), 0644); err != nil {
		t.Fatalf("writing test PNG: %v", err)
	}

	tex, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if tex.Width != 2 || tex.Height != 2 {
		t.Errorf("loaded size = %dx%d, want 2x2", tex.Width, tex.Height)
	}
	if tex.Texel(0, 0) != (math.Vec4{Z: 1, W: 1}) {
		t.Errorf("texel = %v, want blue", tex.Texel(0, 0))
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.png")); err == nil {
		t.Error("Load of missing file should fail")
	}
}

func TestDecodeTGAUncompressed(t *testing.T) {
	// Minimal 1x1 top-to-bottom 32bpp type-2 TGA, blue-green-red-alpha.
	data := make([]byte, 18, 22)
	data[2] = 2          // uncompressed true-color
	data[12] = 1         // width
	data[14] = 1         // height
	data[16] = 32        // bpp
	data[17] = 0x20      // top-to-bottom
	data = append(data, 0x10, 0x20, 0x30, 0xFF) // BGRA

	img, err := DecodeTGA(data)
	if err != nil {
		t.Fatalf("DecodeTGA: %v", err)
	}

	r, g, b, a := img.At(0, 0).RGBA()
	if byte(r>>8) != 0x30 || byte(g>>8) != 0x20 || byte(b>>8) != 0x10 || byte(a>>8) != 0xFF {
		t.Errorf("decoded texel = (%d,%d,%d,%d), want (48,32,16,255)", r>>8, g>>8, b>>8, a>>8)
	}
}

func TestDecodeTGARejectsUnsupported(t *testing.T) {
	data := make([]byte, 18)
	data[2] = 1 // color-mapped, unsupported

	if _, err := DecodeTGA(data); err == nil {
		t.Error("color-mapped TGA should be rejected")
	}

	if _, err := DecodeTGA([]byte{1, 2, 3}); err == nil {
		t.Error("truncated TGA should be rejected")
	}
}
