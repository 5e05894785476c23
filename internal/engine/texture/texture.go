// Package texture provides CPU-side textures, image decoding and the
// software sampler used by the reference rasterizer.
package texture

import (
	"bytes"
	"fmt"
	"image"
	_ "image/png"
	"os"
	"path/filepath"
	"strings"

	"github.com/Faultbox/spriteforge/pkg/math"
)

// Texture is an RGBA texture kept in host memory. Pixels are stored
// row-major, top-left origin, 4 bytes per texel.
type Texture struct {
	Width  int
	Height int
	Pixels []byte
}

// NewFromImage copies an image into a Texture.
func NewFromImage(img image.Image) *Texture {
	bounds := img.Bounds()
	t := &Texture{
		Width:  bounds.Dx(),
		Height: bounds.Dy(),
		Pixels: make([]byte, bounds.Dx()*bounds.Dy()*4),
	}

	i := 0
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			r, g, b, a := img.At(x, y).RGBA()
			t.Pixels[i] = byte(r >> 8)
			t.Pixels[i+1] = byte(g >> 8)
			t.Pixels[i+2] = byte(b >> 8)
			t.Pixels[i+3] = byte(a >> 8)
			i += 4
		}
	}
	return t
}

// Solid returns a width x height texture filled with one color.
func Solid(width, height int, color math.Vec4) *Texture {
	t := &Texture{
		Width:  width,
		Height: height,
		Pixels: make([]byte, width*height*4),
	}
	r := byte(clamp01(color.X) * 255)
	g := byte(clamp01(color.Y) * 255)
	b := byte(clamp01(color.Z) * 255)
	a := byte(clamp01(color.W) * 255)
	for i := 0; i < len(t.Pixels); i += 4 {
		t.Pixels[i] = r
		t.Pixels[i+1] = g
		t.Pixels[i+2] = b
		t.Pixels[i+3] = a
	}
	return t
}

// Load reads a texture from disk. PNG is decoded through image/png,
// TGA through the decoder in this package.
func Load(path string) (*Texture, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading texture %s: %w", path, err)
	}

	var img image.Image
	if strings.EqualFold(filepath.Ext(path), ".tga") {
		img, err = DecodeTGA(data)
	} else {
		img, _, err = image.Decode(bytes.NewReader(data))
	}
	if err != nil {
		return nil, fmt.Errorf("decoding texture %s: %w", path, err)
	}

	return NewFromImage(img), nil
}

// SetTexel writes one texel. Out-of-range coordinates are ignored.
func (t *Texture) SetTexel(x, y int, color math.Vec4) {
	if x < 0 || y < 0 || x >= t.Width || y >= t.Height {
		return
	}
	i := (y*t.Width + x) * 4
	t.Pixels[i] = byte(clamp01(color.X) * 255)
	t.Pixels[i+1] = byte(clamp01(color.Y) * 255)
	t.Pixels[i+2] = byte(clamp01(color.Z) * 255)
	t.Pixels[i+3] = byte(clamp01(color.W) * 255)
}

// Texel returns the color at integer coordinates, already scaled to
// [0,1]. Coordinates must be in range; samplers clamp or wrap first.
func (t *Texture) Texel(x, y int) math.Vec4 {
	const scale = 1.0 / 255.0
	i := (y*t.Width + x) * 4
	return math.Vec4{
		X: float32(t.Pixels[i]) * scale,
		Y: float32(t.Pixels[i+1]) * scale,
		Z: float32(t.Pixels[i+2]) * scale,
		W: float32(t.Pixels[i+3]) * scale,
	}
}

func clamp01(v float32) float32 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
