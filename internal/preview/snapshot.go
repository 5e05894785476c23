package preview

import (
	"fmt"
	"image/png"
	"os"
	"path/filepath"

	"github.com/Faultbox/spriteforge/internal/config"
	"github.com/Faultbox/spriteforge/internal/engine/camera"
	"github.com/Faultbox/spriteforge/internal/engine/shading"
	"github.com/Faultbox/spriteforge/internal/engine/softrast"
	"github.com/Faultbox/spriteforge/internal/engine/texture"
	"github.com/Faultbox/spriteforge/pkg/math"
)

// Snapshot renders one frame with the software rasterizer and writes it
// to outPath as a PNG. The scene is laid out in pixel space: the mesh is
// centered and scaled to half the viewport, keeping the sprite's aspect.
func Snapshot(cfg *config.Config, outPath string) error {
	scene, err := NewScene(cfg)
	if err != nil {
		return fmt.Errorf("building scene: %w", err)
	}

	w, h := cfg.Graphics.Width, cfg.Graphics.Height
	fb := softrast.NewFramebuffer(w, h)
	fb.Clear(math.Vec4{X: 0.1, Y: 0.1, Z: 0.15, W: 1})

	screen := camera.NewScreen(float32(w), float32(h))

	scaleX, scaleY := snapshotScale(scene, w, h)
	transform := math.TRS(
		math.Vec3{X: float32(w) / 2, Y: float32(h) / 2},
		math.QuatIdentity(),
		math.Vec3{X: scaleX, Y: scaleY, Z: 1},
	)

	locals := shading.Locals{
		Transform: transform,
		UVWindow:  scene.Window(0),
	}
	globals := shading.Globals{MVP: screen.ViewProjection()}

	var sampler shading.Sampler
	if scene.Texture != nil {
		sampler = &texture.Sampler{
			Texture: scene.Texture,
			Filter:  parseFilter(cfg.Shading.Filter),
			Edge:    parseEdge(cfg.Shading.Edge),
		}
	}

	if err := softrast.Draw(fb, scene.Variant(), scene.Mesh, globals, locals, sampler); err != nil {
		return fmt.Errorf("rendering: %w", err)
	}

	if dir := filepath.Dir(outPath); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("creating output dir: %w", err)
		}
	}
	file, err := os.Create(outPath)
	if err != nil {
		return fmt.Errorf("creating %s: %w", outPath, err)
	}
	defer file.Close()

	if err := png.Encode(file, fb.Image()); err != nil {
		return fmt.Errorf("encoding PNG: %w", err)
	}
	return nil
}

// snapshotScale fits the unit mesh into half the viewport, preserving the
// aspect ratio of the windowed texture region when one is bound.
func snapshotScale(scene *Scene, w, h int) (float32, float32) {
	size := float32(w)
	if h < w {
		size = float32(h)
	}
	size /= 2

	if scene.Texture == nil {
		return size, size
	}

	window := scene.Window(0)
	pxW := window.Z * float32(scene.Texture.Width)
	pxH := window.W * float32(scene.Texture.Height)
	if pxW <= 0 || pxH <= 0 {
		return size, size
	}
	if pxW > pxH {
		return size, size * pxH / pxW
	}
	return size * pxW / pxH, size
}
