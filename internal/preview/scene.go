// Package preview implements the interactive preview application. The
// scene setup is shared between the OpenGL backend and the software
// rasterizer backend so both draw the same frame.
package preview

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/Faultbox/spriteforge/internal/config"
	"github.com/Faultbox/spriteforge/internal/engine/atlas"
	"github.com/Faultbox/spriteforge/internal/engine/camera"
	"github.com/Faultbox/spriteforge/internal/engine/mesh"
	"github.com/Faultbox/spriteforge/internal/engine/shading"
	"github.com/Faultbox/spriteforge/internal/engine/texture"
	"github.com/Faultbox/spriteforge/pkg/math"
)

// Scene is everything a backend needs to draw a frame: geometry, the
// texture with its atlas window, the shading variant and the camera.
type Scene struct {
	Mesh    mesh.MeshData
	Texture *texture.Texture
	Orbit   *camera.Orbit

	windowing shading.Windowing
	cutout    bool
	inset     float32

	sprite     atlas.Sprite
	hasSprite  bool
	baseWindow math.Vec4
	frameRate  float64
}

// NewScene builds the scene described by the configuration. A missing
// texture path previews the UV debug gradient.
func NewScene(cfg *config.Config) (*Scene, error) {
	s := &Scene{
		Orbit:      camera.NewOrbit(),
		windowing:  parseWindowing(cfg.Preview.Windowing),
		cutout:     cfg.Preview.Cutout,
		inset:      cfg.Shading.Inset,
		baseWindow: shading.FullWindow,
		frameRate:  cfg.Preview.FrameRate,
	}

	switch cfg.Preview.Mesh {
	case "cube":
		s.Mesh = mesh.Cube()
	default:
		s.Mesh = mesh.Quad()
	}

	if cfg.Preview.Texture != "" {
		tex, err := texture.Load(cfg.Preview.Texture)
		if err != nil {
			return nil, fmt.Errorf("loading texture: %w", err)
		}
		s.Texture = tex
	}

	if cfg.Preview.Atlas != "" {
		if s.Texture == nil {
			return nil, fmt.Errorf("atlas %s needs a texture", cfg.Preview.Atlas)
		}
		doc, err := os.ReadFile(cfg.Preview.Atlas)
		if err != nil {
			return nil, fmt.Errorf("reading atlas: %w", err)
		}
		a := atlas.New()
		if err := a.AddAseprite(doc); err != nil {
			return nil, fmt.Errorf("parsing atlas: %w", err)
		}

		image := filepath.Base(cfg.Preview.Texture)
		sprite, ok := a.Sprite(image, cfg.Preview.Sprite)
		if !ok {
			return nil, fmt.Errorf("sprite %q not found in atlas for %s", cfg.Preview.Sprite, image)
		}
		s.sprite = sprite
		s.hasSprite = true
	}

	if err := s.Variant().Validate(); err != nil {
		return nil, err
	}

	return s, nil
}

// Variant returns the shading configuration the scene renders with.
func (s *Scene) Variant() shading.Config {
	return shading.Config{
		Windowing: s.windowing,
		Textured:  s.Texture != nil,
		Cutout:    s.cutout,
		Inset:     s.inset,
	}
}

// Window returns the UV window at the given elapsed time. Sprites with
// multiple frames animate at the configured frame rate.
func (s *Scene) Window(elapsed float64) math.Vec4 {
	if !s.hasSprite {
		return s.baseWindow
	}
	frame := 0
	if s.frameRate > 0 {
		frame = int(elapsed * s.frameRate)
	}
	return s.sprite.UVWindow(frame)
}

// Transform returns the model transform: a slow turntable spin.
func (s *Scene) Transform(elapsed float64) math.Mat4 {
	spin := math.QuatFromAxisAngle(math.Vec3{Y: 1}, float32(elapsed)*0.5)
	return math.TRS(math.Vec3{}, spin, math.Vec3{X: 1, Y: 1, Z: 1})
}

// Op is one draw of the preview scene.
type Op struct {
	Transform math.Mat4
	Window    math.Vec4
	Variant   shading.Config
}

// Operations returns the frame's draw list. Textured scenes show one
// instance per windowing mode side by side, each through its own
// pipeline; untextured scenes show a single debug instance.
func (s *Scene) Operations(elapsed float64) []Op {
	spin := math.QuatFromAxisAngle(math.Vec3{Y: 1}, float32(elapsed)*0.5)
	window := s.Window(elapsed)

	if s.Texture == nil {
		return []Op{{
			Transform: s.Transform(elapsed),
			Window:    window,
			Variant:   s.Variant(),
		}}
	}

	modes := []shading.Windowing{
		shading.WindowingNone,
		shading.WindowingPlain,
		shading.WindowingInset,
	}
	ops := make([]Op, 0, len(modes))
	for i, mode := range modes {
		offset := math.Vec3{X: float32(i-1) * 1.2}
		ops = append(ops, Op{
			Transform: math.TRS(offset, spin, math.Vec3{X: 1, Y: 1, Z: 1}),
			Window:    window,
			Variant: shading.Config{
				Windowing: mode,
				Textured:  true,
				Cutout:    s.cutout,
				Inset:     s.inset,
			},
		})
	}
	return ops
}

// Globals returns the per-pass uniforms for the given aspect ratio.
func (s *Scene) Globals(aspect float32) shading.Globals {
	return shading.Globals{MVP: s.Orbit.ViewProjection(aspect)}
}

func parseWindowing(mode string) shading.Windowing {
	switch mode {
	case "plain":
		return shading.WindowingPlain
	case "inset":
		return shading.WindowingInset
	default:
		return shading.WindowingNone
	}
}

// parseFilter and parseEdge translate config strings to sampler settings.
func parseFilter(name string) texture.Filter {
	if name == "bilinear" {
		return texture.FilterBilinear
	}
	return texture.FilterNearest
}

func parseEdge(name string) texture.EdgeMode {
	switch name {
	case "repeat":
		return texture.EdgeRepeat
	case "mirror":
		return texture.EdgeMirror
	default:
		return texture.EdgeClamp
	}
}
