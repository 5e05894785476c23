package shading

import "github.com/Faultbox/spriteforge/pkg/math"

// Vertex is the per-vertex input of the vertex stage.
// The normal is carried for layout compatibility but no stage reads it.
type Vertex struct {
	Position math.Vec3
	Normal   math.Vec3
	UV       math.Vec2
}

// VertexOutput is what the vertex stage hands to the rasterizer: a
// clip-space position and the remapped UV, interpolated across the
// primitive before it reaches the fragment stage.
type VertexOutput struct {
	ClipPosition math.Vec4
	UV           math.Vec2
}

// VertexStage transforms one vertex through the two-level transform
// hierarchy and remaps its UV according to the variant config. The local
// transform applies before the global one. The stage cannot fail:
// singular matrices produce degenerate geometry, and a zero-size UV
// window collapses sampling to the window origin.
func VertexStage(cfg Config, in Vertex, globals Globals, locals Locals) VertexOutput {
	world := locals.Transform.MulVec4(in.Position.Extend(1))
	clip := globals.MVP.MulVec4(world)

	return VertexOutput{
		ClipPosition: clip,
		UV:           remapUV(cfg, in.UV, locals.UVWindow),
	}
}

// remapUV maps a unit-square UV into the window rectangle (x, y, w, h).
func remapUV(cfg Config, uv math.Vec2, window math.Vec4) math.Vec2 {
	switch cfg.Windowing {
	case WindowingPlain:
		return window.XY().Add(window.ZW().MulComponents(uv))
	case WindowingInset:
		e := cfg.inset()
		origin := window.XY().Add(math.Vec2{X: e, Y: e})
		extent := window.ZW().Sub(math.Vec2{X: 2 * e, Y: 2 * e})
		return origin.Add(extent.MulComponents(uv))
	default:
		return uv
	}
}
