package shading

import "github.com/Faultbox/spriteforge/pkg/math"

// AlphaCutoff is the alpha below which a cutout pipeline discards the
// fragment. It is deliberately nonzero: texture edges whose alpha decays
// toward zero under filtering must still count as transparent.
const AlphaCutoff float32 = 0.001

// DebugBlue is the fixed blue channel of the untextured debug color.
const DebugBlue float32 = 0.5

// Sampler reads an RGBA color at a normalized UV coordinate. Edge
// handling for out-of-range UVs is the sampler's policy, never the
// fragment stage's.
type Sampler interface {
	Sample(uv math.Vec2) math.Vec4
}

// FragmentOutput is the result of shading one fragment. When Discard is
// set the fragment contributes neither a color nor a depth write.
type FragmentOutput struct {
	Color   math.Vec4
	Discard bool
}

// FragmentStage shades one fragment from its interpolated UV.
//
// Textured variants emit the sampled color unmodified; blending is the
// fixed-function stage's business. The untextured variant visualizes the
// interpolated UV directly, which verifies window remapping without any
// texture asset. tex must be non-nil for textured variants; callers
// check that before any draw is issued.
func FragmentStage(cfg Config, uv math.Vec2, tex Sampler) FragmentOutput {
	if !cfg.Textured {
		return FragmentOutput{
			Color: math.Vec4{X: uv.X, Y: uv.Y, Z: DebugBlue, W: 1},
		}
	}

	color := tex.Sample(uv)
	if cfg.Cutout && color.W < AlphaCutoff {
		return FragmentOutput{Discard: true}
	}
	return FragmentOutput{Color: color}
}
