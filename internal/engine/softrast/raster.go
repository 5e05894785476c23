package softrast

import (
	"fmt"

	"github.com/Faultbox/spriteforge/internal/engine/mesh"
	"github.com/Faultbox/spriteforge/internal/engine/shading"
	"github.com/Faultbox/spriteforge/pkg/math"
)

// screenVertex is a vertex after perspective divide and viewport mapping.
type screenVertex struct {
	x, y float32
	// depth is NDC z remapped to [0, 1], interpolated linearly in
	// screen space like a hardware depth buffer.
	depth float32
	// invW and uvOverW carry the perspective-correct attribute setup.
	invW    float32
	uvOverW math.Vec2
}

// Draw rasterizes a mesh into the framebuffer using the shading stages
// selected by cfg. Triangles behind the camera are dropped whole; there
// is no near-plane clipping. Depth testing is less-or-equal, and fragments
// discarded by the cutout test leave both color and depth untouched.
func Draw(fb *Framebuffer, cfg shading.Config, m mesh.MeshData, globals shading.Globals, locals shading.Locals, tex shading.Sampler) error {
	if err := cfg.Validate(); err != nil {
		return err
	}
	if cfg.Textured && tex == nil {
		return fmt.Errorf("variant %s needs a sampler", cfg)
	}

	out := make([]shading.VertexOutput, len(m.Vertices))
	for i, v := range m.Vertices {
		out[i] = shading.VertexStage(cfg, v, globals, locals)
	}

	for i := 0; i+2 < len(m.Indices); i += 3 {
		a := out[m.Indices[i]]
		b := out[m.Indices[i+1]]
		c := out[m.Indices[i+2]]
		if a.ClipPosition.W <= 0 || b.ClipPosition.W <= 0 || c.ClipPosition.W <= 0 {
			continue
		}
		rasterTriangle(fb, cfg, toScreen(fb, a), toScreen(fb, b), toScreen(fb, c), tex)
	}
	return nil
}

func toScreen(fb *Framebuffer, v shading.VertexOutput) screenVertex {
	invW := 1 / v.ClipPosition.W
	ndcX := v.ClipPosition.X * invW
	ndcY := v.ClipPosition.Y * invW
	ndcZ := v.ClipPosition.Z * invW

	w, h := fb.Size()
	return screenVertex{
		x:       (ndcX + 1) * 0.5 * float32(w),
		y:       (1 - ndcY) * 0.5 * float32(h),
		depth:   ndcZ*0.5 + 0.5,
		invW:    invW,
		uvOverW: v.UV.Scale(invW),
	}
}

func rasterTriangle(fb *Framebuffer, cfg shading.Config, a, b, c screenVertex, tex shading.Sampler) {
	area := edge(a, b, c.x, c.y)
	if area == 0 {
		return
	}
	// Accept both windings by normalizing the edge function sign.
	sign := float32(1)
	if area < 0 {
		sign = -1
		area = -area
	}

	w, h := fb.Size()
	minX := clampIndex(int(min3(a.x, b.x, c.x)), w)
	maxX := clampIndex(int(max3(a.x, b.x, c.x))+1, w)
	minY := clampIndex(int(min3(a.y, b.y, c.y)), h)
	maxY := clampIndex(int(max3(a.y, b.y, c.y))+1, h)

	for py := minY; py <= maxY; py++ {
		for px := minX; px <= maxX; px++ {
			// Sample at the pixel center.
			sx := float32(px) + 0.5
			sy := float32(py) + 0.5

			w0 := sign * edge(b, c, sx, sy)
			w1 := sign * edge(c, a, sx, sy)
			w2 := sign * edge(a, b, sx, sy)
			if w0 < 0 || w1 < 0 || w2 < 0 {
				continue
			}

			b0 := w0 / area
			b1 := w1 / area
			b2 := w2 / area

			depth := b0*a.depth + b1*b.depth + b2*c.depth
			if depth < 0 || depth > 1 {
				continue
			}
			di := py*w + px
			if depth > fb.depth[di] {
				continue
			}

			invW := b0*a.invW + b1*b.invW + b2*c.invW
			uv := a.uvOverW.Scale(b0).
				Add(b.uvOverW.Scale(b1)).
				Add(c.uvOverW.Scale(b2)).
				Scale(1 / invW)

			frag := shading.FragmentStage(cfg, uv, tex)
			if frag.Discard {
				continue
			}

			fb.depth[di] = depth
			fb.blend(px, py, frag.Color)
		}
	}
}

// edge evaluates the edge function for segment ab at point (px, py).
func edge(a, b screenVertex, px, py float32) float32 {
	return (b.x-a.x)*(py-a.y) - (b.y-a.y)*(px-a.x)
}

func clampIndex(i, size int) int {
	if i < 0 {
		return 0
	}
	if i >= size {
		return size - 1
	}
	return i
}

func min3(a, b, c float32) float32 {
	m := a
	if b < m {
		m = b
	}
	if c < m {
		m = c
	}
	return m
}

func max3(a, b, c float32) float32 {
	m := a
	if b > m {
		m = b
	}
	if c > m {
		m = c
	}
	return m
}
