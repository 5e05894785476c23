package texture

import (
	"github.com/chewxy/math32"

	"github.com/Faultbox/spriteforge/pkg/math"
)

// EdgeMode decides what a sampler does with UVs outside [0,1]. It is a
// property of the sampler binding, not of the shading stages: the stages
// hand whatever UV the remap produced to the sampler and the edge policy
// resolves it.
type EdgeMode int

const (
	// EdgeClamp clamps to the border texel.
	EdgeClamp EdgeMode = iota
	// EdgeRepeat tiles the texture.
	EdgeRepeat
	// EdgeMirror tiles with every other repetition flipped.
	EdgeMirror
)

// Filter selects texel interpolation.
type Filter int

const (
	// FilterNearest picks the closest texel.
	FilterNearest Filter = iota
	// FilterBilinear blends the four closest texels.
	FilterBilinear
)

// Sampler reads colors from a Texture with a configured edge mode and
// filter. It implements the sampler side of the texture binding for the
// software path.
type Sampler struct {
	Texture *Texture
	Edge    EdgeMode
	Filter  Filter
}

// Sample returns the RGBA color at a normalized UV coordinate.
func (s *Sampler) Sample(uv math.Vec2) math.Vec4 {
	if s.Filter == FilterBilinear {
		return s.sampleBilinear(uv)
	}
	return s.sampleNearest(uv)
}

func (s *Sampler) sampleNearest(uv math.Vec2) math.Vec4 {
	u := s.wrap(uv.X)
	v := s.wrap(uv.Y)

	x := clampIndex(int(u*float32(s.Texture.Width)), s.Texture.Width)
	y := clampIndex(int(v*float32(s.Texture.Height)), s.Texture.Height)
	return s.Texture.Texel(x, y)
}

func (s *Sampler) sampleBilinear(uv math.Vec2) math.Vec4 {
	// Texel centers sit at (i+0.5)/size.
	fx := s.wrap(uv.X)*float32(s.Texture.Width) - 0.5
	fy := s.wrap(uv.Y)*float32(s.Texture.Height) - 0.5

	x0 := int(math32.Floor(fx))
	y0 := int(math32.Floor(fy))
	tx := fx - float32(x0)
	ty := fy - float32(y0)

	c00 := s.Texture.Texel(clampIndex(x0, s.Texture.Width), clampIndex(y0, s.Texture.Height))
	c10 := s.Texture.Texel(clampIndex(x0+1, s.Texture.Width), clampIndex(y0, s.Texture.Height))
	c01 := s.Texture.Texel(clampIndex(x0, s.Texture.Width), clampIndex(y0+1, s.Texture.Height))
	c11 := s.Texture.Texel(clampIndex(x0+1, s.Texture.Width), clampIndex(y0+1, s.Texture.Height))

	top := c00.Lerp(c10, tx)
	bottom := c01.Lerp(c11, tx)
	return top.Lerp(bottom, ty)
}

// wrap maps a coordinate into [0,1] according to the edge mode.
func (s *Sampler) wrap(v float32) float32 {
	switch s.Edge {
	case EdgeRepeat:
		v = v - math32.Floor(v)
		return v
	case EdgeMirror:
		// Period 2: the second half of each period runs backwards.
		t := math32.Abs(v)
		t = t - 2*math32.Floor(t/2)
		if t > 1 {
			t = 2 - t
		}
		return t
	default:
		if v < 0 {
			return 0
		}
		if v > 1 {
			return 1
		}
		return v
	}
}

func clampIndex(i, n int) int {
	if i < 0 {
		return 0
	}
	if i >= n {
		return n - 1
	}
	return i
}
