package shading

import (
	"testing"

	"github.com/Faultbox/spriteforge/pkg/math"
)

// constSampler returns the same color for every UV.
type constSampler struct {
	color math.Vec4
}

func (s constSampler) Sample(math.Vec2) math.Vec4 {
	return s.color
}

// recordSampler remembers the UV it was sampled at.
type recordSampler struct {
	uv    math.Vec2
	color math.Vec4
}

func (s *recordSampler) Sample(uv math.Vec2) math.Vec4 {
	s.uv = uv
	return s.color
}

func TestFragmentTexturedPassesColorThrough(t *testing.T) {
	cfg := Config{Textured: true}
	want := math.Vec4{X: 0.1, Y: 0.2, Z: 0.3, W: 0.4}

	out := FragmentStage(cfg, math.Vec2{X: 0.5, Y: 0.5}, constSampler{color: want})
	if out.Discard {
		t.Fatal("non-cutout variant must never discard")
	}
	if out.Color != want {
		t.Errorf("color = %v, want %v (unmodified)", out.Color, want)
	}
}

func TestFragmentNoCutoutKeepsTransparent(t *testing.T) {
	// Without cutout even a fully transparent sample is emitted;
	// blending downstream deals with it.
	cfg := Config{Textured: true}
	transparent := math.Vec4{X: 1, Y: 1, Z: 1, W: 0}

	out := FragmentStage(cfg, math.Vec2{}, constSampler{color: transparent})
	if out.Discard {
		t.Error("no-cutout variant discarded a transparent fragment")
	}
	if out.Color != transparent {
		t.Errorf("color = %v, want %v", out.Color, transparent)
	}
}

func TestFragmentCutoutThreshold(t *testing.T) {
	cfg := Config{Textured: true, Cutout: true}

	cases := []struct {
		name    string
		alpha   float32
		discard bool
	}{
		{"fully transparent", 0, true},
		{"just below cutoff", 0.0009, true},
		{"exactly at cutoff", AlphaCutoff, false},
		{"just above cutoff", 0.0011, false},
		{"opaque", 1, false},
	}

	for _, tc := range cases {
		color := math.Vec4{X: 0.5, Y: 0.5, Z: 0.5, W: tc.alpha}
		out := FragmentStage(cfg, math.Vec2{}, constSampler{color: color})
		if out.Discard != tc.discard {
			t.Errorf("%s (alpha=%v): discard = %v, want %v", tc.name, tc.alpha, out.Discard, tc.discard)
		}
		if !tc.discard && out.Color != color {
			t.Errorf("%s: color = %v, want %v", tc.name, out.Color, color)
		}
	}
}

func TestFragmentCutoutDiscardWritesNothing(t *testing.T) {
	cfg := Config{Textured: true, Cutout: true}

	out := FragmentStage(cfg, math.Vec2{}, constSampler{color: math.Vec4{X: 1, Y: 0, Z: 0, W: 0}})
	if !out.Discard {
		t.Fatal("expected discard")
	}
	if out.Color != (math.Vec4{}) {
		t.Errorf("discarded fragment carries color %v, want zero", out.Color)
	}
}

func TestFragmentDebugColor(t *testing.T) {
	cfg := Config{}

	for _, uv := range []math.Vec2{{}, {X: 1, Y: 1}, {X: 0.25, Y: 0.75}} {
		out := FragmentStage(cfg, uv, nil)
		if out.Discard {
			t.Fatal("debug variant must never discard")
		}
		want := math.Vec4{X: uv.X, Y: uv.Y, Z: DebugBlue, W: 1}
		if out.Color != want {
			t.Errorf("debug color at %v = %v, want %v", uv, out.Color, want)
		}
	}
}

func TestFragmentSamplesInterpolatedUV(t *testing.T) {
	// The stage samples exactly the UV it is handed; any windowing
	// already happened in the vertex stage.
	cfg := Config{Textured: true}
	s := &recordSampler{color: math.Vec4{W: 1}}

	uv := math.Vec2{X: 0.625, Y: 0.125}
	FragmentStage(cfg, uv, s)
	if s.uv != uv {
		t.Errorf("sampled at %v, want %v", s.uv, uv)
	}
}
