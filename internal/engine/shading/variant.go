// Package shading implements the shading core of the rendering pipeline:
// the vertex and fragment stages, the uniform binding contract between the
// host and the stages, and the GLSL realization of each pipeline variant.
//
// The stages are pure functions over (input, uniform snapshot). The same
// semantics back both the software rasterizer and the generated GLSL, so
// the two paths cannot drift apart.
package shading

import "fmt"

// Windowing selects how the vertex stage remaps the unit-square UV into
// the bound texture.
type Windowing int

const (
	// WindowingNone passes vertex UVs through untouched.
	WindowingNone Windowing = iota
	// WindowingPlain maps the unit square onto the UV window rectangle.
	WindowingPlain
	// WindowingInset maps onto the window shrunk by a symmetric margin,
	// so bilinear filtering cannot bleed in neighboring atlas tiles.
	WindowingInset
)

// String returns the windowing mode name.
func (w Windowing) String() string {
	switch w {
	case WindowingNone:
		return "none"
	case WindowingPlain:
		return "plain"
	case WindowingInset:
		return "inset"
	default:
		return fmt.Sprintf("windowing(%d)", int(w))
	}
}

// AtlasInset is the default UV margin for WindowingInset, in normalized
// texture coordinates per axis.
const AtlasInset float32 = 0.01

// Config enumerates the pipeline variants. Each distinct Config compiles
// to its own pipeline object; variant selection happens once per draw,
// never per pixel.
type Config struct {
	// Windowing is the UV remap policy of the vertex stage.
	Windowing Windowing

	// Textured selects texture sampling in the fragment stage. When
	// false the fragment stage emits the UV debug color instead, which
	// needs no texture binding.
	Textured bool

	// Cutout discards fragments whose sampled alpha is below
	// AlphaCutoff. Only meaningful with Textured.
	Cutout bool

	// Inset is the margin used by WindowingInset. The zero value is
	// replaced by AtlasInset so a Config literal without an explicit
	// margin gets the default.
	Inset float32
}

// Validate reports whether the config names a constructible pipeline.
func (c Config) Validate() error {
	if c.Windowing < WindowingNone || c.Windowing > WindowingInset {
		return fmt.Errorf("unknown windowing mode %d", int(c.Windowing))
	}
	if c.Cutout && !c.Textured {
		return fmt.Errorf("cutout requires a textured pipeline")
	}
	if c.Inset < 0 {
		return fmt.Errorf("negative inset %f", c.Inset)
	}
	return nil
}

// inset returns the effective inset margin.
func (c Config) inset() float32 {
	if c.Inset == 0 {
		return AtlasInset
	}
	return c.Inset
}

// windowed reports whether the Locals block carries a UV window.
func (c Config) windowed() bool {
	return c.Windowing != WindowingNone
}

// String returns a short label for the variant, used in pipeline names
// and log fields.
func (c Config) String() string {
	s := c.Windowing.String()
	if !c.Textured {
		return s + "/debug"
	}
	if c.Cutout {
		return s + "/cutout"
	}
	return s + "/textured"
}
