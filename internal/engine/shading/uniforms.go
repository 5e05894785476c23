package shading

import (
	"encoding/binary"
	"fmt"
	gomath "math"

	"github.com/Faultbox/spriteforge/pkg/math"
)

// Binding layout shared by every pipeline variant. The GLSL programs and
// the host-side buffer uploads must agree on these bit-exactly; they are
// validated once at pipeline construction and never re-derived per draw.
const (
	// Uniform block group and slots.
	GroupUniforms  = 0
	BindingGlobals = 0
	BindingLocals  = 1

	// Texture group and slots, textured variants only.
	GroupTexture   = 1
	BindingTexture = 0
	BindingSampler = 1

	// Vertex attribute locations.
	AttribPosition = 0
	AttribNormal   = 1
	AttribUV       = 2

	// UniformAlign is the required alignment of every uniform block.
	UniformAlign = 16

	// GlobalsSize is the byte size of the packed Globals block: one
	// column-major mat4.
	GlobalsSize = 64

	// LocalsSizePlain is the Locals block without a UV window.
	LocalsSizePlain = 64

	// LocalsSizeWindowed is the Locals block with the trailing vec4
	// UV window.
	LocalsSizeWindowed = 80
)

// Globals is the per-pass uniform block: the composed view-projection
// transform. Written by the host once per frame or camera change,
// read-only while a draw is in flight.
type Globals struct {
	MVP math.Mat4
}

// Locals is the per-instance uniform block: the object transform and,
// for windowed variants, the atlas sub-rectangle (x, y, width, height)
// in normalized coordinates. A zero-size window is legal and samples a
// single boundary UV.
type Locals struct {
	Transform math.Mat4
	UVWindow  math.Vec4
}

// FullWindow is the UV window covering the whole texture.
var FullWindow = math.Vec4{X: 0, Y: 0, Z: 1, W: 1}

// Pack serializes the Globals block for upload: 64 bytes, column-major,
// little-endian f32.
func (g Globals) Pack() []byte {
	buf := make([]byte, 0, GlobalsSize)
	return appendMat4(buf, g.MVP)
}

// Pack serializes the Locals block for upload. Windowed layouts append
// the vec4 UV window after the transform.
func (l Locals) Pack(windowed bool) []byte {
	size := LocalsSizePlain
	if windowed {
		size = LocalsSizeWindowed
	}
	buf := make([]byte, 0, size)
	buf = appendMat4(buf, l.Transform)
	if windowed {
		buf = appendF32(buf, l.UVWindow.X)
		buf = appendF32(buf, l.UVWindow.Y)
		buf = appendF32(buf, l.UVWindow.Z)
		buf = appendF32(buf, l.UVWindow.W)
	}
	return buf
}

// LocalsSize returns the packed Locals size for the variant.
func (c Config) LocalsSize() int {
	if c.windowed() {
		return LocalsSizeWindowed
	}
	return LocalsSizePlain
}

// ValidateLayout checks the uniform layout invariants for a variant.
// A failure here is a programming error caught at pipeline construction.
func (c Config) ValidateLayout() error {
	if err := c.Validate(); err != nil {
		return err
	}
	if GlobalsSize%UniformAlign != 0 {
		return fmt.Errorf("globals block size %d not %d-byte aligned", GlobalsSize, UniformAlign)
	}
	if c.LocalsSize()%UniformAlign != 0 {
		return fmt.Errorf("locals block size %d not %d-byte aligned", c.LocalsSize(), UniformAlign)
	}
	return nil
}

func appendMat4(buf []byte, m math.Mat4) []byte {
	for _, v := range m {
		buf = appendF32(buf, v)
	}
	return buf
}

func appendF32(buf []byte, v float32) []byte {
	return binary.LittleEndian.AppendUint32(buf, gomath.Float32bits(v))
}
