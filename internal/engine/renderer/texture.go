package renderer

import (
	"fmt"

	"github.com/Faultbox/spriteforge/internal/engine/texture"
	"github.com/go-gl/gl/v4.1-core/gl"
)

// Texture is image data uploaded to the GPU together with its sampling
// state. Defaults follow the engine's atlas conventions: nearest
// filtering with clamp-to-edge wrapping.
type Texture struct {
	id     uint32
	width  int32
	height int32
}

// UploadTexture copies a CPU texture into a GL texture object.
func UploadTexture(src *texture.Texture, filter texture.Filter, edge texture.EdgeMode) (*Texture, error) {
	if src == nil || src.Width == 0 || src.Height == 0 {
		return nil, fmt.Errorf("texture has no pixels")
	}

	t := &Texture{width: int32(src.Width), height: int32(src.Height)}

	gl.GenTextures(1, &t.id)
	gl.BindTexture(gl.TEXTURE_2D, t.id)

	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, glFilter(filter))
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, glFilter(filter))
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, glWrap(edge))
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, glWrap(edge))

	gl.TexImage2D(gl.TEXTURE_2D, 0, gl.RGBA8, t.width, t.height, 0,
		gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(src.Pixels))

	gl.BindTexture(gl.TEXTURE_2D, 0)
	return t, nil
}

// Bind activates the texture on the given texture unit.
func (t *Texture) Bind(unit uint32) {
	gl.ActiveTexture(gl.TEXTURE0 + unit)
	gl.BindTexture(gl.TEXTURE_2D, t.id)
}

// Size returns the texture dimensions in texels.
func (t *Texture) Size() (width, height int32) {
	return t.width, t.height
}

// Destroy releases the GL texture object.
func (t *Texture) Destroy() {
	if t.id != 0 {
		gl.DeleteTextures(1, &t.id)
		t.id = 0
	}
}

func glFilter(f texture.Filter) int32 {
	if f == texture.FilterBilinear {
		return gl.LINEAR
	}
	return gl.NEAREST
}

func glWrap(e texture.EdgeMode) int32 {
	switch e {
	case texture.EdgeRepeat:
		return gl.REPEAT
	case texture.EdgeMirror:
		return gl.MIRRORED_REPEAT
	default:
		return gl.CLAMP_TO_EDGE
	}
}
