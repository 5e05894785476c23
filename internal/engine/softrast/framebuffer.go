// Package softrast is a CPU rasterizer that runs the same shading stages
// the GPU pipelines execute. It renders into an in-memory framebuffer and
// is the backend used by headless snapshots and tests.
package softrast

import (
	"image"

	"github.com/Faultbox/spriteforge/pkg/math"
)

// Framebuffer holds a color target and a depth target of the same size.
// Color is stored as row-major RGBA bytes with the origin at the top-left.
type Framebuffer struct {
	width  int
	height int
	color  []byte
	depth  []float32
}

// NewFramebuffer creates a framebuffer with the given dimensions, cleared
// to transparent black and maximum depth.
func NewFramebuffer(width, height int) *Framebuffer {
	if width < 1 {
		width = 1
	}
	if height < 1 {
		height = 1
	}

	fb := &Framebuffer{
		width:  width,
		height: height,
		color:  make([]byte, width*height*4),
		depth:  make([]float32, width*height),
	}
	fb.Clear(math.Vec4{})
	return fb
}

// Size returns the framebuffer dimensions.
func (fb *Framebuffer) Size() (width, height int) {
	return fb.width, fb.height
}

// Clear fills the color target with the given color and resets depth to 1.
func (fb *Framebuffer) Clear(color math.Vec4) {
	r := encodeChannel(color.X)
	g := encodeChannel(color.Y)
	b := encodeChannel(color.Z)
	a := encodeChannel(color.W)

	for i := 0; i < len(fb.color); i += 4 {
		fb.color[i] = r
		fb.color[i+1] = g
		fb.color[i+2] = b
		fb.color[i+3] = a
	}
	for i := range fb.depth {
		fb.depth[i] = 1
	}
}

// At returns the color at pixel (x, y) with channels in [0, 1].
// Out-of-range coordinates return transparent black.
func (fb *Framebuffer) At(x, y int) math.Vec4 {
	if x < 0 || x >= fb.width || y < 0 || y >= fb.height {
		return math.Vec4{}
	}
	i := (y*fb.width + x) * 4
	return math.Vec4{
		X: float32(fb.color[i]) / 255,
		Y: float32(fb.color[i+1]) / 255,
		Z: float32(fb.color[i+2]) / 255,
		W: float32(fb.color[i+3]) / 255,
	}
}

// DepthAt returns the depth value at pixel (x, y), or 1 when out of range.
func (fb *Framebuffer) DepthAt(x, y int) float32 {
	if x < 0 || x >= fb.width || y < 0 || y >= fb.height {
		return 1
	}
	return fb.depth[y*fb.width+x]
}

// Image copies the color target into a standard library RGBA image.
func (fb *Framebuffer) Image() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, fb.width, fb.height))
	rowSize := fb.width * 4
	for y := 0; y < fb.height; y++ {
		src := y * rowSize
		dst := y * img.Stride
		copy(img.Pix[dst:dst+rowSize], fb.color[src:src+rowSize])
	}
	return img
}

// Pixels returns the raw RGBA bytes. The slice aliases the framebuffer.
func (fb *Framebuffer) Pixels() []byte {
	return fb.color
}

func (fb *Framebuffer) blend(x, y int, src math.Vec4) {
	i := (y*fb.width + x) * 4

	// Source colors are premultiplied, so blending is src + dst*(1-a).
	inv := 1 - src.W
	dr := float32(fb.color[i]) / 255
	dg := float32(fb.color[i+1]) / 255
	db := float32(fb.color[i+2]) / 255
	da := float32(fb.color[i+3]) / 255

	fb.color[i] = encodeChannel(src.X + dr*inv)
	fb.color[i+1] = encodeChannel(src.Y + dg*inv)
	fb.color[i+2] = encodeChannel(src.Z + db*inv)
	fb.color[i+3] = encodeChannel(src.W + da*inv)
}

func encodeChannel(v float32) byte {
	if v <= 0 {
		return 0
	}
	if v >= 1 {
		return 255
	}
	return byte(v*255 + 0.5)
}
