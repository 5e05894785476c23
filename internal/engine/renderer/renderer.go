// Package renderer submits render operations to OpenGL. Each operation
// carries its own transform, mesh and material; the renderer derives the
// shading variant from the material and routes the draw through the
// matching pipeline.
package renderer

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/Faultbox/spriteforge/internal/engine/pipeline"
	"github.com/Faultbox/spriteforge/internal/engine/shading"
	"github.com/Faultbox/spriteforge/internal/logger"
	"github.com/Faultbox/spriteforge/pkg/math"
	"github.com/go-gl/gl/v4.1-core/gl"
)

// Config holds renderer configuration.
type Config struct {
	Width      int
	Height     int
	ClearColor math.Vec4
}

// Material selects the shading variant and its texture inputs.
// A nil Texture renders the UV debug gradient.
type Material struct {
	Texture   *Texture
	UVWindow  math.Vec4
	Windowing shading.Windowing
	Cutout    bool
	// Inset overrides the default atlas margin for inset windowing.
	Inset float32
}

// Variant returns the shading configuration this material maps to.
func (m Material) Variant() shading.Config {
	return shading.Config{
		Windowing: m.Windowing,
		Textured:  m.Texture != nil,
		Cutout:    m.Cutout,
		Inset:     m.Inset,
	}
}

// RenderOperation is one draw: a transform, a mesh and a material.
type RenderOperation struct {
	Transform math.Mat4
	Mesh      *Mesh
	Material  Material
}

// Renderer owns the GL state shared by all draws: the pipeline cache and
// the two uniform buffers backing the Globals and Locals blocks.
type Renderer struct {
	config Config

	pipelines  *pipeline.Cache
	globalsUBO uint32
	localsUBO  uint32
}

// New creates a renderer. Must be called after the OpenGL context exists.
func New(cfg Config) (*Renderer, error) {
	r := &Renderer{
		config:    cfg,
		pipelines: pipeline.NewCache(),
	}

	if err := gl.Init(); err != nil {
		return nil, fmt.Errorf("initializing OpenGL: %w", err)
	}

	version := gl.GoStr(gl.GetString(gl.VERSION))
	rendererName := gl.GoStr(gl.GetString(gl.RENDERER))
	logger.Info("OpenGL initialized",
		zap.String("version", version),
		zap.String("renderer", rendererName),
	)

	gl.Enable(gl.DEPTH_TEST)
	gl.DepthFunc(gl.LEQUAL)
	// Premultiplied alpha.
	gl.Enable(gl.BLEND)
	gl.BlendFunc(gl.ONE, gl.ONE_MINUS_SRC_ALPHA)

	c := cfg.ClearColor
	gl.ClearColor(c.X, c.Y, c.Z, c.W)

	r.createUniformBuffers()

	return r, nil
}

// createUniformBuffers allocates the Globals and Locals buffers and parks
// them at their binding points. Locals is sized for the windowed layout so
// every variant fits in the same buffer.
func (r *Renderer) createUniformBuffers() {
	gl.GenBuffers(1, &r.globalsUBO)
	gl.BindBuffer(gl.UNIFORM_BUFFER, r.globalsUBO)
	gl.BufferData(gl.UNIFORM_BUFFER, shading.GlobalsSize, nil, gl.DYNAMIC_DRAW)
	gl.BindBufferBase(gl.UNIFORM_BUFFER, shading.BindingGlobals, r.globalsUBO)

	gl.GenBuffers(1, &r.localsUBO)
	gl.BindBuffer(gl.UNIFORM_BUFFER, r.localsUBO)
	gl.BufferData(gl.UNIFORM_BUFFER, shading.LocalsSizeWindowed, nil, gl.DYNAMIC_DRAW)
	gl.BindBufferBase(gl.UNIFORM_BUFFER, shading.BindingLocals, r.localsUBO)

	gl.BindBuffer(gl.UNIFORM_BUFFER, 0)
}

// Close releases all GL resources owned by the renderer.
func (r *Renderer) Close() {
	logger.Info("closing renderer")
	r.pipelines.Destroy()
	if r.globalsUBO != 0 {
		gl.DeleteBuffers(1, &r.globalsUBO)
		r.globalsUBO = 0
	}
	if r.localsUBO != 0 {
		gl.DeleteBuffers(1, &r.localsUBO)
		r.localsUBO = 0
	}
}

// Resize handles window resize.
func (r *Renderer) Resize(width, height int) {
	r.config.Width = width
	r.config.Height = height
	gl.Viewport(0, 0, int32(width), int32(height))
	logger.Debug("renderer resized",
		zap.Int("width", width),
		zap.Int("height", height),
	)
}

// SetGlobals uploads the per-pass uniforms.
func (r *Renderer) SetGlobals(g shading.Globals) {
	data := g.Pack()
	gl.BindBuffer(gl.UNIFORM_BUFFER, r.globalsUBO)
	gl.BufferSubData(gl.UNIFORM_BUFFER, 0, len(data), gl.Ptr(data))
	gl.BindBuffer(gl.UNIFORM_BUFFER, 0)
}

// Begin starts a new frame.
func (r *Renderer) Begin() {
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)
}

// End finishes the current frame.
func (r *Renderer) End() {
	gl.BindVertexArray(0)
	gl.UseProgram(0)
}

// Submit executes one render operation.
func (r *Renderer) Submit(op RenderOperation) error {
	if op.Mesh == nil {
		return fmt.Errorf("render operation has no mesh")
	}

	cfg := op.Material.Variant()
	p, err := r.pipelines.Get(cfg)
	if err != nil {
		return err
	}
	p.Bind()

	window := op.Material.UVWindow
	if window == (math.Vec4{}) {
		window = shading.FullWindow
	}
	locals := shading.Locals{
		Transform: op.Transform,
		UVWindow:  window,
	}
	data := locals.Pack(cfg.Windowing != shading.WindowingNone)
	gl.BindBuffer(gl.UNIFORM_BUFFER, r.localsUBO)
	gl.BufferSubData(gl.UNIFORM_BUFFER, 0, len(data), gl.Ptr(data))
	gl.BindBuffer(gl.UNIFORM_BUFFER, 0)

	if cfg.Textured {
		op.Material.Texture.Bind(shading.BindingTexture)
	}

	op.Mesh.Draw()
	return nil
}
