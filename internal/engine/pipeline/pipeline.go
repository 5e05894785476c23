// Package pipeline turns shading variants into linked OpenGL programs.
// Each variant is its own program object; selection happens by binding a
// different program, never by branching inside a shader.
package pipeline

import (
	"fmt"

	"github.com/go-gl/gl/v4.1-core/gl"

	"github.com/Faultbox/spriteforge/internal/engine/shader"
	"github.com/Faultbox/spriteforge/internal/engine/shading"
)

// Pipeline is a compiled program for one shading variant, with its uniform
// blocks bound to the fixed binding points.
type Pipeline struct {
	cfg     shading.Config
	program uint32
}

// New compiles and links the program for the given variant. The variant is
// validated first so a bad combination fails here rather than at draw time.
func New(cfg shading.Config) (*Pipeline, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("pipeline %s: %w", cfg, err)
	}
	if err := cfg.ValidateLayout(); err != nil {
		return nil, fmt.Errorf("pipeline %s: %w", cfg, err)
	}

	program, err := shader.CompileProgram(cfg.VertexSource(), cfg.FragmentSource())
	if err != nil {
		return nil, fmt.Errorf("pipeline %s: %w", cfg, err)
	}

	if err := shader.BindUniformBlock(program, "Globals", shading.BindingGlobals); err != nil {
		gl.DeleteProgram(program)
		return nil, fmt.Errorf("pipeline %s: %w", cfg, err)
	}
	if err := shader.BindUniformBlock(program, "Locals", shading.BindingLocals); err != nil {
		gl.DeleteProgram(program)
		return nil, fmt.Errorf("pipeline %s: %w", cfg, err)
	}
	if cfg.Textured {
		if err := shader.BindSamplerUnit(program, "uTexture", shading.BindingTexture); err != nil {
			gl.DeleteProgram(program)
			return nil, fmt.Errorf("pipeline %s: %w", cfg, err)
		}
	}

	return &Pipeline{cfg: cfg, program: program}, nil
}

// Config returns the variant this pipeline was built for.
func (p *Pipeline) Config() shading.Config {
	return p.cfg
}

// Bind makes this pipeline the active program.
func (p *Pipeline) Bind() {
	gl.UseProgram(p.program)
}

// Destroy releases the program object.
func (p *Pipeline) Destroy() {
	if p.program != 0 {
		gl.DeleteProgram(p.program)
		p.program = 0
	}
}

// Cache builds pipelines on first use and reuses them afterwards.
type Cache struct {
	pipelines map[shading.Config]*Pipeline
}

// NewCache returns an empty pipeline cache.
func NewCache() *Cache {
	return &Cache{pipelines: make(map[shading.Config]*Pipeline)}
}

// Get returns the pipeline for the variant, compiling it on first request.
func (c *Cache) Get(cfg shading.Config) (*Pipeline, error) {
	if p, ok := c.pipelines[cfg]; ok {
		return p, nil
	}
	p, err := New(cfg)
	if err != nil {
		return nil, err
	}
	c.pipelines[cfg] = p
	return p, nil
}

// Destroy releases every cached pipeline.
func (c *Cache) Destroy() {
	for _, p := range c.pipelines {
		p.Destroy()
	}
	c.pipelines = make(map[shading.Config]*Pipeline)
}
