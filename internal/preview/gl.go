package preview

import (
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/Faultbox/spriteforge/internal/config"
	"github.com/Faultbox/spriteforge/internal/engine/debug"
	"github.com/Faultbox/spriteforge/internal/engine/framebuffer"
	"github.com/Faultbox/spriteforge/internal/engine/renderer"
	"github.com/Faultbox/spriteforge/internal/engine/window"
	"github.com/Faultbox/spriteforge/internal/logger"
	"github.com/Faultbox/spriteforge/pkg/math"
)

// glBackend owns the SDL2 window, the GL renderer and the offscreen
// target frames render into before being blitted to the screen.
type glBackend struct {
	cfg   *config.Config
	scene *Scene

	window     *window.Window
	renderer   *renderer.Renderer
	target     *framebuffer.Framebuffer
	mesh       *renderer.Mesh
	texture    *renderer.Texture
	screenshot *debug.ScreenshotCapture
}

func newGLBackend(cfg *config.Config, scene *Scene) (*glBackend, error) {
	b := &glBackend{
		cfg:        cfg,
		scene:      scene,
		screenshot: debug.NewScreenshotCapture(cfg.Preview.ScreenshotDir, "preview"),
	}

	var err error
	b.window, err = window.New(window.Config{
		Title:  "spriteforge preview",
		Width:  cfg.Graphics.Width,
		Height: cfg.Graphics.Height,
		VSync:  cfg.Graphics.VSync,
	})
	if err != nil {
		return nil, fmt.Errorf("creating window: %w", err)
	}

	// The GL context exists only now.
	b.renderer, err = renderer.New(renderer.Config{
		Width:      cfg.Graphics.Width,
		Height:     cfg.Graphics.Height,
		ClearColor: math.Vec4{X: 0.1, Y: 0.1, Z: 0.15, W: 1},
	})
	if err != nil {
		b.window.Close()
		return nil, fmt.Errorf("creating renderer: %w", err)
	}

	b.target, err = framebuffer.New(int32(cfg.Graphics.Width), int32(cfg.Graphics.Height))
	if err != nil {
		b.close()
		return nil, fmt.Errorf("creating render target: %w", err)
	}

	b.mesh, err = renderer.UploadMesh(scene.Mesh)
	if err != nil {
		b.close()
		return nil, fmt.Errorf("uploading mesh: %w", err)
	}

	if scene.Texture != nil {
		b.texture, err = renderer.UploadTexture(scene.Texture,
			parseFilter(cfg.Shading.Filter), parseEdge(cfg.Shading.Edge))
		if err != nil {
			b.close()
			return nil, fmt.Errorf("uploading texture: %w", err)
		}
	}

	return b, nil
}

func (b *glBackend) close() {
	if b.texture != nil {
		b.texture.Destroy()
	}
	if b.mesh != nil {
		b.mesh.Destroy()
	}
	if b.target != nil {
		b.target.Destroy()
	}
	if b.renderer != nil {
		b.renderer.Close()
	}
	if b.window != nil {
		b.window.Close()
	}
}

func (b *glBackend) run() error {
	defer b.close()

	start := time.Now()
	frameCount := 0
	fpsTimer := time.Now()

	logger.Info("starting preview loop", zap.String("backend", "gl"))

	width, height := b.cfg.Graphics.Width, b.cfg.Graphics.Height

	for {
		ev := b.window.Poll()
		if ev.Quit {
			return nil
		}
		if ev.Resized {
			width, height = ev.Width, ev.Height
			b.renderer.Resize(width, height)
			b.target.Resize(int32(width), int32(height))
		}
		b.scene.Orbit.HandleDrag(ev.DragX, ev.DragY)
		if ev.Zoom != 0 {
			b.scene.Orbit.HandleZoom(ev.Zoom)
		}

		elapsed := time.Since(start).Seconds()
		if err := b.render(elapsed, width, height); err != nil {
			return fmt.Errorf("render error: %w", err)
		}

		if ev.Screenshot {
			path, err := b.screenshot.CaptureFromPixels(b.target.ReadPixels(), width, height, true)
			if err != nil {
				logger.Error("screenshot failed", zap.Error(err))
			} else {
				logger.Info("screenshot saved", zap.String("path", path))
			}
		}

		b.target.BlitToScreen(int32(width), int32(height))
		b.window.SwapBuffers()

		frameCount++
		if time.Since(fpsTimer) >= time.Second {
			logger.Debug("fps", zap.Int("count", frameCount))
			frameCount = 0
			fpsTimer = time.Now()
		}
	}
}

func (b *glBackend) render(elapsed float64, width, height int) error {
	b.target.Bind()
	defer b.target.Unbind()

	b.renderer.SetGlobals(b.scene.Globals(float32(width) / float32(height)))
	b.renderer.Begin()

	for _, op := range b.scene.Operations(elapsed) {
		draw := renderer.RenderOperation{
			Transform: op.Transform,
			Mesh:      b.mesh,
			Material: renderer.Material{
				Texture:   b.texture,
				UVWindow:  op.Window,
				Windowing: op.Variant.Windowing,
				Cutout:    op.Variant.Cutout,
				Inset:     op.Variant.Inset,
			},
		}
		if err := b.renderer.Submit(draw); err != nil {
			return err
		}
	}

	b.renderer.End()
	return nil
}
