package preview

import (
	"errors"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"go.uber.org/zap"

	"github.com/Faultbox/spriteforge/internal/config"
	"github.com/Faultbox/spriteforge/internal/engine/debug"
	"github.com/Faultbox/spriteforge/internal/engine/shading"
	"github.com/Faultbox/spriteforge/internal/engine/softrast"
	"github.com/Faultbox/spriteforge/internal/engine/texture"
	"github.com/Faultbox/spriteforge/internal/logger"
	"github.com/Faultbox/spriteforge/pkg/math"
)

// softBackend drives the software rasterizer and presents its framebuffer
// through an ebiten window. It needs no GPU at all.
type softBackend struct {
	cfg   *config.Config
	scene *Scene

	fb         *softrast.Framebuffer
	sampler    shading.Sampler
	screenshot *debug.ScreenshotCapture

	start      time.Time
	lastCursor [2]int
	dragging   bool
}

func newSoftBackend(cfg *config.Config, scene *Scene) *softBackend {
	b := &softBackend{
		cfg:        cfg,
		scene:      scene,
		fb:         softrast.NewFramebuffer(cfg.Graphics.Width, cfg.Graphics.Height),
		screenshot: debug.NewScreenshotCapture(cfg.Preview.ScreenshotDir, "preview"),
		start:      time.Now(),
	}
	if scene.Texture != nil {
		b.sampler = &texture.Sampler{
			Texture: scene.Texture,
			Filter:  parseFilter(cfg.Shading.Filter),
			Edge:    parseEdge(cfg.Shading.Edge),
		}
	}
	return b
}

func (b *softBackend) run() error {
	logger.Info("starting preview loop", zap.String("backend", "soft"))

	ebiten.SetWindowTitle("spriteforge preview (software)")
	ebiten.SetWindowSize(b.cfg.Graphics.Width, b.cfg.Graphics.Height)

	if err := ebiten.RunGame(b); err != nil && !errors.Is(err, ebiten.Termination) {
		return err
	}
	return nil
}

// Update implements ebiten.Game.
func (b *softBackend) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}

	x, y := ebiten.CursorPosition()
	if ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft) {
		if b.dragging {
			b.scene.Orbit.HandleDrag(float32(x-b.lastCursor[0]), float32(y-b.lastCursor[1]))
		}
		b.dragging = true
	} else {
		b.dragging = false
	}
	b.lastCursor = [2]int{x, y}

	if _, wheelY := ebiten.Wheel(); wheelY != 0 {
		b.scene.Orbit.HandleZoom(float32(wheelY))
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyF12) {
		path, err := b.screenshot.CaptureImage(b.fb.Image())
		if err != nil {
			logger.Error("screenshot failed", zap.Error(err))
		} else {
			logger.Info("screenshot saved", zap.String("path", path))
		}
	}

	return nil
}

// Draw implements ebiten.Game.
func (b *softBackend) Draw(screen *ebiten.Image) {
	elapsed := time.Since(b.start).Seconds()
	w, h := b.fb.Size()

	b.fb.Clear(math.Vec4{X: 0.1, Y: 0.1, Z: 0.15, W: 1})

	globals := b.scene.Globals(float32(w) / float32(h))

	for _, op := range b.scene.Operations(elapsed) {
		locals := shading.Locals{
			Transform: op.Transform,
			UVWindow:  op.Window,
		}
		if err := softrast.Draw(b.fb, op.Variant, b.scene.Mesh, globals, locals, b.sampler); err != nil {
			logger.Error("draw failed", zap.Error(err))
		}
	}

	screen.WritePixels(b.fb.Pixels())
}

// Layout implements ebiten.Game; rendering happens at the framebuffer's
// fixed resolution regardless of the window size.
func (b *softBackend) Layout(outsideWidth, outsideHeight int) (int, int) {
	w, h := b.fb.Size()
	return w, h
}
