package preview

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/Faultbox/spriteforge/internal/config"
	"github.com/Faultbox/spriteforge/internal/logger"
)

// Run builds the scene and hands it to the configured backend.
func Run(cfg *config.Config) error {
	scene, err := NewScene(cfg)
	if err != nil {
		return fmt.Errorf("building scene: %w", err)
	}

	logger.Info("scene ready",
		zap.String("mesh", cfg.Preview.Mesh),
		zap.String("variant", scene.Variant().String()),
	)

	switch cfg.Preview.Backend {
	case "soft":
		return newSoftBackend(cfg, scene).run()
	default:
		backend, err := newGLBackend(cfg, scene)
		if err != nil {
			return err
		}
		return backend.run()
	}
}
