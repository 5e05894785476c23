// Package main is the entry point for the interactive preview.
package main

import (
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/Faultbox/spriteforge/internal/config"
	"github.com/Faultbox/spriteforge/internal/logger"
	"github.com/Faultbox/spriteforge/internal/preview"
)

func main() {
	config.ParseFlags()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Config error: %v\n", err)
		os.Exit(1)
	}

	if err := logger.Init(cfg.Logging.Level, cfg.Logging.LogFile); err != nil {
		fmt.Fprintf(os.Stderr, "Logger error: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	logger.Info("=== spriteforge preview ===",
		zap.String("backend", cfg.Preview.Backend),
	)

	if err := preview.Run(cfg); err != nil {
		logger.Error("preview failed", zap.Error(err))
		os.Exit(1)
	}

	logger.Info("preview closed normally")
}
