// Package main renders a single frame headlessly and writes it to a PNG.
package main

import (
	"flag"
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/Faultbox/spriteforge/internal/config"
	"github.com/Faultbox/spriteforge/internal/logger"
	"github.com/Faultbox/spriteforge/internal/preview"
)

var flagOut = flag.String("out", "snapshot.png", "Output PNG path")

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

	if err := preview.Snapshot(cfg, *flagOut); err != nil {
		logger.Error("snapshot failed", zap.Error(err))
		os.Exit(1)
	}

	logger.Info("snapshot written", zap.String("path", *flagOut))
}
