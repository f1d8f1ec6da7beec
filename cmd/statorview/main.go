// Command statorview displays the procedurally built stator model in
// an interactive auto-rotating window. Drag to orbit, scroll to zoom,
// space toggles auto-rotation.
package main

import (
	"flag"
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/soypat/stator/internal/config"
	"github.com/soypat/stator/internal/logger"
	"github.com/soypat/stator/obj"
	"github.com/soypat/stator/viewport"
)

func main() {
	var (
		configPath = flag.String("config", "", "path to YAML config file")
		logLevel   = flag.String("log-level", "", "override log level (debug, info, warn, error)")
		noRotate   = flag.Bool("no-rotate", false, "start with auto-rotate disabled")
	)
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "config error: %v\n", err)
		os.Exit(1)
	}
	if *logLevel != "" {
		cfg.Logging.Level = *logLevel
	}
	if *noRotate {
		cfg.Viewport.AutoRotate = false
	}
	if err := logger.Init(cfg.Logging.Level, cfg.Logging.File); err != nil {
		fmt.Fprintf(os.Stderr, "logger error: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	model, err := obj.Stator()
	if err != nil {
		// A build failure must abort display entirely rather than show
		// a partial model.
		logger.L().Fatal("failed to build stator model", zap.Error(err))
	}

	host, err := viewport.New(cfg)
	if err != nil {
		logger.L().Fatal("failed to open viewport", zap.Error(err))
	}
	defer host.Close()

	if err := host.Run(model); err != nil {
		logger.L().Fatal("viewport error", zap.Error(err))
	}
	logger.L().Info("viewer closed")
}
