// Package main is the entry point for the Venture Cube viewer.
package main

import (
	"fmt"
	"os"

	"github.com/sqweek/dialog"
	"go.uber.org/zap"

	"github.com/Faultbox/venture-cube/internal/app"
	"github.com/Faultbox/venture-cube/internal/config"
	"github.com/Faultbox/venture-cube/internal/logger"
)

func main() {
	// Parse CLI flags first
	config.ParseFlags()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Config error: %v\n", err)
		fatal("Configuration error", err)
	}

	if err := logger.Init(cfg.Logging.Level, cfg.Logging.LogFile); err != nil {
		fmt.Fprintf(os.Stderr, "Logger error: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	logger.Info("=== Venture Cube ===")
	logger.Sugar.Debugf("Config: %+v", cfg)

	a, err := app.New(cfg)
	if err != nil {
		logger.Error("failed to start", zap.Error(err))
		logger.Sync()
		fatal("Venture Cube could not start", err)
	}

	if err := a.Run(); err != nil {
		logger.Error("main loop error", zap.Error(err))
		a.Close()
		logger.Sync()
		fatal("Venture Cube stopped", err)
	}
	a.Close()

	logger.Info("closed normally")
}

// fatal shows a native error box and exits.
func fatal(title string, err error) {
	dialog.Message("%v", err).Title(title).Error()
	os.Exit(1)
}
