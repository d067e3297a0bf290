package main

import (
	"context"
	"log"
	"os"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/honeycarbs/job-tracker/internal/app"
	"github.com/honeycarbs/job-tracker/internal/config"
	"github.com/honeycarbs/job-tracker/pkg/logging"
	"github.com/honeycarbs/job-tracker/pkg/shutdown"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logger := logging.New(cfg.LogLevel)
	defer func() { _ = logger.Sync() }()

	if cfg.LogLevel != "debug" {
		gin.SetMode(gin.ReleaseMode)
	}

	ctx := context.Background()
	a, cleanup, err := app.Initialize(ctx, cfg, logger)
	if err != nil {
		logger.Error("failed to initialize app", "err", err)
		os.Exit(1)
	}
	defer cleanup()

	go shutdown.Graceful(
		[]os.Signal{os.Interrupt, syscall.SIGTERM, syscall.SIGQUIT, syscall.SIGHUP},
		10*time.Second,
		logger,
		a,
	)

	logger.Info("job tracker starting", "addr", a.Server.Addr(), "backend", cfg.Backend.BaseURL)

	if err := a.Run(ctx); err != nil {
		logger.Error("server exited with error", "err", err)
	} else {
		logger.Info("server stopped")
	}
}
