package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/honeycarbs/job-tracker/internal/app"
	"github.com/honeycarbs/job-tracker/internal/config"
	"github.com/honeycarbs/job-tracker/pkg/logging"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	// stdout belongs to the board
	logger := logging.New(cfg.LogLevel, logging.WithOutput("stderr"), logging.WithConsoleEncoding())
	defer func() { _ = logger.Sync() }()

	console, err := app.InitializeConsole(cfg, logger, toastPrinter(os.Stdout))
	if err != nil {
		logger.Error("failed to initialize board", "err", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	fmt.Printf("Job board for user %d at %s. Type help for commands.\n", cfg.UserID, cfg.Backend.BaseURL)

	r := newREPL(console, os.Stdin, os.Stdout)
	r.exec(ctx, "list")
	r.Run(ctx)
}
