package main

import (
	"bufio"
	"context"
	"fmt"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/daviddelrio-Pursuit/phone-scammer-screener/internal/bootstrap"
	"github.com/daviddelrio-Pursuit/phone-scammer-screener/internal/cli"
	"github.com/daviddelrio-Pursuit/phone-scammer-screener/internal/config"
	"github.com/daviddelrio-Pursuit/phone-scammer-screener/internal/logger"
	"github.com/daviddelrio-Pursuit/phone-scammer-screener/internal/service"
	"github.com/daviddelrio-Pursuit/phone-scammer-screener/internal/store"
	"github.com/daviddelrio-Pursuit/phone-scammer-screener/internal/terminal"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, os.Interrupt)
	defer stop()

	cfg, err := config.NewConfig()
	if err != nil {
		log.Fatalf("failed to parse config: %v", err)
	}
	// Diagnostics go to stderr and stay quiet below warnings so they do not
	// interleave with the shell.
	logger := logger.NewWithWriter(os.Stderr, max(cfg.LogLevel, int(slog.LevelWarn)), cfg.LogFormat)

	slot, closeSlot, err := bootstrap.OpenSlot(ctx, cfg, logger)
	if err != nil {
		logger.Fatal("failed to initialize storage", "error", err)
	}
	defer func() {
		if err := closeSlot(); err != nil {
			logger.Error("failed to close storage", "error", err)
		}
	}()

	registry := service.NewRegistry(ctx, store.NewAdapter(slot, cfg.Store.Key, logger), logger, nil)

	term := terminal.NewPrompter(bufio.NewReader(os.Stdin), os.Stdout)
	shell := cli.NewShell(registry, term, os.Stdout, logger)

	// The shell blocks on stdin, so an interrupt must not wait for the next line.
	done := make(chan struct{})
	go func() {
		shell.Run(ctx)
		close(done)
	}()

	select {
	case <-done:
	case <-ctx.Done():
		fmt.Fprintln(os.Stdout)
	}
}
