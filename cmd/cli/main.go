package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/urfave/cli/v3"

	"trello-sheets-sync/config"
	"trello-sheets-sync/internal/bootstrap"
	"trello-sheets-sync/pkg/log"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Failed to load config:", err)
		os.Exit(1)
	}

	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	uc, err := bootstrap.NewSyncUseCase(ctx, cfg, logger)
	if err != nil {
		logger.Fatalf(ctx, "Failed to initialize sync: %v", err)
	}

	runner := NewRunner(RunnerOpts{
		UseCase: uc,
		Logger:  logger,
	})

	if err := runnerApp(runner).Run(ctx, os.Args); err != nil {
		logger.Fatalf(ctx, "application error: %v", err)
	}
}

func runnerApp(r *Runner) *cli.Command {
	return &cli.Command{
		Name:     "trello-sheets",
		Usage:    "Mirror Trello boards into a spreadsheet",
		Version:  "1.0.0",
		Commands: r.register(),
	}
}
