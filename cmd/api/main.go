package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"trello-sheets-sync/config"
	_ "trello-sheets-sync/docs" // Swagger docs
	"trello-sheets-sync/internal/bootstrap"
	"trello-sheets-sync/internal/httpserver"
	"trello-sheets-sync/internal/middleware"
	syncHTTP "trello-sheets-sync/internal/sync/delivery/http"
	"trello-sheets-sync/pkg/log"
)

// @title       Trello Sheets Sync API
// @description Triggers that mirror Trello boards, lists and cards into a spreadsheet.
// @version     1
// @host        localhost:8080
// @schemes     http
func main() {
	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		return
	}

	// 2. Logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting Trello Sheets Sync...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)
	logger.Infof(ctx, "Trello user: %s", cfg.Trello.Username)

	// 3. Sync domain
	uc, err := bootstrap.NewSyncUseCase(ctx, cfg, logger)
	if err != nil {
		logger.Errorf(ctx, "Failed to initialize sync: %v", err)
		return
	}
	if cfg.Trigger.Secret == "" {
		logger.Warn(ctx, "trigger.secret is empty: sync endpoints are open to anyone who can reach the port")
	}

	// 4. HTTP Server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Logger:      logger,
		Port:        cfg.HTTPServer.Port,
		Mode:        cfg.HTTPServer.Mode,
		Environment: cfg.Environment.Name,
		SyncHandler: syncHTTP.New(logger, uc),
		Middleware:  middleware.New(logger, cfg.Trigger),
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	// 5. Run
	if err := httpServer.Run(ctx); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		return
	}

	logger.Info(ctx, "Server stopped gracefully")
}
