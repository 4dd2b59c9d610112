package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rlsh74/tnsystems-website/internal/cache"
	"github.com/rlsh74/tnsystems-website/internal/pkg/log"
	platformconfig "github.com/rlsh74/tnsystems-website/internal/platform/config"
	platformemail "github.com/rlsh74/tnsystems-website/internal/platform/email"
	"github.com/rlsh74/tnsystems-website/internal/server"
)

func main() {
	startedAt := time.Now()

	cfg, err := platformconfig.LoadFromEnv()
	if err != nil {
		log.Error("Failed to load config: %v", err)
		os.Exit(1)
	}
	log.SetDebug(cfg.Server.Debug)
	if cfg.Server.Debug {
		log.InfoStruct("Configuration:", cfg.Redacted())
	}

	sender, err := platformemail.NewSenderFromConfig(cfg)
	if err != nil {
		log.Error("Failed to create email sender: %v", err)
		os.Exit(1)
	}
	if _, ok := sender.(platformemail.LogSender); ok {
		log.Warn("No SMTP host configured: emails will be logged, not sent")
	}

	store, err := cache.NewStorage(cfg)
	if err != nil {
		log.Error("Failed to create rate limit store: %v", err)
		os.Exit(1)
	}
	defer store.Close()

	app := server.New(cfg, server.Deps{
		Sender:       sender,
		LimiterStore: store,
		StartedAt:    startedAt,
	})

	go func() {
		addr := fmt.Sprintf(":%d", cfg.Server.Port)
		log.Info("Server running on port %d", cfg.Server.Port)
		log.Info("Environment: %s", cfg.App.Env)
		if !cfg.IsProduction() {
			log.Info("Access the website at: http://localhost:%d", cfg.Server.Port)
		}
		if err := app.Listen(addr); err != nil {
			log.Error("Failed to start server: %v", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server...")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(ctx); err != nil {
		log.Warn("Server forced to shutdown: %v", err)
	}
	log.Info("Server stopped")
}
