package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"tvshow_admin/internal/app"     // Service assembly and lifecycle
	"tvshow_admin/internal/config"  // Custom package for configuration
	"tvshow_admin/internal/logging" // Logger setup

	"github.com/sirupsen/logrus" // Logrus for structured logging
)

// Main function to set up and run the server
func main() {
	cfg := config.LoadConfig() // Load configuration
	logging.Setup(cfg.IsProd)

	a, err := app.NewApp(cfg)
	if err != nil {
		logrus.Fatalf("failed to start: %v", err)
	}

	// Stop on SIGINT or SIGTERM
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := a.Run(ctx); err != nil {
		logrus.Fatalf("server error: %v", err)
	}
}
