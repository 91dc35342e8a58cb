package main

import (
	"context"
	"flag"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/talenthub/admin-api/internal/api/rest"
	"github.com/talenthub/admin-api/internal/config"
	"github.com/talenthub/admin-api/internal/identity"
	"github.com/talenthub/admin-api/internal/logging"
	"github.com/talenthub/admin-api/internal/reporting"
	"github.com/talenthub/admin-api/internal/server"
	"github.com/talenthub/admin-api/internal/storage/mongo"
	"github.com/talenthub/admin-api/internal/telemetry"
)

const connectTimeout = 10 * time.Second

func main() {
	configDir := flag.String("config", "config", "Directory containing config.yml")
	flag.Parse()

	// 1. Load Configuration
	cfg, err := config.Load(*configDir)
	if err != nil {
		slog.Error("Failed to load configuration", "error", err)
		os.Exit(1)
	}

	// 2. Initialize Logging
	if err := logging.Initialize(cfg.Logging); err != nil {
		slog.Error("Failed to initialize logging", "error", err)
		os.Exit(1)
	}
	defer func() {
		if err := logging.Shutdown(); err != nil {
			slog.Error("Failed to flush logs", "error", err)
		}
	}()

	logger := slog.Default()
	logger.Info("Starting Talent Hub admin API", "port", cfg.Server.HTTPPort)

	// 3. Connect Storage
	connectCtx, connectCancel := context.WithTimeout(context.Background(), connectTimeout)
	defer connectCancel()

	provider, err := mongo.NewProvider(connectCtx, cfg.Storage.URI, cfg.Storage.Database)
	if err != nil {
		logger.Error("Failed to connect to MongoDB", "error", err)
		os.Exit(1)
	}
	defer func() {
		closeCtx, closeCancel := context.WithTimeout(context.Background(), connectTimeout)
		defer closeCancel()
		if err := provider.Close(closeCtx); err != nil {
			logger.Error("Failed to close MongoDB connection", "error", err)
		}
	}()

	// 4. Wire Services
	reports := reporting.New(provider.Stores())
	verifier := identity.NewVerifier(cfg.Auth.JWTSecret, cfg.Auth.Issuer)

	handler := rest.NewHandler(reports, verifier, telemetry.NewRuntimeProvider(), provider)
	mux := http.NewServeMux()
	handler.RegisterRoutes(mux)

	srv := server.New(cfg.Server, mux, logger)

	// 5. Run Until Shutdown Signal
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := srv.Start(ctx); err != nil {
		logger.Error("HTTP server failed", "error", err)
		os.Exit(1)
	}

	logger.Info("Shutting down")
	if err := srv.Stop(context.Background()); err != nil {
		logger.Error("Shutdown failed", "error", err)
		os.Exit(1)
	}
	logger.Info("Server exiting")
}
