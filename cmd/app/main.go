package main

import (
	"context"
	"errors"
	stdlog "log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"lumensite/internal/config"
	"lumensite/internal/logger"
	"lumensite/internal/server"
)

func main() {
	cfg := config.Load()

	log, err := logger.New(cfg.LogLevel, cfg.InstanceName)
	if err != nil {
		stdlog.Fatalf("Failed to initialize logger: %v", err)
	}
	defer func() { _ = log.Sync() }()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	log.Info("serving", zap.String("port", cfg.Port))

	srv := server.New(cfg, log)
	if err := srv.ListenAndServe(ctx); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Fatal("server exited", zap.Error(err))
	}

	log.Info("shutdown complete")
}
