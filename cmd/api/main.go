package main

import (
	"context"
	"errors"
	"fmt"
	stdlog "log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"blogapp/cmd/app"
	"blogapp/internal/config"
	handlers "blogapp/internal/handler"
	"blogapp/internal/logger"
	"blogapp/internal/metrics"
)

func main() {
	// setting up config
	cfg := config.LoadConfig()

	log, err := logger.New(cfg.Log)
	if err != nil {
		stdlog.Fatalf("failed to init logger: %v", err)
	}
	defer log.Sync()

	if cfg.JWTSecretKey == "" {
		log.Fatal("JWT_SECRET_KEY is not set")
	}

	db, services, err := app.App(cfg, log)
	if err != nil {
		log.Fatal("failed to start application", zap.Error(err))
	}
	defer db.CloseDB()

	m := metrics.New()
	if err := m.RegisterDBStats(db.DB.DB, cfg.DB.DbNAME); err != nil {
		log.Warn("failed to register database metrics", zap.Error(err))
	}

	h := handlers.NewHandlers(services, db, cfg, log)
	handler := app.NewRouter(h, cfg, m, log)

	srv := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.ServerPort),
		Handler: handler,
	}

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		log.Info("server started",
			zap.String("addr", srv.Addr),
			zap.String("database", cfg.DB.DbNAME),
			zap.String("static_dir", cfg.StaticDir),
		)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("server failed", zap.Error(err))
		}
	}()

	<-quit
	log.Info("shutting down server")

	ctx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Error("server forced to shutdown", zap.Error(err))
	}

	log.Info("server exited")
}
