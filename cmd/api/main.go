// Package main is the entry point for the Bahá'í calendar API server.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/bahai-tools/calendar-api/internal/api"
	"github.com/bahai-tools/calendar-api/internal/badi"
	"github.com/bahai-tools/calendar-api/internal/config"
	"github.com/bahai-tools/calendar-api/internal/events"
	"github.com/bahai-tools/calendar-api/internal/i18n"
	"github.com/bahai-tools/calendar-api/internal/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load configuration", slog.Any("error", err))
		os.Exit(1)
	}

	log := logger.Setup(cfg)

	bundle, err := i18n.Load(cfg.DefaultLanguage)
	if err != nil {
		log.Error("failed to load translations", slog.Any("error", err))
		os.Exit(1)
	}

	cal := badi.NewDefault()
	resolver := events.New(cal, bundle)
	handlers := api.NewHandlers(resolver, bundle, cfg, log)

	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.Port),
		Handler:           api.SetupRoutes(handlers, log),
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go func() {
		log.Info("starting Bahá'í calendar API",
			slog.String("env", cfg.Env),
			slog.Int("port", cfg.Port),
			slog.String("default_lang", cfg.DefaultLanguage),
		)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error("http server failed", slog.Any("error", err))
			stop()
		}
	}()

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("shutdown failed", slog.Any("error", err))
	}
	log.Info("server stopped")
}
