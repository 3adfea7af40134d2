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

	"github.com/zamwe/zamwe-web/app/api"
	"github.com/zamwe/zamwe-web/app/cfg"
	"github.com/zamwe/zamwe-web/app/feed"
	"github.com/zamwe/zamwe-web/app/money"
	"github.com/zamwe/zamwe-web/app/seed"
	"github.com/zamwe/zamwe-web/app/session"
	"github.com/zamwe/zamwe-web/app/tasks"
)

func main() {
	appConfig, err := cfg.Load(os.Args[1:])
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	if appConfig == nil {
		// Help was shown
		return
	}

	level := slog.LevelInfo
	if appConfig.Debug {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: level})))

	if err := cfg.ApplyTimezone(appConfig.Timezone); err != nil {
		slog.Warn("Invalid timezone, using system default", "timezone", appConfig.Timezone, "error", err)
	}

	slog.Info("Starting ZAMWE server", "version", appConfig.Version)

	catalog, err := seed.NewLoader(appConfig.SeedFile).Run()
	if err != nil {
		slog.Error("Failed to load seed catalog", "error", err)
		os.Exit(1)
	}
	slog.Info("Seed catalog loaded", "items", len(catalog.Items), "tiers", len(catalog.Tiers))

	formatter, err := money.NewFormatter(appConfig.Currency, appConfig.CurrencySymbol, appConfig.Locale)
	if err != nil {
		slog.Error("Failed to create currency formatter", "error", err)
		os.Exit(1)
	}

	gate := feed.NewGate(formatter)
	store := session.NewStore(catalog, appConfig.NotificationTTL, appConfig.SessionTTL)

	slog.Info("Starting background scheduler", "workers", appConfig.WorkerCount, "interval", appConfig.SchedulerInterval)
	scheduler := tasks.NewScheduler(store, tasks.Options{
		Interval:     appConfig.SchedulerInterval,
		WorkerCount:  appConfig.WorkerCount,
		PaymentDelay: appConfig.PaymentDelay,
	})
	scheduler.Start()
	defer scheduler.Stop()

	handler, err := api.NewHandler(store, gate, scheduler, api.Settings{
		BaseURL:    appConfig.BaseUrl,
		Version:    appConfig.Version,
		SessionTTL: appConfig.SessionTTL,
		Import: tasks.ImportOptions{
			HTTPClient: tasks.NewImportClient(appConfig.ImportTimeout),
			Parser:     feed.NewParser(feed.NewContentExtractor()),
			UserAgent:  appConfig.UserAgent,
			Timeout:    appConfig.ImportTimeout,
		},
	})
	if err != nil {
		slog.Error("Failed to create HTTP handler", "error", err)
		os.Exit(1)
	}

	httpServer := &http.Server{
		Addr:         appConfig.Addr(),
		Handler:      api.NewServer(handler),
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	serverErrChan := make(chan error, 1)
	go func() {
		slog.Info("Starting HTTP server", "addr", appConfig.Addr())
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			serverErrChan <- fmt.Errorf("HTTP server error: %w", err)
		}
	}()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	select {
	case sig := <-sigChan:
		slog.Info("Received signal", "signal", sig.String())
	case err := <-serverErrChan:
		slog.Error("Server error", "error", err)
	}

	slog.Info("Shutting down server gracefully")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		slog.Error("HTTP server shutdown error", "error", err)
	} else {
		slog.Info("HTTP server stopped")
	}

	// Scheduler is stopped via defer
	slog.Info("ZAMWE server shutdown complete")
}
