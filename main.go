package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/charmbracelet/log"
	"github.com/mpedersen/courtside/internal/config"
	"github.com/mpedersen/courtside/internal/espn"
	server "github.com/mpedersen/courtside/internal/http"
	"github.com/mpedersen/courtside/internal/league"
	"github.com/mpedersen/courtside/internal/metrics"
	"github.com/mpedersen/courtside/internal/scoreboard"
	"github.com/mpedersen/courtside/internal/view"
)

func main() {
	// Startup duration is reported as a gauge once wiring is done.
	startTime := time.Now()
	log.SetFormatter(log.JSONFormatter)
	cfg := config.Load()

	if cfg.LogFile != "" {
		logFile, err := os.OpenFile(cfg.LogFile, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
		if err != nil {
			log.Fatalf("Failed to open log file %s: %s", cfg.LogFile, err)
		}
		defer logFile.Close()
		log.SetOutput(logFile)
		log.Info("Logging to file", "path", cfg.LogFile)
	}

	registry := league.NewRegistry()
	metricsSvc := metrics.NewService()
	metricsHandler := metrics.NewMetricsHandler()
	sportsClient := espn.NewClient(cfg.ProviderBaseURL, cfg.RequestTimeout)
	fetcher := scoreboard.New(registry, sportsClient, metricsSvc)
	viewCtrl := view.NewController()

	s := server.NewServer(
		registry,
		fetcher,
		viewCtrl,
		metricsSvc,
		metricsHandler,
		cfg,
	)

	// --- Record startup time ---
	startupDuration := time.Since(startTime)
	metricsSvc.SetStartupTime(startupDuration.Seconds())
	log.Info("Startup time recorded", "duration_ms", startupDuration.Milliseconds())

	// --- Graceful shutdown setup ---
	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: s,
	}

	// Channel to listen for errors coming from the server
	serverErrors := make(chan error, 1)

	// Start the server in a goroutine
	go func() {
		log.Info("Server started", "port", cfg.Port)
		serverErrors <- srv.ListenAndServe()
	}()

	// Channel to listen for interrupt signals
	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	// Block until we receive a signal or an error
	select {
	case err := <-serverErrors:
		if err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server error: %v", err)
		}
	case sig := <-shutdown:
		log.Info("Shutdown signal received", "signal", sig)

		// Create a context with a timeout for the shutdown.
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		// Attempt to gracefully shut down the server.
		if err := srv.Shutdown(ctx); err != nil {
			log.Error("Server shutdown failed", "error", err)
		} else {
			log.Info("Server gracefully stopped")
		}
	}

	log.Info("Server process shutting down")
}
