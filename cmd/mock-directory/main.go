package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"

	"playerid/internal/mockdirectory"
	"playerid/internal/platform/config"
	"playerid/internal/platform/logger"
)

// main serves an in-memory profile directory that speaks the same protocol as
// the real account service, for local runs of the playerid CLI.
func main() {
	cfg := config.FromEnv()
	log := logger.New(cfg.LogLevel)

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))

	store := mockdirectory.NewStore(mockdirectory.SeedProfiles()...)
	handler := mockdirectory.New(store, log,
		mockdirectory.WithLatency(cfg.MockLatency),
		mockdirectory.WithMetrics(mockdirectory.NewMetrics(reg)),
	)

	srv := &http.Server{
		Addr:              cfg.MockAddr,
		Handler:           mockdirectory.NewRouter(handler, reg),
		ReadHeaderTimeout: 5 * time.Second,
	}

	log.Info("starting mock directory",
		"addr", cfg.MockAddr,
		"profiles", store.Len(),
		"latency", cfg.MockLatency.String(),
	)

	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	log.Info("shutting down mock directory")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Error("graceful shutdown failed", "error", err)
		os.Exit(1)
	}

	log.Info("mock directory stopped")
}
