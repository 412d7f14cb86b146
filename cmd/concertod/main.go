package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/concerto-events/concerto/internal/api"
	"github.com/concerto-events/concerto/internal/config"
	"github.com/concerto-events/concerto/internal/logger"
	"github.com/concerto-events/concerto/internal/metrics"
	"github.com/concerto-events/concerto/internal/ticketmaster"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading configuration: %v\n", err)
		os.Exit(1)
	}

	logger.SetDefault(logger.New(logger.ParseLevel(cfg.LogLevel), os.Stderr))

	if cfg.APIKey == "" {
		fmt.Fprintf(os.Stderr, "Error: no API key configured (set CONCERTO_API_KEY)\n")
		os.Exit(1)
	}

	client := ticketmaster.NewWithBaseURL(cfg.APIKey, cfg.BaseURL)
	m := metrics.NewManager()

	mux := http.NewServeMux()
	api.NewServer(client, m, cfg.DefaultRadiusMiles, cfg.PageSize).Register(mux)

	srv := &http.Server{
		Addr:              cfg.Addr,
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		logger.Info("server listening", logger.Fields{"addr": cfg.Addr})
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("server failed", nil, err)
			os.Exit(1)
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	<-stop

	logger.Info("shutting down", nil)
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("shutdown failed", nil, err)
		os.Exit(1)
	}
}
