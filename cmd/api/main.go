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

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
	"github.com/spf13/pflag"

	"portfolio-dashboard/internal/api"
	"portfolio-dashboard/internal/config"
	"portfolio-dashboard/internal/dashboard"
	"portfolio-dashboard/internal/logging"
	"portfolio-dashboard/internal/metrics"
)

func main() {
	cfgPath := pflag.String("config", os.Getenv("CONFIG_FILE"), "Path to YAML config (optional)")
	pflag.Parse()

	cfg, err := config.Load(*cfgPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "config: %v\n", err)
		os.Exit(2)
	}
	if err := logging.Setup(cfg.LogLevel, cfg.LogFormat); err != nil {
		fmt.Fprintf(os.Stderr, "logging: %v\n", err)
		os.Exit(2)
	}

	if info, err := os.Stat(cfg.PortfolioRoot); err == nil && info.IsDir() {
		log.Info().Str("root", cfg.PortfolioRoot).Msg("Portfolio root found")
	} else {
		log.Warn().Str("root", cfg.PortfolioRoot).Err(err).Msg("Portfolio root not found, serving empty catalog")
	}

	if os.Getenv("API_ENV") == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	reg := metrics.NewRegistry()
	svc, err := dashboard.NewServiceFromConfig(cfg, reg)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to build dashboard service")
	}
	router := api.NewRouter(svc, api.RouterOptions{
		PortfolioRoot:  cfg.PortfolioRoot,
		AllowedOrigins: cfg.Server.AllowedOrigins,
		Metrics:        reg,
	})

	srv := &http.Server{
		Addr:              fmt.Sprintf(":%s", cfg.Server.Port),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		log.Info().Str("addr", srv.Addr).Msg("Starting API server")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("Failed to start server")
		}
	}()

	<-ctx.Done()
	log.Info().Msg("Shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("Graceful shutdown failed")
	}
}
