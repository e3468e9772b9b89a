// API server entry point for the hansen estimation service.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/solventworks/hansen/internal/application/estimate"
	"github.com/solventworks/hansen/internal/config"
	"github.com/solventworks/hansen/internal/domain/chem"
	"github.com/solventworks/hansen/internal/domain/hsp"
	"github.com/solventworks/hansen/internal/infrastructure/monitoring/logging"
	"github.com/solventworks/hansen/internal/infrastructure/monitoring/prometheus"
	httpserver "github.com/solventworks/hansen/internal/interfaces/http"
	"github.com/solventworks/hansen/internal/interfaces/http/handlers"
)

var version = "dev"

func main() {
	configPath := flag.String("config", "", "path to configuration file (optional)")
	port := flag.Int("port", 0, "HTTP server port (overrides config)")
	flag.Parse()

	cfg, err := loadConfig(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "config error: %v\n", err)
		os.Exit(1)
	}
	if *port > 0 {
		cfg.Server.Port = *port
	}

	logger, err := logging.NewLogger(cfg.Log)
	if err != nil {
		fmt.Fprintf(os.Stderr, "logger error: %v\n", err)
		os.Exit(1)
	}
	logging.SetDefault(logger)

	logger.Info("starting hansen API server",
		logging.String("version", version),
		logging.Int("port", cfg.Server.Port),
		logging.Float64("temperature_k", cfg.Engine.Temperature))

	opts := []hsp.Option{
		hsp.WithTemperature(cfg.Engine.Temperature),
		hsp.WithComplexityLength(cfg.Engine.ComplexityLength),
	}
	if !cfg.Engine.ReferenceEnabled {
		opts = append(opts, hsp.WithReferenceTable(nil))
	}
	estimator := hsp.NewEstimator(chem.Default(), logger.Named("engine"), opts...)
	defer estimator.Close()

	metrics := prometheus.NewMetrics(cfg.Engine.MetricsNamespace)
	service := estimate.NewService(estimator, logger.Named("estimate"), metrics)

	router := httpserver.NewRouter(httpserver.RouterConfig{
		EstimateHandler: handlers.NewEstimateHandler(service, logger.Named("http")),
		HealthHandler:   handlers.NewHealthHandler(version),
		Logger:          logger.Named("http"),
		Metrics:         metrics,
		Mode:            cfg.Server.Mode,
	})
	srv := httpserver.NewServer(cfg.Server, router, logger.Named("http"))

	errCh := make(chan error, 1)
	go func() { errCh <- srv.Start() }()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		if err != nil {
			logger.Error("server failed", logging.Err(err))
			os.Exit(1)
		}
	case sig := <-stop:
		logger.Info("shutdown signal received", logging.String("signal", sig.String()))
		if err := srv.Stop(context.Background()); err != nil {
			logger.Error("shutdown failed", logging.Err(err))
			os.Exit(1)
		}
	}
}

// loadConfig reads the file when given, otherwise environment and defaults.
func loadConfig(path string) (*config.Config, error) {
	if path != "" {
		return config.Load(path)
	}
	return config.LoadFromEnv()
}
