package main

import (
	"context"

	"github.com/vfg2006/sales-performance-api/infrastructure/dataset"
	"github.com/vfg2006/sales-performance-api/internal/api"
	"github.com/vfg2006/sales-performance-api/internal/config"
	"github.com/vfg2006/sales-performance-api/internal/usecases/analyzing"
	"github.com/vfg2006/sales-performance-api/internal/usecases/authenticating"
	"github.com/vfg2006/sales-performance-api/pkg/log"
	"github.com/vfg2006/sales-performance-api/pkg/metrics"
)

func main() {
	if err := run(); err != nil {
		log.L.WithError(err).Error("Servidor encerrado com erro")
	}
}

func run() error {
	cfg, err := config.NewConfig()
	if err != nil {
		return err
	}

	level := log.Configure(cfg.App.LogLevel)
	log.L.Infof("Nível de log configurado para: %s", level)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	metricsManager := metrics.NewManager(
		metrics.WithNamespace(cfg.Metrics.Namespace),
		metrics.WithMetricsEnabled(cfg.Metrics.Enabled),
	)

	if cfg.Dataset.Path == "" {
		log.L.Warn("DATASET_PATH não configurado: GET /v1/sales/report ficará indisponível")
	}

	reportService := analyzing.NewService(dataset.NewFileSource(cfg.Dataset.Path), metricsManager)
	authenticator := authenticating.NewService(cfg)

	server, err := api.New(cfg, reportService, authenticator, metricsManager)
	if err != nil {
		return err
	}

	return server.Run(ctx)
}
